// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario describes popup layouts in files: a viewport, a
// tree of named boxes, the anchor and panel boxes, and a popup
// [popup.Config]. Scenarios drive the popup command line tool.
package scenario

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/base/iox/jsonx"
	"cogentcore.org/popup/base/iox/tomlx"
	"cogentcore.org/popup/base/iox/yamlx"
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/popup"
	"cogentcore.org/popup/position"
	"cogentcore.org/popup/tree"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/mitchellh/go-homedir"
)

// Size is a width and height.
type Size struct {
	Width  float32 `json:"width" toml:"width" yaml:"width"`
	Height float32 `json:"height" toml:"height" yaml:"height"`
}

// Element is a box of the scenario tree.
type Element struct {

	// Name identifies the box, and is the identifier used for
	// anchors and boundaries.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Parent is the name of the parent box; empty for the viewport.
	// Parents must be listed before their children.
	Parent string `json:"parent" toml:"parent" yaml:"parent"`

	// X, Y, Width and Height are the box rect in viewport coordinates.
	X      float32 `json:"x" toml:"x" yaml:"x"`
	Y      float32 `json:"y" toml:"y" yaml:"y"`
	Width  float32 `json:"width" toml:"width" yaml:"width"`
	Height float32 `json:"height" toml:"height" yaml:"height"`

	// Clip is whether the box clips its content.
	Clip bool `json:"clip" toml:"clip" yaml:"clip"`

	// Positioned is whether the box is the origin of absolutely
	// positioned descendants.
	Positioned bool `json:"positioned" toml:"positioned" yaml:"positioned"`
}

// Rect returns the rect of the element.
func (e *Element) Rect() math32.Box2 {
	return math32.B2XYWH(e.X, e.Y, e.Width, e.Height)
}

// Scenario is a popup layout.
type Scenario struct {

	// Name is the name of the scenario; it defaults to the file name.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Viewport is the viewport size.
	Viewport Size `json:"viewport" toml:"viewport" yaml:"viewport"`

	// Elements are the boxes, parents first.
	Elements []Element `json:"elements" toml:"elements" yaml:"elements"`

	// Anchor is the anchor reference: the name of a box.
	Anchor string `json:"anchor" toml:"anchor" yaml:"anchor"`

	// Panel is the name of the panel box.
	Panel string `json:"panel" toml:"panel" yaml:"panel"`

	// Config is the popup config.
	Config popup.Config `json:"config" toml:"config" yaml:"config"`
}

// New returns a new scenario with the default popup config.
func New() *Scenario {
	return &Scenario{Config: popup.DefaultConfig()}
}

// Open reads a scenario from the given file, choosing the format by
// the file extension: .toml, .yaml or .yml, or .json.
func Open(filename string) (*Scenario, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	sc := New()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(sc, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(sc, filename)
	case ".json":
		err = jsonx.Open(sc, filename)
	default:
		return nil, fmt.Errorf("scenario: unsupported file type %q", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %q: %w", filename, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return sc, nil
}

// Glob returns the scenario files matching the given pattern, which
// may use ** to match any number of directories and start with ~ for
// the home directory. A pattern without meta characters is returned as is.
func Glob(pattern string) ([]string, error) {
	pattern, err := homedir.Expand(pattern)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scenario: bad pattern %q: %w", pattern, err)
	}
	return matches, nil
}

// Build returns a new box tree for the scenario.
func (sc *Scenario) Build() (*tree.Root, error) {
	if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
		return nil, fmt.Errorf("scenario %q: viewport size must be positive", sc.Name)
	}
	root := tree.NewRoot(sc.Viewport.Width, sc.Viewport.Height)
	for i := range sc.Elements {
		e := &sc.Elements[i]
		if e.Name == "" {
			return nil, fmt.Errorf("scenario %q: element %d has no name", sc.Name, i)
		}
		if root.Find(e.Name) != nil {
			return nil, fmt.Errorf("scenario %q: duplicate element %q", sc.Name, e.Name)
		}
		parent := root.Box
		if e.Parent != "" {
			parent = root.Find(e.Parent)
			if parent == nil {
				return nil, fmt.Errorf("scenario %q: element %q: parent %q not found", sc.Name, e.Name, e.Parent)
			}
		}
		b := tree.NewBox(e.Name, e.Rect())
		b.Clip = e.Clip
		b.Positioned = e.Positioned
		parent.AddChild(b)
	}
	if root.Find(sc.Panel) == nil {
		return nil, fmt.Errorf("scenario %q: panel %q not found", sc.Name, sc.Panel)
	}
	return root, nil
}

// Apply updates the viewport size and the rects of the boxes of a
// tree built from an earlier version of the scenario. Only boxes that
// changed notify their listeners.
func (sc *Scenario) Apply(root *tree.Root) error {
	for i := range sc.Elements {
		e := &sc.Elements[i]
		b := root.Find(e.Name)
		if b == nil {
			return fmt.Errorf("scenario %q: element %q not in tree", sc.Name, e.Name)
		}
		b.Clip = e.Clip
		b.Positioned = e.Positioned
		b.SetRect(e.Rect())
	}
	root.Resize(sc.Viewport.Width, sc.Viewport.Height)
	return nil
}

// Compute builds the tree and runs a single positioning pass.
func (sc *Scenario) Compute(ctx context.Context) (*position.Result, error) {
	root, err := sc.Build()
	if err != nil {
		return nil, err
	}
	ref := anchor.Resolve(sc.Anchor, root)
	if ref == nil {
		return nil, fmt.Errorf("scenario %q: anchor %q: %w", sc.Name, sc.Anchor, position.ErrNoAnchor)
	}
	eng := position.NewEngine(position.NewTreePlatform(root))
	return eng.Compute(ctx, ref, root.Find(sc.Panel), sc.Config.Options(root))
}
