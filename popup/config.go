// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package popup

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/base/errors"
	"cogentcore.org/popup/base/iox/jsonx"
	"cogentcore.org/popup/base/iox/tomlx"
	"cogentcore.org/popup/base/iox/yamlx"
	"cogentcore.org/popup/middleware"
	"cogentcore.org/popup/placement"
	"cogentcore.org/popup/position"
	"cogentcore.org/popup/styles/sides"
	"github.com/jinzhu/copier"
)

// Config is the configuration of a [Popup]. Boundaries are given as
// element identifiers, which are looked up in the [anchor.Scope] of
// the popup on each pass; an empty boundary means the clipping
// ancestors of the panel and the viewport.
type Config struct {

	// Placement is the preferred placement of the panel. The actual
	// placement may differ when flipping.
	Placement placement.Placement `json:"placement" toml:"placement" yaml:"placement"`

	// Strategy determines whether the panel is positioned relative to
	// the viewport or to its nearest positioned ancestor.
	Strategy position.Strategy `json:"strategy" toml:"strategy" yaml:"strategy"`

	// Distance is the offset in pixels away from the anchor.
	Distance float32 `json:"distance" toml:"distance" yaml:"distance"`

	// Skidding is the offset in pixels along the anchor.
	Skidding float32 `json:"skidding" toml:"skidding" yaml:"skidding"`

	// Flip changes the placement to keep the panel in view.
	Flip bool `json:"flip" toml:"flip" yaml:"flip"`

	// FlipFallbackPlacements are tried in order when the preferred
	// placement overflows. If empty, the opposite placement is tried.
	FlipFallbackPlacements placement.Placements `json:"flipFallbackPlacements" toml:"flipFallbackPlacements" yaml:"flipFallbackPlacements"`

	// FlipFallbackStrategy is used when no placement fits.
	FlipFallbackStrategy middleware.FallbackStrategy `json:"flipFallbackStrategy" toml:"flipFallbackStrategy" yaml:"flipFallbackStrategy"`

	// FlipBoundary are the identifiers of the flip boundary elements.
	FlipBoundary []string `json:"flipBoundary" toml:"flipBoundary" yaml:"flipBoundary"`

	// FlipPadding is the clearance in pixels kept from the flip boundary.
	FlipPadding float32 `json:"flipPadding" toml:"flipPadding" yaml:"flipPadding"`

	// Shift moves the panel along the anchor to keep it in view.
	Shift bool `json:"shift" toml:"shift" yaml:"shift"`

	// ShiftBoundary are the identifiers of the shift boundary elements.
	ShiftBoundary []string `json:"shiftBoundary" toml:"shiftBoundary" yaml:"shiftBoundary"`

	// ShiftPadding is the clearance in pixels kept from the shift boundary.
	ShiftPadding float32 `json:"shiftPadding" toml:"shiftPadding" yaml:"shiftPadding"`

	// AutoSize constrains the panel size to the available space.
	AutoSize middleware.AutoSizeMode `json:"autoSize" toml:"autoSize" yaml:"autoSize"`

	// AutoSizeBoundary are the identifiers of the auto-size boundary elements.
	AutoSizeBoundary []string `json:"autoSizeBoundary" toml:"autoSizeBoundary" yaml:"autoSizeBoundary"`

	// AutoSizePadding is the clearance in pixels kept from the auto-size boundary.
	AutoSizePadding float32 `json:"autoSizePadding" toml:"autoSizePadding" yaml:"autoSizePadding"`

	// Sync matches the panel width and/or height to the anchor.
	Sync middleware.Sync `json:"sync" toml:"sync" yaml:"sync"`

	// Arrow attaches an arrow pointing at the anchor.
	Arrow bool `json:"arrow" toml:"arrow" yaml:"arrow"`

	// ArrowPlacement is where the arrow is drawn along the panel edge.
	ArrowPlacement middleware.ArrowPlacement `json:"arrowPlacement" toml:"arrowPlacement" yaml:"arrowPlacement"`

	// ArrowPadding is the minimum distance in pixels between the
	// arrow and the panel corners.
	ArrowPadding float32 `json:"arrowPadding" toml:"arrowPadding" yaml:"arrowPadding"`

	// ArrowSize is the length of the arrow along the panel edge.
	// Zero treats the arrow as a point.
	ArrowSize float32 `json:"arrowSize" toml:"arrowSize" yaml:"arrowSize"`

	// HoverBridge computes the region that fills the gap between the
	// anchor and the panel, so that the pointer can cross it.
	HoverBridge bool `json:"hoverBridge" toml:"hoverBridge" yaml:"hoverBridge"`
}

// DefaultConfig returns a new [Config] with the default values.
func DefaultConfig() Config {
	return Config{
		Placement:            placement.Top,
		Strategy:             position.Fixed,
		FlipFallbackStrategy: middleware.BestFit,
		ArrowPlacement:       middleware.ArrowAnchor,
		ArrowPadding:         10,
	}
}

// Clone returns a deep copy of the config. Nil slices stay nil.
func (c *Config) Clone() Config {
	var cp Config
	if errors.Log(copier.CopyWithOption(&cp, c, copier.Option{DeepCopy: true})) != nil {
		return *c
	}
	keepNil(c.FlipFallbackPlacements, &cp.FlipFallbackPlacements)
	keepNil(c.FlipBoundary, &cp.FlipBoundary)
	keepNil(c.ShiftBoundary, &cp.ShiftBoundary)
	keepNil(c.AutoSizeBoundary, &cp.AutoSizeBoundary)
	return cp
}

// keepNil sets dst to nil if src is nil; copier makes empty slices of nil ones.
func keepNil[S ~[]E, E any](src S, dst *S) {
	if src == nil {
		*dst = nil
	}
}

// Middleware returns the enabled stages in pipeline order, with the
// boundaries looked up in the given scope. Identifiers that are not
// found are skipped.
func (c *Config) Middleware(scope anchor.Scope) []middleware.Middleware {
	mws := []middleware.Middleware{&middleware.Offset{Distance: c.Distance, Skidding: c.Skidding}}
	if c.Sync != middleware.SyncNone {
		mws = append(mws, &middleware.SizeSync{Sync: c.Sync})
	}
	if c.Flip {
		mws = append(mws, &middleware.Flip{
			Fallbacks: c.FlipFallbackPlacements,
			Strategy:  c.FlipFallbackStrategy,
			Boundary:  lookup(scope, c.FlipBoundary),
			Padding:   sides.NewFloats(c.FlipPadding),
		})
	}
	if c.Shift {
		mws = append(mws, &middleware.Shift{
			Boundary: lookup(scope, c.ShiftBoundary),
			Padding:  sides.NewFloats(c.ShiftPadding),
		})
	}
	if c.AutoSize != middleware.AutoSizeNone {
		mws = append(mws, &middleware.AutoSize{
			Mode:     c.AutoSize,
			Boundary: lookup(scope, c.AutoSizeBoundary),
			Padding:  sides.NewFloats(c.AutoSizePadding),
		})
	}
	if c.Arrow {
		mws = append(mws, &middleware.Arrow{
			Placement: c.ArrowPlacement,
			Padding:   c.ArrowPadding,
			Size:      c.ArrowSize,
		})
	}
	return mws
}

// Options returns the engine options for a pass.
func (c *Config) Options(scope anchor.Scope) position.Options {
	return position.Options{
		Placement:   c.Placement,
		Strategy:    c.Strategy,
		Middleware:  c.Middleware(scope),
		HoverBridge: c.HoverBridge,
	}
}

func lookup(scope anchor.Scope, ids []string) []anchor.Element {
	if len(ids) == 0 || anchor.IsNil(scope) {
		return nil
	}
	els := make([]anchor.Element, 0, len(ids))
	for _, id := range ids {
		el := scope.ElementByID(id)
		if anchor.IsNil(el) {
			slog.Debug("popup: boundary element not found", "id", id)
			continue
		}
		els = append(els, el)
	}
	return els
}

// LoadConfig reads a config from the given file, starting from
// [DefaultConfig]. The format is chosen by the file extension:
// .toml, .yaml or .yml, or .json.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(&cfg, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&cfg, filename)
	case ".json":
		err = jsonx.Open(&cfg, filename)
	default:
		return cfg, fmt.Errorf("popup: unsupported config file type %q", filename)
	}
	if err != nil {
		return cfg, fmt.Errorf("popup: loading config %q: %w", filename, err)
	}
	return cfg, nil
}
