// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/placement"
	"cogentcore.org/popup/position"
)

// Rect is a serializable rect.
type Rect struct {
	X      float32 `json:"x" yaml:"x"`
	Y      float32 `json:"y" yaml:"y"`
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// NewRect returns the [Rect] of the given box.
func NewRect(b math32.Box2) Rect {
	return Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Width(), Height: b.Height()}
}

// Point is a serializable point.
type Point struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// Arrow is the serializable arrow position.
type Arrow struct {
	Axis       string         `json:"axis" yaml:"axis"`
	Offset     float32        `json:"offset" yaml:"offset"`
	StaticSide placement.Side `json:"staticSide" yaml:"staticSide"`
}

// Report is the serializable form of a [position.Result].
type Report struct {
	Scenario  string              `json:"scenario" yaml:"scenario"`
	Placement placement.Placement `json:"placement" yaml:"placement"`
	Strategy  position.Strategy   `json:"strategy" yaml:"strategy"`
	X         float32             `json:"x" yaml:"x"`
	Y         float32             `json:"y" yaml:"y"`
	Rect      Rect                `json:"rect" yaml:"rect"`
	Anchor    Rect                `json:"anchor" yaml:"anchor"`
	MinWidth  float32             `json:"minWidth,omitempty" yaml:"minWidth,omitempty"`
	MinHeight float32             `json:"minHeight,omitempty" yaml:"minHeight,omitempty"`
	MaxWidth  *float32            `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty"`
	MaxHeight *float32            `json:"maxHeight,omitempty" yaml:"maxHeight,omitempty"`
	Arrow     *Arrow              `json:"arrow,omitempty" yaml:"arrow,omitempty"`
	Bridge    []Point             `json:"bridge,omitempty" yaml:"bridge,omitempty"`
}

// NewReport returns the report of the given result.
func NewReport(name string, res *position.Result) *Report {
	r := &Report{
		Scenario:  name,
		Placement: res.Placement,
		Strategy:  res.Strategy,
		X:         res.X,
		Y:         res.Y,
		Rect:      NewRect(res.Rect),
		Anchor:    NewRect(res.AnchorRect),
		MinWidth:  res.MinWidth,
		MinHeight: res.MinHeight,
	}
	if res.HasMaxWidth {
		w := res.MaxWidth
		r.MaxWidth = &w
	}
	if res.HasMaxHeight {
		h := res.MaxHeight
		r.MaxHeight = &h
	}
	if res.Arrow != nil {
		r.Arrow = &Arrow{Axis: res.Arrow.Axis.String(), Offset: res.Arrow.Offset, StaticSide: res.Arrow.StaticSide}
	}
	if res.Bridge != nil {
		for _, p := range res.Bridge.Points() {
			r.Bridge = append(r.Bridge, Point{p.X, p.Y})
		}
	}
	return r
}
