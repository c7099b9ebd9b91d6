// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge computes the hover bridge of a popup: an invisible
// region that fills the gap between the anchor and the panel, so that
// moving the pointer from one to the other does not count as leaving.
package bridge

import (
	"fmt"

	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/placement"
)

// Quad is the quadrilateral of a hover bridge, in viewport coordinates.
type Quad struct {
	TopLeft     math32.Vector2
	TopRight    math32.Vector2
	BottomLeft  math32.Vector2
	BottomRight math32.Vector2
}

// Compute returns the bridge between the anchor and panel rects for a
// panel placed on the given side of the anchor. For top and bottom,
// the bridge joins the lower edge of the upper rect to the upper edge
// of the lower rect; for left and right, it joins the right edge of the
// left rect to the left edge of the right rect.
func Compute(anchor, panel math32.Box2, side placement.Side) Quad {
	if side.IsVertical() {
		upper, lower := panel, anchor
		if anchor.Min.Y < panel.Min.Y {
			upper, lower = anchor, panel
		}
		return Quad{
			TopLeft:     math32.Vec2(upper.Min.X, upper.Max.Y),
			TopRight:    math32.Vec2(upper.Max.X, upper.Max.Y),
			BottomLeft:  math32.Vec2(lower.Min.X, lower.Min.Y),
			BottomRight: math32.Vec2(lower.Max.X, lower.Min.Y),
		}
	}
	left, right := panel, anchor
	if anchor.Min.X < panel.Min.X {
		left, right = anchor, panel
	}
	return Quad{
		TopLeft:     math32.Vec2(left.Max.X, left.Min.Y),
		TopRight:    math32.Vec2(right.Min.X, right.Min.Y),
		BottomLeft:  math32.Vec2(left.Max.X, left.Max.Y),
		BottomRight: math32.Vec2(right.Min.X, right.Max.Y),
	}
}

// Points returns the corners in polygon order:
// top-left, top-right, bottom-right, bottom-left.
func (q Quad) Points() [4]math32.Vector2 {
	return [4]math32.Vector2{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft}
}

// IsSimple returns whether the polygon formed by [Quad.Points] does not
// intersect itself. Degenerate quads, where the two rects touch, count
// as simple.
func (q Quad) IsSimple() bool {
	p := q.Points()
	return !segmentsCross(p[0], p[1], p[2], p[3]) && !segmentsCross(p[1], p[2], p[3], p[0])
}

// segmentsCross returns whether segments ab and cd properly cross.
func segmentsCross(a, b, c, d math32.Vector2) bool {
	d1 := b.Sub(a).Cross(c.Sub(a))
	d2 := b.Sub(a).Cross(d.Sub(a))
	d3 := d.Sub(c).Cross(a.Sub(c))
	d4 := d.Sub(c).Cross(b.Sub(c))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// Vars returns the bridge corners as the CSS custom properties
// used by web hosts to clip the bridge element.
func (q Quad) Vars() map[string]string {
	px := func(v float32) string { return fmt.Sprintf("%gpx", v) }
	return map[string]string{
		"--hover-bridge-top-left-x":     px(q.TopLeft.X),
		"--hover-bridge-top-left-y":     px(q.TopLeft.Y),
		"--hover-bridge-top-right-x":    px(q.TopRight.X),
		"--hover-bridge-top-right-y":    px(q.TopRight.Y),
		"--hover-bridge-bottom-left-x":  px(q.BottomLeft.X),
		"--hover-bridge-bottom-left-y":  px(q.BottomLeft.Y),
		"--hover-bridge-bottom-right-x": px(q.BottomRight.X),
		"--hover-bridge-bottom-right-y": px(q.BottomRight.Y),
	}
}
