// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package middleware

import (
	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/placement"
	"cogentcore.org/popup/styles/sides"
)

// ShiftName is the [State.Data] key of the [Shift] stage.
const ShiftName = "shift"

// Shift moves the panel along the anchor (the cross axis of the
// placement) to keep it inside its boundary. It never changes the
// placement.
type Shift struct {

	// Boundary is the set of clipping elements; if empty, the
	// clipping ancestors of the panel and the viewport are used.
	Boundary []anchor.Element

	// Padding is the minimum clearance kept from the boundary edges.
	Padding sides.Floats
}

// ShiftData is the translation applied by [Shift], and the axes it
// was enabled on.
type ShiftData struct {
	X, Y float32

	EnabledX, EnabledY bool
}

func (s *Shift) Name() string { return ShiftName }

func (s *Shift) Apply(st *State) (Return, error) {
	ov, err := DetectOverflow(st, s.Boundary, s.Padding)
	if err != nil {
		return Return{}, err
	}
	axis := st.Placement.AlignmentAxis()
	minSide, maxSide := placement.SideLeft, placement.SideRight
	if axis == math32.Y {
		minSide, maxSide = placement.SideTop, placement.SideBottom
	}
	pos := st.Pos()
	coord := pos.Dim(axis)
	lo := coord + ov.Get(minSide.Index())
	hi := coord - ov.Get(maxSide.Index())
	pos.SetDim(axis, math32.Clamp(coord, lo, hi))

	d := &ShiftData{X: pos.X - st.X, Y: pos.Y - st.Y}
	if axis == math32.X {
		d.EnabledX = true
	} else {
		d.EnabledY = true
	}
	return Return{Pos: &pos, Data: d}, nil
}
