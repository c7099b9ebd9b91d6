// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package middleware

import (
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/placement"
)

// ArrowName is the [State.Data] key of the [Arrow] stage.
const ArrowName = "arrow"

// ArrowPlacement determines where the arrow is drawn along the panel edge.
type ArrowPlacement int32 //enums:enum -trim-prefix Arrow -transform lower

const (
	// ArrowAnchor points the arrow at the middle of the overlap
	// between the anchor and the panel.
	ArrowAnchor ArrowPlacement = iota

	// ArrowStart places the arrow Padding from the leading edge.
	ArrowStart

	// ArrowEnd places the arrow Padding from the trailing edge.
	ArrowEnd

	// ArrowCenter places the arrow at the middle of the panel.
	ArrowCenter
)

// Arrow computes the position of the pointer arrow along the panel
// edge that faces the anchor. It must run last so that it sees the
// final placement and position.
type Arrow struct {

	// Placement determines where the arrow is drawn.
	Placement ArrowPlacement

	// Padding is the minimum distance between the arrow and the
	// panel corners.
	Padding float32

	// Size is the length of the arrow along the panel edge.
	Size float32
}

// ArrowData is the arrow position computed by [Arrow].
type ArrowData struct {

	// Axis is the panel axis along which Offset is measured.
	Axis math32.Dims

	// Offset is the distance of the arrow's leading edge from the
	// panel's leading edge (left or top).
	Offset float32

	// StaticSide is the panel side the arrow protrudes from,
	// which is the side facing the anchor.
	StaticSide placement.Side
}

func (a *Arrow) Name() string { return ArrowName }

func (a *Arrow) Apply(st *State) (Return, error) {
	axis := st.Placement.AlignmentAxis()
	panel := st.FloatingRect()
	length := panel.Length(axis)
	lo := a.Padding
	hi := length - a.Padding - a.Size

	var off float32
	switch a.Placement {
	case ArrowStart:
		off = lo
	case ArrowEnd:
		off = hi
	case ArrowCenter:
		off = length/2 - a.Size/2
	default:
		off = math32.Clamp(overlapMid(st.Rects.Reference, panel, axis)-a.Size/2, lo, hi)
	}
	d := &ArrowData{
		Axis:       axis,
		Offset:     off,
		StaticSide: st.Placement.Side().Opposite(),
	}
	return Return{Data: d}, nil
}

// overlapMid returns the middle of the overlap between the anchor and
// the panel along the axis, relative to the panel's leading edge.
// Without overlap it is the middle of the anchor.
func overlapMid(ref, panel math32.Box2, axis math32.Dims) float32 {
	start := math32.Max(ref.Min.Dim(axis), panel.Min.Dim(axis))
	end := math32.Min(ref.Max.Dim(axis), panel.Max.Dim(axis))
	if end < start {
		start, end = ref.Min.Dim(axis), ref.Max.Dim(axis)
	}
	return (start+end)/2 - panel.Min.Dim(axis)
}
