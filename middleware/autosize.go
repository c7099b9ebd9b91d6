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

// AutoSizeName is the [State.Data] key of the [AutoSize] stage.
const AutoSizeName = "autoSize"

// AutoSizeMode determines which dimensions [AutoSize] constrains.
type AutoSizeMode int32 //enums:enum -trim-prefix AutoSize -transform lower

const (
	AutoSizeNone AutoSizeMode = iota
	AutoSizeHorizontal
	AutoSizeVertical
	AutoSizeBoth
)

// Width returns whether the width is constrained.
func (m AutoSizeMode) Width() bool {
	return m == AutoSizeHorizontal || m == AutoSizeBoth
}

// Height returns whether the height is constrained.
func (m AutoSizeMode) Height() bool {
	return m == AutoSizeVertical || m == AutoSizeBoth
}

// AutoSize computes the space available to the panel between its
// current edges and its boundary, for use as maximum size constraints.
// It does not resize the panel rect used by other stages.
type AutoSize struct {

	// Mode determines which dimensions are constrained.
	Mode AutoSizeMode

	// Boundary is the set of clipping elements; if empty, the
	// clipping ancestors of the panel and the viewport are used.
	Boundary []anchor.Element

	// Padding is the minimum clearance kept from the boundary edges.
	Padding sides.Floats
}

// AutoSizeData is the available space computed by [AutoSize].
// Width and Height report which of the values apply.
type AutoSizeData struct {
	AvailableWidth, AvailableHeight float32

	Width, Height bool
}

func (a *AutoSize) Name() string { return AutoSizeName }

func (a *AutoSize) Apply(st *State) (Return, error) {
	ov, err := DetectOverflow(st, a.Boundary, a.Padding)
	if err != nil {
		return Return{}, err
	}
	side := st.Placement.Side()
	align := st.Placement.Alignment()
	size := st.Rects.Floating.Size()
	w, h := size.X, size.Y

	var widthSide, heightSide placement.Side
	if side.IsVertical() {
		heightSide = side
		widthSide = placement.SideRight
		if align == placement.AlignEnd {
			widthSide = placement.SideLeft
		}
	} else {
		widthSide = side
		heightSide = placement.SideBottom
		if align == placement.AlignEnd {
			heightSide = placement.SideTop
		}
	}

	maxClipHeight := h - ov.Top - ov.Bottom
	maxClipWidth := w - ov.Left - ov.Right
	availHeight := math32.Min(h-ov.Get(heightSide.Index()), maxClipHeight)
	availWidth := math32.Min(w-ov.Get(widthSide.Index()), maxClipWidth)

	shift := st.Data.Shift()
	if shift != nil {
		if shift.EnabledX {
			availWidth = maxClipWidth
		}
		if shift.EnabledY {
			availHeight = maxClipHeight
		}
	}
	if shift == nil && align == placement.AlignCenter {
		// a centered panel that cannot shift grows symmetrically
		if side.IsVertical() {
			availWidth = w - 2*symmetricOverflow(ov.Left, ov.Right)
		} else {
			availHeight = h - 2*symmetricOverflow(ov.Top, ov.Bottom)
		}
	}

	d := &AutoSizeData{
		AvailableWidth:  math32.Max(0, availWidth),
		AvailableHeight: math32.Max(0, availHeight),
		Width:           a.Mode.Width(),
		Height:          a.Mode.Height(),
	}
	return Return{Data: d}, nil
}

func symmetricOverflow(lo, hi float32) float32 {
	mn := math32.Max(lo, 0)
	mx := math32.Max(hi, 0)
	if mn != 0 || mx != 0 {
		return mn + mx
	}
	return math32.Max(lo, hi)
}
