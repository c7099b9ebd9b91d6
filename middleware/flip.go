// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package middleware

import (
	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/placement"
	"cogentcore.org/popup/styles/sides"
)

// FlipName is the [State.Data] key of the [Flip] stage.
const FlipName = "flip"

// FallbackStrategy determines the placement chosen by [Flip] when
// neither the initial placement nor any fallback fits.
type FallbackStrategy int32 //enums:enum -transform kebab

const (
	// BestFit chooses the tested placement with the least overflow.
	BestFit FallbackStrategy = iota

	// Initial reverts to the initially configured placement.
	Initial
)

// Flip changes the placement when the panel overflows its boundary,
// trying the initial placement and then each fallback in order.
type Flip struct {

	// Fallbacks are the placements tried after the initial one.
	// If empty, [placement.Placement.DefaultFallbacks] is used.
	Fallbacks placement.Placements

	// Strategy is used when no tested placement fits.
	Strategy FallbackStrategy

	// Boundary is the set of clipping elements; if empty, the
	// clipping ancestors of the panel and the viewport are used.
	Boundary []anchor.Element

	// Padding is the minimum clearance kept from the boundary edges.
	Padding sides.Floats
}

// PlacementOverflow is the overflow measured for one tested placement:
// the main axis side first, then the two cross axis sides.
type PlacementOverflow struct {
	Placement placement.Placement
	Overflows [3]float32
}

// Fits returns whether the placement fits without overflow.
func (po PlacementOverflow) Fits() bool {
	for _, o := range po.Overflows {
		if o > 0 {
			return false
		}
	}
	return true
}

// Total returns the sum of the positive overflows.
func (po PlacementOverflow) Total() float32 {
	var t float32
	for _, o := range po.Overflows {
		if o > 0 {
			t += o
		}
	}
	return t
}

// FlipData records the placements tested by [Flip] during a pass.
type FlipData struct {

	// Index is the index of the placement being tested, where 0 is
	// the initial placement and i > 0 is fallback i-1.
	Index int

	// Overflows are the tested placements in test order.
	Overflows []PlacementOverflow
}

func (f *Flip) Name() string { return FlipName }

func (f *Flip) Apply(st *State) (Return, error) {
	initial := st.InitialPlacement
	fallbacks := f.Fallbacks
	if len(fallbacks) == 0 {
		fallbacks = initial.DefaultFallbacks()
	}
	placements := append(placement.Placements{initial}, fallbacks...)

	ov, err := DetectOverflow(st, f.Boundary, f.Padding)
	if err != nil {
		return Return{}, err
	}
	cur := st.Placement
	a, b := crossSides(cur)
	po := PlacementOverflow{
		Placement: cur,
		Overflows: [3]float32{ov.Get(cur.Side().Index()), ov.Get(a.Index()), ov.Get(b.Index())},
	}

	d := &FlipData{}
	if prev := st.Data.Flip(); prev != nil {
		d.Index = prev.Index
		d.Overflows = append(d.Overflows, prev.Overflows...)
	}
	d.Overflows = append(d.Overflows, po)

	if po.Fits() {
		return Return{Data: d}, nil
	}
	if next := d.Index + 1; next < len(placements) {
		d.Index = next
		return Return{Data: d, Reset: &Reset{Placement: placements[next]}}, nil
	}

	choice := initial
	if f.Strategy == BestFit {
		choice = leastOverflow(d.Overflows)
	}
	if choice != cur {
		return Return{Data: d, Reset: &Reset{Placement: choice}}, nil
	}
	return Return{Data: d}, nil
}

// crossSides returns the two sides perpendicular to the side of p.
func crossSides(p placement.Placement) (placement.Side, placement.Side) {
	if p.Side().IsVertical() {
		return placement.SideLeft, placement.SideRight
	}
	return placement.SideTop, placement.SideBottom
}

// leastOverflow returns the placement with the smallest total overflow.
// Ties go to the placement tested first.
func leastOverflow(pos []PlacementOverflow) placement.Placement {
	best := pos[0]
	for _, po := range pos[1:] {
		if po.Total() < best.Total() {
			best = po
		}
	}
	return best.Placement
}
