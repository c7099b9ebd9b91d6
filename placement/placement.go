// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement defines where a popup panel sits relative to its
// anchor: one of four sides combined with one of three alignments.
package placement

//go:generate go run cogentcore.org/popup/cmd/enumgen

import (
	"log/slog"
	"strings"

	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/styles/sides"
)

// Side is the side of the anchor that the panel is placed on.
type Side int32 //enums:enum -trim-prefix Side -transform lower

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Opposite returns the opposite side (top↔bottom, left↔right).
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Axis returns the axis that is perpendicular to the side,
// along which the panel is offset away from the anchor:
// [math32.Y] for top and bottom, [math32.X] for left and right.
func (s Side) Axis() math32.Dims {
	if s.IsVertical() {
		return math32.Y
	}
	return math32.X
}

// IsVertical returns whether the side is top or bottom.
func (s Side) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// Index returns the [sides.Indexes] for this side.
func (s Side) Index() sides.Indexes {
	return sides.Indexes(s)
}

// Alignment is the alignment of the panel along the edge of the anchor.
type Alignment int32 //enums:enum -trim-prefix Align -transform lower

const (
	AlignCenter Alignment = iota
	AlignStart
	AlignEnd
)

// Placement is one of the twelve combinations of [Side] and [Alignment].
// Exactly one placement is active for a popup at any time.
type Placement int32 //enums:enum -transform kebab

const (
	Top Placement = iota
	TopStart
	TopEnd
	Right
	RightStart
	RightEnd
	Bottom
	BottomStart
	BottomEnd
	Left
	LeftStart
	LeftEnd
)

// New returns the placement with the given side and alignment.
func New(side Side, align Alignment) Placement {
	return Placement(int32(side)*3 + int32(align))
}

// Side returns the side of the placement.
func (p Placement) Side() Side {
	return Side(p / 3)
}

// Alignment returns the alignment of the placement.
func (p Placement) Alignment() Alignment {
	return Alignment(p % 3)
}

// Opposite returns the placement on the opposite side with the same alignment.
func (p Placement) Opposite() Placement {
	return New(p.Side().Opposite(), p.Alignment())
}

// OppositeAlignment returns the placement on the same side with
// start and end alignment swapped. Centered placements are unchanged.
func (p Placement) OppositeAlignment() Placement {
	switch p.Alignment() {
	case AlignStart:
		return New(p.Side(), AlignEnd)
	case AlignEnd:
		return New(p.Side(), AlignStart)
	}
	return p
}

// SideAxis returns the main axis of the placement, along which
// the panel is offset away from the anchor.
func (p Placement) SideAxis() math32.Dims {
	return p.Side().Axis()
}

// AlignmentAxis returns the cross axis of the placement,
// along which the alignment applies.
func (p Placement) AlignmentAxis() math32.Dims {
	return p.SideAxis().Other()
}

// Expanded returns the fallback placements tried when flipping
// an aligned placement with no configured fallbacks: the swapped
// alignment, the opposite side, and the opposite side with
// swapped alignment, in that order.
func (p Placement) Expanded() Placements {
	op := p.Opposite()
	return Placements{p.OppositeAlignment(), op, op.OppositeAlignment()}
}

// DefaultFallbacks returns the fallback placements used by flipping
// when none are configured: the opposite placement for centered
// placements, and [Placement.Expanded] otherwise.
func (p Placement) DefaultFallbacks() Placements {
	if p.Alignment() == AlignCenter {
		return Placements{p.Opposite()}
	}
	return p.Expanded()
}

// Parse returns the placement named by s (for example "bottom-start").
// Unknown names are logged and def is returned instead.
func Parse(s string, def Placement) Placement {
	p := def
	if err := p.SetString(strings.TrimSpace(s)); err != nil {
		slog.Warn("placement.Parse: using default placement", "default", def, "err", err)
		return def
	}
	return p
}

// Placements is an ordered list of placements, as used for
// flip fallbacks. Its text form is space separated.
type Placements []Placement

// String returns the space separated names of the placements.
func (ps Placements) String() string {
	strs := make([]string, len(ps))
	for i, p := range ps {
		strs[i] = p.String()
	}
	return strings.Join(strs, " ")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (ps Placements) MarshalText() ([]byte, error) {
	return []byte(ps.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unknown names are logged and skipped.
func (ps *Placements) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	res := make(Placements, 0, len(fields))
	for _, f := range fields {
		var p Placement
		if err := p.SetString(f); err != nil {
			slog.Warn("placement.Placements: skipping fallback placement", "err", err)
			continue
		}
		res = append(res, p)
	}
	*ps = res
	return nil
}
