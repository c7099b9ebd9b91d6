// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides flexible representation of box sides,
// with either a single value for all, or different values
// for subsets. It is used for the clearance (padding) kept
// between a popup and the edges of its boundary.
package sides

import (
	"log/slog"

	"cogentcore.org/popup/math32"
)

// Indexes provides names for the Sides in order defined
type Indexes int32

const (
	Top Indexes = iota
	Right
	Bottom
	Left
)

// Sides contains values for each side of a box.
// The struct field names correspond directly to the
// side values (ie: Top = top side value).
type Sides[T any] struct {

	// top value
	Top T

	// right value
	Right T

	// bottom value
	Bottom T

	// left value
	Left T
}

// Set sets the values of the sides from the given list of 0 to 4 values.
// If 0 values are provided, all sides are set to the zero value of the type.
// If 1 value is provided, all sides are set to that value.
// If 2 values are provided, the top and bottom are set to the first value
// and the right and left are set to the second value.
// If 3 values are provided, the top is set to the first value,
// the right and left are set to the second value,
// and the bottom is set to the third value.
// If 4 values are provided, they are set in top, right, bottom, left order.
// If more than 4 values are provided, the behavior is the same
// as with 4 values, but Set also logs a programmer error.
// This behavior is based on the CSS multi-side setting syntax.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	case 4:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		slog.Error("programmer error: sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
	}
	return s
}

// SetVertical sets the top and bottom values to the given value
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the right and left values to the given value
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// SetAll sets the values for all of the sides to the given value
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// Get returns the value for the given side.
func (s *Sides[T]) Get(side Indexes) T {
	switch side {
	case Top:
		return s.Top
	case Right:
		return s.Right
	case Bottom:
		return s.Bottom
	default:
		return s.Left
	}
}

// Floats contains float32 values for each side of a box
type Floats struct {
	Sides[float32]
}

// NewFloats is a helper that creates new side floats
// and calls Set on them with the given values.
func NewFloats(vals ...float32) Floats {
	sides := Sides[float32]{}
	sides.Set(vals...)
	return Floats{sides}
}

// Inset returns the box shrunk by the side values. Negative values grow it.
func (sf Floats) Inset(b math32.Box2) math32.Box2 {
	return math32.B2(b.Min.X+sf.Left, b.Min.Y+sf.Top, b.Max.X-sf.Right, b.Max.Y-sf.Bottom)
}
