// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
// All popup geometry uses viewport-relative boxes unless noted otherwise.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2XYWH returns a new [Box2] from the given position and size,
// in the x, y, width, height form of a DOM rect.
func B2XYWH(x, y, w, h float32) Box2 {
	return Box2{Vec2(x, y), Vec2(x+w, y+h)}
}

// B2PosSize returns a new [Box2] from the given position and size vectors.
func B2PosSize(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

// String implements the [fmt.Stringer] interface.
func (b Box2) String() string {
	return fmt.Sprintf("{x:%g y:%g w:%g h:%g}", b.Min.X, b.Min.Y, b.Width(), b.Height())
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Width returns the extent along X.
func (b Box2) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the extent along Y.
func (b Box2) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// Length returns the extent along the given dimension.
func (b Box2) Length(dim Dims) float32 {
	if dim == X {
		return b.Width()
	}
	return b.Height()
}

// Center calculates the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsBox returns if this bounding box contains other box.
func (b Box2) ContainsBox(box Box2) bool {
	return (b.Min.X <= box.Min.X) && (box.Max.X <= b.Max.X) && (b.Min.Y <= box.Min.Y) && (box.Max.Y <= b.Max.Y)
}

// Intersect returns the intersection with other box.
// The result is empty (see [Box2.IsEmpty]) when the boxes do not overlap.
func (b Box2) Intersect(other Box2) Box2 {
	other.Min.X = Max(other.Min.X, b.Min.X)
	other.Min.Y = Max(other.Min.Y, b.Min.Y)
	other.Max.X = Min(other.Max.X, b.Max.X)
	other.Max.Y = Min(other.Max.Y, b.Max.Y)
	return other
}

// Translate returns translated position of this box by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// MoveTo returns the box moved so that its minimum point is at pos,
// keeping its size.
func (b Box2) MoveTo(pos Vector2) Box2 {
	return B2PosSize(pos, b.Size())
}

// WithSize returns the box with the same minimum point and the given size.
func (b Box2) WithSize(size Vector2) Box2 {
	return B2PosSize(b.Min, size)
}
