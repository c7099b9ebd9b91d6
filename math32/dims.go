// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of 2D dimensions.
type Dims int32

const (
	// X is the horizontal dimension.
	X Dims = iota

	// Y is the vertical dimension.
	Y
)

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}

// String returns the lowercase axis name.
func (d Dims) String() string {
	if d == X {
		return "x"
	}
	return "y"
}
