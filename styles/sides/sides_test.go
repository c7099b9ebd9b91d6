// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"testing"

	"cogentcore.org/popup/math32"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := func(vals ...float32) Sides[float32] {
		return *(&Sides[float32]{}).Set(vals...)
	}
	assert.Equal(t, Sides[float32]{}, set())
	assert.Equal(t, Sides[float32]{1, 1, 1, 1}, set(1))
	assert.Equal(t, Sides[float32]{1, 2, 1, 2}, set(1, 2))
	assert.Equal(t, Sides[float32]{1, 2, 3, 2}, set(1, 2, 3))
	assert.Equal(t, Sides[float32]{1, 2, 3, 4}, set(1, 2, 3, 4))
	assert.Equal(t, Sides[float32]{1, 2, 3, 4}, set(1, 2, 3, 4, 5))
}

func TestGet(t *testing.T) {
	s := (&Sides[int]{}).Set(1, 2, 3, 4)
	assert.Equal(t, 1, s.Get(Top))
	assert.Equal(t, 2, s.Get(Right))
	assert.Equal(t, 3, s.Get(Bottom))
	assert.Equal(t, 4, s.Get(Left))
}

func TestInset(t *testing.T) {
	a := NewFloats(1, 2)
	assert.Equal(t, math32.B2(2, 1, 98, 99), a.Inset(math32.B2(0, 0, 100, 100)))
	assert.Equal(t, math32.B2(-5, -5, 105, 105), NewFloats(-5).Inset(math32.B2(0, 0, 100, 100)))
}
