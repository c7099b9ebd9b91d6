// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import (
	"testing"

	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/styles/sides"
	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	assert.Len(t, PlacementValues(), 12)
	for _, p := range PlacementValues() {
		assert.Equal(t, p, New(p.Side(), p.Alignment()), p.String())
	}
	assert.Equal(t, SideBottom, BottomStart.Side())
	assert.Equal(t, AlignStart, BottomStart.Alignment())
	assert.Equal(t, SideLeft, Left.Side())
	assert.Equal(t, AlignCenter, Left.Alignment())
	assert.Equal(t, AlignEnd, RightEnd.Alignment())
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, SideBottom, SideTop.Opposite())
	assert.Equal(t, SideTop, SideBottom.Opposite())
	assert.Equal(t, SideLeft, SideRight.Opposite())
	assert.Equal(t, SideRight, SideLeft.Opposite())

	assert.Equal(t, Bottom, Top.Opposite())
	assert.Equal(t, LeftEnd, RightEnd.Opposite())
	assert.Equal(t, TopEnd, TopStart.OppositeAlignment())
	assert.Equal(t, Right, Right.OppositeAlignment())
}

func TestAxes(t *testing.T) {
	assert.Equal(t, math32.Y, Top.SideAxis())
	assert.Equal(t, math32.X, Top.AlignmentAxis())
	assert.Equal(t, math32.X, LeftStart.SideAxis())
	assert.Equal(t, math32.Y, LeftStart.AlignmentAxis())
	assert.True(t, SideBottom.IsVertical())
	assert.False(t, SideRight.IsVertical())
	assert.Equal(t, sides.Left, SideLeft.Index())
	assert.Equal(t, sides.Top, SideTop.Index())
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, Placements{Bottom}, Top.DefaultFallbacks())
	assert.Equal(t, Placements{BottomEnd, TopStart, TopEnd}, BottomStart.DefaultFallbacks())
	assert.Equal(t, Placements{RightStart, LeftEnd, LeftStart}, RightEnd.Expanded())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "bottom-start", BottomStart.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "top", SideTop.String())
	assert.Equal(t, "end", AlignEnd.String())

	var p Placement
	assert.NoError(t, p.SetString("right-end"))
	assert.Equal(t, RightEnd, p)
	assert.NoError(t, p.SetString("Left-Start"))
	assert.Equal(t, LeftStart, p)
	assert.Error(t, p.SetString("middle"))
	assert.Equal(t, LeftStart, p)
}

func TestParse(t *testing.T) {
	assert.Equal(t, TopEnd, Parse("top-end", Bottom))
	assert.Equal(t, TopEnd, Parse(" top-end ", Bottom))
	assert.Equal(t, Bottom, Parse("sideways", Bottom))
	assert.Equal(t, BottomStart, Parse("", BottomStart))

	p := BottomStart
	assert.NoError(t, p.UnmarshalText([]byte("diagonal")))
	assert.Equal(t, BottomStart, p)
}

func TestPlacementsText(t *testing.T) {
	var ps Placements
	assert.NoError(t, ps.UnmarshalText([]byte(" top  bottom-end nowhere left ")))
	assert.Equal(t, Placements{Top, BottomEnd, Left}, ps)
	b, err := ps.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "top bottom-end left", string(b))

	assert.NoError(t, ps.UnmarshalText(nil))
	assert.Empty(t, ps)
}
