// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"testing"

	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/placement"
	"github.com/stretchr/testify/assert"
)

func TestAnchorAbove(t *testing.T) {
	anchor := math32.B2XYWH(100, 100, 50, 20)
	panel := math32.B2XYWH(90, 130, 80, 40)
	q := Compute(anchor, panel, placement.SideBottom)
	assert.Equal(t, math32.Vec2(100, 120), q.TopLeft)
	assert.Equal(t, math32.Vec2(150, 120), q.TopRight)
	assert.Equal(t, math32.Vec2(90, 130), q.BottomLeft)
	assert.Equal(t, math32.Vec2(170, 130), q.BottomRight)
	assert.True(t, q.IsSimple())
}

func TestAnchorBelow(t *testing.T) {
	anchor := math32.B2XYWH(100, 100, 50, 20)
	panel := math32.B2XYWH(90, 40, 80, 50)
	q := Compute(anchor, panel, placement.SideTop)
	assert.Equal(t, math32.Vec2(90, 90), q.TopLeft)
	assert.Equal(t, math32.Vec2(170, 90), q.TopRight)
	assert.Equal(t, math32.Vec2(100, 100), q.BottomLeft)
	assert.Equal(t, math32.Vec2(150, 100), q.BottomRight)
	assert.True(t, q.IsSimple())
}

func TestAnchorLeft(t *testing.T) {
	anchor := math32.B2XYWH(100, 100, 50, 20)
	panel := math32.B2XYWH(160, 90, 60, 40)
	q := Compute(anchor, panel, placement.SideRight)
	assert.Equal(t, math32.Vec2(150, 100), q.TopLeft)
	assert.Equal(t, math32.Vec2(160, 90), q.TopRight)
	assert.Equal(t, math32.Vec2(150, 120), q.BottomLeft)
	assert.Equal(t, math32.Vec2(160, 130), q.BottomRight)
	assert.True(t, q.IsSimple())
}

func TestAnchorRight(t *testing.T) {
	anchor := math32.B2XYWH(100, 100, 50, 20)
	panel := math32.B2XYWH(30, 95, 60, 30)
	q := Compute(anchor, panel, placement.SideLeft)
	assert.Equal(t, math32.Vec2(90, 95), q.TopLeft)
	assert.Equal(t, math32.Vec2(100, 100), q.TopRight)
	assert.Equal(t, math32.Vec2(90, 125), q.BottomLeft)
	assert.Equal(t, math32.Vec2(100, 120), q.BottomRight)
	assert.True(t, q.IsSimple())
}

func TestSimpleForAllOrderings(t *testing.T) {
	anchor := math32.B2XYWH(200, 200, 40, 30)
	for _, side := range placement.SideValues() {
		for _, gap := range []float32{0, 4, 25} {
			var panel math32.Box2
			switch side {
			case placement.SideTop:
				panel = math32.B2XYWH(150, 200-gap-60, 140, 60)
			case placement.SideBottom:
				panel = math32.B2XYWH(230, 230+gap, 90, 60)
			case placement.SideLeft:
				panel = math32.B2XYWH(200-gap-70, 150, 70, 20)
			case placement.SideRight:
				panel = math32.B2XYWH(240+gap, 180, 70, 90)
			}
			q := Compute(anchor, panel, side)
			assert.True(t, q.IsSimple(), "%v gap %v: %v", side, gap, q.Points())
		}
	}
}

func TestVars(t *testing.T) {
	q := Compute(math32.B2XYWH(0, 0, 10, 10), math32.B2XYWH(0, 15.5, 10, 10), placement.SideBottom)
	v := q.Vars()
	assert.Len(t, v, 8)
	assert.Equal(t, "10px", v["--hover-bridge-top-left-y"])
	assert.Equal(t, "15.5px", v["--hover-bridge-bottom-right-y"])
}
