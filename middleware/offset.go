// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package middleware

import (
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/placement"
)

// OffsetName is the [State.Data] key of the [Offset] stage.
const OffsetName = "offset"

// Offset translates the panel away from the anchor by Distance along
// the main axis and along the anchor by Skidding on the cross axis.
// It never changes the placement.
type Offset struct {

	// Distance is the offset in pixels away from the anchor.
	Distance float32

	// Skidding is the offset in pixels along the anchor.
	Skidding float32
}

// OffsetData is the translation applied by [Offset].
type OffsetData struct {
	X, Y float32
}

func (o *Offset) Name() string { return OffsetName }

func (o *Offset) Apply(st *State) (Return, error) {
	side := st.Placement.Side()
	main := o.Distance
	if side == placement.SideTop || side == placement.SideLeft {
		main = -main
	}
	var d OffsetData
	if side.IsVertical() {
		d = OffsetData{X: o.Skidding, Y: main}
	} else {
		d = OffsetData{X: main, Y: o.Skidding}
	}
	pos := math32.Vec2(st.X+d.X, st.Y+d.Y)
	return Return{Pos: &pos, Data: &d}, nil
}
