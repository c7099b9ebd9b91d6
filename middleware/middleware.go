// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package middleware provides the ordered stages that adjust the
// position of a popup panel relative to its anchor: [Offset],
// [SizeSync], [Flip], [Shift], [AutoSize] and [Arrow].
// Each stage reads and may modify a shared [State]; [Run] drives them.
package middleware

//go:generate go run cogentcore.org/popup/cmd/enumgen

import (
	"fmt"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/placement"
	"cogentcore.org/popup/styles/sides"
)

// maxResets bounds the number of times a pass may restart,
// so that stages that keep requesting resets cannot loop forever.
const maxResets = 50

// Platform answers the layout queries that stages need
// beyond the anchor and panel rectangles.
type Platform interface {

	// ClippingRect returns the rectangle, in viewport coordinates,
	// that the given panel element is clipped to. If boundary is empty,
	// the clipping ancestors of el and the viewport are used.
	// It returns an error if the query cannot be answered, for example
	// because an ancestor was removed during the pass.
	ClippingRect(el anchor.Element, boundary []anchor.Element) (math32.Box2, error)
}

// Rects are the anchor (reference) and panel (floating) rectangles
// for a pass, in viewport coordinates.
type Rects struct {

	// Reference is the anchor rectangle.
	Reference math32.Box2

	// Floating is the panel rectangle. Only its size is used by the
	// stages; the candidate position is held in [State.X] and [State.Y].
	Floating math32.Box2
}

// State is the working state threaded through the stages of a pass.
type State struct {

	// X and Y are the candidate position of the panel's top-left
	// corner, in viewport coordinates.
	X, Y float32

	// Placement is the current placement.
	Placement placement.Placement

	// InitialPlacement is the configured placement at the start of the pass.
	InitialPlacement placement.Placement

	// Rects are the anchor and panel rectangles.
	Rects Rects

	// Floating is the panel element, used for clipping queries. It may be nil.
	Floating anchor.Element

	// Platform answers clipping queries.
	Platform Platform

	// Data holds the auxiliary output of each stage, keyed by stage name.
	Data Data
}

// FloatingRect returns the panel rectangle at the candidate position.
func (st *State) FloatingRect() math32.Box2 {
	return st.Rects.Floating.MoveTo(math32.Vec2(st.X, st.Y))
}

// Pos returns the candidate position.
func (st *State) Pos() math32.Vector2 {
	return math32.Vec2(st.X, st.Y)
}

// Middleware is one position adjustment stage.
type Middleware interface {

	// Name is the key under which the stage data is stored in [State.Data].
	Name() string

	// Apply runs the stage against the state.
	Apply(st *State) (Return, error)
}

// Return is the result of applying a [Middleware].
type Return struct {

	// Pos, if non-nil, is the new candidate position.
	Pos *math32.Vector2

	// Data, if non-nil, is stored in [State.Data] under the stage name.
	Data any

	// Reset, if non-nil, restarts the pass from the first stage.
	Reset *Reset
}

// Reset restarts a pass with the given placement. The candidate
// position is recomputed from the placement and the current rects.
type Reset struct {
	Placement placement.Placement
}

// Run computes the initial candidate position for st.InitialPlacement
// and then applies the given stages in order. A stage that returns a
// [Reset] restarts the stages with the new placement, keeping the data
// gathered so far. Errors from stages abort the pass.
func Run(st *State, mws []Middleware) error {
	if st.Data == nil {
		st.Data = Data{}
	}
	st.Placement = st.InitialPlacement
	st.setCoords()
	resets := 0
	for i := 0; i < len(mws); i++ {
		mw := mws[i]
		ret, err := mw.Apply(st)
		if err != nil {
			return fmt.Errorf("middleware %s: %w", mw.Name(), err)
		}
		if ret.Pos != nil {
			st.X, st.Y = ret.Pos.X, ret.Pos.Y
		}
		if ret.Data != nil {
			st.Data[mw.Name()] = ret.Data
		}
		if ret.Reset != nil && resets < maxResets {
			resets++
			st.Placement = ret.Reset.Placement
			st.setCoords()
			i = -1
		}
	}
	return nil
}

func (st *State) setCoords() {
	pos := ComputeCoords(st.Rects.Reference, st.Rects.Floating.Size(), st.Placement)
	st.X, st.Y = pos.X, pos.Y
}

// ComputeCoords returns the top-left position of a panel of the given
// size placed against the reference rectangle, before any adjustment.
func ComputeCoords(ref math32.Box2, size math32.Vector2, p placement.Placement) math32.Vector2 {
	center := ref.Center()
	commonX := center.X - size.X/2
	commonY := center.Y - size.Y/2

	var pos math32.Vector2
	switch p.Side() {
	case placement.SideTop:
		pos = math32.Vec2(commonX, ref.Min.Y-size.Y)
	case placement.SideBottom:
		pos = math32.Vec2(commonX, ref.Max.Y)
	case placement.SideRight:
		pos = math32.Vec2(ref.Max.X, commonY)
	case placement.SideLeft:
		pos = math32.Vec2(ref.Min.X-size.X, commonY)
	}

	axis := p.AlignmentAxis()
	commonAlign := ref.Length(axis)/2 - size.Dim(axis)/2
	switch p.Alignment() {
	case placement.AlignStart:
		pos.SetDim(axis, pos.Dim(axis)-commonAlign)
	case placement.AlignEnd:
		pos.SetDim(axis, pos.Dim(axis)+commonAlign)
	}
	return pos
}

// DetectOverflow returns, for each side, how far the panel at its
// candidate position extends past the clipping rectangle of the given
// boundary, plus the padding. Positive values overflow; zero or
// negative values fit with that much room to spare.
func DetectOverflow(st *State, boundary []anchor.Element, padding sides.Floats) (sides.Floats, error) {
	if st.Platform == nil {
		return sides.Floats{}, fmt.Errorf("no platform to query the clipping rect")
	}
	clip, err := st.Platform.ClippingRect(st.Floating, boundary)
	if err != nil {
		return sides.Floats{}, err
	}
	clip = padding.Inset(clip)
	r := st.FloatingRect()
	return sides.NewFloats(
		clip.Min.Y-r.Min.Y,
		r.Max.X-clip.Max.X,
		r.Max.Y-clip.Max.Y,
		clip.Min.X-r.Min.X,
	), nil
}

// Data holds the auxiliary output of the stages, keyed by stage name.
type Data map[string]any

// Offset returns the [Offset] stage data, or nil.
func (d Data) Offset() *OffsetData {
	v, _ := d[OffsetName].(*OffsetData)
	return v
}

// SizeSync returns the [SizeSync] stage data, or nil.
func (d Data) SizeSync() *SizeSyncData {
	v, _ := d[SizeSyncName].(*SizeSyncData)
	return v
}

// Flip returns the [Flip] stage data, or nil.
func (d Data) Flip() *FlipData {
	v, _ := d[FlipName].(*FlipData)
	return v
}

// Shift returns the [Shift] stage data, or nil.
func (d Data) Shift() *ShiftData {
	v, _ := d[ShiftName].(*ShiftData)
	return v
}

// AutoSize returns the [AutoSize] stage data, or nil.
func (d Data) AutoSize() *AutoSizeData {
	v, _ := d[AutoSizeName].(*AutoSizeData)
	return v
}

// Arrow returns the [Arrow] stage data, or nil.
func (d Data) Arrow() *ArrowData {
	v, _ := d[ArrowName].(*ArrowData)
	return v
}
