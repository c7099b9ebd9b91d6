// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package position

import (
	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/base/errors"
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/middleware"
)

var (
	// ErrNoAnchor is returned when the anchor is not resolved or is disconnected.
	ErrNoAnchor = errors.New("position: anchor is not resolved")

	// ErrDetached is returned when an element needed by a layout query
	// is no longer attached to the element tree.
	ErrDetached = errors.New("position: element is detached")
)

// Strategy determines which origin applied coordinates are relative to.
type Strategy int32 //enums:enum -transform lower

const (
	// Fixed positions relative to the viewport.
	Fixed Strategy = iota

	// Absolute positions relative to the nearest positioned ancestor.
	Absolute
)

// CoordinateSpace resolves the origin of the coordinates applied to a panel.
// Hosts other than the default element tree can supply their own.
type CoordinateSpace interface {

	// OffsetParent returns the element whose top-left corner is the
	// origin for the given panel element, or nil for the viewport.
	OffsetParent(el anchor.Element) anchor.Boundable
}

// ViewportSpace is the [CoordinateSpace] of the [Fixed] strategy.
type ViewportSpace struct{}

func (ViewportSpace) OffsetParent(el anchor.Element) anchor.Boundable {
	return nil
}

// PositionedAncestorSpace is the [CoordinateSpace] of the [Absolute]
// strategy: the origin is the nearest ancestor that implements
// [anchor.Positioned] and is positioned, or the viewport if there is none.
type PositionedAncestorSpace struct{}

func (PositionedAncestorSpace) OffsetParent(el anchor.Element) anchor.Boundable {
	for _, a := range anchor.Ancestors(el) {
		if p, ok := a.(anchor.Positioned); ok && p.IsPositioned() {
			return a
		}
	}
	return nil
}

// Platform answers all the layout queries of the [Engine].
type Platform interface {
	middleware.Platform

	// Viewport returns the viewport rectangle.
	Viewport() math32.Box2

	// CoordinateSpace returns the coordinate space for the given strategy.
	CoordinateSpace(s Strategy) CoordinateSpace
}

// TreePlatform is the default [Platform] for hosts that expose their
// elements through [anchor.Element]. Clipping is determined by the
// ancestors that implement [anchor.Clipper].
type TreePlatform struct {

	// ViewportRect returns the viewport rectangle.
	ViewportRect func() math32.Box2

	// FixedSpace, if set, replaces [ViewportSpace] for [Fixed].
	FixedSpace CoordinateSpace

	// AbsoluteSpace, if set, replaces [PositionedAncestorSpace] for [Absolute].
	AbsoluteSpace CoordinateSpace
}

// NewTreePlatform returns a [TreePlatform] with the given viewport.
func NewTreePlatform(viewport anchor.Boundable) *TreePlatform {
	return &TreePlatform{ViewportRect: viewport.BoundingRect}
}

func (tp *TreePlatform) Viewport() math32.Box2 {
	if tp.ViewportRect == nil {
		return math32.B2(-math32.Infinity, -math32.Infinity, math32.Infinity, math32.Infinity)
	}
	return tp.ViewportRect()
}

func (tp *TreePlatform) CoordinateSpace(s Strategy) CoordinateSpace {
	if s == Absolute {
		if tp.AbsoluteSpace != nil {
			return tp.AbsoluteSpace
		}
		return PositionedAncestorSpace{}
	}
	if tp.FixedSpace != nil {
		return tp.FixedSpace
	}
	return ViewportSpace{}
}

// ClippingRect returns the viewport intersected with either the given
// boundary elements or, if there are none, the clipping ancestors of el.
func (tp *TreePlatform) ClippingRect(el anchor.Element, boundary []anchor.Element) (math32.Box2, error) {
	clip := tp.Viewport()
	if len(boundary) > 0 {
		for _, b := range boundary {
			if b == nil || !b.Connected() {
				return clip, ErrDetached
			}
			clip = clip.Intersect(b.BoundingRect())
		}
		return clip, nil
	}
	if el == nil {
		return clip, nil
	}
	if !el.Connected() {
		return clip, ErrDetached
	}
	for _, a := range anchor.Ancestors(el) {
		if !a.Connected() {
			return clip, ErrDetached
		}
		if c, ok := a.(anchor.Clipper); ok && c.ClipsContent() {
			clip = clip.Intersect(a.BoundingRect())
		}
	}
	return clip, nil
}
