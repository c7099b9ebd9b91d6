// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchor resolves the reference a popup is positioned against.
// An anchor can be given as an [Element] in the host element tree,
// as a string identifier looked up in a [Scope], or as any [Boundable]
// value that can only report its bounding rectangle.
package anchor

import (
	"reflect"

	"cogentcore.org/popup/math32"
)

// Boundable is the minimal anchor capability: it can report
// its bounding rectangle in viewport coordinates.
type Boundable interface {

	// BoundingRect returns the current bounding rectangle
	// in viewport coordinates.
	BoundingRect() math32.Box2
}

// Element is a node in the host element tree.
type Element interface {
	Boundable

	// Parent returns the parent element, or nil for the root.
	Parent() Element

	// Connected returns whether the element is still attached
	// to the element tree.
	Connected() bool
}

// Scope looks up elements by identifier, in the way a document
// or shadow root does.
type Scope interface {

	// ElementByID returns the element with the given id, or nil.
	ElementByID(id string) Element
}

// Assigner is implemented by elements that can be slot-like: they do
// not have a box of their own and instead display the elements
// assigned to them.
type Assigner interface {

	// IsSlot returns whether the element is currently slot-like.
	IsSlot() bool

	// AssignedElements returns the elements assigned to the slot.
	AssignedElements() []Element
}

// Contexter is implemented by [Boundable] values that are not part of
// the element tree but belong to the context of an element, whose
// ancestors then determine clipping.
type Contexter interface {
	ContextElement() Element
}

// Clipper is implemented by elements that can clip their content
// (overflow other than visible). Clipping elements bound the space
// available to a popup positioned inside them.
type Clipper interface {
	ClipsContent() bool
}

// Positioned is implemented by elements that establish a containing
// block for absolutely positioned descendants.
type Positioned interface {
	IsPositioned() bool
}

// Virtual is a [Boundable] that is not part of the element tree,
// for example a text selection or a pointer location.
type Virtual struct {

	// Rect returns the current bounding rectangle.
	Rect func() math32.Box2

	// Context is an optional element whose ancestors clip the popup.
	Context Element
}

// BoundingRect implements [Boundable].
func (v *Virtual) BoundingRect() math32.Box2 {
	if v.Rect == nil {
		return math32.Box2{}
	}
	return v.Rect()
}

// ContextElement implements [Contexter].
func (v *Virtual) ContextElement() Element {
	return v.Context
}

// Resolve normalizes the given anchor reference into a usable handle.
// It accepts an [Element], a string identifier looked up in scope,
// or any other [Boundable]. Slot-like elements ([Assigner]) resolve to
// their first assigned element. It returns nil when the reference
// cannot be resolved, including when the element is disconnected.
func Resolve(ref any, scope Scope) Boundable {
	var el Element
	switch r := ref.(type) {
	case nil:
		return nil
	case string:
		if r == "" || IsNil(scope) {
			return nil
		}
		el = scope.ElementByID(r)
	case Element:
		el = r
	case Boundable:
		if IsNil(r) {
			return nil
		}
		return r
	default:
		return nil
	}
	if IsNil(el) {
		return nil
	}
	if as, ok := el.(Assigner); ok && as.IsSlot() {
		assigned := as.AssignedElements()
		if len(assigned) == 0 {
			return nil
		}
		el = assigned[0]
		if IsNil(el) {
			return nil
		}
	}
	if !el.Connected() {
		return nil
	}
	return el
}

// ElementOf returns the element in the tree that the given handle
// belongs to: the handle itself for an [Element], the context element
// for a [Contexter], and nil otherwise.
func ElementOf(b Boundable) Element {
	switch v := b.(type) {
	case Element:
		return v
	case Contexter:
		el := v.ContextElement()
		if IsNil(el) {
			return nil
		}
		return el
	}
	return nil
}

// IsConnected returns whether the given handle is still usable:
// elements must be connected, and a virtual handle with a context
// element requires that element to be connected.
func IsConnected(b Boundable) bool {
	if IsNil(b) {
		return false
	}
	el := ElementOf(b)
	if el == nil {
		return true
	}
	return el.Connected()
}

// Ancestors returns the parent chain of the given element,
// nearest first, not including the element itself.
func Ancestors(el Element) []Element {
	var res []Element
	if IsNil(el) {
		return res
	}
	for p := el.Parent(); !IsNil(p); p = p.Parent() {
		res = append(res, p)
	}
	return res
}

// IsNil returns whether v is nil or a typed nil pointer in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
