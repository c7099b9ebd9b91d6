// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a simple in-memory element tree of boxes,
// which implements the layout queries and change notifications that
// popup positioning needs. It is used by hosts without an element
// tree of their own, and for scenarios and tests.
package tree

import (
	"slices"
	"sync"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/math32"
)

// Box is an element of the tree with a rectangle in viewport coordinates.
type Box struct {

	// Name is the identifier of the box, used by [Root.ElementByID].
	Name string

	// Clip is whether the box clips its content, which bounds the
	// space available to popups inside it.
	Clip bool

	// Positioned is whether the box is the origin for absolutely
	// positioned descendants.
	Positioned bool

	// Slot is whether the box is slot-like: it has no box of its
	// own and stands in for the Assigned boxes.
	Slot bool

	// Assigned are the boxes assigned to a slot-like box.
	Assigned []*Box

	rect     math32.Box2
	parent   *Box
	children []*Box
	root     *Root

	mu        sync.Mutex
	listeners listeners
}

// NewBox returns a new detached box with the given name and rect.
func NewBox(name string, rect math32.Box2) *Box {
	return &Box{Name: name, rect: rect}
}

// BoundingRect implements [anchor.Boundable].
func (b *Box) BoundingRect() math32.Box2 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rect
}

// Parent implements [anchor.Element].
func (b *Box) Parent() anchor.Element {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// Connected implements [anchor.Element]: the box is connected
// when its parent chain reaches a [Root].
func (b *Box) Connected() bool {
	for p := b; p != nil; p = p.parent {
		if p.root != nil {
			return true
		}
	}
	return false
}

// ClipsContent implements [anchor.Clipper].
func (b *Box) ClipsContent() bool {
	return b.Clip
}

// IsPositioned implements [anchor.Positioned].
func (b *Box) IsPositioned() bool {
	return b.Positioned
}

// IsSlot implements [anchor.Assigner].
func (b *Box) IsSlot() bool {
	return b.Slot
}

// AssignedElements implements [anchor.Assigner].
func (b *Box) AssignedElements() []anchor.Element {
	res := make([]anchor.Element, len(b.Assigned))
	for i, a := range b.Assigned {
		res[i] = a
	}
	return res
}

// Children returns the child boxes.
func (b *Box) Children() []*Box {
	return b.children
}

// AddChild adds the given box as the last child of this box and
// returns it. A box can only have one parent.
func (b *Box) AddChild(c *Box) *Box {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = b
	b.children = append(b.children, c)
	if r := b.rootOf(); r != nil {
		r.index(c)
	}
	return c
}

// RemoveChild detaches the given child, which disconnects it and
// all of its descendants. The listeners of the detached boxes are
// notified.
func (b *Box) RemoveChild(c *Box) {
	i := slices.Index(b.children, c)
	if i < 0 {
		return
	}
	b.children = slices.Delete(b.children, i, i+1)
	r := b.rootOf()
	if r != nil {
		r.unindex(c)
	}
	c.parent = nil
	if r != nil {
		c.notifyTree()
	}
}

func (b *Box) notifyTree() {
	b.notify()
	for _, c := range b.children {
		c.notifyTree()
	}
}

// SetRect sets the rectangle of the box and notifies its listeners
// if it changed.
func (b *Box) SetRect(r math32.Box2) {
	b.mu.Lock()
	changed := b.rect != r
	b.rect = r
	b.mu.Unlock()
	if changed {
		b.notify()
	}
}

// ScrollBy scrolls the content of the box: all of its descendants move
// by the negated delta. It notifies the listeners of the box only, as
// scrolling does not change the size of the descendants.
func (b *Box) ScrollBy(dx, dy float32) {
	d := math32.Vec2(-dx, -dy)
	for _, c := range b.children {
		c.translate(d)
	}
	b.notify()
}

func (b *Box) translate(d math32.Vector2) {
	b.mu.Lock()
	b.rect = b.rect.Translate(d)
	b.mu.Unlock()
	for _, c := range b.children {
		c.translate(d)
	}
}

// OnGeometryChange registers fn to be called whenever the box changes
// size or position, or scrolls. It returns a function that unregisters it.
func (b *Box) OnGeometryChange(fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.listeners.add(&b.mu, fn)
}

func (b *Box) notify() {
	b.mu.Lock()
	fns := b.listeners.list()
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (b *Box) rootOf() *Root {
	for p := b; p != nil; p = p.parent {
		if p.root != nil {
			return p.root
		}
	}
	return nil
}

// listeners is a list of change listeners that can be removed by id.
type listeners struct {
	nextID int
	fns    []listener
}

type listener struct {
	id int
	fn func()
}

// add adds fn and returns a function that removes it, locking mu.
// It must be called with mu held.
func (ls *listeners) add(mu *sync.Mutex, fn func()) func() {
	id := ls.nextID
	ls.nextID++
	ls.fns = append(ls.fns, listener{id, fn})
	return func() {
		mu.Lock()
		defer mu.Unlock()
		ls.fns = slices.DeleteFunc(ls.fns, func(l listener) bool { return l.id == id })
	}
}

func (ls *listeners) list() []func() {
	res := make([]func(), len(ls.fns))
	for i, l := range ls.fns {
		res[i] = l.fn
	}
	return res
}

func (ls *listeners) len() int {
	return len(ls.fns)
}
