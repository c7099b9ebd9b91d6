// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"sync"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/math32"
)

// Root is the root of a box tree. Its box is the viewport, and it
// looks up boxes by name as an [anchor.Scope].
type Root struct {
	*Box

	mu     sync.Mutex
	byName map[string]*Box
}

// NewRoot returns a new root with a viewport of the given size.
func NewRoot(width, height float32) *Root {
	r := &Root{Box: NewBox("viewport", math32.B2(0, 0, width, height))}
	r.Box.root = r
	r.byName = map[string]*Box{}
	return r
}

// ElementByID implements [anchor.Scope].
func (r *Root) ElementByID(id string) anchor.Element {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byName[id]
	if !ok {
		return nil
	}
	return b
}

// NotifierAlias returns the viewport box, which the geometry listeners
// of the root are registered on.
func (r *Root) NotifierAlias() any {
	return r.Box
}

// Find returns the box with the given name, or nil.
func (r *Root) Find(name string) *Box {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byName[name]
}

// Resize resizes the viewport and notifies its listeners.
func (r *Root) Resize(width, height float32) {
	r.SetRect(math32.B2(0, 0, width, height))
}

// Listeners returns the number of geometry listeners registered on
// the box with the given name, or on the viewport for "".
func (r *Root) Listeners(name string) int {
	b := r.Box
	if name != "" {
		b = r.Find(name)
	}
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.listeners.len()
}

func (r *Root) index(b *Box) {
	r.mu.Lock()
	if b.Name != "" {
		r.byName[b.Name] = b
	}
	r.mu.Unlock()
	for _, c := range b.children {
		r.index(c)
	}
}

func (r *Root) unindex(b *Box) {
	r.mu.Lock()
	if r.byName[b.Name] == b {
		delete(r.byName, b.Name)
	}
	r.mu.Unlock()
	for _, c := range b.children {
		r.unindex(c)
	}
}
