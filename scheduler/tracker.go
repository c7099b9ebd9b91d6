// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheduler keeps a popup positioned while it is active:
// a [Tracker] subscribes to geometry changes of the anchor, the panel,
// their clipping ancestors and the viewport, and coalesces them into
// at most one update pass per frame.
package scheduler

//go:generate go run cogentcore.org/popup/cmd/enumgen

import (
	"reflect"
	"slices"
	"sync"

	"cogentcore.org/popup/anchor"
)

// Notifier is implemented by anything that can report changes to its
// size, position or scroll offset.
type Notifier interface {

	// OnGeometryChange registers fn to be called after each change,
	// and returns a function that unregisters it.
	OnGeometryChange(fn func()) (unsubscribe func())
}

// Aliaser is implemented by notifiers that register their listeners on
// another value, such as a viewport that embeds its root box. [Notifiers]
// treats the notifier and its alias as one change source.
type Aliaser interface {
	NotifierAlias() any
}

// State is the state of a [Tracker].
type State int32 //enums:enum

const (
	// Idle is not tracking; no passes run.
	Idle State = iota

	// Tracking runs a pass after each frame with geometry changes.
	Tracking
)

// Tracker runs an update function whenever the geometry that a popup
// position depends on changes, at most once per frame.
type Tracker struct {

	// Frames schedules the coalesced passes.
	Frames FrameRequester

	// Metrics, if set, records pass counts.
	Metrics *Metrics

	mu          sync.Mutex
	state       State
	gen         uint64
	update      func()
	unsubs      []func()
	cancelFrame func()
}

// NewTracker returns a new idle [Tracker] scheduling on the given frames.
func NewTracker(frames FrameRequester, metrics *Metrics) *Tracker {
	return &Tracker{Frames: frames, Metrics: metrics}
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start starts tracking, stopping any previous tracking first. It
// subscribes to the anchor and panel, the clipping ancestors of both,
// and the viewport, where these implement [Notifier]. The update
// function runs once immediately, and then after each frame in which
// any of them changed.
func (t *Tracker) Start(ref, panel anchor.Boundable, viewport Notifier, update func()) {
	t.Stop()
	ns := Notifiers(ref, panel, viewport)

	t.mu.Lock()
	t.state = Tracking
	t.gen++
	gen := t.gen
	t.update = update
	t.unsubs = make([]func(), 0, len(ns))
	for _, n := range ns {
		t.unsubs = append(t.unsubs, n.OnGeometryChange(func() { t.schedule(gen) }))
	}
	t.mu.Unlock()
	t.Metrics.subscribed(len(ns))

	t.run(gen)
}

// Stop stops tracking. All subscriptions are removed and any pending
// pass is cancelled before it returns; a pass that is already running
// is not interrupted, but a pass scheduled earlier never runs.
// Stop is a no-op on an idle tracker.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if t.state == Idle {
		t.mu.Unlock()
		return
	}
	t.state = Idle
	t.gen++
	unsubs := t.unsubs
	cancel := t.cancelFrame
	t.unsubs = nil
	t.cancelFrame = nil
	t.update = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	for _, u := range unsubs {
		u()
	}
	t.Metrics.subscribed(-len(unsubs))
}

// IsCurrent returns whether the tracking session started with the
// given generation is still active. Update functions that apply
// results asynchronously use it to discard stale passes.
func (t *Tracker) IsCurrent(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == Tracking && t.gen == gen
}

// Generation returns the generation of the current tracking session.
func (t *Tracker) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

// schedule requests a frame for a pass, unless one is already pending.
func (t *Tracker) schedule(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Tracking || t.gen != gen {
		return
	}
	if t.cancelFrame != nil {
		t.Metrics.coalesced()
		return
	}
	if t.Frames == nil {
		return
	}
	t.cancelFrame = t.Frames.RequestFrame(func() { t.frame(gen) })
}

func (t *Tracker) frame(gen uint64) {
	t.mu.Lock()
	if t.state != Tracking || t.gen != gen {
		t.mu.Unlock()
		t.Metrics.discarded()
		return
	}
	t.cancelFrame = nil
	t.mu.Unlock()
	t.run(gen)
}

func (t *Tracker) run(gen uint64) {
	t.mu.Lock()
	if t.state != Tracking || t.gen != gen {
		t.mu.Unlock()
		t.Metrics.discarded()
		return
	}
	update := t.update
	t.mu.Unlock()
	t.Metrics.pass()
	if update != nil {
		update()
	}
}

// Notifiers returns the distinct change sources a popup position
// depends on: the anchor and panel, all of their ancestors, and the
// viewport. Any ancestor can scroll its content and so move the anchor,
// whether or not it clips. Nil values and values that do not implement
// [Notifier] are skipped, and an [Aliaser] viewport is not subscribed
// again through its alias.
func Notifiers(ref, panel anchor.Boundable, viewport Notifier) []Notifier {
	var ns []Notifier
	var keys []any
	if viewport != nil && !anchor.IsNil(viewport) {
		keys = append(keys, notifierKey(viewport))
	}
	add := func(v any) {
		n, ok := v.(Notifier)
		if !ok || anchor.IsNil(v) {
			return
		}
		k := notifierKey(n)
		if k != nil && slices.Contains(keys, k) {
			return
		}
		if k != nil {
			keys = append(keys, k)
		}
		ns = append(ns, n)
	}
	for _, b := range []anchor.Boundable{ref, panel} {
		if b == nil {
			continue
		}
		add(b)
		for _, a := range anchor.Ancestors(anchor.ElementOf(b)) {
			add(a)
		}
	}
	if viewport != nil && !anchor.IsNil(viewport) {
		ns = append(ns, viewport)
	}
	return ns
}

// notifierKey returns the value that identifies n as a change source,
// or nil if n cannot be compared.
func notifierKey(n Notifier) any {
	var k any = n
	if a, ok := n.(Aliaser); ok {
		k = a.NotifierAlias()
	}
	if k == nil || !reflect.TypeOf(k).Comparable() {
		return nil
	}
	return k
}
