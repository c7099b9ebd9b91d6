// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package popup provides [Popup], which keeps a floating panel
// positioned against an anchor while it is active. Widgets such as
// menus, tooltips and selects configure a popup and toggle it on and
// off; the geometry is computed by [position.Engine] and re-run by a
// [scheduler.Tracker] whenever the inputs change.
package popup

import (
	"context"
	"log/slog"
	"sync"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/base/errors"
	"cogentcore.org/popup/bridge"
	"cogentcore.org/popup/placement"
	"cogentcore.org/popup/position"
	"cogentcore.org/popup/scheduler"
)

// Renderer applies the results of a [Popup] to the host. Its methods
// are called with the popup locked, so they must not call back into it.
type Renderer interface {

	// Show places the panel according to the given result and makes
	// it visible.
	Show(res *position.Result)

	// Hide removes the panel from the visible layer.
	Hide()
}

// Popup is a floating panel positioned against an anchor. It is safe
// for concurrent use, but all passes are serialized.
type Popup struct {

	// Engine computes the passes.
	Engine *position.Engine

	// Tracker schedules passes while the popup is active.
	Tracker *scheduler.Tracker

	// Renderer applies the results. It may be nil.
	Renderer Renderer

	// Scope is where anchor and boundary identifiers are looked up.
	Scope anchor.Scope

	// Viewport, if set, reports viewport resizes to the tracker.
	Viewport scheduler.Notifier

	// Panel is the floating panel.
	Panel anchor.Boundable

	mu     sync.Mutex
	passMu sync.Mutex
	config Config
	active bool
	anchor anchor.Boundable
	result *position.Result
}

// New returns a new inactive popup for the given panel, computing
// passes on the given platform and scheduling them on the given frames.
func New(pf position.Platform, frames scheduler.FrameRequester, panel anchor.Boundable, r Renderer) *Popup {
	return &Popup{
		Engine:   position.NewEngine(pf),
		Tracker:  scheduler.NewTracker(frames, nil),
		Renderer: r,
		Panel:    panel,
		config:   DefaultConfig(),
	}
}

// Config returns a copy of the current config.
func (p *Popup) Config() Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config.Clone()
}

// SetConfig sets the config. If the popup is tracking, tracking is
// restarted so that new boundaries are observed, which runs a pass.
func (p *Popup) SetConfig(cfg Config) *Popup {
	p.mu.Lock()
	p.config = cfg.Clone()
	p.mu.Unlock()
	if p.Tracker.State() == scheduler.Tracking {
		p.track()
	}
	return p
}

// Active returns whether the popup is active.
func (p *Popup) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// SetActive activates or deactivates the popup. Activating starts
// tracking and runs a pass immediately if the anchor is resolved.
// Deactivating stops tracking, hides the panel and discards the
// last result.
func (p *Popup) SetActive(active bool) *Popup {
	p.mu.Lock()
	if p.active == active {
		p.mu.Unlock()
		return p
	}
	p.active = active
	p.mu.Unlock()
	if active {
		p.track()
		return p
	}
	p.Tracker.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.result = nil
	if p.Renderer != nil {
		p.Renderer.Hide()
	}
	return p
}

// SetAnchor sets the anchor reference, which may be an [anchor.Element],
// an identifier looked up in [Popup.Scope], or any [anchor.Boundable].
// Tracking of the previous anchor stops first; it restarts with the
// new anchor if the popup is active and the anchor resolves.
func (p *Popup) SetAnchor(ref any) *Popup {
	p.Tracker.Stop()
	p.mu.Lock()
	p.anchor = anchor.Resolve(ref, p.Scope)
	resolved, active := p.anchor, p.active
	p.mu.Unlock()
	if resolved == nil {
		slog.Debug("popup: anchor not resolved", "anchor", ref)
	}
	if active {
		p.track()
	}
	return p
}

// Anchor returns the resolved anchor, or nil.
func (p *Popup) Anchor() anchor.Boundable {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.anchor
}

// track starts tracking if the popup is active and the anchor is resolved.
func (p *Popup) track() {
	p.mu.Lock()
	ref, active := p.anchor, p.active
	p.mu.Unlock()
	if !active || ref == nil {
		p.Tracker.Stop()
		return
	}
	p.Tracker.Start(ref, p.Panel, p.Viewport, p.pass)
}

// pass is the tracker update function.
func (p *Popup) pass() {
	gen := p.Tracker.Generation()
	_, err := p.reposition(gen)
	if errors.Is(err, position.ErrNoAnchor) {
		// the anchor was disconnected; freeze at the last applied position
		p.Tracker.Stop()
	}
}

// Reposition forces an immediate pass, for example after the content
// of the panel changed. It does nothing and returns nil if the popup
// is not tracking or the pass fails.
func (p *Popup) Reposition() *position.Result {
	return errors.Ignore1(p.reposition(p.Tracker.Generation()))
}

func (p *Popup) reposition(gen uint64) (*position.Result, error) {
	p.passMu.Lock()
	defer p.passMu.Unlock()

	p.mu.Lock()
	ref, active := p.anchor, p.active
	opts := p.config.Options(p.Scope)
	p.mu.Unlock()
	if !active || ref == nil || !p.Tracker.IsCurrent(gen) {
		return nil, nil
	}

	res, err := p.Engine.Compute(context.Background(), ref, p.Panel, opts)
	if err != nil {
		slog.Debug("popup: pass aborted", "err", err)
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// tracking may have stopped while the pass ran
	if !p.active || !p.Tracker.IsCurrent(gen) {
		return nil, nil
	}
	p.result = res
	if p.Renderer != nil {
		p.Renderer.Show(res)
	}
	return res, nil
}

// Result returns the last applied result, or nil.
func (p *Popup) Result() *position.Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// CurrentPlacement returns the placement of the last applied result,
// which may differ from the configured one when flipping. It returns
// the configured placement if there is no result.
func (p *Popup) CurrentPlacement() placement.Placement {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return p.config.Placement
	}
	return p.result.Placement
}

// Bridge returns the hover bridge of the last applied result, or nil
// if there is none or the hover bridge is disabled.
func (p *Popup) Bridge() *bridge.Quad {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return nil
	}
	return p.result.Bridge
}
