// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package position computes where a popup panel is drawn relative to
// its anchor. Each call to [Engine.Compute] is an independent pass that
// runs the configured [middleware] stages and returns a [Result]; the
// caller decides how to apply it.
package position

//go:generate go run cogentcore.org/popup/cmd/enumgen

import (
	"context"
	"fmt"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/bridge"
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/middleware"
	"cogentcore.org/popup/placement"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cogentcore.org/popup/position"

// Options configure a single pass of the [Engine].
type Options struct {

	// Placement is the preferred placement.
	Placement placement.Placement

	// Strategy determines the origin of the result coordinates.
	Strategy Strategy

	// Middleware are the stages to run, in order.
	Middleware []middleware.Middleware

	// HoverBridge computes [Result.Bridge] when set.
	HoverBridge bool
}

// Result is the outcome of a pass.
type Result struct {

	// X and Y are the panel position relative to the origin of the
	// coordinate space of the strategy.
	X, Y float32

	// Rect is the final panel rect in viewport coordinates.
	Rect math32.Box2

	// AnchorRect is the anchor rect the pass was computed against.
	AnchorRect math32.Box2

	// Placement is the resolved placement, which may differ from
	// the preferred one when flipping.
	Placement placement.Placement

	// Strategy is the strategy the coordinates are relative to.
	Strategy Strategy

	// MinWidth and MinHeight are the minimum panel size set by size syncing;
	// zero means unconstrained.
	MinWidth, MinHeight float32

	// MaxWidth and MaxHeight are the available space computed by
	// auto-sizing, valid when HasMaxWidth and HasMaxHeight are set.
	MaxWidth, MaxHeight float32

	HasMaxWidth, HasMaxHeight bool

	// Arrow is the arrow position, or nil if there is no arrow.
	Arrow *middleware.ArrowData

	// Bridge is the hover bridge, or nil if it is not enabled.
	Bridge *bridge.Quad

	// Data is the raw output of every stage.
	Data middleware.Data
}

// Pos returns the panel position as a vector.
func (r *Result) Pos() math32.Vector2 {
	return math32.Vec2(r.X, r.Y)
}

// Engine runs positioning passes against a [Platform].
type Engine struct {

	// Platform answers layout queries.
	Platform Platform

	tracer trace.Tracer
}

// NewEngine returns a new [Engine] for the given platform.
func NewEngine(pf Platform) *Engine {
	return &Engine{Platform: pf, tracer: otel.Tracer(tracerName)}
}

// Compute runs a pass positioning the panel against the anchor.
// The anchor and panel rects are read once at the start of the pass,
// so that repeated passes over unchanged geometry give identical results.
// It returns [ErrNoAnchor] if the anchor is nil or disconnected, and
// [ErrDetached] if an element needed by a layout query is detached.
func (e *Engine) Compute(ctx context.Context, ref, panel anchor.Boundable, opts Options) (*Result, error) {
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	_, span := e.tracer.Start(ctx, "popup.compute", trace.WithAttributes(
		attribute.String("popup.placement", opts.Placement.String()),
		attribute.String("popup.strategy", opts.Strategy.String()),
		attribute.Int("popup.middleware", len(opts.Middleware)),
	))
	defer span.End()

	res, err := e.compute(ref, panel, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("popup.resolved_placement", res.Placement.String()))
	return res, nil
}

func (e *Engine) compute(ref, panel anchor.Boundable, opts Options) (*Result, error) {
	if !anchor.IsConnected(ref) {
		return nil, ErrNoAnchor
	}
	if !anchor.IsConnected(panel) {
		return nil, fmt.Errorf("panel: %w", ErrDetached)
	}
	if e.Platform == nil {
		return nil, fmt.Errorf("position: engine has no platform")
	}
	floating := anchor.ElementOf(panel)
	st := &middleware.State{
		InitialPlacement: opts.Placement,
		Rects: middleware.Rects{
			Reference: ref.BoundingRect(),
			Floating:  panel.BoundingRect(),
		},
		Floating: floating,
		Platform: e.Platform,
		Data:     middleware.Data{},
	}
	if err := middleware.Run(st, opts.Middleware); err != nil {
		return nil, err
	}

	var origin math32.Vector2
	if op := e.Platform.CoordinateSpace(opts.Strategy).OffsetParent(floating); op != nil {
		if !anchor.IsConnected(op) {
			return nil, fmt.Errorf("offset parent: %w", ErrDetached)
		}
		origin = op.BoundingRect().Min
	}

	res := &Result{
		X:          st.X - origin.X,
		Y:          st.Y - origin.Y,
		Rect:       st.FloatingRect(),
		AnchorRect: st.Rects.Reference,
		Placement:  st.Placement,
		Strategy:   opts.Strategy,
		Arrow:      st.Data.Arrow(),
		Data:       st.Data,
	}
	if ss := st.Data.SizeSync(); ss != nil {
		res.MinWidth, res.MinHeight = ss.MinWidth, ss.MinHeight
	}
	if as := st.Data.AutoSize(); as != nil {
		res.MaxWidth, res.HasMaxWidth = as.AvailableWidth, as.Width
		res.MaxHeight, res.HasMaxHeight = as.AvailableHeight, as.Height
	}
	if opts.HoverBridge {
		q := bridge.Compute(res.AnchorRect, res.Rect, res.Placement.Side())
		res.Bridge = &q
	}
	return res, nil
}
