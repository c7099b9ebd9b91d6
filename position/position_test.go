// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package position

import (
	"context"
	"testing"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/middleware"
	"cogentcore.org/popup/placement"
	"cogentcore.org/popup/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClippingRect(t *testing.T) {
	root := tree.NewRoot(800, 600)
	outer := root.AddChild(tree.NewBox("outer", math32.B2XYWH(-50, 100, 500, 400)))
	outer.Clip = true
	inner := outer.AddChild(tree.NewBox("inner", math32.B2XYWH(100, 50, 200, 300)))
	inner.Clip = true
	panel := inner.AddChild(tree.NewBox("panel", math32.B2XYWH(0, 0, 10, 10)))
	other := root.AddChild(tree.NewBox("other", math32.B2XYWH(700, 500, 300, 300)))

	pf := NewTreePlatform(root)
	r, err := pf.ClippingRect(panel, nil)
	require.NoError(t, err)
	assert.Equal(t, math32.B2(100, 100, 300, 350), r)

	r, err = pf.ClippingRect(panel, []anchor.Element{other})
	require.NoError(t, err)
	assert.Equal(t, math32.B2(700, 500, 800, 600), r)

	r, err = pf.ClippingRect(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 800, 600), r)

	root.RemoveChild(other)
	_, err = pf.ClippingRect(panel, []anchor.Element{other})
	assert.ErrorIs(t, err, ErrDetached)

	root.RemoveChild(outer)
	_, err = pf.ClippingRect(panel, nil)
	assert.ErrorIs(t, err, ErrDetached)
}

func TestCoordinateSpace(t *testing.T) {
	root := tree.NewRoot(800, 600)
	pos := root.AddChild(tree.NewBox("pos", math32.B2XYWH(10, 20, 300, 300)))
	pos.Positioned = true
	mid := pos.AddChild(tree.NewBox("mid", math32.B2XYWH(30, 40, 100, 100)))
	panel := mid.AddChild(tree.NewBox("panel", math32.B2XYWH(0, 0, 10, 10)))

	pf := NewTreePlatform(root)
	assert.Nil(t, pf.CoordinateSpace(Fixed).OffsetParent(panel))
	assert.Equal(t, pos, pf.CoordinateSpace(Absolute).OffsetParent(panel))
	assert.Nil(t, pf.CoordinateSpace(Absolute).OffsetParent(root.Box))

	pf.AbsoluteSpace = ViewportSpace{}
	assert.Nil(t, pf.CoordinateSpace(Absolute).OffsetParent(panel))

	assert.Equal(t, math32.B2(0, 0, 800, 600), pf.Viewport())
	assert.True(t, (&TreePlatform{}).Viewport().ContainsBox(math32.B2(-1e9, -1e9, 1e9, 1e9)))
}

func TestCompute(t *testing.T) {
	root := tree.NewRoot(800, 600)
	button := root.AddChild(tree.NewBox("button", math32.B2XYWH(100, 5, 50, 20)))
	panel := root.AddChild(tree.NewBox("panel", math32.B2XYWH(0, 0, 120, 40)))
	e := NewEngine(NewTreePlatform(root))
	ctx := context.Background()

	opts := Options{
		Placement: placement.Top,
		Middleware: []middleware.Middleware{
			&middleware.Offset{Distance: 4},
			&middleware.SizeSync{Sync: middleware.SyncHeight},
			&middleware.Flip{},
			&middleware.Shift{},
			&middleware.AutoSize{Mode: middleware.AutoSizeHorizontal},
			&middleware.Arrow{Padding: 10},
		},
		HoverBridge: true,
	}
	res, err := e.Compute(ctx, button, panel, opts)
	require.NoError(t, err)
	assert.Equal(t, placement.Bottom, res.Placement)
	assert.Equal(t, math32.Vec2(65, 29), res.Pos())
	assert.Equal(t, math32.B2XYWH(65, 29, 120, 40), res.Rect)
	assert.Equal(t, button.BoundingRect(), res.AnchorRect)
	assert.Equal(t, float32(20), res.MinHeight)
	assert.True(t, res.HasMaxWidth)
	assert.False(t, res.HasMaxHeight)
	assert.Equal(t, float32(800), res.MaxWidth)
	require.NotNil(t, res.Arrow)
	assert.Equal(t, float32(60), res.Arrow.Offset)
	require.NotNil(t, res.Bridge)
	assert.Equal(t, math32.Vec2(100, 25), res.Bridge.TopLeft)
	assert.Equal(t, math32.Vec2(185, 29), res.Bridge.BottomRight)
	assert.NotNil(t, res.Data.Flip())

	again, err := e.Compute(ctx, button, panel, opts)
	require.NoError(t, err)
	assert.Equal(t, res, again)

	// without middleware the placement is used as is
	res, err = e.Compute(ctx, button, panel, Options{Placement: placement.Top})
	require.NoError(t, err)
	assert.Equal(t, placement.Top, res.Placement)
	assert.Equal(t, math32.Vec2(65, -35), res.Pos())
	assert.Nil(t, res.Arrow)
	assert.Nil(t, res.Bridge)
}

func TestComputeVirtual(t *testing.T) {
	root := tree.NewRoot(800, 600)
	panel := root.AddChild(tree.NewBox("panel", math32.B2XYWH(0, 0, 100, 50)))
	cursor := &anchor.Virtual{Rect: func() math32.Box2 { return math32.B2XYWH(400, 300, 0, 0) }}
	res, err := NewEngine(NewTreePlatform(root)).Compute(context.Background(), cursor, panel, Options{Placement: placement.RightStart})
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(400, 300), res.Pos())
}

func TestComputeErrors(t *testing.T) {
	root := tree.NewRoot(800, 600)
	button := root.AddChild(tree.NewBox("button", math32.B2XYWH(100, 100, 50, 20)))
	panel := root.AddChild(tree.NewBox("panel", math32.B2XYWH(0, 0, 120, 40)))
	e := NewEngine(NewTreePlatform(root))
	ctx := context.Background()
	opts := Options{Middleware: []middleware.Middleware{&middleware.Flip{}}}

	_, err := e.Compute(ctx, nil, panel, opts)
	assert.ErrorIs(t, err, ErrNoAnchor)

	root.RemoveChild(panel)
	_, err = e.Compute(ctx, button, panel, opts)
	assert.ErrorIs(t, err, ErrDetached)

	root.RemoveChild(button)
	_, err = e.Compute(ctx, button, panel, opts)
	assert.ErrorIs(t, err, ErrNoAnchor)

	_, err = (&Engine{}).Compute(ctx, root.Box, root.Box, opts)
	assert.Error(t, err)
}
