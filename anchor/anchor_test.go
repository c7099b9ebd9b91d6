// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor_test

import (
	"testing"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/tree"
	"github.com/stretchr/testify/assert"
)

type rectOnly struct {
	rect math32.Box2
}

func (r rectOnly) BoundingRect() math32.Box2 { return r.rect }

func TestResolve(t *testing.T) {
	root := tree.NewRoot(800, 600)
	button := root.AddChild(tree.NewBox("button", math32.B2XYWH(100, 100, 50, 20)))
	virt := rectOnly{math32.B2XYWH(1, 2, 3, 4)}

	assert.Equal(t, button, anchor.Resolve(button, root))
	assert.Equal(t, button, anchor.Resolve("button", root))
	assert.Equal(t, virt, anchor.Resolve(virt, root))

	assert.Nil(t, anchor.Resolve(nil, root))
	assert.Nil(t, anchor.Resolve("", root))
	assert.Nil(t, anchor.Resolve("missing", root))
	assert.Nil(t, anchor.Resolve("button", nil))
	assert.Nil(t, anchor.Resolve(42, root))
	var nilBox *tree.Box
	assert.Nil(t, anchor.Resolve(nilBox, root))

	detached := tree.NewBox("detached", math32.B2XYWH(0, 0, 1, 1))
	assert.Nil(t, anchor.Resolve(detached, root))
}

func TestResolveSlot(t *testing.T) {
	root := tree.NewRoot(800, 600)
	target := root.AddChild(tree.NewBox("target", math32.B2XYWH(10, 10, 10, 10)))
	slot := root.AddChild(tree.NewBox("slot", math32.Box2{}))
	slot.Slot = true
	assert.Nil(t, anchor.Resolve(slot, root))

	slot.Assigned = []*tree.Box{target}
	assert.Equal(t, target, anchor.Resolve("slot", root))
}

func TestVirtual(t *testing.T) {
	root := tree.NewRoot(800, 600)
	ctx := root.AddChild(tree.NewBox("ctx", math32.B2XYWH(0, 0, 100, 100)))
	v := &anchor.Virtual{Rect: func() math32.Box2 { return math32.B2XYWH(5, 5, 0, 0) }, Context: ctx}

	assert.Equal(t, v, anchor.Resolve(v, root))
	assert.Equal(t, math32.B2XYWH(5, 5, 0, 0), v.BoundingRect())
	assert.Equal(t, ctx, anchor.ElementOf(v))
	assert.True(t, anchor.IsConnected(v))

	root.RemoveChild(ctx)
	assert.False(t, anchor.IsConnected(v))

	assert.True(t, anchor.IsConnected(rectOnly{}))
	assert.Nil(t, anchor.ElementOf(rectOnly{}))
	assert.False(t, anchor.IsConnected(nil))
	assert.Equal(t, math32.Box2{}, (&anchor.Virtual{}).BoundingRect())
}
