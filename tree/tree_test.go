// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"cogentcore.org/popup/anchor"
	"cogentcore.org/popup/math32"
	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	root := NewRoot(800, 600)
	frame := root.AddChild(NewBox("frame", math32.B2XYWH(10, 10, 300, 300)))
	button := frame.AddChild(NewBox("button", math32.B2XYWH(20, 20, 50, 20)))

	assert.True(t, button.Connected())
	assert.Equal(t, frame, button.Parent())
	assert.Equal(t, root.Box, frame.Parent())
	assert.Nil(t, root.Parent())
	assert.Equal(t, button, root.ElementByID("button"))
	assert.Nil(t, root.ElementByID("missing"))
	assert.Equal(t, []anchor.Element{frame, root.Box}, anchor.Ancestors(button))

	root.RemoveChild(frame)
	assert.False(t, frame.Connected())
	assert.False(t, button.Connected())
	assert.Nil(t, root.Find("button"))
}

func TestNotify(t *testing.T) {
	root := NewRoot(800, 600)
	b := root.AddChild(NewBox("b", math32.B2XYWH(0, 0, 10, 10)))
	n := 0
	unsub := b.OnGeometryChange(func() { n++ })
	assert.Equal(t, 1, root.Listeners("b"))

	b.SetRect(math32.B2XYWH(0, 0, 10, 10))
	assert.Equal(t, 0, n, "unchanged rect")
	b.SetRect(math32.B2XYWH(5, 0, 10, 10))
	assert.Equal(t, 1, n)

	unsub()
	assert.Equal(t, 0, root.Listeners("b"))
	b.SetRect(math32.B2XYWH(6, 0, 10, 10))
	assert.Equal(t, 1, n)
}

func TestScroll(t *testing.T) {
	root := NewRoot(800, 600)
	scroller := root.AddChild(NewBox("scroller", math32.B2XYWH(0, 0, 200, 200)))
	scroller.Clip = true
	item := scroller.AddChild(NewBox("item", math32.B2XYWH(10, 100, 50, 20)))
	n := 0
	scroller.OnGeometryChange(func() { n++ })
	scroller.ScrollBy(0, 40)
	assert.Equal(t, math32.B2XYWH(10, 60, 50, 20), item.BoundingRect())
	assert.Equal(t, math32.B2XYWH(0, 0, 200, 200), scroller.BoundingRect())
	assert.Equal(t, 1, n)

	v := 0
	root.OnGeometryChange(func() { v++ })
	root.Resize(1024, 768)
	assert.Equal(t, 1, v)
	assert.Equal(t, math32.B2(0, 0, 1024, 768), root.BoundingRect())
}
