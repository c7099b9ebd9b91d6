// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package popup

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/popup/math32"
	"cogentcore.org/popup/middleware"
	"cogentcore.org/popup/placement"
	"cogentcore.org/popup/position"
	"cogentcore.org/popup/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, placement.Top, cfg.Placement)
	assert.Equal(t, position.Fixed, cfg.Strategy)
	assert.Equal(t, middleware.ArrowAnchor, cfg.ArrowPlacement)
	assert.Equal(t, float32(10), cfg.ArrowPadding)
	assert.Equal(t, middleware.BestFit, cfg.FlipFallbackStrategy)

	mws := cfg.Middleware(nil)
	require.Len(t, mws, 1)
	assert.Equal(t, middleware.OffsetName, mws[0].Name())
}

func TestMiddlewareOrder(t *testing.T) {
	root := tree.NewRoot(800, 600)
	root.AddChild(tree.NewBox("frame", math32.B2XYWH(0, 0, 400, 400)))
	cfg := DefaultConfig()
	cfg.Arrow = true
	cfg.AutoSize = middleware.AutoSizeVertical
	cfg.Shift = true
	cfg.Flip = true
	cfg.FlipBoundary = []string{"frame", "missing"}
	cfg.Sync = middleware.SyncBoth

	mws := cfg.Middleware(root)
	names := make([]string, len(mws))
	for i, mw := range mws {
		names[i] = mw.Name()
	}
	assert.Equal(t, []string{
		middleware.OffsetName,
		middleware.SizeSyncName,
		middleware.FlipName,
		middleware.ShiftName,
		middleware.AutoSizeName,
		middleware.ArrowName,
	}, names)

	flip := mws[2].(*middleware.Flip)
	require.Len(t, flip.Boundary, 1)
	assert.Equal(t, root.Find("frame"), flip.Boundary[0])
	assert.Empty(t, mws[3].(*middleware.Shift).Boundary)
}

func TestClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FlipBoundary = []string{"a", "b"}
	cfg.FlipFallbackPlacements = placement.Placements{placement.Bottom, placement.Left}

	cp := cfg.Clone()
	assert.Equal(t, cfg, cp)
	assert.Nil(t, cp.ShiftBoundary)
	assert.Nil(t, cp.AutoSizeBoundary)
	cp.FlipBoundary[0] = "z"
	cp.FlipFallbackPlacements[0] = placement.Right
	assert.Equal(t, "a", cfg.FlipBoundary[0])
	assert.Equal(t, placement.Bottom, cfg.FlipFallbackPlacements[0])

	dc := DefaultConfig()
	assert.Equal(t, dc, dc.Clone())

	cfg.ShiftBoundary = []string{}
	cp = cfg.Clone()
	assert.NotNil(t, cp.ShiftBoundary)
	assert.Empty(t, cp.ShiftBoundary)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(`placement: bottom-start
distance: 8
flip: true
flipFallbackPlacements: top right
flipFallbackStrategy: initial
sync: width
arrow: true
arrowPlacement: start
`), 0o666))
	cfg, err := LoadConfig(yml)
	require.NoError(t, err)
	assert.Equal(t, placement.BottomStart, cfg.Placement)
	assert.Equal(t, float32(8), cfg.Distance)
	assert.True(t, cfg.Flip)
	assert.Equal(t, placement.Placements{placement.Top, placement.Right}, cfg.FlipFallbackPlacements)
	assert.Equal(t, middleware.Initial, cfg.FlipFallbackStrategy)
	assert.Equal(t, middleware.SyncWidth, cfg.Sync)
	assert.Equal(t, middleware.ArrowStart, cfg.ArrowPlacement)
	assert.Equal(t, float32(10), cfg.ArrowPadding, "default kept")

	tml := filepath.Join(dir, "tip.toml")
	require.NoError(t, os.WriteFile(tml, []byte(`placement = "left-end"
strategy = "absolute"
autoSize = "both"
arrowPadding = 4.0
`), 0o666))
	cfg, err = LoadConfig(tml)
	require.NoError(t, err)
	assert.Equal(t, placement.LeftEnd, cfg.Placement)
	assert.Equal(t, position.Absolute, cfg.Strategy)
	assert.Equal(t, middleware.AutoSizeBoth, cfg.AutoSize)
	assert.Equal(t, float32(4), cfg.ArrowPadding)

	// unknown placements fall back to the current value
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"placement": "upward", "hoverBridge": true}`), 0o666))
	cfg, err = LoadConfig(bad)
	require.NoError(t, err)
	assert.Equal(t, placement.Top, cfg.Placement)
	assert.True(t, cfg.HoverBridge)

	_, err = LoadConfig(filepath.Join(dir, "menu.ini"))
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
