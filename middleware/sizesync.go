// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package middleware

import (
	"cogentcore.org/popup/math32"
)

// SizeSyncName is the [State.Data] key of the [SizeSync] stage.
const SizeSyncName = "sizeSync"

// Sync determines which dimensions of the panel are synced to the anchor.
type Sync int32 //enums:enum -trim-prefix Sync -transform lower

const (
	SyncNone Sync = iota
	SyncWidth
	SyncHeight
	SyncBoth
)

// Width returns whether the width is synced.
func (s Sync) Width() bool {
	return s == SyncWidth || s == SyncBoth
}

// Height returns whether the height is synced.
func (s Sync) Height() bool {
	return s == SyncHeight || s == SyncBoth
}

// SizeSync sets the minimum width and/or height of the panel to that of
// the anchor. The panel rect used by later stages grows accordingly,
// and the pass restarts when that changes the panel size.
type SizeSync struct {
	Sync Sync
}

// SizeSyncData are the minimum panel dimensions set by [SizeSync].
// A zero value means that dimension is not constrained.
type SizeSyncData struct {
	MinWidth, MinHeight float32
}

func (s *SizeSync) Name() string { return SizeSyncName }

func (s *SizeSync) Apply(st *State) (Return, error) {
	ref := st.Rects.Reference
	cur := st.Rects.Floating.Size()
	sz := cur
	d := &SizeSyncData{}
	if s.Sync.Width() {
		d.MinWidth = ref.Width()
		sz.X = math32.Max(sz.X, d.MinWidth)
	}
	if s.Sync.Height() {
		d.MinHeight = ref.Height()
		sz.Y = math32.Max(sz.Y, d.MinHeight)
	}
	if sz == cur {
		return Return{Data: d}, nil
	}
	st.Rects.Floating = st.Rects.Floating.WithSize(sz)
	return Return{Data: d, Reset: &Reset{Placement: st.Placement}}, nil
}
