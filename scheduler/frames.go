// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheduler

import (
	"slices"
	"sync"
	"time"
)

// FrameRequester schedules a callback for the next frame.
type FrameRequester interface {

	// RequestFrame schedules fn to run once on the next frame and
	// returns a function that cancels it if it has not yet run.
	RequestFrame(fn func()) (cancel func())
}

// FrameLoop is a [FrameRequester] whose frames are driven by the host:
// callbacks are queued until the next call to [FrameLoop.RunFrame].
// It is safe for concurrent use.
type FrameLoop struct {
	mu     sync.Mutex
	nextID int
	queue  []frame
}

type frame struct {
	id int
	fn func()
}

// NewFrameLoop returns a new empty [FrameLoop].
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

func (fl *FrameLoop) RequestFrame(fn func()) func() {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	id := fl.nextID
	fl.nextID++
	fl.queue = append(fl.queue, frame{id, fn})
	return func() {
		fl.mu.Lock()
		defer fl.mu.Unlock()
		fl.queue = slices.DeleteFunc(fl.queue, func(f frame) bool { return f.id == id })
	}
}

// RunFrame runs the callbacks queued before the call, in request order,
// and returns how many ran. Callbacks requested while the frame runs
// are deferred to the next frame.
func (fl *FrameLoop) RunFrame() int {
	fl.mu.Lock()
	q := fl.queue
	fl.queue = nil
	fl.mu.Unlock()
	for _, f := range q {
		f.fn()
	}
	return len(q)
}

// Pending returns the number of queued callbacks.
func (fl *FrameLoop) Pending() int {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return len(fl.queue)
}

// TimerFrames is a [FrameRequester] for hosts without a frame clock:
// each request fires after Interval on a timer goroutine, and is
// handed to Dispatch, which should run it on the host's event loop.
type TimerFrames struct {

	// Interval is the frame interval. It defaults to 16ms.
	Interval time.Duration

	// Dispatch runs a frame callback. If nil, the callback is run
	// directly on the timer goroutine.
	Dispatch func(fn func())
}

func (tf *TimerFrames) RequestFrame(fn func()) func() {
	iv := tf.Interval
	if iv <= 0 {
		iv = 16 * time.Millisecond
	}
	t := time.AfterFunc(iv, func() {
		if tf.Dispatch != nil {
			tf.Dispatch(fn)
			return
		}
		fn()
	})
	return func() { t.Stop() }
}
