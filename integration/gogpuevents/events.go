// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuevents

import (
	"math"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/zplane"
)

// keyBindings maps gpucontext keys to session keys.
var keyBindings = map[gpucontext.Key]zplane.Key{
	gpucontext.KeyC:      zplane.KeyClear,
	gpucontext.KeyEscape: zplane.KeyClear,
	gpucontext.KeyP:      zplane.KeyToggleDerivative,
	gpucontext.KeyW:      zplane.KeyMoveUp,
	gpucontext.KeyS:      zplane.KeyMoveDown,
	gpucontext.KeyA:      zplane.KeyMoveLeft,
	gpucontext.KeyD:      zplane.KeyMoveRight,
}

// buttonBindings maps gpucontext mouse buttons to session buttons.
// Extra buttons are ignored.
var buttonBindings = map[gpucontext.MouseButton]zplane.Button{
	gpucontext.MouseButtonLeft:   zplane.ButtonLeft,
	gpucontext.MouseButtonRight:  zplane.ButtonRight,
	gpucontext.MouseButtonMiddle: zplane.ButtonMiddle,
}

// AttachEvents forwards src to s. Callbacks must arrive on the goroutine
// that ticks and renders s.
func AttachEvents(src gpucontext.EventSource, s *zplane.Session) {
	Attach(src, s.HandleEvent)
}

// Attach registers callbacks on src that translate pointer, key and resize
// input into zplane events passed to handle. Unbound keys and buttons are
// dropped.
func Attach(src gpucontext.EventSource, handle func(zplane.Event)) {
	src.OnMouseMove(func(x, y float64) {
		px, py := pixel(x, y)
		handle(zplane.PointerMoveEvent(px, py))
	})
	src.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		if b, ok := buttonBindings[button]; ok {
			px, py := pixel(x, y)
			handle(zplane.PointerDownEvent(px, py, b))
		}
	})
	src.OnMouseRelease(func(button gpucontext.MouseButton, x, y float64) {
		if b, ok := buttonBindings[button]; ok {
			px, py := pixel(x, y)
			handle(zplane.PointerUpEvent(px, py, b))
		}
	})
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if k, ok := keyBindings[key]; ok {
			handle(zplane.KeyDownEvent(k))
		}
	})
	src.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if k, ok := keyBindings[key]; ok {
			handle(zplane.KeyUpEvent(k))
		}
	})
	src.OnResize(func(width, height int) {
		handle(zplane.ResizeEvent(width, height))
	})
}

// pixel returns the pixel containing the logical position (x, y).
func pixel(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}

// Queue buffers events from any goroutine until the frame loop drains them.
type Queue struct {
	mu      sync.Mutex
	pending []zplane.Event
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends e. It is safe to call concurrently with Drain.
func (q *Queue) Push(e zplane.Event) {
	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain applies every queued event to s in arrival order and returns how
// many were applied. Events pushed while draining wait for the next call.
func (q *Queue) Drain(s *zplane.Session) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, e := range batch {
		s.HandleEvent(e)
	}
	return len(batch)
}
