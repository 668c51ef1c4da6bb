// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpuevents feeds a gpucontext.EventSource into a zplane Session.
//
// gogpu windows (gogpu.App.EventSource) deliver input through callbacks.
// AttachEvents forwards them straight to a Session; hosts that deliver
// callbacks on another goroutine attach a Queue instead and drain it once
// per frame:
//
//	q := gogpuevents.NewQueue()
//	gogpuevents.Attach(app.EventSource(), q.Push)
//
//	app.OnDraw(func(dc *gogpu.Context) {
//		q.Drain(session)
//		session.Tick()
//		// render
//	})
//
// Key bindings match integration/ebitencanvas: C and Escape clear, P toggles
// derivative mode, W A S D move the pointer while tracking.
package gogpuevents
