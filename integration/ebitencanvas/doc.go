// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitencanvas shows a zplane session in an Ebitengine window.
//
// The data flow is:
//
//	Session -> render.Renderer -> gg.Context (CPU) -> ebiten.Image -> Window
//
// # Architecture
//
// Canvas wraps a gg.Context and uploads its pixmap to an ebiten.Image when
// the content changed. Game implements ebiten.Game: Update polls the
// mouse and keyboard, turns them into zplane events and ticks the session;
// Draw renders the frame and presents it; Layout follows the window size.
//
// # Usage
//
//	s, _ := zplane.NewSession(cfg)
//	r := render.New(render.OptionsFor(cfg))
//	if err := ebitencanvas.Run(s, r, "zplane"); err != nil {
//		log.Fatal(err)
//	}
//
// # Key bindings
//
//	Left mouse   trace (idle/tracking) or stamp a ring (derivative)
//	C, Escape    clear trails and rings
//	P            toggle derivative mode
//	W A S D      move the pointer while tracking
//	Q            quit
//
// # Thread Safety
//
// Canvas and Game are NOT safe for concurrent use. Ebitengine calls Update,
// Draw and Layout from a single goroutine.
package ebitencanvas
