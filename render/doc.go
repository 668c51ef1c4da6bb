// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a zplane.Session onto a gg.Context.
//
// A frame is painted in a fixed order:
//
//  1. black background
//  2. axes and grid ticks with numeric labels
//  3. the ring layer (derivative mode only)
//  4. input and output trails
//  5. pointer and image markers
//  6. the HUD: readout, mode, last stamp summary and the formula caption
//
// # Ring Layer
//
// Derivative rings are expensive: every stamp contributes two rings of
// ring_angular_segments × oversample filled and stroked wedges. They are
// painted once into an offscreen transparent layer, keyed on the RingStore
// generation and the canvas size, and blitted on every other frame.
// Stats reports how often the layer was rebuilt.
//
// # Text
//
// Tick labels and the HUD use Go Regular from golang.org/x/image. With the
// zh language the renderer looks for a CJK font (Options.FontPath first,
// then a list of common system paths), combines it with Go Regular as a
// fallback face and switches gg/text to the go-text shaper. When no CJK font
// is found it logs a warning and prints the HUD in English.
//
// # Usage
//
//	r := render.New(render.OptionsFor(session.Config()))
//	dc := gg.NewContext(w, h)
//	r.Render(dc, session)
//	_ = dc.SavePNG("frame.png")
//
// Renderer is NOT safe for concurrent use; it belongs to the goroutine that
// owns the Session.
package render
