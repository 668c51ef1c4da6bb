// Package zplane provides the engine of an interactive complex-function
// visualizer.
//
// # Overview
//
// zplane maps points of the complex plane through a function f: ℂ→ℂ and keeps
// the input path and its image in sync. In derivative mode it stamps rings of
// directions around a point and shows how the local linearization of f
// stretches and rotates them.
//
// # Quick Start
//
//	import "github.com/gogpu/zplane"
//
//	cfg := zplane.DefaultConfig()
//	cfg.Function = "square"
//
//	s, err := zplane.NewSession(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s.HandleEvent(zplane.ResizeEvent(1600, 1200))
//	s.HandleEvent(zplane.KeyDownEvent(zplane.KeyToggleDerivative))
//	s.HandleEvent(zplane.PointerDownEvent(900, 500, zplane.ButtonLeft))
//
// The render package draws a Session with gg, and integration/ebitencanvas
// runs it in a window. integration/gogpuevents feeds a gogpu window's
// event source into a Session.
//
// # Architecture
//
// The package is organized into:
//   - Viewport: screen pixels <-> complex coordinates
//   - Evaluator: the function under study, plus a registry of named functions
//   - Sampler: forward-difference directional derivatives around a point
//   - TrailPair: paired input/output polylines with segment breaks
//   - RingStore and RingBuilder: stamped derivative rings and their wedges
//   - Session: mode state machine fed by Events
//
// # Coordinate System
//
// Screen coordinates have the origin at the top-left with y increasing down.
// The complex plane is centered on the canvas with the imaginary axis pointing
// up, so ToComplex negates y. Ring angles use the math orientation: 0 is to
// the right and angles increase counter-clockwise on screen.
//
// # Concurrency
//
// A Session is driven from a single loop that drains events, ticks and then
// renders. It is not safe for concurrent use.
package zplane

// Version is the current version of the module.
const Version = "0.3.0"
