// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/zplane"
	"github.com/gogpu/zplane/render"
)

// fakeDriver replays one frame of input at a time.
type fakeDriver struct {
	x, y     int
	pressed  map[ebiten.MouseButton]bool
	released map[ebiten.MouseButton]bool
	down     map[ebiten.Key]bool
	up       map[ebiten.Key]bool
	visible  []bool
}

func newFakeDriver() *fakeDriver {
	d := &fakeDriver{}
	d.reset()
	return d
}

// reset clears the edge-triggered state between frames.
func (d *fakeDriver) reset() {
	d.pressed = map[ebiten.MouseButton]bool{}
	d.released = map[ebiten.MouseButton]bool{}
	d.down = map[ebiten.Key]bool{}
	d.up = map[ebiten.Key]bool{}
}

func (d *fakeDriver) CursorPosition() (int, int) { return d.x, d.y }

func (d *fakeDriver) IsMouseButtonJustPressed(b ebiten.MouseButton) bool  { return d.pressed[b] }
func (d *fakeDriver) IsMouseButtonJustReleased(b ebiten.MouseButton) bool { return d.released[b] }
func (d *fakeDriver) IsKeyJustPressed(k ebiten.Key) bool                  { return d.down[k] }
func (d *fakeDriver) IsKeyJustReleased(k ebiten.Key) bool                 { return d.up[k] }
func (d *fakeDriver) SetCursorVisible(v bool)                             { d.visible = append(d.visible, v) }

func newTestGame(t *testing.T) (*Game, *fakeDriver) {
	t.Helper()
	s, err := zplane.NewSession(zplane.DefaultConfig(),
		zplane.WithFunction("identity"),
		zplane.WithScale(100),
		zplane.WithSize(400, 300))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	d := newFakeDriver()
	g, err := NewGame(s, render.New(render.Options{NoText: true}), d)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g, d
}

// frame runs one Update with the given input and clears edge state.
func frame(t *testing.T, g *Game, d *fakeDriver) {
	t.Helper()
	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	d.reset()
}

func TestGameTracing(t *testing.T) {
	g, d := newTestGame(t)

	d.x, d.y = 100, 100
	d.pressed[ebiten.MouseButtonLeft] = true
	frame(t, g, d)
	if got := g.session.Mode(); got != zplane.ModeTracking {
		t.Fatalf("Mode() = %v, want tracking", got)
	}

	d.x, d.y = 120, 100
	frame(t, g, d)
	frame(t, g, d) // no motion, no sample

	d.released[ebiten.MouseButtonLeft] = true
	frame(t, g, d)

	// The press and one drag step; the hover before it is not recorded.
	if got := g.session.Trails().Input().Points(); got != 2 {
		t.Errorf("input trail points = %d, want 2", got)
	}
	if len(d.visible) != 1 || d.visible[0] {
		t.Errorf("cursor visibility changes = %v, want [false]", d.visible)
	}
}

func TestGameKeys(t *testing.T) {
	g, d := newTestGame(t)

	d.x, d.y = 200, 150
	d.pressed[ebiten.MouseButtonLeft] = true
	frame(t, g, d)
	d.released[ebiten.MouseButtonLeft] = true
	frame(t, g, d)

	d.down[ebiten.KeyD] = true
	frame(t, g, d)
	frame(t, g, d)
	d.up[ebiten.KeyD] = true
	frame(t, g, d)

	step := g.session.Config().MoveSpeed
	p, ok := g.session.Pointer()
	if !ok || p != image.Pt(200+2*step, 150) {
		t.Errorf("Pointer() = %v, %v; want (%d,150)", p, ok, 200+2*step)
	}

	d.down[ebiten.KeyP] = true
	frame(t, g, d)
	if got := g.session.Mode(); got != zplane.ModeDerivative {
		t.Fatalf("Mode() = %v, want derivative", got)
	}
	if got := g.session.Trails().Len(); got != 0 {
		t.Errorf("trail after toggle = %d samples, want 0", got)
	}

	d.pressed[ebiten.MouseButtonLeft] = true
	frame(t, g, d)
	if got := g.session.Rings().Len(); got != 1 {
		t.Fatalf("rings = %d, want 1", got)
	}
	d.down[ebiten.KeyEscape] = true
	frame(t, g, d)
	if got := g.session.Rings().Len(); got != 0 {
		t.Errorf("rings after Escape = %d, want 0", got)
	}
}

func TestGameQuit(t *testing.T) {
	g, d := newTestGame(t)
	d.down[ebiten.KeyQ] = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestGameLayout(t *testing.T) {
	g, _ := newTestGame(t)

	if w, h := g.Layout(400, 300); w != 400 || h != 300 {
		t.Errorf("Layout() = %d×%d", w, h)
	}

	g.Layout(640, 480)
	if w, h := g.session.Viewport().Size(); w != 640 || h != 480 {
		t.Errorf("viewport = %d×%d, want 640×480", w, h)
	}
	if w, h := g.Canvas().Size(); w != 640 || h != 480 {
		t.Errorf("canvas = %d×%d, want 640×480", w, h)
	}

	w, h := g.Layout(0, 0)
	if w != 1 || h != 1 {
		t.Errorf("Layout(0, 0) = %d×%d, want 1×1", w, h)
	}
	if g.session.Viewport().Valid() {
		t.Error("viewport should be suspended")
	}
	if w, h := g.Canvas().Size(); w != 640 || h != 480 {
		t.Errorf("canvas = %d×%d, want unchanged 640×480", w, h)
	}
}
