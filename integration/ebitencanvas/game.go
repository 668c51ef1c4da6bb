// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/zplane"
	"github.com/gogpu/zplane/render"
)

// Game drives a Session from Ebitengine. It implements ebiten.Game.
type Game struct {
	session  *zplane.Session
	renderer *render.Renderer
	canvas   *Canvas
	driver   Driver

	cursor        image.Point
	hasCursor     bool
	cursorVisible bool
	width, height int
}

// NewGame creates a Game for s drawn by r. A nil driver polls Ebitengine.
func NewGame(s *zplane.Session, r *render.Renderer, d Driver) (*Game, error) {
	w, h := s.Viewport().Size()
	c, err := New(max(w, 1), max(h, 1))
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = ebitenDriver{}
	}
	return &Game{
		session:       s,
		renderer:      r,
		canvas:        c,
		driver:        d,
		cursorVisible: true,
		width:         w,
		height:        h,
	}, nil
}

// Canvas returns the canvas frames are drawn on.
func (g *Game) Canvas() *Canvas {
	return g.canvas
}

// Update polls input, feeds it to the session and advances one tick.
// It returns ebiten.Termination when the quit key is pressed.
func (g *Game) Update() error {
	if g.driver.IsKeyJustPressed(quitKey) {
		return ebiten.Termination
	}
	g.pollPointer()
	g.pollKeys()
	g.session.Tick()

	// The pointer marker replaces the system cursor while tracking.
	visible := g.session.Mode() != zplane.ModeTracking
	if visible != g.cursorVisible {
		g.driver.SetCursorVisible(visible)
		g.cursorVisible = visible
	}
	return nil
}

func (g *Game) pollPointer() {
	x, y := g.driver.CursorPosition()
	p := image.Pt(x, y)
	if !g.hasCursor || p != g.cursor {
		g.cursor, g.hasCursor = p, true
		g.session.HandleEvent(zplane.PointerMoveEvent(x, y))
	}
	for _, b := range buttonBindings {
		if g.driver.IsMouseButtonJustPressed(b.button) {
			g.session.HandleEvent(zplane.PointerDownEvent(x, y, b.to))
		}
		if g.driver.IsMouseButtonJustReleased(b.button) {
			g.session.HandleEvent(zplane.PointerUpEvent(x, y, b.to))
		}
	}
}

func (g *Game) pollKeys() {
	for _, b := range keyBindings {
		if g.driver.IsKeyJustPressed(b.key) {
			g.session.HandleEvent(zplane.KeyDownEvent(b.to))
		}
		if g.driver.IsKeyJustReleased(b.key) {
			g.session.HandleEvent(zplane.KeyUpEvent(b.to))
		}
	}
}

// Draw renders the current frame onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.session.Viewport().Valid() {
		return
	}
	_ = g.canvas.Draw(func(dc *gg.Context) {
		g.renderer.Render(dc, g.session)
	})
	if err := g.canvas.Present(screen); err != nil {
		logger().Warn("present frame", "err", err)
	}
}

// Layout tracks the window size. A zero-area window suspends the session;
// the canvas keeps its last non-zero size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.HandleEvent(zplane.ResizeEvent(outsideWidth, outsideHeight))
		if outsideWidth > 0 && outsideHeight > 0 {
			if err := g.canvas.Resize(outsideWidth, outsideHeight); err != nil {
				logger().Warn("canvas resize", "err", err)
			}
		}
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Close releases the canvas.
func (g *Game) Close() error {
	return g.canvas.Close()
}

// Run opens a resizable window sized from the session configuration and
// blocks until it is closed.
func Run(s *zplane.Session, r *render.Renderer, title string) error {
	cfg := s.Config()
	g, err := NewGame(s, r, nil)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TargetFPS)

	logger().Info("window opened", "function", s.Function().Label, "width", cfg.Width, "height", cfg.Height)
	return ebiten.RunGame(g)
}

func logger() *slog.Logger {
	return zplane.LoggerFor("ebitencanvas")
}
