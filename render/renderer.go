// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"log/slog"

	"github.com/gogpu/gg"
	"golang.org/x/text/message"

	"github.com/gogpu/zplane"
)

// markerRadius is the radius of the pointer and image markers in pixels.
const markerRadius = 5

// trailWidth is the stroke width of trail polylines.
const trailWidth = 2

// Colors of the fixed scene elements.
var (
	Background  = gg.RGB(0, 0, 0)
	InputColor  = gg.RGB(1, 0, 0)
	OutputColor = gg.RGB(1, 1, 0)
)

// Options configures a Renderer.
type Options struct {
	// Language selects HUD strings: "en" or "zh".
	Language string

	// FontSize is the HUD font size in points. Tick labels use 3/4 of it.
	FontSize float64

	// FontPath optionally overrides Go Regular. With Language "zh" it names
	// the CJK font tried before the system paths.
	FontPath string

	// LabelImage is an optional PNG drawn in the top-right instead of the
	// formula caption.
	LabelImage string

	// NoText disables fonts entirely: no tick labels, HUD or caption.
	NoText bool
}

// DefaultFontSize is used when Options.FontSize is zero.
const DefaultFontSize = 16

// OptionsFor derives renderer options from a session configuration.
func OptionsFor(cfg zplane.Config) Options {
	return Options{
		Language:   cfg.Language,
		FontSize:   DefaultFontSize,
		LabelImage: cfg.LabelImage,
	}
}

// Stats counts renderer work.
type Stats struct {
	// Frames is the number of frames drawn. Zero-area frames are not counted.
	Frames uint64
	// RingRebuilds is the number of times the ring layer was repainted.
	RingRebuilds uint64
}

// Renderer paints Session frames. It owns the ring-layer cache.
type Renderer struct {
	opts    Options
	printer *message.Printer
	fonts   fontSet
	label   *gg.ImageBuf
	rings   ringLayer
	stats   Stats
}

// New creates a Renderer. Font and label image problems are logged and the
// renderer carries on without them.
func New(opts Options) *Renderer {
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultFontSize
	}
	r := &Renderer{opts: opts}
	if !opts.NoText {
		r.fonts = loadFonts(opts)
	}
	lang := opts.Language
	if lang == "zh" && !r.fonts.cjk {
		lang = "en"
	}
	r.printer = newPrinter(lang)

	if opts.LabelImage != "" {
		img, err := gg.LoadImage(opts.LabelImage)
		if err != nil {
			logger().Warn("label image not loaded, using caption", "path", opts.LabelImage, "err", err)
		} else {
			r.label = img
		}
	}
	return r
}

// Stats returns the work counters.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Render draws one frame of s onto dc. It does nothing while the viewport
// has zero area. dc is expected to match the viewport size.
func (r *Renderer) Render(dc *gg.Context, s *zplane.Session) {
	vp := s.Viewport()
	if !vp.Valid() {
		return
	}
	w, h := vp.Size()
	r.stats.Frames++

	dc.ClearWithColor(Background)
	r.drawAxes(dc, vp)

	if s.Mode() == zplane.ModeDerivative {
		if r.rings.update(s.Rings(), s.Builder(), w, h) {
			r.stats.RingRebuilds++
		}
		r.rings.drawOnto(dc)
	}

	r.drawTrails(dc, s.Trails())
	r.drawMarkers(dc, s)
	r.drawHUD(dc, s)
}

// drawTrails strokes one polyline per segment: input red, output yellow.
func (r *Renderer) drawTrails(dc *gg.Context, tp *zplane.TrailPair) {
	dc.SetLineWidth(trailWidth)
	drawTrail(dc, tp.Input(), InputColor)
	drawTrail(dc, tp.Output(), OutputColor)
}

func drawTrail(dc *gg.Context, t zplane.Trail, c gg.RGBA) {
	dc.SetColor(c)
	for seg := range t.Segments() {
		if len(seg) == 1 {
			dc.DrawCircle(float64(seg[0].X), float64(seg[0].Y), trailWidth/2)
			_ = dc.Fill()
			continue
		}
		dc.MoveTo(float64(seg[0].X), float64(seg[0].Y))
		for _, p := range seg[1:] {
			dc.LineTo(float64(p.X), float64(p.Y))
		}
		_ = dc.Stroke()
	}
}

// drawMarkers draws the pointer in red and its image in yellow.
func (r *Renderer) drawMarkers(dc *gg.Context, s *zplane.Session) {
	p, ok := s.Pointer()
	if !ok {
		return
	}
	dc.SetColor(InputColor)
	dc.DrawCircle(float64(p.X), float64(p.Y), markerRadius)
	_ = dc.Fill()

	_, fz, ok := s.Probe()
	if !ok {
		return
	}
	q, ok := s.Viewport().ScreenOf(fz)
	if !ok {
		return
	}
	dc.SetColor(OutputColor)
	dc.DrawCircle(float64(q.X), float64(q.Y), markerRadius)
	_ = dc.Fill()
}

func logger() *slog.Logger {
	return zplane.LoggerFor("render")
}
