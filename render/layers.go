// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/zplane"
)

// seamAlpha is the opacity of the thin stroke drawn over each wedge edge.
const seamAlpha = 0.8

// seamWidth is the width of that stroke in pixels.
const seamWidth = 0.5

// layerKey identifies the content of a ring layer.
type layerKey struct {
	generation    uint64
	width, height int
}

// ringLayer is an offscreen transparent canvas holding every stamped ring.
type ringLayer struct {
	dc    *gg.Context
	img   *gg.ImageBuf
	key   layerKey
	valid bool
}

// update rebuilds the layer if the store or canvas size changed since the
// last build. It reports whether a rebuild happened.
func (l *ringLayer) update(store *zplane.RingStore, b zplane.RingBuilder, width, height int) bool {
	key := layerKey{generation: store.Generation(), width: width, height: height}
	if l.valid && l.key == key {
		return false
	}

	if l.dc == nil {
		l.dc = gg.NewContext(width, height)
	} else if err := l.dc.Resize(width, height); err != nil {
		logger().Warn("ring layer resize failed", "width", width, "height", height, "err", err)
		l.valid = false
		return false
	}
	l.dc.Clear()

	for _, rec := range store.Records() {
		drawWedges(l.dc, b.InputRing(rec.Input))
		drawWedges(l.dc, b.OutputRing(rec.Output, rec.Samples))
	}
	l.img = gg.ImageBufFromImage(l.dc.Image())
	l.key = key
	l.valid = true

	logger().Debug("ring layer rebuilt", "rings", store.Len(), "generation", key.generation)
	return true
}

// drawOnto blits the layer onto dc.
func (l *ringLayer) drawOnto(dc *gg.Context) {
	if !l.valid || l.img == nil {
		return
	}
	dc.DrawImage(l.img, 0, 0)
}

// drawWedges fills every wedge and strokes its outline in the same color at
// seamAlpha, so neighbouring wedges meet without hairline gaps.
func drawWedges(dc *gg.Context, wedges []zplane.Wedge) {
	dc.SetLineWidth(seamWidth)
	for _, w := range wedges {
		q := w.Quad
		dc.MoveTo(q[0].X, q[0].Y)
		dc.LineTo(q[1].X, q[1].Y)
		dc.LineTo(q[2].X, q[2].Y)
		dc.LineTo(q[3].X, q[3].Y)
		dc.ClosePath()

		c := w.Color
		dc.SetRGBA(c.R, c.G, c.B, 1)
		_ = dc.FillPreserve()
		dc.SetRGBA(c.R, c.G, c.B, seamAlpha)
		_ = dc.Stroke()
	}
}
