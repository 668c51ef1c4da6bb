// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/zplane"
)

const (
	axisWidth = 2
	tickHalf  = 5

	// minTickSpacing is the smallest pixel distance between labelled ticks.
	minTickSpacing = 40
)

// tickSteps are the candidate grid strides in complex units.
var tickSteps = [...]float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}

// tickStep returns the grid stride for scale pixels per unit: one unit
// when that leaves room for labels, otherwise the first wider stride.
func tickStep(scale float64) float64 {
	for _, s := range tickSteps {
		if s*scale >= minTickSpacing {
			return s
		}
	}
	return tickSteps[len(tickSteps)-1]
}

// drawAxes paints the real and imaginary axes in red, white ticks every grid
// unit and their numeric labels. The origin is not labelled.
func (r *Renderer) drawAxes(dc *gg.Context, vp *zplane.Viewport) {
	w, h := vp.Size()
	o := vp.Origin()
	ox, oy := float64(o.X), float64(o.Y)
	scale := vp.Scale()

	dc.SetRGB(1, 0, 0)
	dc.SetLineWidth(axisWidth)
	dc.DrawLine(0, oy, float64(w), oy)
	_ = dc.Stroke()
	dc.DrawLine(ox, 0, ox, float64(h))
	_ = dc.Stroke()

	step := tickStep(scale)
	px := step * scale
	if r.fonts.tick != nil {
		dc.SetFont(r.fonts.tick)
	}
	dc.SetLineWidth(1)

	// Real axis.
	for k := math.Ceil(-ox / px); k <= math.Floor((float64(w)-ox)/px); k++ {
		if k == 0 {
			continue
		}
		x := ox + k*px
		dc.SetRGB(1, 1, 1)
		dc.DrawLine(x, oy-tickHalf, x, oy+tickHalf)
		_ = dc.Stroke()
		if r.fonts.tick != nil {
			dc.DrawStringAnchored(tickLabel(k*step), x, oy+tickHalf+2, 0.5, 1)
		}
	}

	// Imaginary axis; screen y grows downwards.
	for k := math.Ceil((oy - float64(h)) / px); k <= math.Floor(oy/px); k++ {
		if k == 0 {
			continue
		}
		y := oy - k*px
		dc.SetRGB(1, 1, 1)
		dc.DrawLine(ox-tickHalf, y, ox+tickHalf, y)
		_ = dc.Stroke()
		if r.fonts.tick != nil {
			dc.DrawStringAnchored(tickLabel(k*step), ox+tickHalf+4, y, 0, 0.5)
		}
	}
}

func tickLabel(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
