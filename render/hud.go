// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/gogpu/zplane"
)

// HUD message keys. The English strings double as keys.
const (
	msgPosition  = "z = %s"
	msgImage     = "f(z) = %s"
	msgUndefined = "f(z) undefined"
	msgMode      = "mode: %s"
	msgRings     = "rings: %d"
	msgStretch   = "|f'| in [%.3f, %.3f]"
	msgSpread    = "arg spread %.3f rad"
	msgConformal = "conformal"
	msgDistorted = "not conformal"
	msgKeys      = "P derivative · C clear · WASD move"
	msgModeIdle  = "idle"
	msgModeTrack = "tracking"
	msgModeDeriv = "derivative"
)

// conformalTol is the relative tolerance of the HUD's conformal verdict.
const conformalTol = 1e-3

var translations = map[language.Tag]map[string]string{
	language.Chinese: {
		msgPosition:  "z = %s",
		msgImage:     "f(z) = %s",
		msgUndefined: "f(z) 无定义",
		msgMode:      "模式：%s",
		msgRings:     "圆环：%d",
		msgStretch:   "|f'| 范围 [%.3f, %.3f]",
		msgSpread:    "辐角偏差 %.3f 弧度",
		msgConformal: "保角",
		msgDistorted: "非保角",
		msgKeys:      "P 导数 · C 清除 · WASD 移动",
		msgModeIdle:  "空闲",
		msgModeTrack: "追踪",
		msgModeDeriv: "导数",
	},
}

var modeKeys = map[zplane.Mode]string{
	zplane.ModeIdle:       msgModeIdle,
	zplane.ModeTracking:   msgModeTrack,
	zplane.ModeDerivative: msgModeDeriv,
}

// newCatalog builds the HUD message catalog. English entries map every key
// to itself so that lookups never fall through to the raw key silently.
func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range []string{
		msgPosition, msgImage, msgUndefined, msgMode, msgRings, msgStretch,
		msgSpread, msgConformal, msgDistorted, msgKeys,
		msgModeIdle, msgModeTrack, msgModeDeriv,
	} {
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, err
		}
	}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// newPrinter returns a printer for lang ("en" or "zh").
func newPrinter(lang string) *message.Printer {
	tag := language.English
	if lang == "zh" {
		tag = language.Chinese
	}
	cat, err := newCatalog()
	if err != nil {
		logger().Warn("hud catalog", "err", err)
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(tag, message.Catalog(cat))
}

// hudLines returns the localized HUD text for the current session state.
func hudLines(p *message.Printer, s *zplane.Session) []string {
	var lines []string
	if z, fz, ok := s.Probe(); ok {
		lines = append(lines, p.Sprintf(msgPosition, formatComplex(z)), p.Sprintf(msgImage, formatComplex(fz)))
	} else if _, has := s.Pointer(); has && s.Viewport().Valid() {
		lines = append(lines, p.Sprintf(msgPosition, formatComplex(z)), p.Sprintf(msgUndefined))
	}
	lines = append(lines, p.Sprintf(msgMode, p.Sprintf(modeKeys[s.Mode()])))

	if s.Mode() == zplane.ModeDerivative {
		lines = append(lines, p.Sprintf(msgRings, s.Rings().Len()))
		if rec, ok := s.Rings().Last(); ok {
			sum := rec.Summary()
			if sum.Count > 0 {
				verdict := msgDistorted
				if sum.Conformal(conformalTol) {
					verdict = msgConformal
				}
				lines = append(lines,
					p.Sprintf(msgStretch, sum.MinAbs, sum.MaxAbs),
					p.Sprintf(msgSpread, sum.PhaseSpread),
					p.Sprintf(verdict))
			}
		}
	}
	return append(lines, p.Sprintf(msgKeys))
}

// formatComplex prints z as "a + bi" with three decimals.
func formatComplex(z complex128) string {
	re, im := real(z), imag(z)
	sign := '+'
	if math.Signbit(im) {
		sign = '-'
		im = -im
	}
	return fmt.Sprintf("%.3f %c %.3fi", re, sign, im)
}

// drawHUD paints the readout in the top-left and the formula caption (or
// label image) in the top-right.
func (r *Renderer) drawHUD(dc *gg.Context, s *zplane.Session) {
	const margin = 12
	w, _ := s.Viewport().Size()

	if r.fonts.hud != nil {
		dc.SetFont(r.fonts.hud)
		_, lh := dc.MeasureString("Mg")
		lh = math.Max(lh, r.opts.FontSize) * 1.25
		dc.SetRGB(1, 1, 1)
		y := margin + lh
		for _, line := range hudLines(r.printer, s) {
			dc.DrawString(line, margin, y)
			y += lh
		}
	}

	if r.label != nil {
		dc.DrawImage(r.label, float64(w-r.label.Width()-margin), margin)
		return
	}
	if r.fonts.hud != nil {
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(s.Function().Label, float64(w-margin), margin, 1, 1)
	}
}
