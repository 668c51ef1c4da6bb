// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// cjkFontPaths are common locations of a font covering CJK ideographs.
var cjkFontPaths = []string{
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/google-noto-cjk/NotoSansCJK-Regular.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	`C:\Windows\Fonts\msyh.ttc`,
	`C:\Windows\Fonts\simhei.ttf`,
}

// cjkRanges are the code points routed to the CJK face.
var cjkRanges = []text.UnicodeRange{
	text.RangeCJKUnified,
	{Start: 0x3000, End: 0x303F}, // CJK symbols and punctuation
	{Start: 0xFF00, End: 0xFFEF}, // halfwidth and fullwidth forms
}

// fontSet holds the HUD face and the smaller tick-label face.
type fontSet struct {
	hud, tick text.Face
	cjk       bool
}

// loadFonts builds the faces for opts. It never fails: problems are logged
// and the renderer falls back to Go Regular, or to no text at all.
func loadFonts(opts Options) fontSet {
	base, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		logger().Warn("default font unavailable, text disabled", "err", err)
		return fontSet{}
	}
	if opts.FontPath != "" && opts.Language != "zh" {
		if src, err := text.NewFontSourceFromFile(opts.FontPath); err == nil {
			base = src
		} else {
			logger().Warn("font not loaded, using Go Regular", "path", opts.FontPath, "err", err)
		}
	}
	fs := fontSet{hud: base.Face(opts.FontSize), tick: base.Face(opts.FontSize * 0.75)}
	if opts.Language != "zh" {
		return fs
	}

	cjk := findCJKFont(opts.FontPath)
	if cjk == nil {
		logger().Warn("no CJK font found, HUD falls back to English")
		return fs
	}
	hud, err := text.NewMultiFace(fs.hud, text.NewFilteredFace(cjk.Face(opts.FontSize), cjkRanges...))
	if err != nil {
		logger().Warn("CJK fallback face", "err", err)
		return fs
	}
	text.SetShaper(text.NewGoTextShaper())
	fs.hud, fs.cjk = hud, true
	return fs
}

// findCJKFont returns the first loadable font among preferred and the
// well-known system paths.
func findCJKFont(preferred string) *text.FontSource {
	paths := cjkFontPaths
	if preferred != "" {
		paths = append([]string{preferred}, paths...)
	}
	for _, p := range paths {
		src, err := text.NewFontSourceFromFile(p)
		if err != nil {
			continue
		}
		logger().Info("CJK font loaded", "path", p)
		return src
	}
	return nil
}
