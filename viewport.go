package zplane

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// maxScreenCoord bounds projected offsets so that origin plus offset fits in
// 32 bits. Below it ToScreen is exact up to truncation.
const maxScreenCoord = 1 << 30

// Viewport converts between screen pixels and complex-plane coordinates.
//
// The complex zero sits at Origin and one unit spans Scale pixels. The screen
// y-axis points down, the imaginary axis points up.
type Viewport struct {
	origin image.Point
	scale  float64
	width  int
	height int
}

// NewViewport creates a viewport with the given pixels-per-unit scale.
// The viewport stays invalid until Resize reports a non-empty canvas.
func NewViewport(scale float64) (*Viewport, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale=%v", ErrInvalidConfig, scale)
	}
	return &Viewport{scale: scale}, nil
}

// Resize re-derives the origin as the canvas center. It reports whether the
// new size is usable; a zero-area canvas leaves the viewport invalid.
func (v *Viewport) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		v.width, v.height = 0, 0
		return false
	}
	v.width, v.height = width, height
	v.origin = image.Pt(width/2, height/2)
	return true
}

// Valid reports whether the viewport has a non-empty canvas.
func (v *Viewport) Valid() bool {
	return v.width > 0 && v.height > 0
}

// Origin returns the screen position of the complex zero.
func (v *Viewport) Origin() image.Point {
	return v.origin
}

// Scale returns the number of pixels per unit.
func (v *Viewport) Scale() float64 {
	return v.scale
}

// Size returns the canvas dimensions.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Bounds returns the canvas rectangle in screen coordinates.
func (v *Viewport) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.width, v.height)
}

// ToComplex maps a screen point to the complex plane.
func (v *Viewport) ToComplex(p image.Point) complex128 {
	re := float64(p.X-v.origin.X) / v.scale
	im := -float64(p.Y-v.origin.Y) / v.scale
	return complex(re, im)
}

// ToScreen maps z to a pixel. The scaled offset is truncated toward zero
// before the origin is added. z must be finite; use ScreenOf otherwise.
func (v *Viewport) ToScreen(z complex128) image.Point {
	return image.Pt(
		truncCoord(real(z)*v.scale)+v.origin.X,
		truncCoord(-imag(z)*v.scale)+v.origin.Y,
	)
}

// ScreenOf is ToScreen for values that may be non-finite.
// It reports false instead of producing a meaningless pixel.
func (v *Viewport) ScreenOf(z complex128) (image.Point, bool) {
	if !IsFinite(z) {
		return image.Point{}, false
	}
	return v.ToScreen(z), true
}

// ToScreenF maps z to an unrounded screen position for drawing.
func (v *Viewport) ToScreenF(z complex128) gg.Point {
	m := gg.Translate(float64(v.origin.X), float64(v.origin.Y)).Multiply(gg.Scale(v.scale, -v.scale))
	return m.TransformPoint(gg.Pt(real(z), imag(z)))
}

func truncCoord(f float64) int {
	switch {
	case f > maxScreenCoord:
		return maxScreenCoord
	case f < -maxScreenCoord:
		return -maxScreenCoord
	}
	return int(f)
}
