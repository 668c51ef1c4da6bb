package zplane

import (
	"image"
	"math"
	"math/cmplx"
	"slices"

	"github.com/gogpu/gg"
)

// Wedge is one filled quadrilateral of a ring, vertices in drawing order:
// inner edge at the start angle, inner at the end angle, outer at the end
// angle, outer at the start angle.
type Wedge struct {
	Quad  [4]gg.Point
	Color gg.RGBA
}

// RingBuilder turns derivative samples into drawable ring wedges.
type RingBuilder struct {
	// Radius is the undeformed ring radius R in pixels.
	Radius float64
	// Width is the thickness of the ring band in pixels.
	Width float64
	// Segments is the number of sample directions the colors refer to.
	Segments int
	// Oversample multiplies Segments to get the number of rendered wedges.
	Oversample int
	// Colormap colors wedges by source angle; nil means HSV.
	Colormap Colormap
}

// renderSegments returns the number of wedges per ring.
func (b RingBuilder) renderSegments() int {
	return max(b.Segments, 1) * max(b.Oversample, 1)
}

func (b RingBuilder) colormap() Colormap {
	if b.Colormap == nil {
		return HSV
	}
	return b.Colormap
}

// InputRing builds the undeformed ring around center. It is always a full
// annulus regardless of how many directions were sampled.
func (b RingBuilder) InputRing(center image.Point) []Wedge {
	n := b.renderSegments()
	cmap := b.colormap()
	c := gg.Pt(float64(center.X), float64(center.Y))
	inner := max(0, b.Radius-b.Width/2)
	outer := b.Radius + b.Width/2

	wedges := make([]Wedge, n)
	for j := range n {
		a0 := 2 * math.Pi * float64(j) / float64(n)
		a1 := 2 * math.Pi * float64(j+1) / float64(n)
		src := j * max(b.Segments, 1) / n
		wedges[j] = Wedge{
			Quad: [4]gg.Point{
				polar(c, inner, a0),
				polar(c, inner, a1),
				polar(c, outer, a1),
				polar(c, outer, a0),
			},
			Color: cmap(float64(src) / float64(max(b.Segments, 1))),
		}
	}
	return wedges
}

// ringSample is a retained sample unpacked for interpolation.
type ringSample struct {
	angle float64 // source angle, unwrapped
	abs   float64 // |d|
	phase float64 // arg(d), unwrapped along the ring
	color float64 // source angle in [0, 2π) used for coloring
}

// OutputRing builds the deformed ring around center from samples.
//
// The direction at source angle θ lands at angle θ + arg(d) with radius R·|d|.
// Magnitude and phase are interpolated linearly between the retained samples
// bracketing each render angle, so omitted directions are bridged. Each wedge
// takes the color of the nearest preceding retained sample. With fewer than
// two samples there is nothing to interpolate and OutputRing returns nil.
func (b RingBuilder) OutputRing(center image.Point, samples []DerivativeSample) []Wedge {
	ext := b.extend(samples)
	if ext == nil {
		return nil
	}
	n := b.renderSegments()
	cmap := b.colormap()
	c := gg.Pt(float64(center.X), float64(center.Y))

	type vertex struct {
		inner, outer gg.Point
		color        float64
	}
	verts := make([]vertex, n+1)
	k := 0
	for j := range n + 1 {
		phi := 2 * math.Pi * float64(j) / float64(n)
		for k+2 < len(ext) && ext[k+1].angle <= phi {
			k++
		}
		lo, hi := ext[k], ext[k+1]
		t := 0.0
		if span := hi.angle - lo.angle; span > 0 {
			t = (phi - lo.angle) / span
		}
		r := max(0, b.Radius*(lo.abs+t*(hi.abs-lo.abs)))
		alpha := phi + lo.phase + t*(hi.phase-lo.phase)
		verts[j] = vertex{
			inner: polar(c, max(0, r-b.Width/2), alpha),
			outer: polar(c, r+b.Width/2, alpha),
			color: lo.color,
		}
	}

	wedges := make([]Wedge, n)
	for j := range n {
		v0, v1 := verts[j], verts[j+1]
		wedges[j] = Wedge{
			Quad:  [4]gg.Point{v0.inner, v1.inner, v1.outer, v0.outer},
			Color: cmap(v0.color / (2 * math.Pi)),
		}
	}
	return wedges
}

// extend sorts the usable samples by angle, unwraps their phases, and closes
// the loop: the last sample is repeated at angle-2π in front and the first at
// angle+2π at the back, so every render angle in [0, 2π] has a bracket.
func (b RingBuilder) extend(samples []DerivativeSample) []ringSample {
	rs := make([]ringSample, 0, len(samples)+2)
	for _, s := range samples {
		if !IsFinite(s.Value) {
			continue
		}
		a := normAngle(s.Angle)
		rs = append(rs, ringSample{angle: a, abs: cmplx.Abs(s.Value), phase: cmplx.Phase(s.Value), color: a})
	}
	if len(rs) < 2 {
		return nil
	}
	slices.SortStableFunc(rs, func(x, y ringSample) int {
		switch {
		case x.angle < y.angle:
			return -1
		case x.angle > y.angle:
			return 1
		}
		return 0
	})
	for i := 1; i < len(rs); i++ {
		rs[i].phase = rs[i-1].phase + wrapAngle(rs[i].phase-rs[i-1].phase)
	}

	first, last := rs[0], rs[len(rs)-1]
	head := last
	head.angle -= 2 * math.Pi
	head.phase = first.phase - wrapAngle(first.phase-last.phase)
	tail := first
	tail.angle += 2 * math.Pi
	tail.phase = last.phase + wrapAngle(first.phase-last.phase)

	out := make([]ringSample, 0, len(rs)+2)
	out = append(out, head)
	out = append(out, rs...)
	return append(out, tail)
}

// polar returns the screen point at distance r from c in direction a, using
// the math orientation (counter-clockwise on a y-down screen).
func polar(c gg.Point, r, a float64) gg.Point {
	sin, cos := math.Sincos(a)
	return gg.Pt(c.X+r*cos, c.Y-r*sin)
}
