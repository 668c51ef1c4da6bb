package zplane

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// Colormap maps t in [0, 1) to a color. Ring wedges are colored by
// Colormap(angle / 2π) so that matching directions share a color.
type Colormap func(t float64) gg.RGBA

// HSV is the cyclic hue wheel: hue = t at full saturation and value.
func HSV(t float64) gg.RGBA {
	r, g, b := hsvToRGB(frac(t), 1, 1)
	return gg.RGB(r, g, b)
}

// viridisStops are nine evenly spaced samples of matplotlib's viridis map.
var viridisStops = [...]gg.RGBA{
	gg.Hex("#440154"),
	gg.Hex("#472d7b"),
	gg.Hex("#3b528b"),
	gg.Hex("#2c728e"),
	gg.Hex("#21918c"),
	gg.Hex("#28ae80"),
	gg.Hex("#5ec962"),
	gg.Hex("#addc30"),
	gg.Hex("#fde725"),
}

// Viridis is the perceptually ordered viridis map. It is not cyclic: the
// ring shows a seam between t→1 and t=0.
func Viridis(t float64) gg.RGBA {
	t = frac(t) * float64(len(viridisStops)-1)
	i := int(t)
	if i >= len(viridisStops)-1 {
		return viridisStops[len(viridisStops)-1]
	}
	return viridisStops[i].Lerp(viridisStops[i+1], t-float64(i))
}

// LookupColormap returns the colormap registered under name.
func LookupColormap(name string) (Colormap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hsv":
		return HSV, nil
	case "viridis":
		return Viridis, nil
	}
	return nil, fmt.Errorf("%w: colormap %q (known: hsv, viridis)", ErrInvalidConfig, name)
}

// frac returns t modulo 1 in [0, 1).
func frac(t float64) float64 {
	t -= math.Floor(t)
	if t >= 1 {
		t = 0
	}
	return t
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h *= 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
