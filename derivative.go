package zplane

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Default sampler parameters.
const (
	// DefaultSegments is the number of perturbation directions per stamp.
	DefaultSegments = 360

	// DefaultEpsilon is the perturbation length. It must stay far below one
	// grid unit while keeping f(z+dz)-f(z) clear of cancellation.
	DefaultEpsilon = 1e-4
)

// DerivativeSample is the directional derivative estimated for the
// perturbation angle Angle, in [0, 2π).
type DerivativeSample struct {
	Angle float64
	Value complex128
}

// Sampler estimates directional derivatives with forward differences over
// evenly spaced directions.
type Sampler struct {
	Segments int
	Epsilon  float64
}

// NewSampler returns a sampler with the given direction count and epsilon.
func NewSampler(segments int, epsilon float64) (Sampler, error) {
	if segments < 1 {
		return Sampler{}, fmt.Errorf("%w: segments=%d", ErrInvalidConfig, segments)
	}
	if !(epsilon > 0) || math.IsInf(epsilon, 0) {
		return Sampler{}, fmt.Errorf("%w: epsilon=%v", ErrInvalidConfig, epsilon)
	}
	return Sampler{Segments: segments, Epsilon: epsilon}, nil
}

// Sample returns the directional derivatives of f at z ordered by angle.
// Directions whose estimate is not finite are omitted, so the result may be
// shorter than Segments or empty.
func (s Sampler) Sample(f Evaluator, z complex128) []DerivativeSample {
	return s.SampleInto(make([]DerivativeSample, 0, s.Segments), f, z)
}

// SampleInto appends the samples for z to dst and returns the extended slice.
func (s Sampler) SampleInto(dst []DerivativeSample, f Evaluator, z complex128) []DerivativeSample {
	fz := f.Evaluate(z)
	if !IsFinite(fz) || s.Segments < 1 {
		return dst
	}
	for i := range s.Segments {
		theta := 2 * math.Pi * float64(i) / float64(s.Segments)
		sin, cos := math.Sincos(theta)
		dz := complex(s.Epsilon*cos, s.Epsilon*sin)
		fdz := f.Evaluate(z + dz)
		if !IsFinite(fdz) {
			continue
		}
		d := (fdz - fz) / dz
		if !IsFinite(d) {
			continue
		}
		dst = append(dst, DerivativeSample{Angle: theta, Value: d})
	}
	return dst
}

// Summary describes how far a set of samples is from a pure rotation-scaling.
type Summary struct {
	// Count is the number of retained directions.
	Count int
	// MinAbs and MaxAbs bound the stretch factor |d|.
	MinAbs, MaxAbs float64
	// PhaseSpread is the largest deviation of arg(d) from its circular mean,
	// in radians. A holomorphic f gives a spread near zero.
	PhaseSpread float64
}

// Conformal reports whether every direction is stretched and rotated alike,
// within the relative tolerance tol.
func (s Summary) Conformal(tol float64) bool {
	if s.Count == 0 {
		return false
	}
	if s.MaxAbs == 0 {
		return true
	}
	return (s.MaxAbs-s.MinAbs)/s.MaxAbs <= tol && s.PhaseSpread <= tol
}

// Summarize computes a Summary for samples.
func Summarize(samples []DerivativeSample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	sum := Summary{Count: len(samples), MinAbs: math.Inf(1)}
	var mean complex128
	nonzero := 0
	for _, s := range samples {
		a := cmplx.Abs(s.Value)
		sum.MinAbs = min(sum.MinAbs, a)
		sum.MaxAbs = max(sum.MaxAbs, a)
		if a > 0 {
			mean += s.Value / complex(a, 0)
			nonzero++
		}
	}
	if nonzero == 0 {
		return sum
	}
	// Phases spread evenly around the circle have no common rotation.
	if cmplx.Abs(mean) < 1e-9*float64(nonzero) {
		sum.PhaseSpread = math.Pi
		return sum
	}
	center := cmplx.Phase(mean)
	for _, s := range samples {
		if s.Value == 0 {
			continue
		}
		sum.PhaseSpread = max(sum.PhaseSpread, math.Abs(wrapAngle(cmplx.Phase(s.Value)-center)))
	}
	return sum
}

// wrapAngle maps a into (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a > math.Pi:
		a -= 2 * math.Pi
	case a <= -math.Pi:
		a += 2 * math.Pi
	}
	return a
}

// normAngle maps a into [0, 2π).
func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
