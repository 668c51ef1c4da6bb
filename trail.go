package zplane

import (
	"image"
	"iter"
)

// TrailEntry is one element of a Trail: a screen point or a segment break.
type TrailEntry struct {
	Point image.Point
	Break bool
}

// Trail is an ordered path of screen points split into segments by breaks.
// A break is never the first or last entry and never follows another break.
type Trail []TrailEntry

// Points returns the number of non-break entries.
func (t Trail) Points() int {
	n := 0
	for _, e := range t {
		if !e.Break {
			n++
		}
	}
	return n
}

// Segments yields every contiguous run of points between breaks.
// The yielded slices alias an internal buffer valid until the next iteration.
func (t Trail) Segments() iter.Seq[[]image.Point] {
	return func(yield func([]image.Point) bool) {
		var seg []image.Point
		for _, e := range t {
			if e.Break {
				if len(seg) > 0 && !yield(seg) {
					return
				}
				seg = seg[:0]
				continue
			}
			seg = append(seg, e.Point)
		}
		if len(seg) > 0 {
			yield(seg)
		}
	}
}

// TrailPair tracks a traced input path and its image under f.
// Both trails always have the same length with breaks at the same indices.
type TrailPair struct {
	viewport *Viewport
	f        Evaluator

	input  Trail
	output Trail

	// awaiting is set by EndSegment: the next append starts a new segment.
	awaiting bool
	// pendingBreak is set by BeginSegment and materialized by the next append,
	// so a trail never ends with a break.
	pendingBreak bool
}

// NewTrailPair creates an empty pair projecting through vp and f.
func NewTrailPair(vp *Viewport, f Evaluator) *TrailPair {
	return &TrailPair{viewport: vp, f: f, awaiting: true}
}

// Input returns the input-space trail. The slice must not be modified.
func (tp *TrailPair) Input() Trail { return tp.input }

// Output returns the output-space trail. The slice must not be modified.
func (tp *TrailPair) Output() Trail { return tp.output }

// Len returns the common length of both trails.
func (tp *TrailPair) Len() int { return len(tp.input) }

// Awaiting reports whether the next append starts a new segment.
func (tp *TrailPair) Awaiting() bool { return tp.awaiting }

// BeginSegment starts a new segment. If the pair already holds samples, a
// break separates them from the next append.
func (tp *TrailPair) BeginSegment() {
	if n := len(tp.input); n > 0 && !tp.input[n-1].Break {
		tp.pendingBreak = true
	}
	tp.awaiting = false
}

// EndSegment lifts the pen: the next AppendSample begins a new segment.
func (tp *TrailPair) EndSegment() {
	tp.awaiting = true
}

// AppendSample records p and its image f(p) in the two trails and returns
// the image's screen position. When the image is not finite the pen is lifted
// across the singularity instead, and ok is false.
func (tp *TrailPair) AppendSample(p image.Point) (out image.Point, ok bool) {
	if tp.awaiting {
		tp.BeginSegment()
	}
	out, ok = tp.viewport.ScreenOf(tp.f.Evaluate(tp.viewport.ToComplex(p)))
	if !ok {
		tp.BeginSegment()
		return image.Point{}, false
	}
	if tp.pendingBreak {
		tp.input = append(tp.input, TrailEntry{Break: true})
		tp.output = append(tp.output, TrailEntry{Break: true})
		tp.pendingBreak = false
		Logger().Debug("trail segment break", "index", len(tp.input)-1)
	}
	tp.input = append(tp.input, TrailEntry{Point: p})
	tp.output = append(tp.output, TrailEntry{Point: out})
	return out, true
}

// Clear empties both trails.
func (tp *TrailPair) Clear() {
	tp.input = tp.input[:0]
	tp.output = tp.output[:0]
	tp.pendingBreak = false
	tp.awaiting = true
}
