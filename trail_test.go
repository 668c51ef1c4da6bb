package zplane

import (
	"image"
	"math/rand/v2"
	"slices"
	"testing"
)

func newTestTrails(t *testing.T, fn string) *TrailPair {
	t.Helper()
	return NewTrailPair(newTestViewport(t, 100, 1200, 800), mustLookup(t, fn))
}

func points(tr Trail) []image.Point {
	var pts []image.Point
	for _, e := range tr {
		if e.Break {
			pts = append(pts, image.Pt(-1, -1))
			continue
		}
		pts = append(pts, e.Point)
	}
	return pts
}

func TestTrailAppendSample(t *testing.T) {
	tp := newTestTrails(t, "square")
	if !tp.Awaiting() {
		t.Fatal("new pair is not awaiting a segment")
	}
	// 1 squares to 1 and 1+i squares to 2i.
	out, ok := tp.AppendSample(image.Pt(700, 400))
	if !ok || out != image.Pt(700, 400) {
		t.Fatalf("AppendSample(700,400) = %v, %v", out, ok)
	}
	out, ok = tp.AppendSample(image.Pt(700, 300))
	if !ok || out != image.Pt(600, 200) {
		t.Fatalf("AppendSample(700,300) = %v, %v", out, ok)
	}
	checkTrails(t, tp)
	if tp.Len() != 2 || tp.Awaiting() {
		t.Errorf("Len() = %d, Awaiting() = %v", tp.Len(), tp.Awaiting())
	}
}

func TestTrailSegmentBreaks(t *testing.T) {
	tp := newTestTrails(t, "identity")
	tp.AppendSample(image.Pt(10, 10))
	tp.AppendSample(image.Pt(20, 20))
	tp.EndSegment()
	tp.EndSegment()
	tp.AppendSample(image.Pt(30, 30))
	tp.BeginSegment()
	tp.BeginSegment()
	tp.AppendSample(image.Pt(40, 40))
	checkTrails(t, tp)

	brk := image.Pt(-1, -1)
	diff(t, []image.Point{
		{10, 10}, {20, 20}, brk, {30, 30}, brk, {40, 40},
	}, points(tp.Input()))
	diff(t, points(tp.Input()), points(tp.Output()))
}

func TestTrailBeginSegmentOnEmpty(t *testing.T) {
	tp := newTestTrails(t, "identity")
	tp.BeginSegment()
	tp.AppendSample(image.Pt(5, 5))
	if tp.Len() != 1 || tp.Input()[0].Break {
		t.Errorf("input = %v, want a single point", tp.Input())
	}
}

func TestTrailNeverEndsWithBreak(t *testing.T) {
	tp := newTestTrails(t, "identity")
	tp.AppendSample(image.Pt(5, 5))
	tp.BeginSegment()
	if n := tp.Len(); n != 1 {
		t.Errorf("Len() after BeginSegment = %d, want 1", n)
	}
	checkTrails(t, tp)
}

func TestTrailLiftsPenAtSingularity(t *testing.T) {
	tp := newTestTrails(t, "reciprocal")
	tp.AppendSample(image.Pt(700, 400)) // 1 -> 1
	if _, ok := tp.AppendSample(image.Pt(600, 400)); ok {
		t.Fatal("AppendSample at the pole reported ok")
	}
	tp.AppendSample(image.Pt(650, 400)) // 0.5 -> 2
	checkTrails(t, tp)

	brk := image.Pt(-1, -1)
	diff(t, []image.Point{{700, 400}, brk, {650, 400}}, points(tp.Input()))
	diff(t, []image.Point{{700, 400}, brk, {800, 400}}, points(tp.Output()))
}

func TestTrailSegments(t *testing.T) {
	tp := newTestTrails(t, "identity")
	for _, p := range []image.Point{{1, 1}, {2, 2}, {3, 3}} {
		tp.AppendSample(p)
	}
	tp.EndSegment()
	tp.AppendSample(image.Pt(4, 4))

	var segs [][]image.Point
	for seg := range tp.Input().Segments() {
		segs = append(segs, slices.Clone(seg))
	}
	diff(t, [][]image.Point{{{1, 1}, {2, 2}, {3, 3}}, {{4, 4}}}, segs)
	if got := tp.Input().Points(); got != 4 {
		t.Errorf("Points() = %d, want 4", got)
	}
}

func TestTrailClear(t *testing.T) {
	tp := newTestTrails(t, "identity")
	tp.AppendSample(image.Pt(1, 1))
	tp.BeginSegment()
	tp.Clear()
	if tp.Len() != 0 || !tp.Awaiting() {
		t.Fatalf("after Clear: Len() = %d, Awaiting() = %v", tp.Len(), tp.Awaiting())
	}
	tp.AppendSample(image.Pt(2, 2))
	if tp.Input()[0].Break {
		t.Error("pending break survived Clear")
	}
}

func TestTrailRandomOperations(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	tp := newTestTrails(t, "reciprocal")
	for range 5000 {
		switch r.IntN(6) {
		case 0:
			tp.BeginSegment()
		case 1:
			tp.EndSegment()
		case 2:
			// Hit the pole now and then.
			tp.AppendSample(image.Pt(600, 400))
		default:
			tp.AppendSample(image.Pt(r.IntN(1200), r.IntN(800)))
		}
		checkTrails(t, tp)
	}
}
