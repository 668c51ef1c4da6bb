package zplane

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// checkTrails verifies the TrailPair invariants: equal lengths, identical
// break positions, and no leading, trailing or adjacent breaks.
func checkTrails(t *testing.T, tp *TrailPair) {
	t.Helper()
	in, out := tp.Input(), tp.Output()
	if len(in) != len(out) {
		t.Fatalf("len(input)=%d len(output)=%d", len(in), len(out))
	}
	for i := range in {
		if in[i].Break != out[i].Break {
			t.Fatalf("break mismatch at %d: input=%v output=%v", i, in[i].Break, out[i].Break)
		}
		if !in[i].Break {
			continue
		}
		if i == 0 || i == len(in)-1 {
			t.Fatalf("break at boundary index %d of %d", i, len(in))
		}
		if in[i-1].Break {
			t.Fatalf("adjacent breaks at %d and %d", i-1, i)
		}
	}
}

// newTestSession returns a 1200x800 session (origin 600,400, scale 100) over
// the named function.
func newTestSession(t *testing.T, fn string, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithFunction(fn), WithScale(100), WithSize(1200, 800)}, opts...)
	s, err := NewSession(DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("NewSession(%q) = %v", fn, err)
	}
	return s
}
