package zplane

import (
	"image"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSessionErrors(t *testing.T) {
	_, err := NewSession(DefaultConfig(), WithFunction("zeta"))
	require.ErrorIs(t, err, ErrUnknownFunction)

	_, err = NewSession(DefaultConfig(), WithScale(0), WithSegments(1))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "grid_scale_px_per_unit")
	require.Contains(t, err.Error(), "ring_angular_segments")

	_, err = NewSession(DefaultConfig(), WithEvaluator("f(z)", nil))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSessionStampsIdentityRing(t *testing.T) {
	s := newTestSession(t, "identity")
	require.Equal(t, ModeIdle, s.Mode())

	s.HandleEvent(KeyDownEvent(KeyToggleDerivative))
	require.Equal(t, ModeDerivative, s.Mode())

	gen := s.Rings().Generation()
	s.HandleEvent(PointerDownEvent(600, 400, ButtonLeft))
	require.Equal(t, 1, s.Rings().Len())
	require.Greater(t, s.Rings().Generation(), gen)

	rec, ok := s.Rings().Last()
	require.True(t, ok)
	require.Equal(t, image.Pt(600, 400), rec.Input)
	require.Equal(t, image.Pt(600, 400), rec.Output)
	require.Len(t, rec.Samples, DefaultSegments)
	require.True(t, rec.Summary().Conformal(1e-6))

	// Clicks in derivative mode never record trails.
	require.Zero(t, s.Trails().Len())
}

func TestSessionStampAtPoleIsSkipped(t *testing.T) {
	s := newTestSession(t, "reciprocal")
	s.HandleEvent(KeyDownEvent(KeyToggleDerivative))
	gen := s.Rings().Generation()
	s.HandleEvent(PointerDownEvent(600, 400, ButtonLeft))
	require.Zero(t, s.Rings().Len())
	require.Equal(t, gen, s.Rings().Generation())

	s.HandleEvent(PointerDownEvent(700, 400, ButtonLeft))
	require.Equal(t, 1, s.Rings().Len())
}

func TestSessionTracking(t *testing.T) {
	s := newTestSession(t, "square")

	s.HandleEvent(PointerMoveEvent(650, 400))
	require.Zero(t, s.Trails().Len(), "idle moves are not recorded")

	s.HandleEvent(PointerDownEvent(700, 400, ButtonLeft))
	require.Equal(t, ModeTracking, s.Mode())
	s.HandleEvent(PointerMoveEvent(710, 400))
	s.HandleEvent(PointerMoveEvent(720, 400))
	require.Equal(t, 3, s.Trails().Len())

	s.HandleEvent(PointerUpEvent(720, 400, ButtonLeft))
	require.True(t, s.Trails().Awaiting())
	require.Equal(t, ModeTracking, s.Mode())

	s.HandleEvent(PointerMoveEvent(750, 400))
	require.Equal(t, 5, s.Trails().Len())
	require.True(t, s.Trails().Input()[3].Break)
	checkTrails(t, s.Trails())

	// 1.5 squared is 2.25.
	last := s.Trails().Output()[4].Point
	require.Equal(t, image.Pt(825, 400), last)
}

func TestSessionIgnoresOtherButtons(t *testing.T) {
	s := newTestSession(t, "identity")
	s.HandleEvent(PointerDownEvent(700, 400, ButtonRight))
	require.Equal(t, ModeIdle, s.Mode())
	require.Zero(t, s.Trails().Len())

	p, ok := s.Pointer()
	require.True(t, ok)
	require.Equal(t, image.Pt(700, 400), p)
}

func TestSessionClear(t *testing.T) {
	s := newTestSession(t, "identity")
	s.HandleEvent(KeyDownEvent(KeyToggleDerivative))
	s.HandleEvent(PointerDownEvent(600, 400, ButtonLeft))
	s.HandleEvent(PointerDownEvent(700, 300, ButtonLeft))
	require.Equal(t, 2, s.Rings().Len())

	gen := s.Rings().Generation()
	s.HandleEvent(KeyDownEvent(KeyClear))
	require.Zero(t, s.Rings().Len())
	require.NotEqual(t, gen, s.Rings().Generation())
	require.Equal(t, ModeDerivative, s.Mode(), "clear keeps the mode")
}

func TestSessionToggleDiscardsState(t *testing.T) {
	s := newTestSession(t, "identity")
	s.HandleEvent(PointerDownEvent(700, 400, ButtonLeft))
	s.HandleEvent(PointerMoveEvent(710, 400))
	require.Equal(t, 2, s.Trails().Len())

	s.HandleEvent(KeyDownEvent(KeyToggleDerivative))
	require.Equal(t, ModeDerivative, s.Mode())
	require.Zero(t, s.Trails().Len())

	s.HandleEvent(PointerDownEvent(600, 400, ButtonLeft))
	require.Equal(t, 1, s.Rings().Len())

	s.HandleEvent(KeyDownEvent(KeyToggleDerivative))
	require.Equal(t, ModeIdle, s.Mode())
	require.Zero(t, s.Rings().Len())

	// Moves after leaving derivative mode are not recorded until a press.
	s.HandleEvent(PointerMoveEvent(620, 400))
	require.Zero(t, s.Trails().Len())
}

func TestSessionTick(t *testing.T) {
	s := newTestSession(t, "identity")
	require.False(t, s.Tick(), "idle tick")

	s.HandleEvent(PointerDownEvent(1195, 400, ButtonLeft))
	s.HandleEvent(KeyDownEvent(KeyMoveRight))
	s.HandleEvent(KeyDownEvent(KeyMoveUp))

	require.True(t, s.Tick())
	p, _ := s.Pointer()
	require.Equal(t, image.Pt(1197, 398), p)

	require.True(t, s.Tick())
	require.True(t, s.Tick())
	p, _ = s.Pointer()
	require.Equal(t, image.Pt(1200, 394), p, "x clamps to the canvas width")
	require.Equal(t, 4, s.Trails().Len())

	s.HandleEvent(KeyUpEvent(KeyMoveRight))
	s.HandleEvent(KeyUpEvent(KeyMoveUp))
	require.False(t, s.Tick())
	require.Equal(t, 4, s.Trails().Len())
	checkTrails(t, s.Trails())
}

func TestSessionTickOpposingKeysCancel(t *testing.T) {
	s := newTestSession(t, "identity")
	s.HandleEvent(PointerDownEvent(100, 100, ButtonLeft))
	s.HandleEvent(KeyDownEvent(KeyMoveLeft))
	s.HandleEvent(KeyDownEvent(KeyMoveRight))
	require.False(t, s.Tick())
}

func TestSessionZeroAreaSuspendsInput(t *testing.T) {
	s := newTestSession(t, "identity")
	s.HandleEvent(ResizeEvent(0, 0))
	require.False(t, s.Viewport().Valid())

	s.HandleEvent(PointerDownEvent(10, 10, ButtonLeft))
	require.Equal(t, ModeIdle, s.Mode())
	_, ok := s.Pointer()
	require.False(t, ok)
	_, _, ok = s.Probe()
	require.False(t, ok)

	s.HandleEvent(ResizeEvent(400, 200))
	require.Equal(t, image.Pt(200, 100), s.Viewport().Origin())
	s.HandleEvent(PointerDownEvent(300, 100, ButtonLeft))
	require.Equal(t, ModeTracking, s.Mode())
}

func TestSessionProbe(t *testing.T) {
	s := newTestSession(t, "square")
	_, _, ok := s.Probe()
	require.False(t, ok, "no pointer yet")

	s.HandleEvent(PointerMoveEvent(600, 300))
	z, fz, ok := s.Probe()
	require.True(t, ok)
	require.Equal(t, complex(0, 1), z)
	require.InDelta(t, 0, cmplx.Abs(fz+1), 1e-12)

	r := newTestSession(t, "reciprocal")
	r.HandleEvent(PointerMoveEvent(600, 400))
	_, _, ok = r.Probe()
	require.False(t, ok)
}

func TestSessionCustomEvaluator(t *testing.T) {
	double := EvaluatorFunc(func(z complex128) complex128 { return 2 * z })
	s := newTestSession(t, "identity", WithEvaluator("2z", double))
	require.Equal(t, "2z", s.Function().Label)

	s.HandleEvent(PointerDownEvent(650, 400, ButtonLeft))
	require.Equal(t, image.Pt(700, 400), s.Trails().Output()[0].Point)
}

func TestModeString(t *testing.T) {
	require.Equal(t, "idle", ModeIdle.String())
	require.Equal(t, "tracking", ModeTracking.String())
	require.Equal(t, "derivative", ModeDerivative.String())
	require.Equal(t, "Mode(9)", Mode(9).String())
}
