package zplane

import (
	"fmt"
	"image"
)

// Mode is the interaction mode of a Session.
type Mode uint8

const (
	// ModeIdle shows the pointer and its image without recording.
	ModeIdle Mode = iota
	// ModeTracking records the pointer path and its image.
	ModeTracking
	// ModeDerivative stamps derivative rings on click.
	ModeDerivative
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeTracking:
		return "tracking"
	case ModeDerivative:
		return "derivative"
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Session is the whole state of one visualizer: viewport, trails, rings,
// mode and pointer. All mutation goes through HandleEvent and Tick.
//
// Session is NOT safe for concurrent use. The event loop owns it and hands it
// to the renderer between ticks.
type Session struct {
	cfg      Config
	fn       Function
	viewport *Viewport
	sampler  Sampler
	builder  RingBuilder

	trails *TrailPair
	rings  RingStore
	mode   Mode

	pointer    image.Point
	hasPointer bool
	held       [4]bool // indexed by Key - KeyMoveUp
}

// NewSession validates cfg with opts applied and creates a Session.
// If the configured size is non-empty the viewport is sized to it.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fn, err := cfg.function()
	if err != nil {
		return nil, err
	}
	cmap, err := LookupColormap(cfg.Colormap)
	if err != nil {
		return nil, err
	}
	vp, err := NewViewport(float64(cfg.Scale))
	if err != nil {
		return nil, err
	}
	sampler, err := NewSampler(cfg.Segments, cfg.Epsilon)
	if err != nil {
		return nil, err
	}
	vp.Resize(cfg.Width, cfg.Height)

	s := &Session{
		cfg:      cfg,
		fn:       fn,
		viewport: vp,
		sampler:  sampler,
		builder: RingBuilder{
			Radius:     cfg.RingRadius,
			Width:      cfg.RingWidth,
			Segments:   cfg.Segments,
			Oversample: cfg.Oversample,
			Colormap:   cmap,
		},
		trails: NewTrailPair(vp, fn),
	}
	Logger().Info("session created", "function", fn.Name, "scale", cfg.Scale, "segments", cfg.Segments)
	return s, nil
}

// Config returns the validated configuration.
func (s *Session) Config() Config { return s.cfg }

// Function returns the function under study.
func (s *Session) Function() Function { return s.fn }

// Viewport returns the coordinate converter.
func (s *Session) Viewport() *Viewport { return s.viewport }

// Builder returns the ring geometry builder.
func (s *Session) Builder() RingBuilder { return s.builder }

// Trails returns the recorded trail pair.
func (s *Session) Trails() *TrailPair { return s.trails }

// Rings returns the stamped rings.
func (s *Session) Rings() *RingStore { return &s.rings }

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// Pointer returns the live pointer position, if one has been seen.
func (s *Session) Pointer() (image.Point, bool) {
	return s.pointer, s.hasPointer
}

// Probe evaluates f at the pointer. It returns the complex position, its
// image, and whether the image is finite.
func (s *Session) Probe() (z, fz complex128, ok bool) {
	if !s.hasPointer || !s.viewport.Valid() {
		return 0, 0, false
	}
	z = s.viewport.ToComplex(s.pointer)
	fz = s.fn.Evaluate(z)
	return z, fz, IsFinite(fz)
}

// HandleEvent applies one input event.
// Pointer events are ignored while the canvas has zero area.
func (s *Session) HandleEvent(e Event) {
	switch e.Kind {
	case EventResize:
		if !s.viewport.Resize(e.Pos.X, e.Pos.Y) {
			Logger().Debug("zero-area canvas, input suspended", "width", e.Pos.X, "height", e.Pos.Y)
		}
	case EventPointerDown, EventPointerMove, EventPointerUp:
		if s.viewport.Valid() {
			s.handlePointer(e)
		}
	case EventKeyDown:
		s.handleKey(e.Key)
	case EventKeyUp:
		if i, ok := moveIndex(e.Key); ok {
			s.held[i] = false
		}
	}
}

func (s *Session) handlePointer(e Event) {
	s.pointer, s.hasPointer = e.Pos, true
	switch e.Kind {
	case EventPointerDown:
		if e.Button != ButtonLeft {
			return
		}
		if s.mode == ModeDerivative {
			s.stamp(e.Pos)
			return
		}
		s.mode = ModeTracking
		s.trails.AppendSample(e.Pos)
	case EventPointerMove:
		if s.mode == ModeTracking {
			s.trails.AppendSample(e.Pos)
		}
	case EventPointerUp:
		if e.Button != ButtonLeft {
			return
		}
		s.trails.EndSegment()
	}
}

func (s *Session) handleKey(k Key) {
	switch k {
	case KeyClear:
		s.clear()
	case KeyToggleDerivative:
		s.toggleDerivative()
	default:
		if i, ok := moveIndex(k); ok {
			s.held[i] = true
		}
	}
}

// toggleDerivative switches derivative mode on or off. Either way the trails
// and rings are discarded.
func (s *Session) toggleDerivative() {
	switch s.mode {
	case ModeDerivative:
		s.mode = ModeIdle
	case ModeTracking:
		s.trails.EndSegment()
		s.mode = ModeDerivative
	default:
		s.mode = ModeDerivative
	}
	s.held = [4]bool{}
	s.clear()
	Logger().Debug("mode changed", "mode", s.mode)
}

func (s *Session) clear() {
	s.trails.Clear()
	s.rings.Clear()
}

// stamp measures the derivative at p and stores a ring.
func (s *Session) stamp(p image.Point) {
	z := s.viewport.ToComplex(p)
	out, ok := s.viewport.ScreenOf(s.fn.Evaluate(z))
	if !ok {
		Logger().Debug("stamp skipped, f(z) not finite", "z", z)
		return
	}
	samples := s.sampler.Sample(s.fn, z)
	s.rings.Append(RingRecord{Input: p, Output: out, Samples: samples})
	Logger().Debug("ring stamped", "z", z, "samples", len(samples), "rings", s.rings.Len())
}

// Tick advances one frame: in tracking mode held movement keys move the
// pointer by MoveSpeed pixels, clamped to the canvas, and record the step.
// It reports whether the pointer moved.
func (s *Session) Tick() bool {
	if s.mode != ModeTracking || !s.viewport.Valid() {
		return false
	}
	var dx, dy int
	step := s.cfg.MoveSpeed
	if s.held[0] {
		dy -= step
	}
	if s.held[1] {
		dy += step
	}
	if s.held[2] {
		dx -= step
	}
	if s.held[3] {
		dx += step
	}
	w, h := s.viewport.Size()
	next := image.Pt(clamp(s.pointer.X+dx, 0, w), clamp(s.pointer.Y+dy, 0, h))
	if next == s.pointer {
		return false
	}
	s.pointer, s.hasPointer = next, true
	s.trails.AppendSample(next)
	return true
}

func moveIndex(k Key) (int, bool) {
	if k >= KeyMoveUp && k <= KeyMoveRight {
		return int(k - KeyMoveUp), true
	}
	return 0, false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
