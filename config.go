package zplane

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the recognized options of a visualizer session.
// Field tags give the YAML keys accepted by LoadConfig.
type Config struct {
	// Function is the registered name of the function under study.
	Function string `yaml:"function"`
	// Scale is the number of pixels per complex unit.
	Scale int `yaml:"grid_scale_px_per_unit"`
	// RingRadius is the radius of an undeformed ring in pixels.
	RingRadius float64 `yaml:"ring_radius_px"`
	// RingWidth is the thickness of the ring band in pixels.
	RingWidth float64 `yaml:"ring_width_px"`
	// Segments is the number of sampled directions per stamp.
	Segments int `yaml:"ring_angular_segments"`
	// Oversample multiplies Segments for the rendered wedge count.
	Oversample int `yaml:"oversample"`
	// Epsilon is the forward-difference step length.
	Epsilon float64 `yaml:"epsilon"`
	// TargetFPS is the tick rate of the event loop.
	TargetFPS int `yaml:"target_fps"`
	// MoveSpeed is the keyboard movement step in pixels per tick.
	MoveSpeed int `yaml:"move_speed"`
	// Colormap names the wedge colormap: hsv or viridis.
	Colormap string `yaml:"colormap"`
	// Language selects HUD strings: en or zh.
	Language string `yaml:"language"`
	// Width and Height are the initial canvas size.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// LabelImage is an optional PNG shown instead of the formula caption.
	LabelImage string `yaml:"label_image"`

	// Custom, when set, replaces the registered Function.
	Custom *Function `yaml:"-"`
}

// DefaultConfig returns the configuration of the desktop visualizer.
func DefaultConfig() Config {
	return Config{
		Function:   "mixed",
		Scale:      200,
		RingRadius: 24,
		RingWidth:  10,
		Segments:   DefaultSegments,
		Oversample: 1,
		Epsilon:    DefaultEpsilon,
		TargetFPS:  60,
		MoveSpeed:  2,
		Colormap:   "hsv",
		Language:   "en",
		Width:      1600,
		Height:     1200,
	}
}

// Validate checks every field and returns all problems joined.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	if _, err := c.function(); err != nil {
		errs = append(errs, err)
	}
	if _, err := LookupColormap(c.Colormap); err != nil {
		errs = append(errs, err)
	}
	check(c.Scale > 0, "grid_scale_px_per_unit=%d must be positive", c.Scale)
	check(c.RingRadius > 0 && !math.IsInf(c.RingRadius, 0), "ring_radius_px=%v must be positive", c.RingRadius)
	check(c.RingWidth >= 0 && !math.IsInf(c.RingWidth, 0), "ring_width_px=%v must not be negative", c.RingWidth)
	check(c.Segments >= 2 && c.Segments <= 1<<16, "ring_angular_segments=%d out of range [2, 65536]", c.Segments)
	check(c.Oversample >= 1 && c.Oversample <= 16, "oversample=%d out of range [1, 16]", c.Oversample)
	check(c.Epsilon > 0 && c.Epsilon < 1, "epsilon=%v out of range (0, 1)", c.Epsilon)
	check(c.TargetFPS >= 1 && c.TargetFPS <= 240, "target_fps=%d out of range [1, 240]", c.TargetFPS)
	check(c.MoveSpeed >= 0, "move_speed=%d must not be negative", c.MoveSpeed)
	check(c.Language == "en" || c.Language == "zh", "language=%q must be en or zh", c.Language)
	check(c.Width >= 0 && c.Height >= 0, "size %dx%d must not be negative", c.Width, c.Height)
	return errors.Join(errs...)
}

// function resolves the function under study.
func (c Config) function() (Function, error) {
	if c.Custom != nil {
		if c.Custom.Evaluator == nil {
			return Function{}, fmt.Errorf("%w: custom function %q has no evaluator", ErrInvalidConfig, c.Custom.Name)
		}
		return *c.Custom, nil
	}
	return Lookup(c.Function)
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Keys absent from the file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("zplane: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML data over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("zplane: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Option adjusts a Config.
//
// Example:
//
//	s, err := zplane.NewSession(zplane.DefaultConfig(),
//	    zplane.WithFunction("exp"),
//	    zplane.WithSegments(720))
type Option func(*Config)

// WithFunction selects the function under study by name.
func WithFunction(name string) Option {
	return func(c *Config) { c.Function = name }
}

// WithEvaluator studies a caller-supplied function instead of a registered
// one. label is shown as the formula caption.
func WithEvaluator(label string, e Evaluator) Option {
	return func(c *Config) { c.Custom = &Function{Name: "custom", Label: label, Evaluator: e} }
}

// WithScale sets the pixels-per-unit scale.
func WithScale(pixelsPerUnit int) Option {
	return func(c *Config) { c.Scale = pixelsPerUnit }
}

// WithSegments sets the number of sampled directions.
func WithSegments(n int) Option {
	return func(c *Config) { c.Segments = n }
}

// WithEpsilon sets the forward-difference step.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithRing sets the ring radius and band width in pixels.
func WithRing(radius, width float64) Option {
	return func(c *Config) { c.RingRadius, c.RingWidth = radius, width }
}

// WithColormap selects the wedge colormap by name.
func WithColormap(name string) Option {
	return func(c *Config) { c.Colormap = name }
}

// WithSize sets the initial canvas size.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}
