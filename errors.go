package zplane

import (
	"errors"
	"fmt"
)

// Sentinel errors for the zplane package.
var (
	// ErrUnknownFunction is returned when a function name is not registered.
	ErrUnknownFunction = errors.New("zplane: unknown function")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("zplane: invalid config")

	// ErrInvalidDimensions is returned for a zero or negative canvas size.
	ErrInvalidDimensions = errors.New("zplane: invalid dimensions")
)

// ScriptError reports a malformed line in an event script.
type ScriptError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("zplane: script line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
