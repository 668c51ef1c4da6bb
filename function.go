package zplane

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strings"
)

// Evaluator is the function under study.
//
// Evaluate must be side-effect free and cheap: the sampler calls it once per
// direction for every stamp. A pole or overflow is reported by returning a
// value for which IsFinite is false.
type Evaluator interface {
	Evaluate(z complex128) complex128
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(z complex128) complex128

// Evaluate calls f(z).
func (f EvaluatorFunc) Evaluate(z complex128) complex128 {
	return f(z)
}

// IsFinite reports whether both components of z are finite.
func IsFinite(z complex128) bool {
	re, im := real(z), imag(z)
	return !math.IsNaN(re) && !math.IsNaN(im) && !math.IsInf(re, 0) && !math.IsInf(im, 0)
}

// Function is a named, labelled Evaluator.
type Function struct {
	Name  string
	Label string
	Evaluator
}

// builtins holds the registered functions in display order.
var builtins = []Function{
	{"mixed", "f(z) = x + y + (x² − y²)i", EvaluatorFunc(func(z complex128) complex128 {
		x, y := real(z), imag(z)
		return complex(x+y, x*x-y*y)
	})},
	{"mixed-sum", "f(z) = x + y + (x² + y²)i", EvaluatorFunc(func(z complex128) complex128 {
		x, y := real(z), imag(z)
		return complex(x+y, x*x+y*y)
	})},
	{"identity", "f(z) = z", EvaluatorFunc(func(z complex128) complex128 { return z })},
	{"square", "f(z) = z²", EvaluatorFunc(func(z complex128) complex128 { return z * z })},
	{"cube", "f(z) = z³", EvaluatorFunc(func(z complex128) complex128 { return z * z * z })},
	{"reciprocal", "f(z) = 1/z", EvaluatorFunc(reciprocal)},
	{"conj", "f(z) = z̄", EvaluatorFunc(cmplx.Conj)},
	{"exp", "f(z) = eᶻ", EvaluatorFunc(cmplx.Exp)},
	{"sin", "f(z) = sin z", EvaluatorFunc(cmplx.Sin)},
	{"sqrt", "f(z) = √z", EvaluatorFunc(cmplx.Sqrt)},
	{"log", "f(z) = log z", EvaluatorFunc(cmplx.Log)},
}

// reciprocal is 1/z with the pole at zero reported as non-finite.
func reciprocal(z complex128) complex128 {
	if z == 0 {
		return cmplx.Inf()
	}
	return 1 / z
}

// Lookup returns the registered function with the given name.
func Lookup(name string) (Function, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	i := slices.IndexFunc(builtins, func(f Function) bool { return f.Name == key })
	if i < 0 {
		return Function{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFunction, name, strings.Join(FunctionNames(), ", "))
	}
	return builtins[i], nil
}

// FunctionNames lists the registered function names in display order.
func FunctionNames() []string {
	names := make([]string, len(builtins))
	for i, f := range builtins {
		names[i] = f.Name
	}
	return names
}
