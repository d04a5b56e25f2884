// Package scalefunc holds the invertible transforms that place values on a
// slide rule scale.
//
// The set of implementations is closed: every Function in this package maps
// a value to a transformed coordinate and back. Domain violations are never
// reported as errors. They surface as NaN or ±Inf, exactly as the math package
// produces them, and callers check IsFinite before display.
package scalefunc

import "math"

type Function interface {
	// Transform maps a scale value to its transformed coordinate.
	Transform(v float64) float64
	// Inverse maps a transformed coordinate back to a scale value.
	Inverse(t float64) float64
	Name() string

	function()
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func orOne(x float64) float64 {
	if x == 0 {
		return 1
	}
	return x
}

// Log is the common logarithmic scale, log10(m·x)/c. Cycles > 1 gives the
// squared (A/B) and cubed (K) scales, a Multiplier gives folded scales.
type Log struct {
	Multiplier float64
	Cycles     float64
}

func (f Log) Transform(v float64) float64 {
	return math.Log10(orOne(f.Multiplier)*v) / orOne(f.Cycles)
}

func (f Log) Inverse(t float64) float64 {
	return math.Pow(10, t*orOne(f.Cycles)) / orOne(f.Multiplier)
}

func (f Log) Name() string { return "log" }
func (Log) function()      {}

// Reciprocal runs right to left: -log10(m·x)/c.
type Reciprocal struct {
	Multiplier float64
	Cycles     float64
}

func (f Reciprocal) Transform(v float64) float64 {
	return -math.Log10(orOne(f.Multiplier)*v) / orOne(f.Cycles)
}

func (f Reciprocal) Inverse(t float64) float64 {
	return math.Pow(10, -t*orOne(f.Cycles)) / orOne(f.Multiplier)
}

func (f Reciprocal) Name() string { return "reciprocal" }
func (Reciprocal) function()      {}

type NaturalLog struct{}

func (NaturalLog) Transform(v float64) float64 { return math.Log(v) }
func (NaturalLog) Inverse(t float64) float64   { return math.Exp(t) }
func (NaturalLog) Name() string                { return "ln" }
func (NaturalLog) function()                   {}

type Linear struct{}

func (Linear) Transform(v float64) float64 { return v }
func (Linear) Inverse(t float64) float64   { return t }
func (Linear) Name() string                { return "linear" }
func (Linear) function()                   {}

// LogLog is log10(m·ln x). The reference constant is e: for x < 1 the inner
// logarithm is negative and the result is NaN. Negative selects the LL0
// family, log10(-m·ln x), which is valid only below 1.
type LogLog struct {
	Multiplier float64
	Negative   bool
}

func (f LogLog) sign() float64 {
	if f.Negative {
		return -1
	}
	return 1
}

func (f LogLog) Transform(v float64) float64 {
	return math.Log10(f.sign() * orOne(f.Multiplier) * math.Log(v))
}

func (f LogLog) Inverse(t float64) float64 {
	return math.Exp(f.sign() * math.Pow(10, t) / orOne(f.Multiplier))
}

func (f LogLog) Name() string { return "loglog" }
func (LogLog) function()      {}
