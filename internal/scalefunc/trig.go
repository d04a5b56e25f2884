package scalefunc

import "math"

const degToRad = math.Pi / 180

// Sine is log10(m·sin(x)) with x in degrees.
type Sine struct {
	Multiplier float64
}

func (f Sine) Transform(v float64) float64 {
	return math.Log10(orOne(f.Multiplier) * math.Sin(v*degToRad))
}

func (f Sine) Inverse(t float64) float64 {
	return math.Asin(math.Pow(10, t)/orOne(f.Multiplier)) / degToRad
}

func (f Sine) Name() string { return "sin" }
func (Sine) function()      {}

// Tangent is log10(m·tan(x)) with x in degrees. It is unbounded near 90°.
type Tangent struct {
	Multiplier float64
}

func (f Tangent) Transform(v float64) float64 {
	return math.Log10(orOne(f.Multiplier) * math.Tan(v*degToRad))
}

func (f Tangent) Inverse(t float64) float64 {
	return math.Atan(math.Pow(10, t)/orOne(f.Multiplier)) / degToRad
}

func (f Tangent) Name() string { return "tan" }
func (Tangent) function()      {}

type Sinh struct {
	Multiplier float64
}

func (f Sinh) Transform(v float64) float64 {
	return math.Log10(orOne(f.Multiplier) * math.Sinh(v))
}

func (f Sinh) Inverse(t float64) float64 {
	return math.Asinh(math.Pow(10, t) / orOne(f.Multiplier))
}

func (f Sinh) Name() string { return "sinh" }
func (Sinh) function()      {}

// Cosh is log10(cosh x). Cosh(0) is exactly 0.
type Cosh struct{}

func (Cosh) Transform(v float64) float64 { return math.Log10(math.Cosh(v)) }
func (Cosh) Inverse(t float64) float64   { return math.Acosh(math.Pow(10, t)) }
func (Cosh) Name() string                { return "cosh" }
func (Cosh) function()                   {}

type Tanh struct {
	Multiplier float64
}

func (f Tanh) Transform(v float64) float64 {
	return math.Log10(orOne(f.Multiplier) * math.Tanh(v))
}

func (f Tanh) Inverse(t float64) float64 {
	return math.Atanh(math.Pow(10, t) / orOne(f.Multiplier))
}

func (f Tanh) Name() string { return "tanh" }
func (Tanh) function()      {}
