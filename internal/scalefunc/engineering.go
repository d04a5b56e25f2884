package scalefunc

import "math"

// PythagoreanH is log10(√(1+x²)), defined for x ≥ 0.
type PythagoreanH struct{}

func (PythagoreanH) Transform(v float64) float64 {
	return math.Log10(math.Sqrt(1 + v*v))
}

func (PythagoreanH) Inverse(t float64) float64 {
	return math.Sqrt(math.Pow(10, 2*t) - 1)
}

func (PythagoreanH) Name() string { return "pyth_h" }
func (PythagoreanH) function()    {}

// PythagoreanP is log10(√(1−x²)) on [0, 1). P(1) is -Inf, |x| > 1 is NaN.
type PythagoreanP struct{}

func (PythagoreanP) Transform(v float64) float64 {
	return math.Log10(math.Sqrt(1 - v*v))
}

func (PythagoreanP) Inverse(t float64) float64 {
	return math.Sqrt(1 - math.Pow(10, 2*t))
}

func (PythagoreanP) Name() string { return "pyth_p" }
func (PythagoreanP) function()    {}

// Reactance reads capacitive reactance against frequency·capacitance:
// log10(1/(2πx)).
type Reactance struct{}

func (Reactance) Transform(v float64) float64 {
	return math.Log10(1 / (2 * math.Pi * v))
}

func (Reactance) Inverse(t float64) float64 {
	return 1 / (2 * math.Pi * math.Pow(10, t))
}

func (Reactance) Name() string { return "reactance" }
func (Reactance) function()    {}

// Impedance is log10(√(R²+x²)) for a series resistance R and reactance x.
type Impedance struct {
	Resistance float64
}

func (f Impedance) Transform(v float64) float64 {
	r := orOne(f.Resistance)
	return math.Log10(math.Sqrt(r*r + v*v))
}

func (f Impedance) Inverse(t float64) float64 {
	r := orOne(f.Resistance)
	return math.Sqrt(math.Pow(10, 2*t) - r*r)
}

func (f Impedance) Name() string { return "impedance" }
func (Impedance) function()      {}

// PowerRatio places decibels: log10(10^(dB/10)), which reduces to dB/10.
type PowerRatio struct{}

func (PowerRatio) Transform(v float64) float64 { return v / 10 }
func (PowerRatio) Inverse(t float64) float64   { return 10 * t }
func (PowerRatio) Name() string                { return "power_ratio" }
func (PowerRatio) function()                   {}

// ReflectionCoefficient maps a standing wave ratio s to log10((s−1)/(s+1)).
// s = 1 is -Inf and s < 1 is NaN.
type ReflectionCoefficient struct{}

func (ReflectionCoefficient) Transform(v float64) float64 {
	return math.Log10((v - 1) / (v + 1))
}

func (ReflectionCoefficient) Inverse(t float64) float64 {
	g := math.Pow(10, t)
	return (1 + g) / (1 - g)
}

func (ReflectionCoefficient) Name() string { return "reflection" }
func (ReflectionCoefficient) function()    {}
