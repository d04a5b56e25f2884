package calc

import "math"

const FullTurn = 360.0

func Radians(deg float64) float64 { return deg * math.Pi / 180 }

func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeDegrees folds an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, FullTurn)
	if deg < 0 {
		deg += FullTurn
	}
	if deg >= FullTurn {
		deg = 0
	}
	return deg
}

// WrapDistance is the shorter of the direct and the around-the-far-side
// distance between a and b on a domain with the given period.
func WrapDistance(a, b, period float64) float64 {
	d := math.Mod(math.Abs(a-b), period)
	return math.Min(d, period-d)
}
