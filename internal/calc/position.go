// Package calc converts between scale values and positions and generates the
// tick marks of a scale definition. Every function is pure: results depend
// only on the arguments.
package calc

import (
	"github.com/san-kum/slidescale/internal/scale"
)

// NormalizedPosition maps v to its fractional position along the scale. The
// result is in [0, 1] for values in the domain, whichever direction the scale
// runs. Domain violations yield NaN or ±Inf.
func NormalizedPosition(v float64, d *scale.Definition) float64 {
	fn := d.Function()
	tb := fn.Transform(d.Begin())
	te := fn.Transform(d.End())
	return (fn.Transform(v) - tb) / (te - tb)
}

// Value is the inverse of NormalizedPosition.
func Value(p float64, d *scale.Definition) float64 {
	fn := d.Function()
	tb := fn.Transform(d.Begin())
	te := fn.Transform(d.End())
	return fn.Inverse(tb + p*(te-tb))
}

// PhysicalPosition is the distance in points from the start of the scale:
// along the line for linear layouts, along the arc for circular ones.
func PhysicalPosition(v float64, d *scale.Definition) float64 {
	return NormalizedPosition(v, d) * d.Length()
}

// AngularPosition is the dial angle of v in degrees, 0 at the scale start.
func AngularPosition(v float64, d *scale.Definition) float64 {
	return NormalizedPosition(v, d) * FullTurn
}

// ValueAtAngle is the inverse of AngularPosition.
func ValueAtAngle(deg float64, d *scale.Definition) float64 {
	return Value(deg/FullTurn, d)
}

// ArcLength is the circumference 2πr of a circular layout, 0 for linear ones.
func ArcLength(d *scale.Definition) float64 {
	return d.Layout().Circumference()
}

// ArcDistance is the arc length from the scale start to v.
func ArcDistance(v float64, d *scale.Definition) float64 {
	return Radians(AngularPosition(v, d)) * d.Layout().Radius
}
