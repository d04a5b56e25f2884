// Package precision derives how many decimals a cursor readout should show
// from the finest tick interval drawn where the cursor sits.
package precision

import (
	"math"
	"strconv"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/scale"
	"github.com/san-kum/slidescale/internal/scalefunc"
)

const (
	MinDecimals     = 1
	MaxDecimals     = 5
	DefaultDecimals = 2
)

// Placeholder is shown instead of a non-finite readout.
const Placeholder = "—"

// DecimalPlaces returns the display precision for value v on d. Values outside
// the domain, or in a region without any tick interval, get DefaultDecimals.
func DecimalPlaces(v float64, d *scale.Definition) int {
	if !d.Contains(v) {
		return DefaultDecimals
	}
	sub, ok := d.SubsectionAt(v)
	if !ok {
		return DefaultDecimals
	}
	finest, ok := sub.Finest()
	if !ok {
		return DefaultDecimals
	}
	return ForInterval(finest)
}

// AtPosition is DecimalPlaces for the value under normalized position p.
func AtPosition(p float64, d *scale.Definition) int {
	return DecimalPlaces(calc.Value(p, d), d)
}

// ForInterval converts a tick interval to decimal places: enough digits to
// write the interval plus one for reading between marks, clamped to [1, 5].
// Intervals that are not positive and finite get DefaultDecimals.
func ForInterval(interval float64) int {
	if !(interval > 0) || math.IsInf(interval, 1) {
		return DefaultDecimals
	}
	if interval >= 1 {
		return MinDecimals
	}
	// math.Log10 of an exact power of ten can land a hair below the integer.
	places := -int(math.Floor(math.Log10(interval)+1e-9)) + 1
	return min(max(places, MinDecimals), MaxDecimals)
}

// Format renders v with the precision DecimalPlaces picks for it.
func Format(v float64, d *scale.Definition) string {
	if !scalefunc.IsFinite(v) {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', DecimalPlaces(v, d), 64)
}
