package scale

import "math"

type LayoutKind int

const (
	LayoutLinear LayoutKind = iota
	LayoutCircular
)

func (k LayoutKind) String() string {
	if k == LayoutCircular {
		return "circular"
	}
	return "linear"
}

// Layout is either a straight scale of a given length or a dial of a given
// radius. Only the radius is stored for dials, so the diameter is always
// exactly twice the radius.
type Layout struct {
	Kind   LayoutKind
	Length float64
	Radius float64
}

func Linear(length float64) Layout {
	return Layout{Kind: LayoutLinear, Length: length}
}

func Circular(radius float64) Layout {
	return Layout{Kind: LayoutCircular, Radius: radius}
}

func (l Layout) IsCircular() bool { return l.Kind == LayoutCircular }

func (l Layout) Diameter() float64 { return 2 * l.Radius }

// Circumference is the arc length of a full turn, 0 for linear layouts.
func (l Layout) Circumference() float64 {
	if !l.IsCircular() {
		return 0
	}
	return 2 * math.Pi * l.Radius
}

type TickDirection int

const (
	TickUp TickDirection = iota
	TickDown
)

func (d TickDirection) String() string {
	if d == TickDown {
		return "down"
	}
	return "up"
}

// Subsection is one row of a tick table. Intervals run coarsest to finest
// (primary, secondary, tertiary, quaternary); a zero entry marks an absent
// level. Labels lists the interval indices whose ticks carry a label.
type Subsection struct {
	Start     float64
	Intervals []float64
	Labels    []int
}

// Finest returns the finest present interval, scanning from the finest level
// towards the coarsest.
func (s Subsection) Finest() (float64, bool) {
	for i := len(s.Intervals) - 1; i >= 0; i-- {
		if s.Intervals[i] > 0 {
			return s.Intervals[i], true
		}
	}
	return 0, false
}

func (s Subsection) Labeled(level int) bool {
	for _, l := range s.Labels {
		if l == level {
			return true
		}
	}
	return false
}

func (s Subsection) clone() Subsection {
	c := Subsection{Start: s.Start}
	c.Intervals = append([]float64(nil), s.Intervals...)
	c.Labels = append([]int(nil), s.Labels...)
	return c
}

// Constant is a labeled marker at a fixed value, such as π or e.
type Constant struct {
	Label string
	Value float64
}

// TickStyle describes how a tick level is drawn. Length is a fraction of the
// scale height, Width is in points.
type TickStyle struct {
	Length float64
	Width  float64
}

var DefaultTickStyles = []TickStyle{
	{Length: 1.0, Width: 0.8},
	{Length: 0.75, Width: 0.6},
	{Length: 0.55, Width: 0.5},
	{Length: 0.4, Width: 0.4},
}

type LabelFormatter func(v float64) string
