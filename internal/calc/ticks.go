package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/slidescale/internal/scale"
	"github.com/san-kum/slidescale/internal/scalefunc"
)

// ConstantLevel is the Level of constant markers, which sit outside the
// interval hierarchy.
const ConstantLevel = -1

const (
	divisibilityTol = 1e-6
	boundaryTol     = 1e-9
	positionTol     = 1e-9
)

var ErrUnknownAlgorithm = errors.New("calc: unknown tick algorithm")

// Algorithm selects how the interval hierarchy turns into tick marks.
type Algorithm int

const (
	// Modulo steps each subsection by its finest interval and gives every
	// value to the coarsest interval that divides it. Each value appears once.
	Modulo Algorithm = iota
	// PerLevel emits every multiple of every interval as its own tick, so a
	// value that divides several intervals appears once per level. Kept for
	// compatibility with legacy renderings.
	PerLevel
)

func (a Algorithm) String() string {
	switch a {
	case Modulo:
		return "modulo"
	case PerLevel:
		return "per-level"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modulo", "mod":
		return Modulo, nil
	case "per-level", "perlevel", "legacy":
		return PerLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

type TickMark struct {
	Value    float64
	Position float64
	Level    int
	Style    scale.TickStyle
	Label    string
}

// Angle is the dial angle of the tick in degrees.
func (t TickMark) Angle() float64 { return t.Position * FullTurn }

func (t TickMark) Labeled() bool { return t.Label != "" }

// span is the part of the domain a subsection owns: [lo, hi) for every
// subsection but the one holding the end of the domain, which owns [lo, hi].
type span struct {
	sub    scale.Subsection
	lo, hi float64
	closed bool
}

func spans(d *scale.Definition) []span {
	lo, hi := d.Bounds()
	subs := d.Subsections()

	out := make([]span, 0, len(subs))
	for i, s := range subs {
		if s.Start > hi {
			break
		}
		sp := span{sub: s, lo: math.Max(s.Start, lo), hi: hi, closed: true}
		if i+1 < len(subs) && subs[i+1].Start <= hi {
			sp.hi = subs[i+1].Start
			sp.closed = false
		}
		if sp.hi < sp.lo || (!sp.closed && sp.hi == sp.lo) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// multiples returns the multiples of step inside the span. Values are built
// from integer multiples and snapped, so no error accumulates along the span.
func (sp span) multiples(step float64) []float64 {
	kLo := math.Ceil(sp.lo/step - boundaryTol)
	kHi := math.Floor(sp.hi/step + boundaryTol)
	if kHi < kLo {
		return nil
	}

	out := make([]float64, 0, int(kHi-kLo)+1)
	for k := kLo; k <= kHi; k++ {
		v := snap(k * step)
		if !sp.closed && v >= sp.hi-boundaryTol*step {
			break
		}
		out = append(out, v)
	}
	return out
}

// snap rounds to 12 significant digits, removing representation noise such
// as 0.30000000000000004.
func snap(v float64) float64 {
	s, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if err != nil {
		return v
	}
	if s == 0 {
		return 0 // no negative zero
	}
	return s
}

func divides(v, interval float64) bool {
	r := v / interval
	return math.Abs(r-math.Round(r)) < divisibilityTol
}

// GenerateTickMarks produces the tick marks of d with the given algorithm,
// ordered by subsection and, within a subsection, by value (Modulo) or by
// level then value (PerLevel). An unknown algorithm yields no ticks.
func GenerateTickMarks(d *scale.Definition, alg Algorithm) []TickMark {
	var ticks []TickMark
	for _, sp := range spans(d) {
		switch alg {
		case Modulo:
			ticks = appendModulo(ticks, d, sp)
		case PerLevel:
			ticks = appendPerLevel(ticks, d, sp)
		default:
			return nil
		}
	}
	if d.Layout().IsCircular() {
		ticks = dropWrappedEnd(ticks)
	}
	return ticks
}

func appendModulo(ticks []TickMark, d *scale.Definition, sp span) []TickMark {
	finest, ok := sp.sub.Finest()
	if !ok {
		return ticks
	}
	for _, v := range sp.multiples(finest) {
		for level, iv := range sp.sub.Intervals {
			if iv <= 0 || !divides(v, iv) {
				continue
			}
			ticks = appendTick(ticks, d, sp.sub, v, level)
			break
		}
	}
	return ticks
}

func appendPerLevel(ticks []TickMark, d *scale.Definition, sp span) []TickMark {
	for level, iv := range sp.sub.Intervals {
		if iv <= 0 {
			continue
		}
		for _, v := range sp.multiples(iv) {
			ticks = appendTick(ticks, d, sp.sub, v, level)
		}
	}
	return ticks
}

func appendTick(ticks []TickMark, d *scale.Definition, sub scale.Subsection, v float64, level int) []TickMark {
	p := NormalizedPosition(v, d)
	if !scalefunc.IsFinite(p) {
		return ticks
	}
	t := TickMark{
		Value:    v,
		Position: p,
		Level:    level,
		Style:    d.TickStyle(level),
	}
	if sub.Labeled(level) {
		t.Label = d.FormatLabel(v)
	}
	return append(ticks, t)
}

// dropWrappedEnd removes ticks at position 1 on a dial when the start of the
// dial is already ticked, since 0° and 360° are the same point.
func dropWrappedEnd(ticks []TickMark) []TickMark {
	hasStart := false
	for _, t := range ticks {
		if math.Abs(t.Position) < positionTol {
			hasStart = true
			break
		}
	}
	if !hasStart {
		return ticks
	}
	out := ticks[:0]
	for _, t := range ticks {
		if math.Abs(t.Position-1) < positionTol {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ConstantMarks returns a labeled marker for every constant inside the domain.
func ConstantMarks(d *scale.Definition) []TickMark {
	var marks []TickMark
	for _, c := range d.Constants() {
		if !d.Contains(c.Value) {
			continue
		}
		p := NormalizedPosition(c.Value, d)
		if !scalefunc.IsFinite(p) {
			continue
		}
		marks = append(marks, TickMark{
			Value:    c.Value,
			Position: p,
			Level:    ConstantLevel,
			Style:    d.TickStyle(0),
			Label:    c.Label,
		})
	}
	return marks
}
