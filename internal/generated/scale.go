// Package generated materializes the tick marks of a scale definition once
// and answers spatial queries against them.
//
// A Scale is a read-only snapshot: nothing mutates it after New returns, so
// any number of goroutines may query it without locking. When the definition
// changes, build a new Scale.
package generated

import (
	"math"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/scale"
)

const angleTol = 1e-9

type Scale struct {
	def       *scale.Definition
	alg       calc.Algorithm
	ticks     []calc.TickMark
	angles    []float64
	constants []calc.TickMark
}

func New(d *scale.Definition, alg calc.Algorithm) *Scale {
	s := &Scale{
		def:       d,
		alg:       alg,
		ticks:     calc.GenerateTickMarks(d, alg),
		constants: calc.ConstantMarks(d),
	}
	s.angles = make([]float64, len(s.ticks))
	for i, t := range s.ticks {
		s.angles[i] = s.angleOf(t)
	}
	return s
}

// angleOf folds dial angles into [0, 360) so the start and end of a dial
// compare as the same point. Linear scales keep the raw angle.
func (s *Scale) angleOf(t calc.TickMark) float64 {
	if s.def.Layout().IsCircular() {
		return calc.NormalizeDegrees(t.Angle())
	}
	return t.Angle()
}

func (s *Scale) Definition() *scale.Definition { return s.def }
func (s *Scale) Algorithm() calc.Algorithm     { return s.alg }
func (s *Scale) Len() int                      { return len(s.ticks) }

// Ticks returns the tick marks in generation order.
func (s *Scale) Ticks() []calc.TickMark {
	return append([]calc.TickMark(nil), s.ticks...)
}

func (s *Scale) Constants() []calc.TickMark {
	return append([]calc.TickMark(nil), s.constants...)
}

func (s *Scale) LabeledTicks() []calc.TickMark {
	var out []calc.TickMark
	for _, t := range s.ticks {
		if t.Labeled() {
			out = append(out, t)
		}
	}
	return out
}

// NearestTickToAngle returns the tick closest to deg, measuring around the
// dial. On a tie the earlier tick in generation order wins.
func (s *Scale) NearestTickToAngle(deg float64) (calc.TickMark, bool) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return calc.TickMark{}, false
	}
	return s.nearest(func(i int) float64 {
		return calc.WrapDistance(s.angles[i], deg, calc.FullTurn)
	})
}

// NearestTickToPosition returns the tick closest to the normalized position
// p. Dials measure around the wrap point; linear scales measure directly.
// Ties go to the earlier tick in generation order.
func (s *Scale) NearestTickToPosition(p float64) (calc.TickMark, bool) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return calc.TickMark{}, false
	}
	circular := s.def.Layout().IsCircular()
	return s.nearest(func(i int) float64 {
		if circular {
			return calc.WrapDistance(s.ticks[i].Position, p, 1)
		}
		return math.Abs(s.ticks[i].Position - p)
	})
}

func (s *Scale) nearest(dist func(i int) float64) (calc.TickMark, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i := range s.ticks {
		if d := dist(i); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return calc.TickMark{}, false
	}
	return s.ticks[best], true
}

// TicksInAngularRange returns the ticks whose angle lies in the closed range
// [lo, hi], in generation order. The range must not wrap: lo > hi yields nil,
// use TicksInWrappingRange for ranges that cross 0°. A zero-width range
// yields at most one tick.
func (s *Scale) TicksInAngularRange(lo, hi float64) []calc.TickMark {
	if !(lo <= hi) {
		return nil
	}
	var out []calc.TickMark
	for i, a := range s.angles {
		if a < lo-angleTol || a > hi+angleTol {
			continue
		}
		out = append(out, s.ticks[i])
		if lo == hi {
			break
		}
	}
	return out
}

// TicksInWrappingRange returns the ticks between from and to, sweeping
// clockwise. When the sweep crosses 360° it is split into [from, 360] and
// [0, to] and the results are concatenated.
func (s *Scale) TicksInWrappingRange(from, to float64) []calc.TickMark {
	if to-from >= calc.FullTurn {
		return s.TicksInAngularRange(0, calc.FullTurn)
	}
	from, to = calc.NormalizeDegrees(from), calc.NormalizeDegrees(to)
	if from <= to {
		return s.TicksInAngularRange(from, to)
	}
	return append(s.TicksInAngularRange(from, calc.FullTurn), s.TicksInAngularRange(0, to)...)
}

// TicksInRange returns the ticks whose normalized position lies in [lo, hi].
func (s *Scale) TicksInRange(lo, hi float64) []calc.TickMark {
	if !(lo <= hi) {
		return nil
	}
	var out []calc.TickMark
	for _, t := range s.ticks {
		if t.Position >= lo-angleTol && t.Position <= hi+angleTol {
			out = append(out, t)
		}
	}
	return out
}
