package viz

import (
	"math"
	"sort"
	"strings"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/generated"
	"github.com/san-kum/slidescale/internal/scale"
)

// dialTickFraction is the longest dial tick as a fraction of the dial radius.
const dialTickFraction = 0.15

// Strip draws a linear scale on a canvas of width x height characters. The
// baseline sits at the bottom for upward ticks and at the top for downward ones.
func Strip(s *generated.Scale, width, height int) *Canvas {
	c := NewCanvas(width, height)
	w, h := c.Dots()
	down := s.Definition().TickDirection() == scale.TickDown

	base := h - 1
	if down {
		base = 0
	}
	c.DrawLine(0, base, w-1, base)

	for _, t := range s.Ticks() {
		x := dotColumn(t.Position, w)
		n := int(math.Round(t.Style.Length * float64(h-1)))
		if down {
			c.DrawLine(x, base, x, base+n)
		} else {
			c.DrawLine(x, base, x, base-n)
		}
	}
	return c
}

// Dial draws a circular scale as a ring of radial ticks, clockwise from the
// top. width is in characters; the canvas is roughly square in dots.
func Dial(s *generated.Scale, width int) *Canvas {
	c := NewCanvas(width, max(width/2, 1))
	w, h := c.Dots()
	cx, cy := float64(w-1)/2, float64(h-1)/2
	outer := math.Min(cx, cy)
	tickMax := dialTickFraction * outer

	ring := outer
	sign := -1.0
	if s.Definition().TickDirection() == scale.TickUp {
		ring = outer - tickMax
		sign = 1
	}

	steps := int(math.Max(360, 8*ring))
	for i := 0; i < steps; i++ {
		x, y := polar(cx, cy, ring, float64(i)*calc.FullTurn/float64(steps))
		c.Set(x, y)
	}

	for _, t := range s.Ticks() {
		x0, y0 := polar(cx, cy, ring, t.Angle())
		x1, y1 := polar(cx, cy, ring+sign*t.Style.Length*tickMax, t.Angle())
		c.DrawLine(x0, y0, x1, y1)
	}
	return c
}

// Render draws s the way its layout asks for.
func Render(s *generated.Scale, width int) *Canvas {
	if s.Definition().Layout().IsCircular() {
		return Dial(s, width)
	}
	return Strip(s, width, 3)
}

func polar(cx, cy, r, deg float64) (int, int) {
	rad := calc.Radians(deg)
	return int(math.Round(cx + r*math.Sin(rad))), int(math.Round(cy - r*math.Cos(rad)))
}

func dotColumn(p float64, w int) int {
	return int(math.Round(p * float64(w-1)))
}

func charColumn(p float64, width int) int {
	return int(math.Round(p * float64(width-1)))
}

// LabelRow places tick labels and constants under a strip of the given
// width. A label that would touch its left neighbour is skipped.
func LabelRow(s *generated.Scale, width int) string {
	row := []rune(strings.Repeat(" ", width))
	next := 0
	place := func(t calc.TickMark) {
		label := []rune(t.Label)
		start := charColumn(t.Position, width) - len(label)/2
		start = min(max(start, 0), width-len(label))
		if start < next || start < 0 {
			return
		}
		copy(row[start:], label)
		next = start + len(label) + 1
	}

	marks := append(s.LabeledTicks(), s.Constants()...)
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].Position < marks[j].Position })
	for _, t := range marks {
		place(t)
	}
	return string(row)
}

// MarkerRow points at position p along a strip of the given width.
func MarkerRow(p float64, width int) string {
	row := []rune(strings.Repeat(" ", width))
	if col := charColumn(p, width); col >= 0 && col < width {
		row[col] = '▲'
	}
	return string(row)
}
