package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/generated"
	"github.com/san-kum/slidescale/internal/scale"
	"github.com/san-kum/slidescale/internal/viz"
)

// SVGOptions control the drawing of a scale. Lengths are in points.
type SVGOptions struct {
	TickHeight    float64
	Margin        float64
	FontSize      float64
	Background    string
	Stroke        string
	ConstantColor string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		TickHeight:    24,
		Margin:        16,
		FontSize:      7,
		Background:    "#ffffff",
		Stroke:        "#000000",
		ConstantColor: "#c00000",
	}
}

// ThemedSVGOptions takes its colors from a terminal theme.
func ThemedSVGOptions(t viz.Theme) SVGOptions {
	o := DefaultSVGOptions()
	o.Background = string(t.Background)
	o.Stroke = string(t.Primary)
	o.ConstantColor = string(t.Constant)
	return o
}

type svgWriter struct {
	sb   strings.Builder
	opts SVGOptions
}

func (w *svgWriter) header(width, height float64) {
	fmt.Fprintf(&w.sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.1f" height="%.1f" viewBox="0 0 %.1f %.1f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, w.opts.Background)
}

func (w *svgWriter) line(x0, y0, x1, y1, width float64, color string) {
	fmt.Fprintf(&w.sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>
`, x0, y0, x1, y1, color, width)
}

func (w *svgWriter) text(x, y float64, color, s string) {
	fmt.Fprintf(&w.sb, `<text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" fill="%s">%s</text>
`, x, y, w.opts.FontSize, color, escape(s))
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// ScaleToSVG draws s as a straight rule or a dial, following its layout.
func ScaleToSVG(s *generated.Scale, opts SVGOptions) string {
	w := &svgWriter{opts: opts}
	if s.Definition().Layout().IsCircular() {
		w.dial(s)
	} else {
		w.strip(s)
	}
	w.sb.WriteString("</svg>")
	return w.sb.String()
}

func (w *svgWriter) strip(s *generated.Scale) {
	d := s.Definition()
	o := w.opts
	length := d.Length()
	width := length + 2*o.Margin
	height := o.TickHeight + 2*o.FontSize + 2*o.Margin
	w.header(width, height)

	down := d.TickDirection() == scale.TickDown
	base := o.Margin + o.FontSize + o.TickHeight
	sign := -1.0
	if down {
		base = o.Margin
		sign = 1
	}
	w.line(o.Margin, base, o.Margin+length, base, 0.5, o.Stroke)

	mark := func(t calc.TickMark, color string) {
		x := o.Margin + t.Position*length
		tip := base + sign*t.Style.Length*o.TickHeight
		w.line(x, base, x, tip, t.Style.Width, color)
		if !t.Labeled() {
			return
		}
		y := tip - 2
		if down {
			y = tip + o.FontSize + 1
		}
		w.text(x, y, labelColor(d, color, t), t.Label)
	}
	for _, t := range s.Ticks() {
		mark(t, o.Stroke)
	}
	for _, t := range s.Constants() {
		mark(t, o.ConstantColor)
	}
}

func (w *svgWriter) dial(s *generated.Scale) {
	d := s.Definition()
	o := w.opts
	r := d.Layout().Radius
	size := 2 * (r + o.TickHeight + o.FontSize + o.Margin)
	c := size / 2
	w.header(size, size)

	sign := -1.0
	if d.TickDirection() == scale.TickUp {
		sign = 1
	}
	fmt.Fprintf(&w.sb, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="0.5"/>
`, c, c, r, o.Stroke)

	at := func(radius, deg float64) (float64, float64) {
		rad := calc.Radians(deg)
		return c + radius*math.Sin(rad), c - radius*math.Cos(rad)
	}
	mark := func(t calc.TickMark, color string) {
		tip := r + sign*t.Style.Length*o.TickHeight
		x0, y0 := at(r, t.Angle())
		x1, y1 := at(tip, t.Angle())
		w.line(x0, y0, x1, y1, t.Style.Width, color)
		if !t.Labeled() {
			return
		}
		lx, ly := at(tip+sign*o.FontSize, t.Angle())
		w.text(lx, ly+o.FontSize/3, labelColor(d, color, t), t.Label)
	}
	for _, t := range s.Ticks() {
		mark(t, o.Stroke)
	}
	for _, t := range s.Constants() {
		mark(t, o.ConstantColor)
	}
}

// labelColor uses the definition's label color unless it is the default black,
// which would vanish on dark themes.
func labelColor(d *scale.Definition, stroke string, t calc.TickMark) string {
	if t.Level == calc.ConstantLevel {
		return stroke
	}
	if c := d.LabelColor(); c != "" && c != "black" {
		return c
	}
	return stroke
}

// CanvasToSVG converts a braille canvas to SVG, one circle per dot.
func CanvasToSVG(canvas *viz.Canvas, cell float64, t viz.Theme) string {
	if canvas == nil {
		return ""
	}

	dw, dh := canvas.Dots()
	width, height := float64(dw)*cell, float64(dh)*cell

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, t.Background, t.Primary)

	radius := cell * 0.4
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, float64(x)*cell+cell/2, float64(y)*cell+cell/2, radius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
