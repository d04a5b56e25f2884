package scale

import (
	"math"
	"strconv"

	"github.com/san-kum/slidescale/internal/scalefunc"
)

const DefaultLength = 250.0

// Definition describes one scale. It is immutable once New returns it; the
// accessors hand out copies, and the With* methods build a new definition.
type Definition struct {
	name        string
	fn          scalefunc.Function
	begin, end  float64
	layout      Layout
	direction   TickDirection
	subsections []Subsection
	tickStyles  []TickStyle
	formatter   LabelFormatter
	labelColor  string
	constants   []Constant
}

type Option func(*Definition)

func WithLength(length float64) Option {
	return func(d *Definition) { d.layout = Linear(length) }
}

func WithCircular(radius float64) Option {
	return func(d *Definition) { d.layout = Circular(radius) }
}

func WithTickDirection(dir TickDirection) Option {
	return func(d *Definition) { d.direction = dir }
}

func WithSubsections(subs ...Subsection) Option {
	return func(d *Definition) {
		d.subsections = make([]Subsection, len(subs))
		for i, s := range subs {
			d.subsections[i] = s.clone()
		}
	}
}

func WithConstants(consts ...Constant) Option {
	return func(d *Definition) { d.constants = append([]Constant(nil), consts...) }
}

func WithTickStyles(styles ...TickStyle) Option {
	return func(d *Definition) { d.tickStyles = append([]TickStyle(nil), styles...) }
}

func WithLabelFormatter(f LabelFormatter) Option {
	return func(d *Definition) { d.formatter = f }
}

func WithLabelColor(color string) Option {
	return func(d *Definition) { d.labelColor = color }
}

// New builds and validates a definition. Configuration violations are
// returned as a *ConfigError wrapping one of the package's sentinel errors.
func New(name string, fn scalefunc.Function, begin, end float64, opts ...Option) (*Definition, error) {
	d := &Definition{
		name:       name,
		fn:         fn,
		begin:      begin,
		end:        end,
		layout:     Linear(DefaultLength),
		tickStyles: append([]TickStyle(nil), DefaultTickStyles...),
		formatter:  DefaultFormatter,
		labelColor: "black",
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func DefaultFormatter(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (d *Definition) fail(field string, err error) error {
	return &ConfigError{Scale: d.name, Field: field, Err: err}
}

func (d *Definition) validate() error {
	if d.name == "" {
		return d.fail("name", ErrEmptyName)
	}
	if d.fn == nil {
		return d.fail("function", ErrNilFunction)
	}

	tb, te := d.fn.Transform(d.begin), d.fn.Transform(d.end)
	if !scalefunc.IsFinite(d.begin) || !scalefunc.IsFinite(d.end) ||
		!scalefunc.IsFinite(tb) || !scalefunc.IsFinite(te) || tb == te {
		return d.fail("domain", ErrDegenerateDomain)
	}

	switch d.layout.Kind {
	case LayoutCircular:
		if !(d.layout.Radius > 0) || math.IsInf(d.layout.Radius, 0) {
			return d.fail("radius", ErrInvalidRadius)
		}
	default:
		if !(d.layout.Length > 0) || math.IsInf(d.layout.Length, 0) {
			return d.fail("length", ErrInvalidLength)
		}
	}

	if len(d.subsections) == 0 {
		return d.fail("subsections", ErrNoSubsections)
	}
	lo, _ := d.Bounds()
	if first := d.subsections[0].Start; first > lo+1e-9*math.Max(1, math.Abs(lo)) {
		return d.fail("subsections", ErrSubsectionGap)
	}
	for i, s := range d.subsections {
		if i > 0 && !(s.Start > d.subsections[i-1].Start) {
			return d.fail("subsections", ErrUnorderedSubsections)
		}
		if _, ok := s.Finest(); !ok {
			return d.fail("subsections", ErrEmptySubsection)
		}
		for _, iv := range s.Intervals {
			if iv < 0 || !scalefunc.IsFinite(iv) {
				return d.fail("intervals", ErrInvalidInterval)
			}
		}
		for _, l := range s.Labels {
			if l < 0 || l >= len(s.Intervals) {
				return d.fail("labels", ErrInvalidLabelLevel)
			}
		}
	}
	return nil
}

func (d *Definition) Name() string                 { return d.name }
func (d *Definition) Function() scalefunc.Function { return d.fn }
func (d *Definition) Begin() float64               { return d.begin }
func (d *Definition) End() float64                 { return d.end }
func (d *Definition) Layout() Layout               { return d.layout }
func (d *Definition) TickDirection() TickDirection { return d.direction }
func (d *Definition) LabelColor() string           { return d.labelColor }

// Bounds returns the domain as (min, max), whichever way the scale runs.
func (d *Definition) Bounds() (lo, hi float64) {
	if d.begin <= d.end {
		return d.begin, d.end
	}
	return d.end, d.begin
}

// Contains reports whether v lies in the closed domain.
func (d *Definition) Contains(v float64) bool {
	lo, hi := d.Bounds()
	return v >= lo && v <= hi
}

// Inverted reports whether the scale runs from a larger to a smaller value.
func (d *Definition) Inverted() bool { return d.begin > d.end }

// Length is the physical length in points: the straight length of a linear
// scale or the circumference of a dial.
func (d *Definition) Length() float64 {
	if d.layout.IsCircular() {
		return d.layout.Circumference()
	}
	return d.layout.Length
}

func (d *Definition) Subsections() []Subsection {
	out := make([]Subsection, len(d.subsections))
	for i, s := range d.subsections {
		out[i] = s.clone()
	}
	return out
}

// SubsectionAt returns the last subsection whose start is at or below v.
func (d *Definition) SubsectionAt(v float64) (Subsection, bool) {
	idx := -1
	for i, s := range d.subsections {
		if s.Start > v {
			break
		}
		idx = i
	}
	if idx < 0 {
		return Subsection{}, false
	}
	return d.subsections[idx].clone(), true
}

func (d *Definition) Constants() []Constant {
	return append([]Constant(nil), d.constants...)
}

// TickStyle returns the style for a tick level, reusing the finest declared
// style for deeper levels.
func (d *Definition) TickStyle(level int) TickStyle {
	if len(d.tickStyles) == 0 {
		return TickStyle{}
	}
	if level < 0 {
		level = 0
	}
	if level >= len(d.tickStyles) {
		level = len(d.tickStyles) - 1
	}
	return d.tickStyles[level]
}

func (d *Definition) FormatLabel(v float64) string {
	if d.formatter == nil {
		return DefaultFormatter(v)
	}
	return d.formatter(v)
}

// WithLength returns a validated copy laid out as a straight scale of the
// given length.
func (d *Definition) WithLength(length float64) (*Definition, error) {
	c := d.copy()
	c.layout = Linear(length)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WithRadius returns a validated copy laid out as a dial of the given radius.
func (d *Definition) WithRadius(radius float64) (*Definition, error) {
	c := d.copy()
	c.layout = Circular(radius)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *Definition) copy() *Definition {
	c := *d
	c.subsections = d.Subsections()
	c.constants = d.Constants()
	c.tickStyles = append([]TickStyle(nil), d.tickStyles...)
	return &c
}
