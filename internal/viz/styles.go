package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/generated"
	"github.com/san-kum/slidescale/internal/precision"
	"github.com/san-kum/slidescale/internal/scale"
)

type Styles struct {
	Header   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Constant lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
	Strip    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Label:    lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Constant: lipgloss.NewStyle().Foreground(t.Constant).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Strip: lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// Field renders one "label value" line of a readout.
func (st Styles) Field(label, value string) string {
	return st.Label.Render(label) + st.Value.Render(value)
}

// TickTable renders ticks as aligned columns. Values use the readout
// precision of the scale; constants are highlighted.
func (st Styles) TickTable(s *generated.Scale, ticks []calc.TickMark) string {
	d := s.Definition()
	header := fmt.Sprintf("%-12s %-10s %-10s %-8s %-5s %s", "value", "position", "angle", "physical", "level", "label")

	var b strings.Builder
	b.WriteString(st.Header.Render(header))
	b.WriteByte('\n')
	for _, t := range ticks {
		level := fmt.Sprint(t.Level)
		if t.Level == calc.ConstantLevel {
			level = "c"
		}
		line := fmt.Sprintf("%-12s %-10.6f %-10.4f %-8.2f %-5s %s",
			precision.Format(t.Value, d), t.Position, t.Angle(), t.Position*d.Length(), level, t.Label)
		if t.Level == calc.ConstantLevel {
			b.WriteString(st.Constant.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Drawing frames a rendered scale with its label row and a caption.
func (st Styles) Drawing(s *generated.Scale, width int) string {
	d := s.Definition()
	body := st.Strip.Render(strings.TrimRight(Render(s, width).String(), "\n"))
	if !d.Layout().IsCircular() {
		labels := LabelRow(s, width)
		if d.TickDirection() == scale.TickUp {
			body += "\n" + labels
		} else {
			body = labels + "\n" + body
		}
	}
	caption := st.Muted.Render(fmt.Sprintf("%s  %s  %s", d.Name(), d.Function().Name(), d.Layout().Kind))
	return st.Panel.Render(caption + "\n" + body)
}
