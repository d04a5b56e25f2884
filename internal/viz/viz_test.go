package viz

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/generated"
	"github.com/san-kum/slidescale/internal/scale"
	"github.com/san-kum/slidescale/internal/scalefunc"
)

func cScale(t *testing.T, opts ...scale.Option) *generated.Scale {
	t.Helper()
	opts = append([]scale.Option{
		scale.WithSubsections(
			scale.Subsection{Start: 1, Intervals: []float64{1, 0.1, 0.05, 0.01}, Labels: []int{0, 1}},
			scale.Subsection{Start: 2, Intervals: []float64{1, 0.5, 0.1, 0.02}, Labels: []int{0}},
			scale.Subsection{Start: 4, Intervals: []float64{1, 0.5, 0.1, 0.05}, Labels: []int{0}},
		),
		scale.WithConstants(scale.Constant{Label: "π", Value: 3.141592653589793}),
	}, opts...)
	d, err := scale.New("C", scalefunc.Log{}, 1, 10, opts...)
	if err != nil {
		t.Fatalf("new scale: %v", err)
	}
	return generated.New(d, calc.Modulo)
}

func TestCanvas_SetAndBounds(t *testing.T) {
	c := NewCanvas(4, 2)
	w, h := c.Dots()
	if w != 8 || h != 8 {
		t.Fatalf("expected 8x8 dots, got %dx%d", w, h)
	}

	c.Set(3, 5)
	c.Set(-1, 0)
	c.Set(100, 100)
	if !c.IsSet(3, 5) {
		t.Error("expected dot (3,5) set")
	}
	if c.IsSet(2, 5) {
		t.Error("neighbour should stay clear")
	}

	c.Clear()
	if c.IsSet(3, 5) {
		t.Error("clear should reset every dot")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 11)
	if !c.IsSet(0, 0) || !c.IsSet(19, 11) {
		t.Error("line endpoints should be drawn")
	}
	if lines := strings.Count(c.String(), "\n"); lines != 3 {
		t.Errorf("expected 3 rows, got %d", lines)
	}
}

func TestStrip_BaselineAndTicks(t *testing.T) {
	s := cScale(t)
	c := Strip(s, 60, 3)
	w, h := c.Dots()

	for x := 0; x < w; x++ {
		if !c.IsSet(x, h-1) {
			t.Fatalf("baseline missing at x=%d", x)
		}
	}
	// Primary ticks span the full height.
	if !c.IsSet(0, 0) || !c.IsSet(w-1, 0) {
		t.Error("expected full-height ticks at both ends")
	}
}

func TestStrip_DownwardTicks(t *testing.T) {
	s := cScale(t, scale.WithTickDirection(scale.TickDown))
	c := Strip(s, 60, 3)
	w, h := c.Dots()

	if !c.IsSet(w/2, 0) {
		t.Error("baseline should run along the top")
	}
	if !c.IsSet(0, h-1) {
		t.Error("primary tick at the start should reach the bottom")
	}
}

func TestDial(t *testing.T) {
	s := cScale(t, scale.WithCircular(50))
	c := Render(s, 40)

	if c.Width != 40 || c.Height != 20 {
		t.Fatalf("expected 40x20 cells, got %dx%d", c.Width, c.Height)
	}
	blank := string(rune(brailleBlank))
	if strings.Trim(strings.ReplaceAll(c.String(), "\n", ""), blank) == "" {
		t.Error("dial should not be blank")
	}
}

func TestLabelRow(t *testing.T) {
	s := cScale(t)
	row := LabelRow(s, 100)

	if n := utf8.RuneCountInString(row); n != 100 {
		t.Fatalf("expected 100 columns, got %d", n)
	}
	if !strings.HasPrefix(row, "1 ") {
		t.Errorf("expected row to start with 1, got %q", row)
	}
	if !strings.HasSuffix(strings.TrimRight(row, " "), "10") {
		t.Errorf("expected row to end with 10, got %q", row)
	}
	if !strings.Contains(row, "5") {
		t.Errorf("expected primary label 5, got %q", row)
	}
}

func TestMarkerRow(t *testing.T) {
	row := []rune(MarkerRow(0.5, 11))
	if row[5] != '▲' {
		t.Errorf("expected marker at column 5, got %q", string(row))
	}
	if strings.ContainsRune(MarkerRow(2, 11), '▲') {
		t.Error("marker past the end should not be drawn")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("mono").Name != "mono" {
		t.Error("expected mono theme")
	}
	if GetTheme("nonexistent").Name != ThemeDefault.Name {
		t.Error("unknown theme should fall back to default")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}

func TestTickTable(t *testing.T) {
	s := cScale(t)
	st := NewStyles(ThemeMono)
	out := st.TickTable(s, append(s.LabeledTicks(), s.Constants()...))

	if !strings.Contains(out, "position") {
		t.Error("expected header")
	}
	if !strings.Contains(out, "π") {
		t.Error("expected constant row")
	}
	if !strings.Contains(out, "3.142") {
		t.Errorf("expected π at the C scale precision, got %q", out)
	}
}
