package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/catalog"
	"github.com/san-kum/slidescale/internal/config"
	"github.com/san-kum/slidescale/internal/export"
	"github.com/san-kum/slidescale/internal/generated"
	"github.com/san-kum/slidescale/internal/precision"
	"github.com/san-kum/slidescale/internal/scalefunc"
	"github.com/san-kum/slidescale/internal/viz"
)

var errCheckFailed = errors.New("catalog check failed")

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

// show formats a computed number, using the placeholder for domain violations.
func show(v float64, format string) string {
	if !scalefunc.IsFinite(v) {
		return precision.Placeholder
	}
	return fmt.Sprintf(format, v)
}

func listScales(cmd *cobra.Command, args []string) error {
	if ok, _ := cmd.Flags().GetBool("functions"); ok {
		for _, name := range catalog.NewRegistry().ListFunctions() {
			fmt.Println(name)
		}
		return nil
	}
	if ok, _ := cmd.Flags().GetBool("presets"); ok {
		for _, name := range config.ListPresets() {
			p := config.GetPreset(name)
			fmt.Printf("  %-8s length=%s radius=%s\n", name, humanize.Ftoa(p.Length), humanize.Ftoa(p.Radius))
		}
		return nil
	}

	a := current
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFUNCTION\tDOMAIN\tLAYOUT\tLENGTH\tTICKS")

	scales := make([]*generated.Scale, 0, a.cat.Len())
	for _, name := range a.cat.List() {
		d, err := a.definition(name)
		if err != nil {
			return err
		}
		scales = append(scales, generated.New(d, a.alg))
	}

	total := 0
	for _, s := range scales {
		d := s.Definition()
		total += s.Len()
		fmt.Fprintf(w, "%s\t%s\t[%s, %s]\t%s\t%s\t%s\n",
			d.Name(),
			d.Function().Name(),
			d.FormatLabel(d.Begin()),
			d.FormatLabel(d.End()),
			d.Layout().Kind,
			humanize.Ftoa(math.Round(d.Length()*100)/100),
			humanize.Comma(int64(s.Len())),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d scales, %s ticks (%s)\n", len(scales), humanize.Comma(int64(total)), a.alg)
	return nil
}

func printTicks(cmd *cobra.Command, args []string) error {
	a := current
	s, err := a.scale(args[0])
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := export.WriteFile(out, s); err != nil {
			return err
		}
		log.WithFields(log.Fields{"scale": s.Definition().Name(), "file": out, "ticks": s.Len()}).Info("exported")
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "table" {
		return export.Write(os.Stdout, s, format)
	}

	ticks := s.Ticks()
	if labeled, _ := cmd.Flags().GetBool("labeled"); labeled {
		ticks = s.LabeledTicks()
	}
	ticks = append(ticks, s.Constants()...)
	fmt.Print(a.styles.TickTable(s, ticks))
	return nil
}

func readValue(cmd *cobra.Command, args []string) error {
	a := current
	d, err := a.definition(args[0])
	if err != nil {
		return err
	}
	p, err := parseFloat("position", args[1])
	if err != nil {
		return err
	}
	if angle, _ := cmd.Flags().GetBool("angle"); angle {
		p = calc.NormalizeDegrees(p) / calc.FullTurn
	}

	v := calc.Value(p, d)
	st := a.styles
	fmt.Println(st.Field("scale", d.Name()))
	fmt.Println(st.Field("position", show(p, "%.6f")))
	fmt.Println(st.Field("angle", show(p*calc.FullTurn, "%.4f°")))
	fmt.Println(st.Field("value", precision.Format(v, d)))
	fmt.Println(st.Field("precision", strconv.Itoa(precision.AtPosition(p, d))))
	if !d.Layout().IsCircular() && p >= 0 && p <= 1 {
		s := generated.New(d, a.alg)
		fmt.Println(st.Strip.Render(strings.TrimRight(viz.Strip(s, a.cfg.Width, 2).String(), "\n")))
		fmt.Println(viz.MarkerRow(p, a.cfg.Width))
	}
	return nil
}

func locateValue(cmd *cobra.Command, args []string) error {
	a := current
	d, err := a.definition(args[0])
	if err != nil {
		return err
	}
	v, err := parseFloat("value", args[1])
	if err != nil {
		return err
	}
	if !d.Contains(v) {
		log.WithFields(log.Fields{"scale": d.Name(), "value": v}).Warn("value outside the scale domain")
	}

	st := a.styles
	fmt.Println(st.Field("scale", d.Name()))
	fmt.Println(st.Field("value", precision.Format(v, d)))
	fmt.Println(st.Field("position", show(calc.NormalizedPosition(v, d), "%.6f")))
	fmt.Println(st.Field("physical", show(calc.PhysicalPosition(v, d), "%.3f pt")))
	fmt.Println(st.Field("angle", show(calc.AngularPosition(v, d), "%.4f°")))
	if d.Layout().IsCircular() {
		fmt.Println(st.Field("arc", show(calc.ArcDistance(v, d), "%.3f pt")))
		fmt.Println(st.Field("circumference", show(calc.ArcLength(d), "%.3f pt")))
	}
	return nil
}

func nearestTick(cmd *cobra.Command, args []string) error {
	a := current
	s, err := a.scale(args[0])
	if err != nil {
		return err
	}
	p, err := parseFloat("position", args[1])
	if err != nil {
		return err
	}

	var (
		t  calc.TickMark
		ok bool
	)
	if angle, _ := cmd.Flags().GetBool("angle"); angle {
		t, ok = s.NearestTickToAngle(p)
	} else {
		t, ok = s.NearestTickToPosition(p)
	}
	if !ok {
		fmt.Println(precision.Placeholder)
		return nil
	}
	fmt.Print(a.styles.TickTable(s, []calc.TickMark{t}))
	return nil
}

func ticksInRange(cmd *cobra.Command, args []string) error {
	a := current
	s, err := a.scale(args[0])
	if err != nil {
		return err
	}
	from, err := parseFloat("from", args[1])
	if err != nil {
		return err
	}
	to, err := parseFloat("to", args[2])
	if err != nil {
		return err
	}

	var ticks []calc.TickMark
	wrap, _ := cmd.Flags().GetBool("wrap")
	positions, _ := cmd.Flags().GetBool("positions")
	switch {
	case positions:
		ticks = s.TicksInRange(from, to)
	case wrap:
		ticks = s.TicksInWrappingRange(from, to)
	default:
		ticks = s.TicksInAngularRange(from, to)
	}

	fmt.Print(a.styles.TickTable(s, ticks))
	fmt.Println(a.styles.Muted.Render(fmt.Sprintf("%s ticks", humanize.Comma(int64(len(ticks))))))
	return nil
}

func plotScale(cmd *cobra.Command, args []string) error {
	a := current
	d, err := a.definition(args[0])
	if err != nil {
		return err
	}
	samples, _ := cmd.Flags().GetInt("samples")
	height, _ := cmd.Flags().GetInt("height")
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", samples)
	}

	// Sample evenly in value so the curve shows how the scale compresses.
	lo, hi := d.Bounds()
	data := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		v := lo + (hi-lo)*float64(i)/float64(samples-1)
		if p := calc.NormalizedPosition(v, d); scalefunc.IsFinite(p) {
			data = append(data, p)
		}
	}
	if len(data) == 0 {
		return fmt.Errorf("scale %s has no finite positions", d.Name())
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(a.cfg.Width),
		asciigraph.Caption(fmt.Sprintf("%s: position vs value, %s to %s", d.Name(), d.FormatLabel(lo), d.FormatLabel(hi))),
	)
	fmt.Println(graph)
	return nil
}

func drawScale(cmd *cobra.Command, args []string) error {
	a := current
	s, err := a.scale(args[0])
	if err != nil {
		return err
	}
	fmt.Println(a.styles.Drawing(s, a.cfg.Width))

	if out, _ := cmd.Flags().GetString("svg"); out != "" {
		doc := export.CanvasToSVG(viz.Render(s, a.cfg.Width), 3, a.theme)
		if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
			return err
		}
		log.WithFields(log.Fields{"scale": s.Definition().Name(), "file": out}).Info("drawing saved")
	}
	return nil
}

func writeSVG(cmd *cobra.Command, args []string) error {
	a := current
	s, err := a.scale(args[0])
	if err != nil {
		return err
	}
	opts := export.DefaultSVGOptions()
	if themed, _ := cmd.Flags().GetBool("themed"); themed {
		opts = export.ThemedSVGOptions(a.theme)
	}
	if err := os.WriteFile(args[1], []byte(export.ScaleToSVG(s, opts)), 0644); err != nil {
		return err
	}
	log.WithFields(log.Fields{"scale": s.Definition().Name(), "file": args[1], "ticks": s.Len()}).Info("svg written")
	return nil
}

// twin is a pair of scales that must agree on positions, either directly or
// mirrored end for end.
type twin struct {
	a, b     string
	mirrored bool
}

var twins = []twin{
	{"C", "D", false},
	{"C", "CI", true},
	{"A", "B", false},
}

// checkCatalog runs the round trip law and tick sanity checks over every
// scale, then the parity law over the known twins. Scales are built
// concurrently.
func checkCatalog(cmd *cobra.Command, args []string) error {
	a := current
	tol, _ := cmd.Flags().GetFloat64("tolerance")

	defs := a.cat.Definitions()
	for i, d := range defs {
		r, err := a.definition(d.Name())
		if err != nil {
			return err
		}
		defs[i] = r
	}
	scales := generated.BuildAll(defs, a.alg)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCALE\tTICKS\tMAX ERROR\tSTATUS")
	failed := 0
	for _, s := range scales {
		worst, problems := checkScale(s, tol)
		status := "ok"
		if len(problems) > 0 {
			failed++
			status = strings.Join(problems, "; ")
			log.WithFields(log.Fields{"scale": s.Definition().Name(), "problems": len(problems)}).Warn("check failed")
		}
		fmt.Fprintf(w, "%s\t%s\t%.2e\t%s\n", s.Definition().Name(), humanize.Comma(int64(s.Len())), worst, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	byName := make(map[string]*generated.Scale, len(scales))
	for _, s := range scales {
		byName[s.Definition().Name()] = s
	}
	pairs := 0
	for _, tw := range twins {
		sa, sb := byName[tw.a], byName[tw.b]
		if sa == nil || sb == nil {
			continue
		}
		pairs++
		if problems := checkParity(sa, sb, tw.mirrored); len(problems) > 0 {
			failed++
			fmt.Printf("parity %s/%s: %s\n", tw.a, tw.b, strings.Join(problems, "; "))
			log.WithFields(log.Fields{"a": tw.a, "b": tw.b}).Warn("parity failed")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d scales and pairs", errCheckFailed, failed, len(scales)+pairs)
	}
	fmt.Printf("\nall %d scales and %d pairs pass\n", len(scales), pairs)
	return nil
}

// checkParity compares the positions of a and b over their shared domain.
// A mirrored pair satisfies p_a(v) = 1 - p_b(v).
func checkParity(a, b *generated.Scale, mirrored bool) []string {
	da, db := a.Definition(), b.Definition()
	aLo, aHi := da.Bounds()
	bLo, bHi := db.Bounds()
	lo, hi := math.Max(aLo, bLo), math.Min(aHi, bHi)

	var problems []string
	if hi <= lo {
		return append(problems, "no shared domain")
	}
	for i := 0; i <= 100; i++ {
		v := lo + (hi-lo)*float64(i)/100
		pa, pb := calc.NormalizedPosition(v, da), calc.NormalizedPosition(v, db)
		if mirrored {
			pb = 1 - pb
		}
		if !(math.Abs(pa-pb) < 1e-9) {
			problems = append(problems, fmt.Sprintf("positions differ at %g", v))
			break
		}
	}
	if a.Len() != b.Len() {
		problems = append(problems, fmt.Sprintf("tick counts %d and %d", a.Len(), b.Len()))
	}
	return problems
}

func checkScale(s *generated.Scale, tol float64) (float64, []string) {
	d := s.Definition()
	var problems []string

	worst := 0.0
	lo, hi := d.Bounds()
	for i := 0; i <= 100; i++ {
		v := lo + (hi-lo)*float64(i)/100
		back := calc.Value(calc.NormalizedPosition(v, d), d)
		rel := math.Abs(back-v) / math.Max(math.Abs(v), 1e-6)
		if !scalefunc.IsFinite(rel) {
			problems = append(problems, fmt.Sprintf("non-finite round trip at %g", v))
			break
		}
		worst = math.Max(worst, rel)
	}
	if worst > tol {
		problems = append(problems, fmt.Sprintf("round trip error %.2e", worst))
	}

	seen := make(map[float64]bool, s.Len())
	for _, t := range s.Ticks() {
		if t.Position < -1e-9 || t.Position > 1+1e-9 {
			problems = append(problems, fmt.Sprintf("tick %g off scale", t.Value))
			break
		}
		if s.Algorithm() == calc.Modulo && seen[t.Value] {
			problems = append(problems, fmt.Sprintf("duplicate tick %g", t.Value))
			break
		}
		seen[t.Value] = true
	}
	if s.Len() == 0 {
		problems = append(problems, "no ticks")
	}
	return worst, problems
}
