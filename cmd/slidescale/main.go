package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/catalog"
	"github.com/san-kum/slidescale/internal/config"
	"github.com/san-kum/slidescale/internal/generated"
	"github.com/san-kum/slidescale/internal/scale"
	"github.com/san-kum/slidescale/internal/viz"
)

var (
	configFile string
	catalogs   []string
	logLevel   string
	algorithm  string
	preset     string
	theme      string
	length     float64
	radius     float64
	width      int
)

// app holds what every command needs once flags and config are merged.
type app struct {
	cfg    *config.Config
	cat    *catalog.Catalog
	alg    calc.Algorithm
	styles viz.Styles
	theme  viz.Theme
}

var current *app

func main() {
	rootCmd := &cobra.Command{
		Use:               "slidescale",
		Short:             "slide rule scale calculator",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringSliceVar(&catalogs, "catalog", nil, "extra scale catalog (yaml or toml), repeatable")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "tick algorithm: modulo or per-level")
	pf.StringVar(&preset, "preset", "", "layout preset")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.Float64Var(&length, "length", 0, "relay every scale out as a straight rule of this length")
	pf.Float64Var(&radius, "radius", 0, "relay every scale out as a dial of this radius")
	pf.IntVar(&width, "width", config.DefaultWidth, "terminal drawing width")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list scales, functions or presets",
		RunE:  listScales,
	}
	listCmd.Flags().Bool("functions", false, "list scale functions")
	listCmd.Flags().Bool("presets", false, "list layout presets")

	ticksCmd := &cobra.Command{
		Use:   "ticks [scale]",
		Short: "print the tick marks of a scale",
		Args:  cobra.ExactArgs(1),
		RunE:  printTicks,
	}
	ticksCmd.Flags().Bool("labeled", false, "only labeled ticks")
	ticksCmd.Flags().String("format", "table", "table, csv or json")
	ticksCmd.Flags().String("out", "", "write csv, json or svg to a file")

	readCmd := &cobra.Command{
		Use:   "read [scale] [position]",
		Short: "read the value under a cursor position (0..1)",
		Args:  cobra.ExactArgs(2),
		RunE:  readValue,
	}
	readCmd.Flags().Bool("angle", false, "position is a dial angle in degrees")

	locateCmd := &cobra.Command{
		Use:   "locate [scale] [value]",
		Short: "locate a value on a scale",
		Args:  cobra.ExactArgs(2),
		RunE:  locateValue,
	}

	nearestCmd := &cobra.Command{
		Use:   "nearest [scale] [position]",
		Short: "find the tick nearest a position (0..1)",
		Args:  cobra.ExactArgs(2),
		RunE:  nearestTick,
	}
	nearestCmd.Flags().Bool("angle", false, "position is a dial angle in degrees")

	rangeCmd := &cobra.Command{
		Use:   "range [scale] [from] [to]",
		Short: "list ticks between two dial angles",
		Args:  cobra.ExactArgs(3),
		RunE:  ticksInRange,
	}
	rangeCmd.Flags().Bool("wrap", false, "allow the range to cross 0°")
	rangeCmd.Flags().Bool("positions", false, "bounds are positions (0..1) instead of angles")

	plotCmd := &cobra.Command{
		Use:   "plot [scale]",
		Short: "plot position against value",
		Args:  cobra.ExactArgs(1),
		RunE:  plotScale,
	}
	plotCmd.Flags().Int("samples", 80, "number of samples")
	plotCmd.Flags().Int("height", 12, "plot height")

	drawCmd := &cobra.Command{
		Use:   "draw [scale]",
		Short: "draw a scale in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  drawScale,
	}
	drawCmd.Flags().String("svg", "", "also write the braille drawing as svg")

	svgCmd := &cobra.Command{
		Use:   "svg [scale] [file]",
		Short: "draw a scale as svg",
		Args:  cobra.ExactArgs(2),
		RunE:  writeSVG,
	}
	svgCmd.Flags().Bool("themed", false, "use the theme colors instead of black on white")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "verify round trip and tick invariants over the catalog",
		RunE:  checkCatalog,
	}
	checkCmd.Flags().Float64("tolerance", 1e-8, "relative round trip tolerance")

	rootCmd.AddCommand(listCmd, ticksCmd, readCmd, locateCmd, nearestCmd, rangeCmd, plotCmd, drawCmd, svgCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup merges defaults, preset, config file and flags, in that order, and
// loads the scale catalogs.
func setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Merge(p)
	}
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Merge(fileCfg)
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("catalog") {
		cfg.Catalogs = append(cfg.Catalogs, catalogs...)
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("length") {
		cfg.Length, cfg.Radius = length, 0
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	alg, err := calc.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	for _, path := range cfg.Catalogs {
		n, err := cat.LoadFile(path)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"file": path, "scales": n}).Info("catalog loaded")
	}

	t := viz.GetTheme(cfg.Theme)
	current = &app{cfg: cfg, cat: cat, alg: alg, styles: viz.NewStyles(t), theme: t}
	log.WithFields(log.Fields{
		"algorithm": alg,
		"scales":    cat.Len(),
		"theme":     t.Name,
	}).Debug("ready")
	return nil
}

// definition looks a scale up and applies the configured layout override.
func (a *app) definition(name string) (*scale.Definition, error) {
	d, err := a.cat.Get(name)
	if err != nil {
		return nil, err
	}
	switch {
	case a.cfg.Circular():
		return d.WithRadius(a.cfg.Radius)
	case a.cfg.Length > 0:
		return d.WithLength(a.cfg.Length)
	}
	return d, nil
}

func (a *app) scale(name string) (*generated.Scale, error) {
	d, err := a.definition(name)
	if err != nil {
		return nil, err
	}
	s := generated.New(d, a.alg)
	log.WithFields(log.Fields{"scale": d.Name(), "ticks": s.Len(), "algorithm": a.alg}).Debug("scale generated")
	return s, nil
}
