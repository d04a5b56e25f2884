package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/slidescale/internal/scale"
)

var (
	ErrUnknownFunction = errors.New("catalog: unknown function")
	ErrUnknownScale    = errors.New("catalog: unknown scale")
	ErrUnknownFormat   = errors.New("catalog: unsupported file format")
)

// File is the on-disk shape of a scale catalog, in YAML or TOML.
type File struct {
	Scales []Spec `yaml:"scales" toml:"scales"`
}

// Spec describes one scale in a catalog. Intervals follow the legacy tick
// tables: coarsest first, with null (YAML) or 0 marking an absent level.
type Spec struct {
	Name        string           `yaml:"name" toml:"name"`
	Function    string           `yaml:"function" toml:"function"`
	Params      Params           `yaml:"params,omitempty" toml:"params,omitempty"`
	Begin       float64          `yaml:"begin" toml:"begin"`
	End         float64          `yaml:"end" toml:"end"`
	Length      float64          `yaml:"length,omitempty" toml:"length,omitempty"`
	Radius      float64          `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Direction   string           `yaml:"direction,omitempty" toml:"direction,omitempty"`
	LabelColor  string           `yaml:"label_color,omitempty" toml:"label_color,omitempty"`
	Subsections []SubsectionSpec `yaml:"subsections" toml:"subsections"`
	Constants   []ConstantSpec   `yaml:"constants,omitempty" toml:"constants,omitempty"`
}

type SubsectionSpec struct {
	Start     float64   `yaml:"start" toml:"start"`
	Intervals Intervals `yaml:"intervals" toml:"intervals"`
	Labels    []int     `yaml:"labels,omitempty" toml:"labels,omitempty"`
}

// Intervals is a coarsest-to-finest interval list in which 0 marks an absent
// level. In YAML an absent level is written as null.
type Intervals []float64

func (iv *Intervals) UnmarshalYAML(node *yaml.Node) error {
	// yaml.v3 skips null items of a []float64; pointers keep their slot.
	var raw []*float64
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Intervals, len(raw))
	for i, v := range raw {
		if v != nil {
			out[i] = *v
		}
	}
	*iv = out
	return nil
}

type ConstantSpec struct {
	Label string  `yaml:"label" toml:"label"`
	Value float64 `yaml:"value" toml:"value"`
}

// Build turns a spec into a validated definition.
func (r *Registry) Build(s Spec) (*scale.Definition, error) {
	fn, err := r.Function(s.Function, s.Params)
	if err != nil {
		return nil, fmt.Errorf("scale %q: %w", s.Name, err)
	}

	opts := []scale.Option{}
	if s.Radius > 0 {
		opts = append(opts, scale.WithCircular(s.Radius))
	} else if s.Length != 0 {
		opts = append(opts, scale.WithLength(s.Length))
	}
	if strings.EqualFold(s.Direction, "down") {
		opts = append(opts, scale.WithTickDirection(scale.TickDown))
	}
	if s.LabelColor != "" {
		opts = append(opts, scale.WithLabelColor(s.LabelColor))
	}

	subs := make([]scale.Subsection, len(s.Subsections))
	for i, ss := range s.Subsections {
		subs[i] = scale.Subsection{Start: ss.Start, Intervals: []float64(ss.Intervals), Labels: ss.Labels}
	}
	opts = append(opts, scale.WithSubsections(subs...))

	if len(s.Constants) > 0 {
		consts := make([]scale.Constant, len(s.Constants))
		for i, c := range s.Constants {
			consts[i] = scale.Constant{Label: c.Label, Value: c.Value}
		}
		opts = append(opts, scale.WithConstants(consts...))
	}

	return scale.New(s.Name, fn, s.Begin, s.End, opts...)
}

// Decode parses catalog data. format is "yaml" or "toml".
func Decode(data []byte, format string) (*File, error) {
	var f File
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return &f, nil
}

// LoadFile reads a YAML or TOML catalog, chosen by file extension, and builds
// every scale in it. The first invalid scale aborts the load.
func (r *Registry) LoadFile(path string) ([]*scale.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	defs := make([]*scale.Definition, 0, len(f.Scales))
	for _, s := range f.Scales {
		d, err := r.Build(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defs = append(defs, d)
	}

	log.WithFields(log.Fields{"file": path, "scales": len(defs)}).Debug("loaded scale catalog")
	return defs, nil
}
