package config

import "sort"

// Presets are named layouts matching common rule sizes, in points.
var Presets = map[string]*Config{
	"pocket":  {Length: 125, Width: 60},
	"desk":    {Length: 250, Width: 100},
	"long":    {Length: 500, Width: 160},
	"dial":    {Radius: 100, Width: 100},
	"legacy":  {Algorithm: "per-level"},
	"compact": {Theme: "mono", Width: 72},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
