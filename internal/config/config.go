package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "modulo"
	DefaultTheme     = "default"
	DefaultLogLevel  = "info"
	DefaultWidth     = 100
)

type Config struct {
	Algorithm string   `yaml:"algorithm"`
	Theme     string   `yaml:"theme"`
	LogLevel  string   `yaml:"log_level"`
	Catalogs  []string `yaml:"catalogs"`
	Length    float64  `yaml:"length"`
	Radius    float64  `yaml:"radius"`
	Width     int      `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
		Width:     DefaultWidth,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Circular reports whether scales should be re-laid out as dials.
func (c *Config) Circular() bool { return c.Radius > 0 }

// Merge copies every non-zero field of o over c.
func (c *Config) Merge(o *Config) {
	if o.Algorithm != "" {
		c.Algorithm = o.Algorithm
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if len(o.Catalogs) > 0 {
		c.Catalogs = append(c.Catalogs, o.Catalogs...)
	}
	if o.Length > 0 {
		c.Length = o.Length
	}
	if o.Radius > 0 {
		c.Radius = o.Radius
	}
	if o.Width > 0 {
		c.Width = o.Width
	}
}
