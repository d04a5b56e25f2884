// Package catalog names scale definitions. It ships the historical scales as
// fixture data and loads further scales from YAML or TOML files.
package catalog

import (
	"fmt"
	"strings"

	"github.com/san-kum/slidescale/internal/scale"
)

// Catalog is an ordered, name-addressed set of definitions. Lookups ignore case.
type Catalog struct {
	registry *Registry
	scales   map[string]*scale.Definition
	order    []string
}

func New(r *Registry) *Catalog {
	return &Catalog{
		registry: r,
		scales:   make(map[string]*scale.Definition),
	}
}

// Default returns a catalog holding every builtin scale.
func Default() (*Catalog, error) {
	c := New(NewRegistry())
	for _, s := range Builtin {
		d, err := c.registry.Build(s)
		if err != nil {
			return nil, err
		}
		c.Add(d)
	}
	return c, nil
}

// Add inserts definitions, replacing any existing scale of the same name in place.
func (c *Catalog) Add(defs ...*scale.Definition) {
	for _, d := range defs {
		key := strings.ToLower(d.Name())
		if _, ok := c.scales[key]; !ok {
			c.order = append(c.order, key)
		}
		c.scales[key] = d
	}
}

// LoadFile adds every scale of a YAML or TOML catalog file.
func (c *Catalog) LoadFile(path string) (int, error) {
	defs, err := c.registry.LoadFile(path)
	if err != nil {
		return 0, err
	}
	c.Add(defs...)
	return len(defs), nil
}

func (c *Catalog) Get(name string) (*scale.Definition, error) {
	d, ok := c.scales[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScale, name)
	}
	return d, nil
}

func (c *Catalog) List() []string {
	names := make([]string, len(c.order))
	for i, key := range c.order {
		names[i] = c.scales[key].Name()
	}
	return names
}

func (c *Catalog) Definitions() []*scale.Definition {
	defs := make([]*scale.Definition, len(c.order))
	for i, key := range c.order {
		defs[i] = c.scales[key]
	}
	return defs
}

func (c *Catalog) Len() int { return len(c.order) }
