package catalog

import (
	"fmt"
	"sort"

	"github.com/san-kum/slidescale/internal/scalefunc"
)

// Params carries the numeric parameters of a scale function, keyed by
// lowercase name: multiplier, cycles, negative, resistance.
type Params map[string]float64

// Registry maps function names used in catalog files to constructors.
type Registry struct {
	functions map[string]func(Params) scalefunc.Function
}

func NewRegistry() *Registry {
	r := &Registry{functions: make(map[string]func(Params) scalefunc.Function)}

	r.functions["log"] = func(p Params) scalefunc.Function {
		return scalefunc.Log{Multiplier: p["multiplier"], Cycles: p["cycles"]}
	}
	r.functions["reciprocal"] = func(p Params) scalefunc.Function {
		return scalefunc.Reciprocal{Multiplier: p["multiplier"], Cycles: p["cycles"]}
	}
	r.functions["ln"] = func(Params) scalefunc.Function { return scalefunc.NaturalLog{} }
	r.functions["linear"] = func(Params) scalefunc.Function { return scalefunc.Linear{} }
	r.functions["loglog"] = func(p Params) scalefunc.Function {
		return scalefunc.LogLog{Multiplier: p["multiplier"], Negative: p["negative"] != 0}
	}
	r.functions["sin"] = func(p Params) scalefunc.Function { return scalefunc.Sine{Multiplier: p["multiplier"]} }
	r.functions["tan"] = func(p Params) scalefunc.Function { return scalefunc.Tangent{Multiplier: p["multiplier"]} }
	r.functions["sinh"] = func(p Params) scalefunc.Function { return scalefunc.Sinh{Multiplier: p["multiplier"]} }
	r.functions["cosh"] = func(Params) scalefunc.Function { return scalefunc.Cosh{} }
	r.functions["tanh"] = func(p Params) scalefunc.Function { return scalefunc.Tanh{Multiplier: p["multiplier"]} }
	r.functions["pyth_h"] = func(Params) scalefunc.Function { return scalefunc.PythagoreanH{} }
	r.functions["pyth_p"] = func(Params) scalefunc.Function { return scalefunc.PythagoreanP{} }
	r.functions["reactance"] = func(Params) scalefunc.Function { return scalefunc.Reactance{} }
	r.functions["impedance"] = func(p Params) scalefunc.Function {
		return scalefunc.Impedance{Resistance: p["resistance"]}
	}
	r.functions["power_ratio"] = func(Params) scalefunc.Function { return scalefunc.PowerRatio{} }
	r.functions["reflection"] = func(Params) scalefunc.Function { return scalefunc.ReflectionCoefficient{} }

	return r
}

func (r *Registry) Function(name string, params Params) (scalefunc.Function, error) {
	fn, ok := r.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn(params), nil
}

func (r *Registry) ListFunctions() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
