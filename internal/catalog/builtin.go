package catalog

import "math"

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// cTable is the legacy tick table of the C and D scales.
var cTable = []SubsectionSpec{
	{Start: 1, Intervals: []float64{1, 0.1, 0.05, 0.01}, Labels: []int{0, 1}},
	{Start: 2, Intervals: []float64{1, 0.5, 0.1, 0.02}, Labels: []int{0}},
	{Start: 4, Intervals: []float64{1, 0.5, 0.1, 0.05}, Labels: []int{0}},
}

// abTable covers the two decades of the A and B scales.
var abTable = []SubsectionSpec{
	{Start: 1, Intervals: []float64{1, 0.5, 0.1, 0.02}, Labels: []int{0}},
	{Start: 2, Intervals: []float64{1, 0.5, 0.1, 0.05}, Labels: []int{0}},
	{Start: 5, Intervals: []float64{1, 0, 0.5, 0.1}, Labels: []int{0}},
	{Start: 10, Intervals: []float64{10, 5, 1, 0.2}, Labels: []int{0}},
	{Start: 20, Intervals: []float64{10, 5, 1, 0.5}, Labels: []int{0}},
	{Start: 50, Intervals: []float64{10, 0, 5, 1}, Labels: []int{0}},
}

var piConstant = []ConstantSpec{{Label: "π", Value: math.Pi}}

// Builtin lists the historical scales shipped with the tool, in display order.
var Builtin = []Spec{
	{Name: "C", Function: "log", Begin: 1, End: 10, Subsections: cTable, Constants: piConstant},
	{Name: "D", Function: "log", Begin: 1, End: 10, Direction: "down", Subsections: cTable, Constants: piConstant},
	{Name: "CI", Function: "log", Begin: 10, End: 1, LabelColor: "red", Subsections: cTable},
	{Name: "A", Function: "log", Params: Params{"cycles": 2}, Begin: 1, End: 100, Subsections: abTable, Constants: piConstant},
	{Name: "B", Function: "log", Params: Params{"cycles": 2}, Begin: 1, End: 100, Direction: "down", Subsections: abTable, Constants: piConstant},
	{Name: "K", Function: "log", Params: Params{"cycles": 3}, Begin: 1, End: 1000,
		Subsections: []SubsectionSpec{
			{Start: 1, Intervals: []float64{1, 0.5, 0.1, 0.05}, Labels: []int{0}},
			{Start: 3, Intervals: []float64{1, 0, 0.5, 0.1}, Labels: []int{0}},
			{Start: 6, Intervals: []float64{1, 0, 0, 0.2}, Labels: []int{0}},
			{Start: 10, Intervals: []float64{10, 5, 1, 0.5}, Labels: []int{0}},
			{Start: 30, Intervals: []float64{10, 0, 5, 1}, Labels: []int{0}},
			{Start: 60, Intervals: []float64{10, 0, 0, 2}, Labels: []int{0}},
			{Start: 100, Intervals: []float64{100, 50, 10, 5}, Labels: []int{0}},
			{Start: 300, Intervals: []float64{100, 0, 50, 10}, Labels: []int{0}},
			{Start: 600, Intervals: []float64{100, 0, 0, 20}, Labels: []int{0}},
			{Start: 1000, Intervals: []float64{1000, 500, 100, 50}, Labels: []int{0}},
		},
	},
	{Name: "L", Function: "linear", Begin: 0, End: 1,
		Subsections: []SubsectionSpec{
			{Start: 0, Intervals: []float64{0.1, 0.05, 0.01, 0.002}, Labels: []int{0}},
		},
	},
	{Name: "Ln", Function: "ln", Begin: 1, End: 10, Subsections: cTable},
	{Name: "S", Function: "sin", Params: Params{"multiplier": 10}, Begin: degrees(math.Asin(0.1)), End: 90,
		Subsections: []SubsectionSpec{
			{Start: 5, Intervals: []float64{1, 0.5, 0.1}, Labels: []int{0}},
			{Start: 10, Intervals: []float64{5, 1, 0.5}, Labels: []int{0}},
			{Start: 20, Intervals: []float64{10, 5, 1}, Labels: []int{0}},
			{Start: 40, Intervals: []float64{10, 5}, Labels: []int{0}},
			{Start: 70, Intervals: []float64{10, 0, 5}, Labels: []int{0}},
		},
	},
	{Name: "T", Function: "tan", Params: Params{"multiplier": 10}, Begin: degrees(math.Atan(0.1)), End: 45,
		Subsections: []SubsectionSpec{
			{Start: 5, Intervals: []float64{1, 0.5, 0.1}, Labels: []int{0}},
			{Start: 10, Intervals: []float64{5, 1, 0.5, 0.1}, Labels: []int{0}},
			{Start: 20, Intervals: []float64{5, 1, 0.5}, Labels: []int{0}},
		},
	},
	{Name: "LL1", Function: "loglog", Params: Params{"multiplier": 100}, Begin: math.Exp(0.01), End: math.Exp(0.1),
		Subsections: []SubsectionSpec{
			{Start: 1.01, Intervals: []float64{0.005, 0.001, 0.0005, 0.0001}, Labels: []int{0}},
			{Start: 1.05, Intervals: []float64{0.01, 0.005, 0.001, 0.0005}, Labels: []int{0}},
		},
	},
	{Name: "LL2", Function: "loglog", Params: Params{"multiplier": 10}, Begin: math.Exp(0.1), End: math.E,
		Subsections: []SubsectionSpec{
			{Start: 1.1, Intervals: []float64{0.05, 0.01, 0.005, 0.001}, Labels: []int{0}},
			{Start: 1.2, Intervals: []float64{0.1, 0.05, 0.01, 0.005}, Labels: []int{0}},
			{Start: 1.5, Intervals: []float64{0.1, 0.05, 0.01}, Labels: []int{0}},
			{Start: 2, Intervals: []float64{0.5, 0.1, 0.05, 0.02}, Labels: []int{0}},
		},
		Constants: []ConstantSpec{{Label: "e", Value: math.E}},
	},
	{Name: "LL3", Function: "loglog", Begin: math.E, End: math.Exp(10),
		Subsections: []SubsectionSpec{
			{Start: 2.5, Intervals: []float64{0.5, 0.1, 0.05}, Labels: []int{0}},
			{Start: 5, Intervals: []float64{1, 0.5, 0.1}, Labels: []int{0}},
			{Start: 10, Intervals: []float64{5, 1}, Labels: []int{0}},
			{Start: 20, Intervals: []float64{10, 5}, Labels: []int{0}},
			{Start: 50, Intervals: []float64{50, 10}, Labels: []int{0}},
			{Start: 100, Intervals: []float64{100, 50}, Labels: []int{0}},
			{Start: 200, Intervals: []float64{500, 100}, Labels: []int{0}},
			{Start: 1000, Intervals: []float64{1000, 500}, Labels: []int{0}},
			{Start: 5000, Intervals: []float64{5000, 1000}, Labels: []int{0}},
			{Start: 10000, Intervals: []float64{10000, 5000}, Labels: []int{0}},
		},
		Constants: []ConstantSpec{{Label: "e", Value: math.E}},
	},
	{Name: "LL00", Function: "loglog", Params: Params{"multiplier": 1000, "negative": 1}, Begin: 0.990, End: 0.999,
		Subsections: []SubsectionSpec{
			{Start: 0.990, Intervals: []float64{0.001, 0.0005, 0.0001, 0.00005}, Labels: []int{0}},
			{Start: 0.995, Intervals: []float64{0.001, 0.0005, 0.0001, 0.00002}, Labels: []int{0}},
			{Start: 0.998, Intervals: []float64{0.0005, 0.0001, 0.00005, 0.00001}, Labels: []int{0}},
		},
	},
	{Name: "Sh", Function: "sinh", Params: Params{"multiplier": 10}, Begin: 0.1, End: 3,
		Subsections: []SubsectionSpec{
			{Start: 0.1, Intervals: []float64{0.1, 0.05, 0.01}, Labels: []int{0}},
			{Start: 0.5, Intervals: []float64{0.1, 0.05, 0.02}, Labels: []int{0}},
			{Start: 1, Intervals: []float64{0.5, 0.1, 0.05}, Labels: []int{0}},
			{Start: 2, Intervals: []float64{0.5, 0.1}, Labels: []int{0}},
		},
	},
	{Name: "Ch", Function: "cosh", Begin: 0, End: 3,
		Subsections: []SubsectionSpec{
			{Start: 0, Intervals: []float64{0.5, 0.1, 0.05}, Labels: []int{0}},
			{Start: 2, Intervals: []float64{0.5, 0.1}, Labels: []int{0}},
		},
	},
	{Name: "Th", Function: "tanh", Params: Params{"multiplier": 10}, Begin: 0.1, End: 3,
		Subsections: []SubsectionSpec{
			{Start: 0.1, Intervals: []float64{0.1, 0.05, 0.01}, Labels: []int{0}},
			{Start: 0.5, Intervals: []float64{0.5, 0.1, 0.05}, Labels: []int{0}},
			{Start: 1, Intervals: []float64{0.5, 0.1}, Labels: []int{0}},
			{Start: 2, Intervals: []float64{1, 0.5}, Labels: []int{0}},
		},
	},
	{Name: "H", Function: "pyth_h", Begin: 0, End: 10,
		Subsections: []SubsectionSpec{
			{Start: 0, Intervals: []float64{1, 0.5, 0.1}, Labels: []int{0}},
			{Start: 5, Intervals: []float64{1, 0.5}, Labels: []int{0}},
		},
	},
	{Name: "P", Function: "pyth_p", Begin: 0, End: 0.995,
		Subsections: []SubsectionSpec{
			{Start: 0, Intervals: []float64{0.1, 0.05, 0.01}, Labels: []int{0}},
			{Start: 0.9, Intervals: []float64{0.05, 0.01, 0.005}, Labels: []int{0}},
		},
	},
	{Name: "dB", Function: "power_ratio", Begin: -20, End: 20,
		Subsections: []SubsectionSpec{
			{Start: -20, Intervals: []float64{10, 5, 1}, Labels: []int{0}},
		},
	},
	{Name: "XC", Function: "reactance", Begin: 0.001, End: 1,
		Subsections: []SubsectionSpec{
			{Start: 0.001, Intervals: []float64{0.001, 0.0005, 0.0001}, Labels: []int{0}},
			{Start: 0.01, Intervals: []float64{0.01, 0.005, 0.001}, Labels: []int{0}},
			{Start: 0.1, Intervals: []float64{0.1, 0.05, 0.01}, Labels: []int{0}},
		},
	},
	{Name: "Z", Function: "impedance", Params: Params{"resistance": 1}, Begin: 0, End: 10,
		Subsections: []SubsectionSpec{
			{Start: 0, Intervals: []float64{1, 0.5, 0.1}, Labels: []int{0}},
			{Start: 5, Intervals: []float64{1, 0.5}, Labels: []int{0}},
		},
	},
	{Name: "Gamma", Function: "reflection", Begin: 1.1, End: 20,
		Subsections: []SubsectionSpec{
			{Start: 1.1, Intervals: []float64{0.1, 0.05, 0.01}, Labels: []int{0}},
			{Start: 2, Intervals: []float64{1, 0.5, 0.1}, Labels: []int{0}},
			{Start: 5, Intervals: []float64{5, 1, 0.5}, Labels: []int{0}},
			{Start: 10, Intervals: []float64{5, 1}, Labels: []int{0}},
		},
	},
	{Name: "C-dial", Function: "log", Begin: 1, End: 10, Radius: 100, Subsections: cTable, Constants: piConstant},
}
