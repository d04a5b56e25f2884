package precision

import (
	"math"
	"testing"

	"github.com/san-kum/slidescale/internal/scale"
	"github.com/san-kum/slidescale/internal/scalefunc"
)

func mustScale(t *testing.T, begin, end float64, subs ...scale.Subsection) *scale.Definition {
	t.Helper()
	d, err := scale.New("test", scalefunc.Log{}, begin, end, scale.WithSubsections(subs...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func TestForInterval(t *testing.T) {
	tests := []struct {
		interval float64
		expected int
	}{
		{5, 1},
		{1, 1},
		{100, 1},
		{0.5, 2},
		{0.1, 2},
		{0.05, 3},
		{0.02, 3},
		{0.01, 3},
		{0.001, 4},
		{0.0001, 5},
		{0.00001, 5},
		{0.00000001, 5},
		{0, DefaultDecimals},
		{-0.1, DefaultDecimals},
		{math.NaN(), DefaultDecimals},
		{math.Inf(1), DefaultDecimals},
	}

	for _, tt := range tests {
		if got := ForInterval(tt.interval); got != tt.expected {
			t.Errorf("ForInterval(%v) = %d, want %d", tt.interval, got, tt.expected)
		}
	}
}

func TestDecimalPlaces_CScale(t *testing.T) {
	d := mustScale(t, 1, 10,
		scale.Subsection{Start: 1, Intervals: []float64{1, 0.1, 0.05, 0.01}},
		scale.Subsection{Start: 2, Intervals: []float64{1, 0.5, 0.1, 0.02}},
		scale.Subsection{Start: 4, Intervals: []float64{1, 0.5, 0.1, 0.05}},
	)

	tests := []struct {
		v        float64
		expected int
	}{
		{1.0, 3},
		{1.5, 3},
		{2.0, 3},
		{3.14159, 3},
		{5.0, 3},
		{9.0, 3},
		{10.0, 3},
		{0.5, DefaultDecimals},
		{11, DefaultDecimals},
	}

	for _, tt := range tests {
		if got := DecimalPlaces(tt.v, d); got != tt.expected {
			t.Errorf("DecimalPlaces(%v) = %d, want %d", tt.v, got, tt.expected)
		}
	}
}

func TestDecimalPlaces_SkipsAbsentLevels(t *testing.T) {
	d := mustScale(t, 1, 1000,
		scale.Subsection{Start: 1, Intervals: []float64{1, 0.5, 0.1, 0.05}},
		scale.Subsection{Start: 60, Intervals: []float64{10, 0, 0, 2}},
		scale.Subsection{Start: 300, Intervals: []float64{100, 0, 50, 0}},
	)

	if got := DecimalPlaces(70, d); got != 1 {
		t.Errorf("expected 1 decimal for interval 2, got %d", got)
	}
	if got := DecimalPlaces(500, d); got != 1 {
		t.Errorf("expected 1 decimal for interval 50, got %d", got)
	}
	if got := DecimalPlaces(2, d); got != 3 {
		t.Errorf("expected 3 decimals for interval 0.05, got %d", got)
	}
}

func TestDecimalPlaces_FineLogLog(t *testing.T) {
	d, err := scale.New("LL00", scalefunc.LogLog{Multiplier: 1000, Negative: true}, 0.990, 0.999,
		scale.WithSubsections(
			scale.Subsection{Start: 0.990, Intervals: []float64{0.001, 0.0005, 0.0001, 0.00005}},
			scale.Subsection{Start: 0.995, Intervals: []float64{0.001, 0.0005, 0.0001, 0.00002}},
			scale.Subsection{Start: 0.998, Intervals: []float64{0.0005, 0.0001, 0.00005, 0.00001}},
		))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, v := range []float64{0.990, 0.993, 0.996, 0.9985, 0.999} {
		if got := DecimalPlaces(v, d); got != MaxDecimals {
			t.Errorf("DecimalPlaces(%v) = %d, want %d", v, got, MaxDecimals)
		}
	}
}

func TestFormat(t *testing.T) {
	d := mustScale(t, 1, 10,
		scale.Subsection{Start: 1, Intervals: []float64{1, 0.1, 0.05, 0.01}},
	)

	if got := Format(math.Pi, d); got != "3.142" {
		t.Errorf("expected 3.142, got %s", got)
	}
	if got := Format(math.NaN(), d); got != Placeholder {
		t.Errorf("expected placeholder for NaN, got %s", got)
	}
	if got := Format(math.Inf(-1), d); got != Placeholder {
		t.Errorf("expected placeholder for -Inf, got %s", got)
	}
	if got := Format(20, d); got != "20.00" {
		t.Errorf("expected default precision out of range, got %s", got)
	}
}

func TestAtPosition(t *testing.T) {
	d := mustScale(t, 1, 10,
		scale.Subsection{Start: 1, Intervals: []float64{1, 0.1, 0.01}},
		scale.Subsection{Start: 5, Intervals: []float64{1, 0.5}},
	)

	if got := AtPosition(0.1, d); got != 3 {
		t.Errorf("AtPosition(0.1) = %d, want 3", got)
	}
	if got := AtPosition(0.9, d); got != 2 {
		t.Errorf("AtPosition(0.9) = %d, want 2", got)
	}
	if got := AtPosition(1.5, d); got != DefaultDecimals {
		t.Errorf("AtPosition past the end = %d, want %d", got, DefaultDecimals)
	}
}
