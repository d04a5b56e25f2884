package catalog

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/precision"
	"github.com/san-kum/slidescale/internal/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuildsEveryBuiltin(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, len(Builtin), c.Len())

	names := c.List()
	assert.Equal(t, "C", names[0])
	assert.Contains(t, names, "LL00")
	assert.Contains(t, names, "C-dial")
}

func TestDefault_RoundTripLaw(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, d := range c.Definitions() {
		lo, hi := d.Bounds()
		for i := 0; i <= 50; i++ {
			v := lo + (hi-lo)*float64(i)/50
			p := calc.NormalizedPosition(v, d)
			require.False(t, math.IsNaN(p), "%s: NaN position at %v", d.Name(), v)

			back := calc.Value(p, d)
			require.InDelta(t, v, back, 1e-8*math.Max(math.Abs(v), 1e-6), "%s: value %v", d.Name(), v)
			require.InDelta(t, p, calc.NormalizedPosition(back, d), 1e-12, "%s: value %v", d.Name(), v)
		}
	}
}

func TestDefault_TicksStayOnScale(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, d := range c.Definitions() {
		ticks := calc.GenerateTickMarks(d, calc.Modulo)
		require.NotEmpty(t, ticks, d.Name())

		seen := map[float64]bool{}
		for _, tk := range ticks {
			assert.GreaterOrEqual(t, tk.Position, -1e-9, "%s %v", d.Name(), tk.Value)
			assert.LessOrEqual(t, tk.Position, 1+1e-9, "%s %v", d.Name(), tk.Value)
			assert.False(t, seen[tk.Value], "%s: duplicate %v", d.Name(), tk.Value)
			seen[tk.Value] = true
		}
	}
}

func TestDefault_CIMirrorsC(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	cs, err := c.Get("c")
	require.NoError(t, err)
	ci, err := c.Get("CI")
	require.NoError(t, err)

	for _, v := range []float64{1, 2, math.Pi, 8} {
		assert.InDelta(t, 1-calc.NormalizedPosition(v, cs), calc.NormalizedPosition(v, ci), 1e-9)
	}
	assert.Equal(t, len(calc.GenerateTickMarks(cs, calc.Modulo)), len(calc.GenerateTickMarks(ci, calc.Modulo)))
	assert.Equal(t, "red", ci.LabelColor())
}

func TestDefault_LegacyPrecisionTables(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		scale    string
		value    float64
		expected int
	}{
		{"C", 1.0, 3},
		{"C", 3.14159, 3},
		{"C", 9.0, 3},
		{"K", 1, 3},
		{"K", 5, 2},
		{"K", 10, 2},
		{"K", 50, 1},
		{"K", 500, 1},
		{"K", 1000, 1},
		{"LL00", 0.993, 5},
		{"LL00", 0.9985, 5},
	}
	for _, tt := range tests {
		d, err := c.Get(tt.scale)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, precision.DecimalPlaces(tt.value, d), "%s at %v", tt.scale, tt.value)
	}
}

func TestGet_Unknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownScale)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Len(t, r.ListFunctions(), 16)

	fn, err := r.Function("loglog", Params{"multiplier": 10, "negative": 1})
	require.NoError(t, err)
	assert.Equal(t, "loglog", fn.Name())

	_, err = r.Function("spline", nil)
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

const yamlCatalog = `
scales:
  - name: Q
    function: log
    params:
      cycles: 2
    begin: 1
    end: 100
    length: 500
    direction: down
    subsections:
      - start: 1
        intervals: [1, null, 0.5, 0.1]
        labels: [0]
      - start: 10
        intervals: [10, 5, 1, 0.5]
        labels: [0]
    constants:
      - label: "π"
        value: 3.141592653589793
`

const tomlCatalog = `
[[scales]]
name = "R"
function = "log"
begin = 1.0
end = 10.0
radius = 120.0

[[scales.subsections]]
start = 1.0
intervals = [1.0, 0.5, 0.1]
labels = [0]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	c := New(NewRegistry())
	n, err := c.LoadFile(writeFile(t, "extra.yaml", yamlCatalog))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	d, err := c.Get("q")
	require.NoError(t, err)
	assert.Equal(t, 500.0, d.Length())
	assert.Equal(t, scale.TickDown, d.TickDirection())

	subs := d.Subsections()
	require.Len(t, subs, 2)
	assert.Equal(t, []float64{1, 0, 0.5, 0.1}, subs[0].Intervals, "null is an absent level")
	assert.Len(t, d.Constants(), 1)
}

func TestDecode_NullIntervalsKeepTheirLevel(t *testing.T) {
	data := `
scales:
  - name: N
    function: log
    begin: 1
    end: 10
    subsections:
      - start: 1
        intervals: [1, null, 0.1]
        labels: [0, 2]
`
	f, err := Decode([]byte(data), "yaml")
	require.NoError(t, err)
	require.Len(t, f.Scales, 1)
	assert.Equal(t, Intervals{1, 0, 0.1}, f.Scales[0].Subsections[0].Intervals)

	d, err := NewRegistry().Build(f.Scales[0])
	require.NoError(t, err)
	for _, tk := range calc.GenerateTickMarks(d, calc.Modulo) {
		assert.NotEqual(t, 1, tk.Level, "level 1 is absent, got a tick at %v", tk.Value)
		if tk.Level == 2 {
			assert.True(t, tk.Labeled(), "labels refer to the finest level by index")
		}
	}
}

func TestLoadFile_TOML(t *testing.T) {
	c := New(NewRegistry())
	n, err := c.LoadFile(writeFile(t, "extra.toml", tomlCatalog))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	d, err := c.Get("R")
	require.NoError(t, err)
	assert.True(t, d.Layout().IsCircular())
	assert.InDelta(t, 2*math.Pi*120, calc.ArcLength(d), 1e-9)
}

func TestLoadFile_Errors(t *testing.T) {
	c := New(NewRegistry())

	_, err := c.LoadFile(writeFile(t, "extra.json", "{}"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	bad := `
scales:
  - name: Bad
    function: log
    begin: 1
    end: 10
    subsections:
      - start: 5
        intervals: [1]
`
	_, err = c.LoadFile(writeFile(t, "bad.yaml", bad))
	assert.ErrorIs(t, err, scale.ErrSubsectionGap)

	unknown := `
scales:
  - name: U
    function: spline
    begin: 1
    end: 10
`
	_, err = c.LoadFile(writeFile(t, "unknown.yml", unknown))
	assert.ErrorIs(t, err, ErrUnknownFunction)
	assert.Equal(t, 0, c.Len())
}

func TestAdd_ReplacesInPlace(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	d, err := c.Get("C")
	require.NoError(t, err)
	long, err := d.WithLength(1000)
	require.NoError(t, err)

	c.Add(long)
	assert.Equal(t, len(Builtin), c.Len())
	got, err := c.Get("C")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.Length())
	assert.Equal(t, "C", c.List()[0])
}
