package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/generated"
)

var ErrUnknownFormat = errors.New("export: unsupported format")

var csvHeader = []string{"value", "position", "physical", "angle", "level", "label"}

// Row is one tick mark as handed to external renderers.
type Row struct {
	Value    float64 `json:"value"`
	Position float64 `json:"position"`
	Physical float64 `json:"physical"`
	Angle    float64 `json:"angle"`
	Level    int     `json:"level"`
	Label    string  `json:"label,omitempty"`
}

type Table struct {
	Scale     string  `json:"scale"`
	Function  string  `json:"function"`
	Algorithm string  `json:"algorithm"`
	Layout    string  `json:"layout"`
	Length    float64 `json:"length"`
	Radius    float64 `json:"radius,omitempty"`
	Ticks     []Row   `json:"ticks"`
	Constants []Row   `json:"constants,omitempty"`
}

func rowsOf(ticks []calc.TickMark, length float64) []Row {
	rows := make([]Row, len(ticks))
	for i, t := range ticks {
		rows[i] = Row{
			Value:    t.Value,
			Position: t.Position,
			Physical: t.Position * length,
			Angle:    t.Angle(),
			Level:    t.Level,
			Label:    t.Label,
		}
	}
	return rows
}

func NewTable(s *generated.Scale) Table {
	d := s.Definition()
	return Table{
		Scale:     d.Name(),
		Function:  d.Function().Name(),
		Algorithm: s.Algorithm().String(),
		Layout:    d.Layout().Kind.String(),
		Length:    d.Length(),
		Radius:    d.Layout().Radius,
		Ticks:     rowsOf(s.Ticks(), d.Length()),
		Constants: rowsOf(s.Constants(), d.Length()),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

// WriteCSV writes the tick marks of s, one row per tick. Constants are left
// out; they are available in the JSON form.
func WriteCSV(w io.Writer, s *generated.Scale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range NewTable(s).Ticks {
		row := []string{
			formatFloat(r.Value),
			formatFloat(r.Position),
			formatFloat(r.Physical),
			formatFloat(r.Angle),
			strconv.Itoa(r.Level),
			r.Label,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, s *generated.Scale) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewTable(s))
}

// Write renders s in the named format: csv, json or svg.
func Write(w io.Writer, s *generated.Scale, format string) error {
	switch strings.ToLower(format) {
	case "csv":
		return WriteCSV(w, s)
	case "json":
		return WriteJSON(w, s)
	case "svg":
		_, err := io.WriteString(w, ScaleToSVG(s, DefaultSVGOptions()))
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteFile picks the format from the file extension.
func WriteFile(path string, s *generated.Scale) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(format) {
	case "csv", "json", "svg":
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, s, format)
}

// ReadCSV parses a table written by WriteCSV. Rows that fail to parse are skipped.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(csvHeader) {
			continue
		}
		var nums [4]float64
		ok := true
		for j := range nums {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				ok = false
				break
			}
			nums[j] = v
		}
		level, err := strconv.Atoi(rec[4])
		if !ok || err != nil {
			continue
		}
		rows = append(rows, Row{
			Value:    nums[0],
			Position: nums[1],
			Physical: nums[2],
			Angle:    nums[3],
			Level:    level,
			Label:    rec[5],
		})
	}
	return rows, nil
}
