// Package data loads sample columns from CSV and XLSX files.
//
// A table holds one x column followed by any number of y columns. An
// optional header row names the columns. Empty or non-numeric y cells
// become NaN and break the line of their series.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vdobler/stripchart/trace"
)

// ErrNoData is returned for tables without any y column.
var ErrNoData = errors.New("data: no y column")

// A CellError reports a row whose x value is not a number.
type CellError struct {
	Row   int // 1-based, counting the header
	Value string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("data: row %d: bad x value %q", e.Row, e.Value)
}

// Series is one y column together with the shared x column.
type Series struct {
	Name string
	X, Y []float64
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.X) }

// XY returns sample i.
func (s Series) XY(i int) (x, y float64) { return s.X[i], s.Y[i] }

// Trace returns a trace borrowing the sample arrays of s.
func (s Series) Trace() (*trace.Trace, error) {
	t, err := trace.NewWithData(s.X, s.Y, len(s.X), len(s.X))
	if err != nil {
		return nil, err
	}
	t.Name = s.Name
	return t, nil
}

// Load reads the table in path. Files ending in .xlsx or .xlsm are read
// as workbooks (sheet selects the worksheet, empty means the first one),
// .tsv files as tab separated and everything else as CSV.
func Load(path, sheet string) ([]Series, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, sheet)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	series, err := readDelimited(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// ReadCSV reads a comma separated table. Lines starting with # are
// ignored.
func ReadCSV(r io.Reader) ([]Series, error) {
	return readDelimited(r, ',')
}

func readDelimited(r io.Reader, comma rune) ([]Series, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

// ReadXLSX reads the worksheet sheet of the workbook in path.
func ReadXLSX(path, sheet string) ([]Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoData)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	series, err := fromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s[%s]: %w", path, sheet, err)
	}
	return series, nil
}

func parseCell(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}

// isHeader reports whether row contains a non-empty, non-numeric cell.
func isHeader(row []string) bool {
	for _, c := range row {
		if _, ok := parseCell(c); !ok && strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func fromRows(rows [][]string) ([]Series, error) {
	var names []string
	first := 1
	if len(rows) > 0 && isHeader(rows[0]) {
		names, rows, first = rows[0], rows[1:], 2
	}

	ncol := len(names)
	for _, r := range rows {
		if len(r) > ncol {
			ncol = len(r)
		}
	}
	if ncol < 2 {
		return nil, ErrNoData
	}

	series := make([]Series, ncol-1)
	for i := range series {
		if i+1 < len(names) {
			series[i].Name = strings.TrimSpace(names[i+1])
		}
		if series[i].Name == "" {
			series[i].Name = fmt.Sprintf("y%d", i+1)
		}
		series[i].X = make([]float64, 0, len(rows))
		series[i].Y = make([]float64, 0, len(rows))
	}

	for n, r := range rows {
		if blank(r) {
			continue
		}
		x, ok := parseCell(r[0])
		if !ok {
			return nil, &CellError{Row: n + first, Value: r[0]}
		}
		for i := range series {
			y := math.NaN()
			if i+1 < len(r) {
				y, _ = parseCell(r[i+1])
			}
			series[i].X = append(series[i].X, x)
			series[i].Y = append(series[i].Y, y)
		}
	}
	return series, nil
}
