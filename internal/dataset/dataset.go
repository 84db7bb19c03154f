// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads tabular chart input from CSV and XLSX files.
//
// The first row names the fields. Each cell is coerced the way d3's
// autoType does: empty cells are omitted from the record, cells that
// parse as numbers become float64, and everything else stays a
// string.
package dataset

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

	"github.com/aclements/chartcore/chart"
	"github.com/aclements/go-gg/table"
	"github.com/xuri/excelize/v2"
)

// ErrUnknownFormat is returned by Load for unrecognized file
// extensions.
var ErrUnknownFormat = errors.New("unknown dataset format")

// ErrNoHeader is returned for input without a header row.
var ErrNoHeader = errors.New("missing header row")

// A ParseError reports malformed input at a particular line.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// A Dataset is a loaded table of records.
type Dataset struct {
	// Fields lists the header names in input order.
	Fields  []string
	Records []chart.Record

	// Blank is the number of input rows that had no values at all
	// and were dropped.
	Blank int
}

// Options controls Load.
type Options struct {
	// Sheet names the XLSX sheet to read. If empty, the first sheet
	// is used.
	Sheet string
}

// Load reads the dataset at path, choosing the format from the file
// extension. path "-" reads CSV from stdin.
func Load(path string, opts Options) (*Dataset, error) {
	if path == "-" {
		return ReadCSV(os.Stdin, "<stdin>")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".xlsx" {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if ext == ".xlsx" {
		return ReadXLSX(f, path, opts.Sheet)
	}
	return ReadCSV(f, path)
}

// ReadCSV reads a CSV dataset from r. name is used in errors.
func ReadCSV(r io.Reader, name string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{name, pe.StartLine, pe.Err}
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fromRows(name, rows)
}

// ReadXLSX reads the named sheet of an XLSX workbook from r.
func ReadXLSX(r io.Reader, name, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &ParseError{name, 1, ErrNoHeader}
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", name, sheet, err)
	}
	return fromRows(name, rows)
}

func fromRows(name string, rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, &ParseError{name, 1, ErrNoHeader}
	}
	d := &Dataset{Fields: make([]string, len(rows[0]))}
	for i, h := range rows[0] {
		if i == 0 {
			// UTF-8 exports often start with a byte order mark.
			h = strings.TrimPrefix(h, "\ufeff")
		}
		d.Fields[i] = strings.TrimSpace(h)
	}
	for _, row := range rows[1:] {
		r := make(chart.Record)
		for i, cell := range row {
			if i >= len(d.Fields) || d.Fields[i] == "" {
				continue
			}
			if v := Coerce(cell); v != nil {
				r[d.Fields[i]] = v
			}
		}
		if len(r) == 0 {
			d.Blank++
			continue
		}
		d.Records = append(d.Records, r)
	}
	return d, nil
}

// Coerce converts a cell to a record value. It returns nil for empty
// cells, a float64 for numbers, and the trimmed string otherwise.
// Numbers are decimal; of the special values only "NaN" and
// "Infinity" (optionally signed) are recognized, spelled exactly so.
func Coerce(cell string) interface{} {
	s := strings.TrimSpace(cell)
	switch s {
	case "":
		return nil
	case "NaN":
		return math.NaN()
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if strings.IndexFunc(s, notDecimal) >= 0 {
		return s
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return x
	}
	return s
}

// Table returns d as a go-gg table with one column per field.
// Columns whose values are all numeric are []float64 with NaN for
// missing values; other columns are []string.
func (d *Dataset) Table() *table.Table {
	b := new(table.Builder)
	for _, f := range d.Fields {
		if f == "" {
			continue
		}
		numeric := true
		for _, r := range d.Records {
			if v, ok := r[f]; ok {
				if _, ok := v.(float64); !ok {
					numeric = false
					break
				}
			}
		}
		if numeric {
			col := make([]float64, len(d.Records))
			for i, r := range d.Records {
				col[i] = math.NaN()
				if v, ok := r[f].(float64); ok {
					col[i] = v
				}
			}
			b.Add(f, col)
			continue
		}
		col := make([]string, len(d.Records))
		for i, r := range d.Records {
			col[i] = r.String(f)
		}
		b.Add(f, col)
	}
	return b.Done()
}

// notDecimal reports whether r cannot appear in a decimal number.
// It rules out the hex, "inf" and "nan" forms strconv also accepts.
func notDecimal(r rune) bool {
	switch {
	case '0' <= r && r <= '9', r == '.', r == '+', r == '-', r == 'e', r == 'E':
		return false
	}
	return true
}
