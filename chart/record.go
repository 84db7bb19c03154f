// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart computes the visual state of two interactive charts,
// a scatter comparison and a multi-series line chart, from tabular
// records.
//
// Everything in this package is a pure function of its inputs except
// Hover, which holds the single piece of mutable pointer state. A
// rendering surface (see packages svgchart and pngchart) draws the
// resulting Scene; this package never draws.
//
// Input records are treated as best-effort external data. A record
// missing a field, or carrying a value that is not a finite number,
// is silently left out of whatever computation needed that field.
package chart

import (
	"math"
	"strconv"
)

// A Record is one row of input data, mapping field names to values.
// Numeric values should be float64. Other numeric kinds are widened
// by Float; strings are kept for labels.
type Record map[string]interface{}

// Float returns the value of field as a float64. It returns NaN if
// the field is missing or not numeric.
func (r Record) Float(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case uint32:
		return float64(v)
	}
	return math.NaN()
}

// String returns the value of field formatted as a string, or "" if
// the field is missing.
func (r Record) String(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if f := r.Float(field); !math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return ""
}

// An Accessor extracts a number from a record. Accessors return NaN
// (or ±Inf) for records that have no plottable value.
type Accessor func(Record) float64

// Field returns an Accessor for the named numeric field.
func Field(name string) Accessor {
	return func(r Record) float64 { return r.Float(name) }
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
