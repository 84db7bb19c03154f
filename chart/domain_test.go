// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"math/rand"
	"testing"
)

func ys(vals ...float64) []Record {
	rs := make([]Record, len(vals))
	for i, v := range vals {
		rs[i] = Record{"y": v}
	}
	return rs
}

func TestExtractDomain(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for _, test := range []struct {
		records []Record
		want    Domain
	}{
		{ys(3, 1, 2), Domain{1, 3}},
		{ys(nan, 5, -inf, 7, inf), Domain{5, 7}},
		{ys(4), Domain{4, 4}},
		{ys(), DefaultDomain},
		{ys(nan, nan), DefaultDomain},
		{[]Record{{"x": 1.0}, {"y": "n/a"}}, DefaultDomain},
		{[]Record{{"y": 2}, {"y": int64(-3)}}, Domain{-3, 2}},
	} {
		got := ExtractDomain(test.records, Field("y"))
		if got != test.want {
			t.Errorf("ExtractDomain(%v) = %v, want %v", test.records, got, test.want)
		}
	}
}

func TestExtractDomainBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		n := 1 + r.Intn(50)
		records := make([]Record, n)
		lo, hi := math.Inf(1), math.Inf(-1)
		for j := range records {
			v := r.NormFloat64() * 1000
			records[j] = Record{"y": v}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		d := ExtractDomain(records, Field("y"))
		if d.Lo > d.Hi {
			t.Fatalf("domain %v has Lo > Hi", d)
		}
		if d.Lo != lo || d.Hi != hi {
			t.Fatalf("ExtractDomain = %v, want [%g,%g]", d, lo, hi)
		}
	}
}

func TestExtent(t *testing.T) {
	years := []Record{{"year": 2000.0}}
	if got, want := Extent(years, Field("year")), (Domain{1999, 2001}); got != want {
		t.Errorf("Extent of one year = %v, want %v", got, want)
	}
	years = append(years, Record{"year": 2010.0})
	if got, want := Extent(years, Field("year")), (Domain{2000, 2010}); got != want {
		t.Errorf("Extent = %v, want %v", got, want)
	}
}

func TestZeroBased(t *testing.T) {
	a, b := Field("a"), Field("b")
	for _, test := range []struct {
		name    string
		records []Record
		floor   float64
		accs    []Accessor
		want    Domain
	}{
		{"floor", ys(50, 50, 50), 100, []Accessor{Field("y")}, Domain{0, 100}},
		{"above floor", ys(20, 150), 100, []Accessor{Field("y")}, Domain{0, 150}},
		{"union", []Record{{"a": 3.0, "b": 7.0}, {"a": 9.0, "b": math.NaN()}}, 0, []Accessor{a, b}, Domain{0, 9}},
		{"one empty accessor", []Record{{"a": 3.0}}, 0, []Accessor{a, b}, Domain{0, 3}},
		{"empty", nil, 0, []Accessor{a, b}, DefaultDomain},
		{"all zero", ys(0, 0), 0, []Accessor{Field("y")}, Domain{0, 1}},
		{"negative", ys(-5, -8), 0, []Accessor{Field("y")}, Domain{0, 0}.widen()},
		{"all negative no floor", ys(-5, -8), -10, []Accessor{Field("y")}, Domain{-5, 0}},
	} {
		got := ZeroBased(test.records, test.floor, test.accs...)
		if got != test.want {
			t.Errorf("%s: ZeroBased = %v, want %v", test.name, got, test.want)
		}
		if got.Lo > got.Hi {
			t.Errorf("%s: domain %v has Lo > Hi", test.name, got)
		}
	}
}
