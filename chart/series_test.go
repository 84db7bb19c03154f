// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"reflect"
	"testing"
)

var uvRecords = []Record{
	{"year": 2000.0, "i305": math.NaN(), "i310": 1.5},
	{"year": 2001.0, "i305": 5.0, "i310": 2.5},
	{"year": 2002.0, "i305": 7.5},
}

func TestBuildSeriesSkipsNaN(t *testing.T) {
	ss := BuildSeries(uvRecords[:2], "year", []string{"i305"})
	s, ok := ss.Lookup("i305")
	if !ok {
		t.Fatal("no i305 series")
	}
	want := []Point{{X: 2001, Y: 5, Index: 1}}
	if !reflect.DeepEqual(s.Points, want) {
		t.Errorf("i305 points = %v, want %v", s.Points, want)
	}
}

func TestBuildSeriesIndependent(t *testing.T) {
	ss := BuildSeries(uvRecords, "year", []string{"i305", "i310", "i324"})
	if len(ss) != 3 {
		t.Fatalf("got %d series, want 3", len(ss))
	}
	for i, want := range []Series{
		{"i305", []Point{{2001, 5, 1}, {2002, 7.5, 2}}},
		{"i310", []Point{{2000, 1.5, 0}, {2001, 2.5, 1}}},
		{"i324", []Point{}},
	} {
		if !reflect.DeepEqual(ss[i], want) {
			t.Errorf("series %d = %v, want %v", i, ss[i], want)
		}
	}
	if _, ok := ss.Lookup("i999"); ok {
		t.Errorf("Lookup found a series that was not built")
	}
}

func TestBuildSeriesMissingX(t *testing.T) {
	records := []Record{{"y": 1.0}, {"x": "later", "y": 2.0}, {"x": 3.0, "y": 3.0}}
	ss := BuildSeries(records, "x", []string{"y"})
	if want := []Point{{3, 3, 2}}; !reflect.DeepEqual(ss[0].Points, want) {
		t.Errorf("points = %v, want %v", ss[0].Points, want)
	}
}

func TestBuildSeriesIdempotent(t *testing.T) {
	fields := []string{"i305", "i310"}
	a := BuildSeries(uvRecords, "year", fields)
	b := BuildSeries(uvRecords, "year", fields)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("BuildSeries not deterministic:\n%v\n%v", a, b)
	}
}

func TestProjectAndMarkers(t *testing.T) {
	xs := NewLinear(Domain{2000, 2002}, Range{0, 640})
	ys := NewLinear(Domain{0, 10}, Range{410, 0})
	ss := BuildSeries(uvRecords, "year", []string{"i305"})

	path := Project(ss[0], xs, ys)
	if want := []Pixel{{320, 205}, {640, 102.5}}; !reflect.DeepEqual(path, want) {
		t.Errorf("Project = %v, want %v", path, want)
	}

	ms := Markers(uvRecords, ss, xs, ys, 3)
	if len(ms) != 2 {
		t.Fatalf("got %d markers, want 2", len(ms))
	}
	m := ms[1]
	if m.Series != "i305" || m.Center != (Pixel{640, 102.5}) || m.Radius != 3 {
		t.Errorf("marker = %+v", m)
	}
	if m.Record["year"] != 2002.0 {
		t.Errorf("marker record = %v, want year 2002", m.Record)
	}
	if !m.Same(ms[1]) || m.Same(ms[0]) {
		t.Errorf("Same is wrong")
	}
}
