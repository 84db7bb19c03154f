// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"reflect"
	"testing"
)

var irradiance = []Record{
	{"year": 2000.0, "i305": math.NaN(), "i310": 4.0, "i324": 2.0},
	{"year": 2001.0, "i305": 5.0, "i310": 8.0, "i324": 3.0},
	{"year": 2002.0, "i305": 7.5, "i310": 9.3, "i324": 1.0},
}

func TestLinesScales(t *testing.T) {
	c := NewLines()
	xs, ys := c.Scales(irradiance)
	if xs.Domain != (Domain{2000, 2002}) {
		t.Errorf("x domain = %v", xs.Domain)
	}
	if ys.Domain != (Domain{0, 10}) {
		t.Errorf("nice y domain = %v, want [0,10]", ys.Domain)
	}

	c.Y.Nice = false
	if _, ys := c.Scales(irradiance); ys.Domain != (Domain{0, 9.3}) {
		t.Errorf("y domain = %v, want [0,9.3]", ys.Domain)
	}
}

func TestLinesScene(t *testing.T) {
	c := NewLines()
	ms := c.Markers(irradiance)
	if len(ms) != 8 {
		t.Fatalf("got %d markers, want 8", len(ms))
	}

	var target Marker
	for _, m := range ms {
		if m.Series == "i310" && m.Point.X == 2001 {
			target = m
		}
	}
	sc := c.Scene(irradiance, Hovering{target, Pixel{300, 200}})

	if len(sc.Paths) != 3 || len(sc.Paths[0].Points) != 2 || len(sc.Paths[1].Points) != 3 {
		t.Errorf("paths = %v", sc.Paths)
	}
	nhover := 0
	for _, mk := range sc.Markers {
		switch {
		case mk.Hovered:
			nhover++
			if mk.Radius != 6 || mk.StrokeWidth != 1 || mk.Series != "i310" {
				t.Errorf("hovered mark = %+v", mk)
			}
		case mk.Radius != 3:
			t.Errorf("mark radius = %v, want 3", mk.Radius)
		}
	}
	if nhover != 1 {
		t.Errorf("%d hovered marks, want 1", nhover)
	}

	want := &Tooltip{
		Anchor: Pixel{310, 210},
		Title:  "i310",
		Lines:  []string{"year: 2001", "value: 8.00"},
	}
	if !reflect.DeepEqual(sc.Tooltip, want) {
		t.Errorf("tooltip = %+v, want %+v", sc.Tooltip, want)
	}

	for i, e := range sc.Legend {
		if e.At != (Pixel{650, float64(20 * i)}) {
			t.Errorf("legend %s at %v", e.Label, e.At)
		}
	}

	var top Tick
	for _, tick := range sc.YAxis.Ticks {
		if tick.Value == 10 {
			top = tick
		}
	}
	if top.Label != "10" || top.Pos != 0 {
		t.Errorf("top y tick = %+v, want 10 at 0", top)
	}
	for _, tick := range sc.XAxis.Ticks {
		if tick.Label != "2000" && tick.Label != "2001" && tick.Label != "2002" {
			t.Errorf("x tick label %q", tick.Label)
		}
	}
}

func TestLinesLoading(t *testing.T) {
	sc := NewLines().Scene(nil, Idle{})
	if sc.Message != "loading data..." {
		t.Errorf("message = %q", sc.Message)
	}
	if len(sc.Markers) != 0 || len(sc.Paths) != 0 {
		t.Errorf("empty scene has marks")
	}
}
