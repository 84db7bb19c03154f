// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgchart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aclements/chartcore/chart"
)

var records = []chart.Record{
	{"year": 2000.0, "i305": 1.0, "i310": 4.0, "i324": 2.0},
	{"year": 2001.0, "i305": 5.0, "i310": 8.0, "i324": 3.0},
}

func TestWriteLines(t *testing.T) {
	c := chart.NewLines()
	ms := c.Markers(records)
	sc := c.Scene(records, chart.Hovering{Marker: ms[3], Pointer: chart.Pixel{X: 200, Y: 100}})

	var buf bytes.Buffer
	if err := Write(&buf, sc); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"<svg",
		"</svg>",
		sc.Title,
		`data-series="i310"`,
		"value: 8.00",
		"exposure value",
		"stroke-width:2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(out, "<polyline"); n != 3 {
		t.Errorf("%d polylines, want 3", n)
	}
	if n := strings.Count(out, "<circle"); n != 6 {
		t.Errorf("%d circles, want 6", n)
	}
	if n := strings.Count(out, `r="6"`); n != 1 {
		t.Errorf("%d enlarged markers, want 1", n)
	}
}

func TestWriteLoading(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, chart.NewLines().Scene(nil, chart.Idle{})); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "loading data...") || strings.Contains(out, "<circle") {
		t.Errorf("unexpected loading output:\n%s", out)
	}
}

func TestWriteScatterEscapes(t *testing.T) {
	c := chart.NewScatter()
	rs := []chart.Record{{"Country Name": "Bosnia & Herz.", "Country Code": "BIH", "1990": 1.0, "2020": 2.0}}
	ms, _ := c.Markers(rs)
	var buf bytes.Buffer
	if err := Write(&buf, c.Scene(rs, chart.Hovering{Marker: ms[0]})); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Bosnia &amp; Herz.") {
		t.Errorf("tooltip title not escaped")
	}
	if !strings.Contains(out, "stroke-dasharray:3 2") {
		t.Errorf("missing dashed reference line")
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestWriteError(t *testing.T) {
	sc := chart.NewLines().Scene(records, chart.Idle{})
	if err := Write(&failWriter{n: 3}, sc); err == nil || err.Error() != "disk full" {
		t.Errorf("Write error = %v, want disk full", err)
	}
}

func TestTooltipSize(t *testing.T) {
	w, h := TooltipSize(&chart.Tooltip{Title: "i305", Lines: []string{"year: 2001", "value: 5.00"}})
	if w != 11*charWidth+2*padding {
		t.Errorf("width = %d", w)
	}
	if h != 3*lineHeight+2*padding-(lineHeight-fontSize) {
		t.Errorf("height = %d", h)
	}
}
