// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// A Point is one plotted (x, y) pair in domain coordinates.
type Point struct {
	X, Y float64

	// Index is the position of the source record in the records
	// the point was built from. For a Scatter these are the records
	// left after Valid, not the input rows.
	Index int
}

// A Series is a named, ordered sequence of points sharing an x axis.
type Series struct {
	Label  string
	Points []Point
}

// A SeriesSet is the result of BuildSeries, in the order the y fields
// were requested.
type SeriesSet []Series

// Lookup returns the series with the given label.
func (ss SeriesSet) Lookup(label string) (Series, bool) {
	for _, s := range ss {
		if s.Label == label {
			return s, true
		}
	}
	return Series{}, false
}

// BuildSeries returns one series per element of yFields, each
// labeled with its field name. Points keep the order of records; x is
// assumed to be sorted already.
//
// Each series is filtered independently: a record whose value for
// one y field is missing or non-finite is dropped from that series
// only.
func BuildSeries(records []Record, xField string, yFields []string) SeriesSet {
	ss := make(SeriesSet, 0, len(yFields))
	for _, yField := range yFields {
		s := Series{Label: yField, Points: []Point{}}
		for i, r := range records {
			x, y := r.Float(xField), r.Float(yField)
			if !finite(x) || !finite(y) {
				continue
			}
			s.Points = append(s.Points, Point{x, y, i})
		}
		ss = append(ss, s)
	}
	return ss
}

// A Pixel is a position in pixel coordinates.
type Pixel struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Pixel) Add(dx, dy float64) Pixel {
	return Pixel{p.X + dx, p.Y + dy}
}

// Project maps the points of s through xs and ys, returning the
// vertices of the series' polyline.
func Project(s Series, xs, ys Linear) []Pixel {
	path := make([]Pixel, len(s.Points))
	for i, p := range s.Points {
		path[i] = Pixel{xs.Map(p.X), ys.Map(p.Y)}
	}
	return path
}

// A Marker is a single interactive plotted point.
type Marker struct {
	// Series is the label of the series this marker belongs to.
	Series string

	// Point is the marker's domain position and source index.
	Point Point

	// Record is the source record.
	Record Record

	// Center is the marker's position in plot-area pixels.
	Center Pixel

	// Radius is the drawn radius in pixels.
	Radius float64
}

// Same reports whether m and o mark the same record in the same
// series.
func (m Marker) Same(o Marker) bool {
	return m.Series == o.Series && m.Point.Index == o.Point.Index
}

// Markers returns one marker per point of every series in ss, in
// series order. records must be the slice ss was built from.
func Markers(records []Record, ss SeriesSet, xs, ys Linear, radius float64) []Marker {
	var ms []Marker
	for _, s := range ss {
		for _, p := range s.Points {
			ms = append(ms, Marker{
				Series: s.Label,
				Point:  p,
				Record: records[p.Index],
				Center: Pixel{xs.Map(p.X), ys.Map(p.Y)},
				Radius: radius,
			})
		}
	}
	return ms
}
