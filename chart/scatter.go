// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "image/color"

// Scatter compares two numeric fields of each record, one marker per
// record.
type Scatter struct {
	Title  string
	Config Config
	X, Y   AxisSpec

	// LabelField names the record field shown as the tooltip title.
	LabelField string

	// Filter, if non-nil, selects the records to plot. Records with
	// a non-finite X or Y value are always dropped.
	Filter func(Record) bool

	Radius  float64
	Color   color.RGBA
	Opacity float64

	// RefLine draws the dashed y = x line from 0 to RefMax.
	RefLine bool
	RefMax  float64

	// Tooltip overrides the default tooltip content.
	Tooltip TooltipFunc
}

// NewScatter returns the protected-area comparison chart: percentage
// protected in 1990 against 2020, per country.
func NewScatter() *Scatter {
	return &Scatter{
		Title:  "Protected Areas: 1990 vs. 2020",
		Config: ScatterConfig,
		X: AxisSpec{
			Field:    "1990",
			Title:    "1990 (% protected)",
			Floor:    100,
			Suffix:   "%",
			TitleGap: 35,
		},
		Y: AxisSpec{
			Field:    "2020",
			Title:    "2020 (% protected)",
			Floor:    100,
			Suffix:   "%",
			TitleGap: 40,
		},
		LabelField: "Country Name",
		Filter:     IsCountry("Country Code"),
		Radius:     5,
		Color:      SteelBlue,
		Opacity:    0.8,
		RefLine:    true,
		RefMax:     100,
	}
}

// IsCountry returns a filter that keeps records whose field holds a
// three-letter country code. Aggregate rows, such as regions, use
// longer codes.
func IsCountry(field string) func(Record) bool {
	return func(r Record) bool {
		s, ok := r[field].(string)
		return ok && len(s) == 3
	}
}

// Valid returns the records c plots.
func (c *Scatter) Valid(records []Record) []Record {
	var out []Record
	for _, r := range records {
		if c.Filter != nil && !c.Filter(r) {
			continue
		}
		if !finite(r.Float(c.X.Field)) || !finite(r.Float(c.Y.Field)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Scales returns the x and y scales for the valid records. Both axes
// are zero-based with an upper bound of at least the axis floor.
func (c *Scatter) Scales(valid []Record) (xs, ys Linear) {
	xd := ZeroBased(valid, c.X.Floor, Field(c.X.Field))
	yd := ZeroBased(valid, c.Y.Floor, Field(c.Y.Field))
	return c.X.scale(xd, c.Config.XRange()), c.Y.scale(yd, c.Config.YRange())
}

// Markers returns the interactive markers for records, and the valid
// records they refer to.
func (c *Scatter) Markers(records []Record) ([]Marker, []Record) {
	valid := c.Valid(records)
	xs, ys := c.Scales(valid)
	ss := BuildSeries(valid, c.X.Field, []string{c.Y.Field})
	return Markers(valid, ss, xs, ys, c.Radius), valid
}

func (c *Scatter) tooltip(m Marker) (string, []string) {
	if c.Tooltip != nil {
		return c.Tooltip(m)
	}
	r := m.Record
	return r.String(c.LabelField), []string{
		c.X.Field + ": " + r.String(c.X.Field) + c.X.Suffix,
		c.Y.Field + ": " + r.String(c.Y.Field) + c.Y.Suffix,
	}
}

// Scene derives the complete visual state of the chart.
func (c *Scatter) Scene(records []Record, h HoverState) *Scene {
	cfg := c.Config
	valid := c.Valid(records)
	xs, ys := c.Scales(valid)
	ss := BuildSeries(valid, c.X.Field, []string{c.Y.Field})

	sc := newScene(c.Title, cfg)
	sc.XAxis = c.X.bottomAxis(xs, cfg)
	sc.YAxis = c.Y.leftAxis(ys, cfg)
	if c.RefLine {
		sc.RefLines = append(sc.RefLines, Segment{
			From:  Pixel{xs.Map(0), ys.Map(0)},
			To:    Pixel{xs.Map(c.RefMax), ys.Map(c.RefMax)},
			Color: Gray,
			Dash:  []float64{3, 2},
		})
	}
	for _, m := range Markers(valid, ss, xs, ys, c.Radius) {
		sc.Markers = append(sc.Markers, Mark{
			Marker:  m,
			Fill:    c.Color,
			Opacity: c.Opacity,
		})
	}
	sc.Tooltip = tooltipFor(h, c.tooltip, cfg.TooltipOffset)
	sc.TooltipStyle = TooltipStyle{
		TooltipBackground: Black,
		TooltipText:       White,
		TooltipBorder:     color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	}
	return sc
}
