// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
)

// SeriesSpec is one line of a Lines chart.
type SeriesSpec struct {
	Field string
	Color color.RGBA
}

// Lines plots several fields of each record against a common x
// field, one polyline and one marker per point per series.
type Lines struct {
	Title  string
	Config Config

	// X is plotted over the extent of its values. Y is zero-based
	// with an upper bound of the largest value of any series.
	X, Y   AxisSpec
	Series []SeriesSpec

	// Radius is the marker radius; HoverRadius is used for the
	// hovered marker.
	Radius, HoverRadius float64
	LineWidth           float64

	// Tooltip overrides the default tooltip content.
	Tooltip TooltipFunc

	// Loading is shown in place of the chart when there are no
	// records.
	Loading string
}

// NewLines returns the ultraviolet irradiance chart: i305, i310 and
// i324 by year.
func NewLines() *Lines {
	return &Lines{
		Title:  "i305, i310, i324 irradiance in the USA by Year",
		Config: LinesConfig,
		X: AxisSpec{
			Field:    "year",
			Title:    "year",
			Integral: true,
			TitleGap: 40,
		},
		Y: AxisSpec{
			Title:    "exposure value",
			Nice:     true,
			TitleGap: 40,
		},
		Series: []SeriesSpec{
			{"i305", SteelBlue},
			{"i310", Crimson},
			{"i324", Green},
		},
		Radius:      3,
		HoverRadius: 6,
		LineWidth:   2,
		Loading:     "loading data...",
	}
}

func (c *Lines) fields() []string {
	fs := make([]string, len(c.Series))
	for i, s := range c.Series {
		fs[i] = s.Field
	}
	return fs
}

// Scales returns the x and y scales for records.
func (c *Lines) Scales(records []Record) (xs, ys Linear) {
	var accs []Accessor
	for _, f := range c.fields() {
		accs = append(accs, Field(f))
	}
	xd := Extent(records, Field(c.X.Field))
	yd := ZeroBased(records, c.Y.Floor, accs...)
	return c.X.scale(xd, c.Config.XRange()), c.Y.scale(yd, c.Config.YRange())
}

// Markers returns the interactive markers for records.
func (c *Lines) Markers(records []Record) []Marker {
	xs, ys := c.Scales(records)
	ss := BuildSeries(records, c.X.Field, c.fields())
	return Markers(records, ss, xs, ys, c.Radius)
}

func (c *Lines) tooltip(m Marker) (string, []string) {
	if c.Tooltip != nil {
		return c.Tooltip(m)
	}
	return m.Series, []string{
		fmt.Sprintf("%s: %s", c.X.Field, c.X.format(m.Point.X)),
		fmt.Sprintf("value: %.2f", m.Point.Y),
	}
}

// Scene derives the complete visual state of the chart.
func (c *Lines) Scene(records []Record, h HoverState) *Scene {
	cfg := c.Config
	sc := newScene(c.Title, cfg)
	if len(records) == 0 {
		sc.Message = c.Loading
		return sc
	}

	xs, ys := c.Scales(records)
	ss := BuildSeries(records, c.X.Field, c.fields())
	sc.XAxis = c.X.bottomAxis(xs, cfg)
	sc.YAxis = c.Y.leftAxis(ys, cfg)

	colors := make(map[string]color.RGBA)
	for i, spec := range c.Series {
		colors[spec.Field] = spec.Color
		s, _ := ss.Lookup(spec.Field)
		sc.Paths = append(sc.Paths, Path{
			Label:  spec.Field,
			Points: Project(s, xs, ys),
			Color:  spec.Color,
			Width:  c.LineWidth,
		})
		sc.Legend = append(sc.Legend, LegendEntry{
			Label: spec.Field,
			Color: spec.Color,
			At:    Pixel{cfg.InnerWidth() + 10, float64(20 * i)},
			Size:  10,
		})
	}

	var active *Marker
	if s, ok := h.(Hovering); ok {
		active = &s.Marker
	}
	for _, m := range Markers(records, ss, xs, ys, c.Radius) {
		mk := Mark{Marker: m, Fill: colors[m.Series], Opacity: 1, Stroke: White}
		if active != nil && active.Same(m) {
			mk.Hovered = true
			mk.Radius = c.HoverRadius
			mk.StrokeWidth = 1
		}
		sc.Markers = append(sc.Markers, mk)
	}

	sc.Tooltip = tooltipFor(h, c.tooltip, cfg.TooltipOffset)
	sc.TooltipStyle = TooltipStyle{
		TooltipBackground: color.RGBA{0x33, 0x33, 0x33, 0xff},
		TooltipText:       White,
	}
	return sc
}
