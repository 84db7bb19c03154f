// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// A Scene is everything a rendering surface needs to draw one chart.
// Unless noted, positions are in plot-area pixels; add Origin to get
// container coordinates.
type Scene struct {
	Title         string
	Width, Height float64
	Origin        Pixel

	Background, Foreground color.RGBA

	// Message, if non-empty, replaces the plot entirely.
	Message string

	XAxis, YAxis Axis
	RefLines     []Segment
	Paths        []Path
	Markers      []Mark
	Legend       []LegendEntry

	// Tooltip is nil when nothing is hovered. Its anchor is in
	// container coordinates.
	Tooltip *Tooltip
	TooltipStyle
}

// Side is the edge of the plot area an axis is drawn along.
type Side int

const (
	Bottom Side = iota
	Left
)

// An Axis is a drawn axis line with ticks and a title.
type Axis struct {
	Side Side

	// At is the position of the axis line: the y coordinate for a
	// Bottom axis, the x coordinate for a Left axis.
	At    float64
	Range Range
	Ticks []Tick

	Title   string
	TitleAt Pixel

	// TitleRotate is the rotation of the title in degrees.
	TitleRotate float64
}

// A Tick is one labeled tick mark.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// A Segment is a straight line. Dash, if set, is the SVG-style
// dash pattern.
type Segment struct {
	From, To Pixel
	Color    color.RGBA
	Dash     []float64
}

// A Path is a series polyline.
type Path struct {
	Label  string
	Points []Pixel
	Color  color.RGBA
	Width  float64
}

// A Mark is a drawn marker.
type Mark struct {
	Marker
	Fill        color.RGBA
	Opacity     float64
	Stroke      color.RGBA
	StrokeWidth float64
	Hovered     bool
}

// A LegendEntry is a color swatch and its label. At is the top-left
// corner of the swatch.
type LegendEntry struct {
	Label string
	Color color.RGBA
	At    Pixel
	Size  float64
}

// TooltipStyle is the look of the tooltip box.
type TooltipStyle struct {
	TooltipBackground color.RGBA
	TooltipText       color.RGBA

	// TooltipBorder has zero alpha if there is no border.
	TooltipBorder color.RGBA
}

// Colors used by the default views.
var (
	SteelBlue = color.RGBA{0x46, 0x82, 0xb4, 0xff}
	Crimson   = color.RGBA{0xdc, 0x14, 0x3c, 0xff}
	Green     = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Gray      = color.RGBA{0x80, 0x80, 0x80, 0xff}
	White     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Dark      = color.RGBA{0x24, 0x24, 0x24, 0xff}
)

// AxisSpec describes how one axis is derived from the data.
type AxisSpec struct {
	// Field is the record field plotted on this axis.
	Field string

	Title string

	// Nice rounds the domain outward to tick-friendly values.
	Nice bool

	// Floor is the minimum upper bound of a zero-based domain.
	Floor float64

	// Suffix is appended to tick labels.
	Suffix string

	// Integral formats ticks as integers and never places them
	// closer than 1 apart.
	Integral bool

	// MaxTicks bounds the number of ticks. 0 means 10.
	MaxTicks int

	// TitleGap is the distance of the title from the axis line.
	TitleGap float64
}

func (a AxisSpec) maxTicks() int {
	if a.MaxTicks <= 0 {
		return 10
	}
	return a.MaxTicks
}

func (a AxisSpec) scale(d Domain, r Range) Linear {
	s := NewLinear(d, r)
	if a.Nice {
		s = s.Nice(a.maxTicks())
	}
	return s
}

func (a AxisSpec) format(v float64) string {
	if a.Integral {
		return strconv.FormatInt(int64(math.Round(v)), 10) + a.Suffix
	}
	return fmt.Sprintf("%.6g", v) + a.Suffix
}

func (a AxisSpec) ticks(s Linear) []Tick {
	var ts []Tick
	for _, v := range s.Ticks(a.maxTicks(), a.Integral) {
		ts = append(ts, Tick{v, s.Map(v), a.format(v)})
	}
	return ts
}

// bottomAxis and leftAxis lay out the axis for the plot area
// of cfg.
func (a AxisSpec) bottomAxis(s Linear, cfg Config) Axis {
	return Axis{
		Side:    Bottom,
		At:      cfg.InnerHeight(),
		Range:   s.Range,
		Ticks:   a.ticks(s),
		Title:   a.Title,
		TitleAt: Pixel{cfg.InnerWidth() / 2, cfg.InnerHeight() + a.TitleGap},
	}
}

func (a AxisSpec) leftAxis(s Linear, cfg Config) Axis {
	return Axis{
		Side:        Left,
		At:          0,
		Range:       s.Range,
		Ticks:       a.ticks(s),
		Title:       a.Title,
		TitleAt:     Pixel{-a.TitleGap, cfg.InnerHeight() / 2},
		TitleRotate: -90,
	}
}

func newScene(title string, cfg Config) *Scene {
	return &Scene{
		Title:      title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Origin:     Pixel{cfg.Margin.Left, cfg.Margin.Top},
		Background: Dark,
		Foreground: White,
	}
}

// TooltipFunc returns the content of the tooltip for m.
type TooltipFunc func(m Marker) (title string, lines []string)

func tooltipFor(h HoverState, f TooltipFunc, off Offset) *Tooltip {
	s, ok := h.(Hovering)
	if !ok {
		return nil
	}
	title, lines := f(s.Marker)
	return &Tooltip{
		Anchor: TooltipAnchor(s.Pointer, off),
		Title:  title,
		Lines:  lines,
	}
}
