// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Margin is the space between the container edge and the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Offset is a pixel displacement.
type Offset struct {
	DX, DY float64
}

// Config is the fixed layout of one chart instance.
type Config struct {
	Margin        Margin
	Width, Height float64

	// TolerancePx is the hover hit radius. If it is <= 0, each
	// marker's own drawn radius is used.
	TolerancePx float64

	// TooltipOffset displaces the tooltip from the pointer.
	TooltipOffset Offset
}

// ScatterConfig is the default layout of the scatter chart.
var ScatterConfig = Config{
	Margin:        Margin{Top: 50, Right: 20, Bottom: 50, Left: 60},
	Width:         800,
	Height:        600,
	TooltipOffset: Offset{10, 10},
}

// LinesConfig is the default layout of the line chart.
var LinesConfig = Config{
	Margin:        Margin{Top: 40, Right: 100, Bottom: 50, Left: 60},
	Width:         800,
	Height:        500,
	TooltipOffset: Offset{10, 10},
}

// InnerWidth returns the width of the plot area.
func (c Config) InnerWidth() float64 {
	return c.Width - c.Margin.Left - c.Margin.Right
}

// InnerHeight returns the height of the plot area.
func (c Config) InnerHeight() float64 {
	return c.Height - c.Margin.Top - c.Margin.Bottom
}

// XRange returns the pixel range of the horizontal axis, relative to
// the plot area.
func (c Config) XRange() Range {
	return Range{0, c.InnerWidth()}
}

// YRange returns the pixel range of the vertical axis, relative to
// the plot area. It runs bottom to top.
func (c Config) YRange() Range {
	return Range{c.InnerHeight(), 0}
}

// ToPlot converts a container position to plot-area coordinates.
func (c Config) ToPlot(p Pixel) Pixel {
	return Pixel{p.X - c.Margin.Left, p.Y - c.Margin.Top}
}

// ToContainer converts a plot-area position to container coordinates.
func (c Config) ToContainer(p Pixel) Pixel {
	return Pixel{p.X + c.Margin.Left, p.Y + c.Margin.Top}
}
