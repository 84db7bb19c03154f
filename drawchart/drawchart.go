// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawchart draws a chart.Scene through a go-chart Renderer,
// which can produce either PNG or SVG output with TrueType text.
package drawchart

import (
	"image/color"
	"io"
	"math"

	"github.com/aclements/chartcore/chart"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	tickSize   = 6
	tickFont   = 8
	labelFont  = 9
	titleFont  = 12
	lineHeight = 16
	padding    = 8
)

// PNG writes sc to w as a PNG image.
func PNG(w io.Writer, sc *chart.Scene) error {
	return encode(gochart.PNG, w, sc)
}

// SVG writes sc to w as an SVG document.
func SVG(w io.Writer, sc *chart.Scene) error {
	return encode(gochart.SVG, w, sc)
}

func encode(p gochart.RendererProvider, w io.Writer, sc *chart.Scene) error {
	r, err := p(iround(sc.Width), iround(sc.Height))
	if err != nil {
		return err
	}
	if err := Draw(r, sc); err != nil {
		return err
	}
	return r.Save(w)
}

// Draw draws sc onto r. r must be at least sc.Width by sc.Height.
func Draw(r gochart.Renderer, sc *chart.Scene) error {
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return err
	}
	d := &drawer{r: r, sc: sc}
	r.SetFont(font)

	d.rect(0, 0, sc.Width, sc.Height, sc.Background)
	if sc.Title != "" {
		d.text(sc.Title, sc.Width/2, sc.Origin.Y/2, titleFont, sc.Foreground, anchorMiddle)
	}
	if sc.Message != "" {
		d.text(sc.Message, sc.Width/2, sc.Height/2, titleFont, sc.Foreground, anchorMiddle)
		return nil
	}

	d.axis(sc.XAxis)
	d.axis(sc.YAxis)
	for _, l := range sc.RefLines {
		d.line(d.abs(l.From), d.abs(l.To), l.Color, 1, l.Dash)
	}
	for _, p := range sc.Paths {
		d.polyline(p.Points, p.Color, p.Width)
	}
	for _, m := range sc.Markers {
		d.mark(m)
	}
	for _, e := range sc.Legend {
		at := d.abs(e.At)
		d.rect(at.X, at.Y, e.Size, e.Size, e.Color)
		d.text(e.Label, at.X+e.Size+5, at.Y+e.Size, labelFont, sc.Foreground, anchorStart)
	}
	if sc.Tooltip != nil {
		d.tooltip(sc.Tooltip)
	}
	return nil
}

type anchor int

const (
	anchorStart anchor = iota
	anchorMiddle
	anchorEnd
)

type drawer struct {
	r  gochart.Renderer
	sc *chart.Scene
}

// abs converts a plot-area point to container coordinates.
func (d *drawer) abs(p chart.Pixel) chart.Pixel {
	return p.Add(d.sc.Origin.X, d.sc.Origin.Y)
}

func (d *drawer) rect(x, y, w, h float64, c color.RGBA) {
	r := d.r
	r.SetFillColor(rgba(c, 1))
	r.MoveTo(iround(x), iround(y))
	r.LineTo(iround(x+w), iround(y))
	r.LineTo(iround(x+w), iround(y+h))
	r.LineTo(iround(x), iround(y+h))
	r.Close()
	r.Fill()
}

func (d *drawer) line(from, to chart.Pixel, c color.RGBA, width float64, dash []float64) {
	r := d.r
	r.SetStrokeColor(rgba(c, 1))
	r.SetStrokeWidth(width)
	r.SetStrokeDashArray(dash)
	r.MoveTo(iround(from.X), iround(from.Y))
	r.LineTo(iround(to.X), iround(to.Y))
	r.Stroke()
	r.SetStrokeDashArray(nil)
}

func (d *drawer) polyline(pts []chart.Pixel, c color.RGBA, width float64) {
	if len(pts) == 0 {
		return
	}
	r := d.r
	r.SetStrokeColor(rgba(c, 1))
	r.SetStrokeWidth(width)
	for i, p := range pts {
		p = d.abs(p)
		if i == 0 {
			r.MoveTo(iround(p.X), iround(p.Y))
		} else {
			r.LineTo(iround(p.X), iround(p.Y))
		}
	}
	r.Stroke()
}

func (d *drawer) mark(m chart.Mark) {
	r := d.r
	c := d.abs(m.Center)
	r.SetFillColor(rgba(m.Fill, m.Opacity))
	if m.StrokeWidth > 0 {
		r.SetStrokeColor(rgba(m.Stroke, 1))
		r.SetStrokeWidth(m.StrokeWidth)
	} else {
		r.SetStrokeColor(drawing.Color{})
		r.SetStrokeWidth(0)
	}
	r.Circle(m.Radius, iround(c.X), iround(c.Y))
	r.FillStroke()
}

func (d *drawer) text(s string, x, y, size float64, c color.RGBA, a anchor) {
	r := d.r
	r.SetFontSize(size)
	r.SetFontColor(rgba(c, 1))
	switch a {
	case anchorMiddle:
		x -= float64(r.MeasureText(s).Width()) / 2
	case anchorEnd:
		x -= float64(r.MeasureText(s).Width())
	}
	r.Text(s, iround(x), iround(y))
}

func (d *drawer) axis(a chart.Axis) {
	fg := d.sc.Foreground
	var from, to chart.Pixel
	switch a.Side {
	case chart.Bottom:
		from, to = chart.Pixel{X: a.Range.Lo, Y: a.At}, chart.Pixel{X: a.Range.Hi, Y: a.At}
	case chart.Left:
		from, to = chart.Pixel{X: a.At, Y: a.Range.Lo}, chart.Pixel{X: a.At, Y: a.Range.Hi}
	}
	d.line(d.abs(from), d.abs(to), fg, 1, nil)

	for _, t := range a.Ticks {
		switch a.Side {
		case chart.Bottom:
			p := d.abs(chart.Pixel{X: t.Pos, Y: a.At})
			d.line(p, p.Add(0, tickSize), fg, 1, nil)
			d.text(t.Label, p.X, p.Y+tickSize+12, tickFont, fg, anchorMiddle)
		case chart.Left:
			p := d.abs(chart.Pixel{X: a.At, Y: t.Pos})
			d.line(p.Add(-tickSize, 0), p, fg, 1, nil)
			d.text(t.Label, p.X-tickSize-3, p.Y+3, tickFont, fg, anchorEnd)
		}
	}

	if a.Title == "" {
		return
	}
	at := d.abs(a.TitleAt)
	if a.TitleRotate != 0 {
		d.r.SetTextRotation(a.TitleRotate * math.Pi / 180)
		d.text(a.Title, at.X, at.Y, labelFont, fg, anchorMiddle)
		d.r.ClearTextRotation()
		return
	}
	d.text(a.Title, at.X, at.Y, labelFont, fg, anchorMiddle)
}

func (d *drawer) tooltip(t *chart.Tooltip) {
	st := d.sc.TooltipStyle
	d.r.SetFontSize(labelFont)
	w := 0
	for _, s := range append([]string{t.Title}, t.Lines...) {
		if tw := d.r.MeasureText(s).Width(); tw > w {
			w = tw
		}
	}
	bw := float64(w + 2*padding)
	bh := float64((1+len(t.Lines))*lineHeight + padding)
	x, y := t.Anchor.X, t.Anchor.Y
	if st.TooltipBorder.A != 0 {
		d.rect(x-1, y-1, bw+2, bh+2, st.TooltipBorder)
	}
	d.rect(x, y, bw, bh, st.TooltipBackground)
	ty := y + padding + 12
	d.text(t.Title, x+padding, ty, labelFont, st.TooltipText, anchorStart)
	for _, l := range t.Lines {
		ty += lineHeight
		d.text(l, x+padding, ty, labelFont, st.TooltipText, anchorStart)
	}
}

// rgba converts c to a go-chart color, scaling its alpha by opacity.
func rgba(c color.RGBA, opacity float64) drawing.Color {
	a := math.Round(float64(c.A) * math.Max(0, math.Min(1, opacity)))
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

func iround(x float64) int {
	return int(math.Round(x))
}
