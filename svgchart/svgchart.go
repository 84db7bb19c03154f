// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgchart draws a chart.Scene as SVG.
package svgchart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/aclements/chartcore/chart"
	svg "github.com/ajstarks/svgo"
)

const (
	tickSize   = 6
	fontSize   = 12
	lineHeight = 16
	padding    = 8

	// charWidth approximates the advance of one character at
	// fontSize. It is used only to size the tooltip box.
	charWidth = 7
)

// Write draws sc to w as a standalone SVG document.
func Write(w io.Writer, sc *chart.Scene) error {
	ew := &errWriter{w: w}
	c := svg.New(ew)
	width, height := iround(sc.Width), iround(sc.Height)
	c.Start(width, height)
	c.Rect(0, 0, width, height, "fill:"+hex(sc.Background))
	fg := "fill:" + hex(sc.Foreground)

	if sc.Title != "" {
		c.Text(width/2, iround(sc.Origin.Y/2), sc.Title, "text-anchor:middle;font-size:16px;font-weight:bold;"+fg)
	}
	if sc.Message != "" {
		c.Text(width/2, height/2, sc.Message, "text-anchor:middle;font-size:14px;"+fg)
		c.End()
		return ew.err
	}

	c.Translate(iround(sc.Origin.X), iround(sc.Origin.Y))
	drawAxis(c, sc.XAxis, sc.Foreground)
	drawAxis(c, sc.YAxis, sc.Foreground)

	for _, l := range sc.RefLines {
		style := "stroke:" + hex(l.Color)
		if len(l.Dash) > 0 {
			style += ";stroke-dasharray:" + dashes(l.Dash)
		}
		c.Line(iround(l.From.X), iround(l.From.Y), iround(l.To.X), iround(l.To.Y), style)
	}

	for _, p := range sc.Paths {
		if len(p.Points) == 0 {
			continue
		}
		xs, ys := make([]int, len(p.Points)), make([]int, len(p.Points))
		for i, pt := range p.Points {
			xs[i], ys[i] = iround(pt.X), iround(pt.Y)
		}
		c.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", hex(p.Color), p.Width))
	}

	for _, m := range sc.Markers {
		style := fmt.Sprintf("fill:%s;opacity:%g", hex(m.Fill), m.Opacity)
		if m.StrokeWidth > 0 {
			style += fmt.Sprintf(";stroke:%s;stroke-width:%g", hex(m.Stroke), m.StrokeWidth)
		}
		c.Circle(iround(m.Center.X), iround(m.Center.Y), iround(m.Radius), style,
			fmt.Sprintf(`data-series="%s"`, attr(m.Series)),
			fmt.Sprintf(`data-index="%d"`, m.Point.Index))
	}

	for _, e := range sc.Legend {
		x, y, size := iround(e.At.X), iround(e.At.Y), iround(e.Size)
		c.Rect(x, y, size, size, "fill:"+hex(e.Color))
		c.Text(x+size+5, y+size, e.Label, fmt.Sprintf("font-size:%dpx;%s", fontSize, fg))
	}
	c.Gend()

	if t := sc.Tooltip; t != nil {
		drawTooltip(c, t, sc.TooltipStyle)
	}
	c.End()
	return ew.err
}

func drawAxis(c *svg.SVG, a chart.Axis, fg color.RGBA) {
	stroke := "stroke:" + hex(fg)
	text := fmt.Sprintf("font-size:10px;fill:%s", hex(fg))
	lo, hi := iround(a.Range.Lo), iround(a.Range.Hi)
	switch a.Side {
	case chart.Bottom:
		c.Translate(0, iround(a.At))
		c.Line(lo, 0, hi, 0, stroke)
		for _, t := range a.Ticks {
			x := iround(t.Pos)
			c.Line(x, 0, x, tickSize, stroke)
			c.Text(x, tickSize+12, t.Label, "text-anchor:middle;"+text)
		}
		c.Gend()
	case chart.Left:
		c.Translate(iround(a.At), 0)
		c.Line(0, lo, 0, hi, stroke)
		for _, t := range a.Ticks {
			y := iround(t.Pos)
			c.Line(-tickSize, y, 0, y, stroke)
			c.Text(-tickSize-3, y+3, t.Label, "text-anchor:end;"+text)
		}
		c.Gend()
	}
	if a.Title == "" {
		return
	}
	title := "text-anchor:middle;fill:" + hex(fg)
	if a.TitleRotate != 0 {
		c.TranslateRotate(iround(a.TitleAt.X), iround(a.TitleAt.Y), a.TitleRotate)
		c.Text(0, 0, a.Title, title)
		c.Gend()
		return
	}
	c.Text(iround(a.TitleAt.X), iround(a.TitleAt.Y), a.Title, title)
}

func drawTooltip(c *svg.SVG, t *chart.Tooltip, st chart.TooltipStyle) {
	w, h := TooltipSize(t)
	x, y := iround(t.Anchor.X), iround(t.Anchor.Y)
	box := "fill:" + hex(st.TooltipBackground)
	if st.TooltipBorder.A != 0 {
		box += ";stroke:" + hex(st.TooltipBorder)
	}
	c.Group(`class="tooltip"`, "pointer-events:none")
	c.Roundrect(x, y, w, h, 4, 4, box)
	text := fmt.Sprintf("font-size:%dpx;fill:%s", fontSize, hex(st.TooltipText))
	ty := y + padding + fontSize
	c.Text(x+padding, ty, t.Title, text+";font-weight:bold")
	for _, l := range t.Lines {
		ty += lineHeight
		c.Text(x+padding, ty, l, text)
	}
	c.Gend()
}

// TooltipSize returns the pixel size of the box drawn for t.
func TooltipSize(t *chart.Tooltip) (w, h int) {
	n := len(t.Title)
	for _, l := range t.Lines {
		if len(l) > n {
			n = len(l)
		}
	}
	w = n*charWidth + 2*padding
	h = (1+len(t.Lines))*lineHeight + 2*padding - (lineHeight - fontSize)
	return
}

func iround(x float64) int {
	return int(math.Round(x))
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func dashes(d []float64) string {
	parts := make([]string, len(d))
	for i, x := range d {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return strings.Join(parts, " ")
}

var attrReplacer = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;")

func attr(s string) string {
	return attrReplacer.Replace(s)
}

// errWriter records the first error from w. svgo ignores write
// errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
