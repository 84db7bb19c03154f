// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pngchart rasterizes a chart.Scene. Shapes are filled with
// golang.org/x/image/vector and text is drawn in the fixed 7x13
// bitmap face, so output is identical on every machine.
package pngchart

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/aclements/chartcore/chart"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	tickSize   = 6
	lineHeight = 16
	padding    = 8
)

var face = basicfont.Face7x13

// Encode renders sc and writes it to w as a PNG.
func Encode(w io.Writer, sc *chart.Scene) error {
	return png.Encode(w, Render(sc))
}

// Render rasterizes sc.
func Render(sc *chart.Scene) *image.RGBA {
	width, height := int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(sc.Background), image.Point{}, draw.Src)
	p := &painter{img: img}

	if sc.Title != "" {
		p.text(chart.Pixel{X: sc.Width / 2, Y: sc.Origin.Y / 2}, sc.Title, sc.Foreground, center)
	}
	if sc.Message != "" {
		p.text(chart.Pixel{X: sc.Width / 2, Y: sc.Height / 2}, sc.Message, sc.Foreground, center)
		return img
	}

	p.origin = sc.Origin
	p.axis(sc.XAxis, sc.Foreground)
	p.axis(sc.YAxis, sc.Foreground)
	for _, l := range sc.RefLines {
		if len(l.Dash) > 0 {
			p.dashed(l.From, l.To, 1, l.Dash, l.Color)
		} else {
			p.line(l.From, l.To, 1, l.Color)
		}
	}
	for _, path := range sc.Paths {
		for i := 1; i < len(path.Points); i++ {
			p.line(path.Points[i-1], path.Points[i], path.Width, path.Color)
		}
	}
	for _, m := range sc.Markers {
		r := m.Radius
		if m.StrokeWidth > 0 {
			p.circle(m.Center, r+m.StrokeWidth/2, m.Stroke, 1)
			r -= m.StrokeWidth / 2
		}
		p.circle(m.Center, r, m.Fill, m.Opacity)
	}
	for _, e := range sc.Legend {
		p.rect(e.At, e.Size, e.Size, e.Color)
		p.text(chart.Pixel{X: e.At.X + e.Size + 5, Y: e.At.Y + e.Size}, e.Label, sc.Foreground, start)
	}

	p.origin = chart.Pixel{}
	if t := sc.Tooltip; t != nil {
		p.tooltip(t, sc.TooltipStyle)
	}
	return img
}

type anchor int

const (
	start anchor = iota
	center
	end
)

// painter draws onto img. Shape coordinates are offset by origin.
type painter struct {
	img    *image.RGBA
	origin chart.Pixel
}

// fill fills the polygon pts with col at the given opacity.
func (p *painter) fill(pts []chart.Pixel, col color.RGBA, opacity float64) {
	if len(pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range pts {
		pts[i] = pts[i].Add(p.origin.X, p.origin.Y)
		minX, maxX = math.Min(minX, pts[i].X), math.Max(maxX, pts[i].X)
		minY, maxY = math.Min(minY, pts[i].Y), math.Max(maxY, pts[i].Y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	if r.Empty() || !r.Overlaps(p.img.Bounds()) {
		return
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
	}
	z.ClosePath()

	// Rasterize into a mask so draw.DrawMask clips to the image.
	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	src := color.NRGBA{col.R, col.G, col.B, uint8(float64(col.A)*clamp01(opacity) + 0.5)}
	draw.DrawMask(p.img, r, image.NewUniform(src), image.Point{}, mask, image.Point{}, draw.Over)
}

func (p *painter) line(a, b chart.Pixel, width float64, col color.RGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	// Normal scaled to half the line width.
	nx, ny := -dy/l*width/2, dx/l*width/2
	p.fill([]chart.Pixel{a.Add(nx, ny), b.Add(nx, ny), b.Add(-nx, -ny), a.Add(-nx, -ny)}, col, 1)
}

func (p *painter) dashed(a, b chart.Pixel, width float64, dash []float64, col color.RGBA) {
	total := math.Hypot(b.X-a.X, b.Y-a.Y)
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if total == 0 || period <= 0 {
		p.line(a, b, width, col)
		return
	}
	ux, uy := (b.X-a.X)/total, (b.Y-a.Y)/total
	at := func(s float64) chart.Pixel { return a.Add(ux*s, uy*s) }
	for pos, i := 0.0, 0; pos < total; i++ {
		next := math.Min(pos+dash[i%len(dash)], total)
		if i%2 == 0 {
			p.line(at(pos), at(next), width, col)
		}
		pos = next
	}
}

func (p *painter) circle(c chart.Pixel, r float64, col color.RGBA, opacity float64) {
	if r <= 0 {
		return
	}
	const n = 32
	pts := make([]chart.Pixel, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / n
		pts[i] = c.Add(r*math.Cos(theta), r*math.Sin(theta))
	}
	p.fill(pts, col, opacity)
}

func (p *painter) rect(at chart.Pixel, w, h float64, col color.RGBA) {
	p.fill([]chart.Pixel{at, at.Add(w, 0), at.Add(w, h), at.Add(0, h)}, col, 1)
}

// text draws s with its baseline at pos.
func (p *painter) text(pos chart.Pixel, s string, col color.RGBA, a anchor) {
	pos = pos.Add(p.origin.X, p.origin.Y)
	d := &font.Drawer{Dst: p.img, Src: image.NewUniform(col), Face: face}
	x := pos.X
	switch a {
	case center:
		x -= float64(d.MeasureString(s).Ceil()) / 2
	case end:
		x -= float64(d.MeasureString(s).Ceil())
	}
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(pos.Y)))
	d.DrawString(s)
}

// vtext draws s rotated 90° counterclockwise, centered on pos.
func (p *painter) vtext(pos chart.Pixel, s string, col color.RGBA) {
	d := &font.Drawer{Face: face}
	w := d.MeasureString(s).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst, d.Src = tmp, image.NewUniform(col)
	d.Dot = fixed.Point26_6{X: 0, Y: m.Ascent}
	d.DrawString(s)

	pos = pos.Add(p.origin.X, p.origin.Y)
	x0, y0 := int(math.Round(pos.X))-h/2, int(math.Round(pos.Y))-w/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := tmp.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			dx, dy := x0+y, y0+(w-1-x)
			if image.Pt(dx, dy).In(p.img.Bounds()) {
				p.img.SetRGBA(dx, dy, c)
			}
		}
	}
}

func (p *painter) axis(a chart.Axis, fg color.RGBA) {
	switch a.Side {
	case chart.Bottom:
		y := a.At
		p.line(chart.Pixel{X: a.Range.Lo, Y: y}, chart.Pixel{X: a.Range.Hi, Y: y}, 1, fg)
		for _, t := range a.Ticks {
			p.line(chart.Pixel{X: t.Pos, Y: y}, chart.Pixel{X: t.Pos, Y: y + tickSize}, 1, fg)
			p.text(chart.Pixel{X: t.Pos, Y: y + tickSize + 12}, t.Label, fg, center)
		}
	case chart.Left:
		x := a.At
		p.line(chart.Pixel{X: x, Y: a.Range.Lo}, chart.Pixel{X: x, Y: a.Range.Hi}, 1, fg)
		for _, t := range a.Ticks {
			p.line(chart.Pixel{X: x - tickSize, Y: t.Pos}, chart.Pixel{X: x, Y: t.Pos}, 1, fg)
			p.text(chart.Pixel{X: x - tickSize - 3, Y: t.Pos + 4}, t.Label, fg, end)
		}
	}
	if a.Title == "" {
		return
	}
	if a.TitleRotate != 0 {
		p.vtext(a.TitleAt, a.Title, fg)
		return
	}
	p.text(a.TitleAt, a.Title, fg, center)
}

func (p *painter) tooltip(t *chart.Tooltip, st chart.TooltipStyle) {
	d := &font.Drawer{Face: face}
	n := d.MeasureString(t.Title).Ceil()
	for _, l := range t.Lines {
		if w := d.MeasureString(l).Ceil(); w > n {
			n = w
		}
	}
	w := float64(n + 2*padding)
	h := float64((1+len(t.Lines))*lineHeight + 2*padding - 4)
	if st.TooltipBorder.A != 0 {
		p.rect(t.Anchor, w, h, st.TooltipBorder)
		p.rect(t.Anchor.Add(1, 1), w-2, h-2, st.TooltipBackground)
	} else {
		p.rect(t.Anchor, w, h, st.TooltipBackground)
	}
	y := t.Anchor.Y + padding + 12
	p.text(chart.Pixel{X: t.Anchor.X + padding, Y: y}, t.Title, st.TooltipText, start)
	for _, l := range t.Lines {
		y += lineHeight
		p.text(chart.Pixel{X: t.Anchor.X + padding, Y: y}, l, st.TooltipText, start)
	}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
