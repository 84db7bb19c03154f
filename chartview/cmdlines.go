// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"image/color"

	"github.com/aclements/chartcore/chart"
)

func init() {
	registerSubcommand("lines", "[flags] <input> - plot fields against a shared x field", cmdLines)
}

// palette colors series beyond the defaults.
var palette = []color.RGBA{
	chart.SteelBlue, chart.Crimson, chart.Green,
	{0xff, 0x8c, 0x00, 0xff}, // darkorange
	{0x94, 0x00, 0xd3, 0xff}, // darkviolet
	{0x00, 0xce, 0xd1, 0xff}, // darkturquoise
}

type linesView struct {
	*chart.Lines
}

func (v linesView) markers(records []chart.Record) []chart.Marker {
	return v.Markers(records)
}

func (v linesView) scene(records []chart.Record, h chart.HoverState) *chart.Scene {
	return v.Scene(records, h)
}

func cmdLines(args []string) error {
	c := chart.NewLines()
	var o options
	var series stringList
	for _, s := range c.Series {
		series = append(series, s.Field)
	}
	f := flag.NewFlagSet("lines", flag.ContinueOnError)
	f.Usage = usageFor(f, "lines")
	o.register(f, &c.Config)
	f.StringVar(&c.X.Field, "x", c.X.Field, "x axis `field`")
	f.Var(&series, "series", "comma-separated y `fields`")
	f.StringVar(&c.X.Title, "x-title", c.X.Title, "x axis `title`")
	f.StringVar(&c.Y.Title, "y-title", c.Y.Title, "y axis `title`")
	f.StringVar(&c.Title, "title", c.Title, "chart `title`")
	f.BoolVar(&c.X.Integral, "integral-x", c.X.Integral, "label x ticks as integers")
	f.BoolVar(&c.X.Nice, "nice-x", c.X.Nice, "round the x domain to nice values")
	f.BoolVar(&c.Y.Nice, "nice-y", c.Y.Nice, "round the y domain to nice values")
	input, err := parseArgs(f, args)
	if err != nil {
		return err
	}
	c.Series = nil
	for i, field := range series {
		c.Series = append(c.Series, chart.SeriesSpec{Field: field, Color: palette[i%len(palette)]})
	}
	return render(linesView{c}, c.Config, &o, input)
}
