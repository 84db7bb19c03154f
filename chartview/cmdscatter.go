// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/aclements/chartcore/chart"
)

func init() {
	registerSubcommand("scatter", "[flags] <input> - compare two fields per record", cmdScatter)
}

type scatterView struct {
	*chart.Scatter
}

func (v scatterView) markers(records []chart.Record) []chart.Marker {
	ms, _ := v.Markers(records)
	return ms
}

func (v scatterView) scene(records []chart.Record, h chart.HoverState) *chart.Scene {
	return v.Scene(records, h)
}

func cmdScatter(args []string) error {
	c := chart.NewScatter()
	var o options
	var code string
	f := flag.NewFlagSet("scatter", flag.ContinueOnError)
	f.Usage = usageFor(f, "scatter")
	o.register(f, &c.Config)
	f.StringVar(&c.X.Field, "x", c.X.Field, "x axis `field`")
	f.StringVar(&c.Y.Field, "y", c.Y.Field, "y axis `field`")
	f.StringVar(&c.X.Title, "x-title", c.X.Title, "x axis `title`")
	f.StringVar(&c.Y.Title, "y-title", c.Y.Title, "y axis `title`")
	f.StringVar(&c.LabelField, "label", c.LabelField, "tooltip title `field`")
	f.StringVar(&code, "code", "Country Code", "plot only records whose `field` is a 3-letter code (empty: all)")
	f.StringVar(&c.Title, "title", c.Title, "chart `title`")
	f.Float64Var(&c.X.Floor, "floor", c.X.Floor, "minimum axis upper `bound`")
	f.BoolVar(&c.X.Nice, "nice-x", c.X.Nice, "round the x domain to nice values")
	f.BoolVar(&c.Y.Nice, "nice-y", c.Y.Nice, "round the y domain to nice values")
	input, err := parseArgs(f, args)
	if err != nil {
		return err
	}
	c.Y.Floor = c.X.Floor
	c.Filter = nil
	if code != "" {
		c.Filter = chart.IsCountry(code)
	}
	return render(scatterView{c}, c.Config, &o, input)
}
