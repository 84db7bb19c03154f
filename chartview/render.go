// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/chartcore/chart"
	"github.com/aclements/chartcore/drawchart"
	"github.com/aclements/chartcore/internal/dataset"
	"github.com/aclements/chartcore/pngchart"
	"github.com/aclements/chartcore/svgchart"
	"github.com/aclements/go-gg/table"
	"golang.org/x/crypto/ssh/terminal"
)

// view is a chart that can be rendered from records.
type view interface {
	markers(records []chart.Record) []chart.Marker
	scene(records []chart.Record, h chart.HoverState) *chart.Scene
}

// options are the flags shared by all subcommands.
type options struct {
	out     string
	format  string
	engine  string
	events  string
	sheet   string
	table   bool
	verbose bool

	stdout io.Writer
}

func (o *options) register(f *flag.FlagSet, cfg *chart.Config) {
	f.StringVar(&o.out, "o", "", "write output to `file` (default: stdout)")
	f.StringVar(&o.format, "format", "", "output `format`, svg or png (default: from -o, else svg)")
	f.StringVar(&o.engine, "engine", "native", "rendering `engine`, native or go-chart")
	f.StringVar(&o.events, "events", "", "replay pointer events from `file`")
	f.StringVar(&o.sheet, "sheet", "", "read `sheet` of an XLSX input (default: first)")
	f.BoolVar(&o.table, "table", false, "print the dataset as a table instead of a chart")
	f.BoolVar(&o.verbose, "v", false, "print dataset statistics")
	f.Float64Var(&cfg.Width, "width", cfg.Width, "chart width in `pixels`")
	f.Float64Var(&cfg.Height, "height", cfg.Height, "chart height in `pixels`")
	f.Var(FlagMargin{&cfg.Margin}, "margin", "plot `margins` as top,right,bottom,left")
	f.Float64Var(&cfg.TolerancePx, "tolerance", cfg.TolerancePx, "hover hit radius in `pixels` (default: marker radius)")
	f.Var(FlagOffset{&cfg.TooltipOffset}, "offset", "tooltip `offset` from the pointer as dx,dy")
}

func (o *options) outputFormat() (string, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		format = "svg"
		if strings.EqualFold(filepath.Ext(o.out), ".png") {
			format = "png"
		}
	}
	if format != "svg" && format != "png" {
		return "", fmt.Errorf("unknown output format %q", o.format)
	}
	switch o.engine {
	case "", "native", "go-chart":
	default:
		return "", fmt.Errorf("unknown engine %q", o.engine)
	}
	return format, nil
}

// render loads input, replays any pointer events, and writes v.
func render(v view, cfg chart.Config, o *options, input string) error {
	d, err := dataset.Load(input, dataset.Options{Sheet: o.sheet})
	if err != nil {
		return err
	}
	stdout := o.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	if o.table {
		table.Fprint(stdout, d.Table())
		return nil
	}

	format, err := o.outputFormat()
	if err != nil {
		return err
	}

	markers := v.markers(d.Records)
	if o.verbose {
		log.Print(summary(input, d, markers))
	}

	h := chart.NewHover(cfg.TooltipOffset)
	if o.events != "" {
		f, err := os.Open(o.events)
		if err != nil {
			return err
		}
		evs, err := parseEvents(f, o.events)
		f.Close()
		if err != nil {
			return err
		}
		if err := replay(h, evs, markers, cfg); err != nil {
			return fmt.Errorf("%s: %w", o.events, err)
		}
	}
	sc := v.scene(d.Records, h.State())

	w, closeOut := stdout, func() error { return nil }
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return err
		}
		w, closeOut = f, f.Close
	} else if format == "png" && stdout == io.Writer(os.Stdout) && terminal.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PNG to a terminal; use -o")
	}

	switch {
	case o.engine == "go-chart" && format == "png":
		err = drawchart.PNG(w, sc)
	case o.engine == "go-chart":
		err = drawchart.SVG(w, sc)
	case format == "png":
		err = pngchart.Encode(w, sc)
	default:
		err = svgchart.Write(w, sc)
	}
	if err2 := closeOut(); err == nil {
		err = err2
	}
	return err
}

// summary describes how many rows of d made it onto the chart.
func summary(input string, d *dataset.Dataset, markers []chart.Marker) string {
	plotted := make(map[int]bool)
	for _, m := range markers {
		plotted[m.Point.Index] = true
	}
	return fmt.Sprintf("%s: %d records (%d blank rows dropped, %d rows not plotted), %d markers",
		input, len(d.Records), d.Blank, len(d.Records)-len(plotted), len(markers))
}

func usageFor(f *flag.FlagSet, name string) func() {
	return func() {
		fmt.Fprintf(f.Output(), "Usage: %s %s [flags] <input>\n", os.Args[0], name)
		f.PrintDefaults()
	}
}

// parseArgs parses args into f and returns the single input path.
func parseArgs(f *flag.FlagSet, args []string) (string, error) {
	if err := f.Parse(args); err != nil {
		return "", err
	}
	if f.NArg() != 1 {
		f.Usage()
		return "", errors.New("expected exactly one input")
	}
	return f.Arg(0), nil
}
