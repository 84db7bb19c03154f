// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartview renders a scatter or line chart from a CSV or
// XLSX dataset.
//
// Usage:
//
//	chartview scatter [flags] <input>
//	chartview lines [flags] <input>
//
// The scatter chart compares two numeric fields per record (by
// default, the percentage of protected land per country in 1990
// and 2020). The line chart plots several fields against a shared x
// field (by default, i305, i310 and i324 irradiance by year).
//
// Output is SVG, or PNG if -format is png or the -o file ends in
// .png. chartview will not write PNG to a terminal. With -engine
// go-chart, both formats are drawn through go-chart with TrueType
// text instead of the built-in renderers.
//
// Charts are interactive in the sense that hovering a marker shows
// a tooltip. Since chartview renders a single frame, -events replays
// a script of pointer events and renders the final hover state. Each
// line of the script is one of
//
//	enter <series> <index> <x> <y>
//	move <x> <y>
//	leave
//	at <x> <y>
//
// where x and y are container pixel coordinates, and <series> and
// <index> identify a marker by series label and record number. For
// lines, the record number counts input rows after blank rows are
// dropped. For scatter, it counts only the rows the chart plots,
// those passing the country filter with finite x and y. "at"
// hit-tests the position against all markers using -tolerance.
// Words may be quoted as in the shell; # starts a comment.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
)

type subcommand struct {
	desc string
	run  func(args []string) error
}

var subcommands = map[string]subcommand{}

func registerSubcommand(name, desc string, run func(args []string) error) {
	subcommands[name] = subcommand{desc, run}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] <input>\n\nSubcommands:\n", os.Args[0])
	var names []string
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
	}
	fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> -h for flags.\n", os.Args[0])
}

func main() {
	log.SetPrefix("chartview: ")
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, ok := subcommands[os.Args[1]]
	if !ok {
		usage()
		os.Exit(2)
	}
	if err := cmd.run(os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
