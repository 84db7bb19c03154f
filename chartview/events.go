// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/chartcore/chart"
	"github.com/kballard/go-shellquote"
)

// An event is one pointer event from an -events script.
type event struct {
	line   int
	op     string
	series string
	index  int
	pos    chart.Pixel
}

func (e event) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", e.line, fmt.Sprintf(format, args...))
}

// parseEvents reads an event script from r.
func parseEvents(r io.Reader, name string) ([]event, error) {
	var evs []event
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		words, err := shellquote.Split(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", name, line, err)
		}
		if len(words) == 0 {
			continue
		}
		ev, err := parseEvent(line, words)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", name, line, err)
		}
		evs = append(evs, ev)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return evs, nil
}

func parseEvent(line int, words []string) (event, error) {
	ev := event{line: line, op: words[0]}
	args := words[1:]
	var nargs int
	switch ev.op {
	case "enter":
		nargs = 4
	case "move", "at":
		nargs = 2
	case "leave":
		nargs = 0
	default:
		return ev, fmt.Errorf("unknown event %q", ev.op)
	}
	if len(args) != nargs {
		return ev, fmt.Errorf("%s takes %d arguments, got %d", ev.op, nargs, len(args))
	}
	if ev.op == "enter" {
		ev.series = args[0]
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return ev, fmt.Errorf("bad marker index %q", args[1])
		}
		ev.index = idx
		args = args[2:]
	}
	if len(args) == 2 {
		x, err1 := strconv.ParseFloat(args[0], 64)
		y, err2 := strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil {
			return ev, fmt.Errorf("bad position %s %s", args[0], args[1])
		}
		ev.pos = chart.Pixel{X: x, Y: y}
	}
	return ev, nil
}

// replay feeds evs through h. Marker lookups and hit tests use
// markers, which are in plot-area coordinates.
func replay(h *chart.Hover, evs []event, markers []chart.Marker, cfg chart.Config) error {
	for _, ev := range evs {
		switch ev.op {
		case "enter":
			m, ok := findMarker(markers, ev.series, ev.index)
			if !ok {
				return ev.errorf("no marker %d in series %q", ev.index, ev.series)
			}
			h.Enter(m, ev.pos)
		case "move":
			h.Move(ev.pos)
		case "leave":
			h.Leave()
		case "at":
			h.Point(ev.pos, cfg.ToPlot(ev.pos), markers, cfg.TolerancePx)
		}
	}
	return nil
}

func findMarker(markers []chart.Marker, series string, index int) (chart.Marker, bool) {
	for _, m := range markers {
		if m.Series == series && m.Point.Index == index {
			return m, true
		}
	}
	return chart.Marker{}, false
}
