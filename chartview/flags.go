// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/chartcore/chart"
)

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	xs := make([]float64, n)
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

func formatFloats(xs ...float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// FlagMargin is a flag.Value for "top,right,bottom,left".
type FlagMargin struct {
	x *chart.Margin
}

func (f FlagMargin) String() string {
	if f.x == nil {
		return ""
	}
	return formatFloats(f.x.Top, f.x.Right, f.x.Bottom, f.x.Left)
}

func (f FlagMargin) Set(s string) error {
	xs, err := parseFloats(s, 4)
	if err != nil {
		return err
	}
	for _, x := range xs {
		if x < 0 {
			return fmt.Errorf("margins must be >= 0")
		}
	}
	*f.x = chart.Margin{Top: xs[0], Right: xs[1], Bottom: xs[2], Left: xs[3]}
	return nil
}

// FlagOffset is a flag.Value for "dx,dy".
type FlagOffset struct {
	x *chart.Offset
}

func (f FlagOffset) String() string {
	if f.x == nil {
		return ""
	}
	return formatFloats(f.x.DX, f.x.DY)
}

func (f FlagOffset) Set(s string) error {
	xs, err := parseFloats(s, 2)
	if err != nil {
		return err
	}
	*f.x = chart.Offset{DX: xs[0], DY: xs[1]}
	return nil
}

// stringList is a comma-separated list flag.
type stringList []string

func (x *stringList) String() string {
	return strings.Join(*x, ",")
}

func (x *stringList) Set(s string) error {
	*x = nil
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			*x = append(*x, f)
		}
	}
	if len(*x) == 0 {
		return fmt.Errorf("empty list")
	}
	return nil
}
