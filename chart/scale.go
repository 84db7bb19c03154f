// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// A Range is the pixel interval an axis occupies. Lo may be greater
// than Hi; a vertical axis usually runs from the bottom of the plot
// area (larger y) to the top.
type Range struct {
	Lo, Hi float64
}

// Linear maps a Domain onto a Range by linear interpolation.
//
// A Linear is a value. Methods that adjust it, such as Nice, return a
// new scale and leave the receiver unchanged.
type Linear struct {
	Domain Domain
	Range  Range
}

// NewLinear returns the linear scale from d to r.
func NewLinear(d Domain, r Range) Linear {
	return Linear{d, r}
}

// Map returns the pixel coordinate of domain value v. If the domain
// has zero width, Map returns Range.Lo for every v.
//
// Map(Domain.Lo) == Range.Lo and Map(Domain.Hi) == Range.Hi exactly.
func (s Linear) Map(v float64) float64 {
	den := s.Domain.Hi - s.Domain.Lo
	if den == 0 {
		return s.Range.Lo
	}
	t := (v - s.Domain.Lo) / den
	span := s.Range.Hi - s.Range.Lo
	if t >= 1 {
		return s.Range.Hi + (t-1)*span
	}
	// Rounding must not carry px past the far endpoint.
	px := s.Range.Lo + t*span
	if span > 0 && px > s.Range.Hi || span < 0 && px < s.Range.Hi {
		px = s.Range.Hi
	}
	return px
}

// Invert returns the domain value at pixel coordinate px. It is the
// inverse of Map for scales with non-empty domain and range. If the
// range has zero width, Invert returns Domain.Lo.
func (s Linear) Invert(px float64) float64 {
	den := s.Range.Hi - s.Range.Lo
	if den == 0 {
		return s.Domain.Lo
	}
	return s.Domain.Lo + (px-s.Range.Lo)/den*(s.Domain.Hi-s.Domain.Lo)
}

// Nice returns s with its domain expanded outward to round tick
// values, choosing the tick spacing that gives at most maxTicks major
// ticks. Degenerate domains are returned unchanged.
func (s Linear) Nice(maxTicks int) Linear {
	if s.Domain.Lo == s.Domain.Hi || maxTicks < 1 {
		return s
	}
	ls := scale.Linear{Min: s.Domain.Lo, Max: s.Domain.Hi}
	ls.Nice(scale.TickOptions{Max: maxTicks})
	if !finite(ls.Min) || !finite(ls.Max) {
		return s
	}
	return Linear{Domain{math.Min(ls.Min, s.Domain.Lo), math.Max(ls.Max, s.Domain.Hi)}, s.Range}
}

// Ticks returns at most maxTicks major tick values within the domain,
// in increasing order. If integral is set, tick spacing is never
// finer than 1.
func (s Linear) Ticks(maxTicks int, integral bool) []float64 {
	if s.Domain.Lo == s.Domain.Hi {
		return []float64{s.Domain.Lo}
	}
	o := scale.TickOptions{Max: maxTicks}
	if integral {
		o.MinLevel, o.MaxLevel = 0, 1000
	}
	ls := scale.Linear{Min: s.Domain.Lo, Max: s.Domain.Hi}
	major, _ := ls.Ticks(o)
	return major
}
