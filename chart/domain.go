// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Domain is the closed interval of data values an axis represents.
// Lo <= Hi for every Domain produced by this package.
type Domain struct {
	Lo, Hi float64
}

// DefaultDomain is used when a dataset has no plottable values.
var DefaultDomain = Domain{0, 100}

func (d Domain) String() string {
	return fmt.Sprintf("[%g,%g]", d.Lo, d.Hi)
}

// Width returns Hi - Lo.
func (d Domain) Width() float64 {
	return d.Hi - d.Lo
}

// widen returns d, expanded if it has zero width.
func (d Domain) widen() Domain {
	if d.Lo != d.Hi {
		return d
	}
	if d.Lo == 0 {
		return Domain{0, 1}
	}
	return Domain{d.Lo - 1, d.Hi + 1}
}

// values returns the finite values of acc over records, in order.
func values(records []Record, acc Accessor) []float64 {
	xs := make([]float64, 0, len(records))
	for _, r := range records {
		if x := acc(r); finite(x) {
			xs = append(xs, x)
		}
	}
	return xs
}

// ExtractDomain returns the [min, max] of the finite values of acc
// over records. If there are no finite values, it returns
// DefaultDomain. It does not widen degenerate domains; Linear guards
// against those itself.
func ExtractDomain(records []Record, acc Accessor) Domain {
	xs := values(records, acc)
	if len(xs) == 0 {
		return DefaultDomain
	}
	lo, hi := stats.Bounds(xs)
	return Domain{lo, hi}
}

// Extent is like ExtractDomain, but widens a degenerate result so
// the domain always has positive width.
func Extent(records []Record, acc Accessor) Domain {
	return ExtractDomain(records, acc).widen()
}

// MaxOf returns the largest finite value of any of accs over records.
// ok is false if there are no finite values.
func MaxOf(records []Record, accs ...Accessor) (max float64, ok bool) {
	max = math.Inf(-1)
	for _, acc := range accs {
		xs := values(records, acc)
		if len(xs) == 0 {
			continue
		}
		_, hi := stats.Bounds(xs)
		if hi > max {
			max, ok = hi, true
		}
	}
	if !ok {
		return 0, false
	}
	return max, true
}

// ZeroBased returns [0, max(m, floor)] where m is the maximum across
// all accs. This is the policy for several series sharing one axis.
// If no accessor yields a finite value, it returns DefaultDomain.
func ZeroBased(records []Record, floor float64, accs ...Accessor) Domain {
	m, ok := MaxOf(records, accs...)
	if !ok {
		return DefaultDomain
	}
	hi := math.Max(m, floor)
	if hi < 0 {
		// Keep Lo <= Hi for all-negative data.
		return Domain{hi, 0}
	}
	return Domain{0, hi}.widen()
}
