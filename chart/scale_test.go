// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"math/rand"
	"testing"
)

func TestLinearMap(t *testing.T) {
	s := NewLinear(Domain{1990, 2020}, Range{0, 740})
	for _, test := range []struct{ in, want float64 }{
		{1990, 0},
		{2020, 740},
		{2005, 370},
		{2035, 1110},
		{1975, -370},
	} {
		if got := s.Map(test.in); got != test.want {
			t.Errorf("Map(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestLinearDegenerate(t *testing.T) {
	s := NewLinear(Domain{5, 5}, Range{10, 110})
	for _, v := range []float64{-1, 5, 100} {
		if got := s.Map(v); got != 10 {
			t.Errorf("Map(%v) on zero-width domain = %v, want 10", v, got)
		}
	}
	s = NewLinear(Domain{0, 10}, Range{7, 7})
	if got := s.Invert(7); got != 0 {
		t.Errorf("Invert on zero-width range = %v, want 0", got)
	}
}

func TestLinearEndpoints(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		lo := r.NormFloat64() * 1e3
		d := Domain{lo, lo + r.Float64()*1e4 + 1e-3}
		rlo := r.NormFloat64() * 1e3
		rg := Range{rlo, rlo + r.Float64()*1e3 + 1e-3}
		if i%2 == 1 {
			rg.Lo, rg.Hi = rg.Hi, rg.Lo
		}
		s := NewLinear(d, rg)
		if got := s.Map(d.Lo); got != rg.Lo {
			t.Fatalf("%+v: Map(lo) = %v, want %v", s, got, rg.Lo)
		}
		if got := s.Map(d.Hi); got != rg.Hi {
			t.Fatalf("%+v: Map(hi) = %v, want %v", s, got, rg.Hi)
		}
	}
}

func TestLinearMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		lo := r.NormFloat64() * 100
		d := Domain{lo, lo + r.Float64()*100 + 1}
		rlo := r.Float64() * 100
		s := NewLinear(d, Range{rlo, rlo + r.Float64()*800 + 1})
		prev := math.Inf(-1)
		for v := d.Lo - 10; v <= d.Hi+10; v += d.Width() / 97 {
			px := s.Map(v)
			if px < prev {
				t.Fatalf("%+v: Map(%v) = %v < previous %v", s, v, px, prev)
			}
			prev = px
		}
	}
}

func TestLinearInvert(t *testing.T) {
	s := NewLinear(Domain{0, 50}, Range{460, 0})
	for _, v := range []float64{0, 12.5, 25, 50} {
		if got := s.Invert(s.Map(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("Invert(Map(%v)) = %v", v, got)
		}
	}
}

func TestLinearNice(t *testing.T) {
	for _, test := range []struct {
		in     Domain
		wantHi float64
	}{
		{Domain{0, 9.3}, 10},
		{Domain{0, 93}, 100},
		{Domain{3, 93}, 100},
	} {
		s := NewLinear(test.in, Range{460, 0})
		n := s.Nice(10)
		if n.Domain.Lo > test.in.Lo || n.Domain.Hi < test.in.Hi {
			t.Errorf("Nice(%v) = %v does not contain input", test.in, n.Domain)
		}
		if n.Domain.Hi != test.wantHi {
			t.Errorf("Nice(%v).Hi = %v, want %v", test.in, n.Domain.Hi, test.wantHi)
		}
		if n.Domain.Lo != 0 {
			t.Errorf("Nice(%v).Lo = %v, want 0", test.in, n.Domain.Lo)
		}
		if s.Domain != test.in {
			t.Errorf("Nice modified its receiver: %v", s.Domain)
		}
		if n.Range != s.Range {
			t.Errorf("Nice changed range to %v", n.Range)
		}
	}

	s := NewLinear(Domain{4, 4}, Range{0, 1})
	if n := s.Nice(10); n != s {
		t.Errorf("Nice of degenerate domain = %+v, want unchanged", n)
	}
}

func TestLinearTicks(t *testing.T) {
	s := NewLinear(Domain{0, 100}, Range{0, 720})
	ticks := s.Ticks(10, false)
	if len(ticks) < 2 || len(ticks) > 10 {
		t.Fatalf("Ticks(10) returned %d ticks: %v", len(ticks), ticks)
	}
	for i, v := range ticks {
		if v < -1e-9 || v > 100+1e-9 {
			t.Errorf("tick %v outside domain", v)
		}
		if i > 0 && v <= ticks[i-1] {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}

	s = NewLinear(Domain{2000, 2003}, Range{0, 640})
	for _, v := range s.Ticks(10, true) {
		if v != math.Trunc(v) {
			t.Errorf("integral tick %v is not an integer", v)
		}
	}
}
