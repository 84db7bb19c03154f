// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "math"

// HoverState is either Idle or Hovering.
type HoverState interface {
	isHoverState()
}

// Idle is the HoverState when no marker is under the pointer.
type Idle struct{}

// Hovering is the HoverState while the pointer is over Marker.
// Pointer is the last pointer position, in container coordinates.
type Hovering struct {
	Marker  Marker
	Pointer Pixel
}

func (Idle) isHoverState()     {}
func (Hovering) isHoverState() {}

// Hover tracks which marker, if any, is under the pointer. At most
// one marker is active at a time. The zero Hover is Idle with no
// tooltip offset.
//
// Hover is driven by the pointer-event handlers of a single view and
// is not safe for concurrent use.
type Hover struct {
	state  HoverState
	offset Offset
}

// NewHover returns an Idle Hover whose tooltips are displaced from
// the pointer by offset.
func NewHover(offset Offset) *Hover {
	return &Hover{state: Idle{}, offset: offset}
}

// State returns the current state. It is never nil.
func (h *Hover) State() HoverState {
	if h.state == nil {
		return Idle{}
	}
	return h.state
}

// Enter makes m the active marker, replacing any other.
func (h *Hover) Enter(m Marker, pointer Pixel) {
	h.state = Hovering{m, pointer}
}

// Move updates the pointer position. The active marker is unchanged,
// and Move does nothing when Idle.
func (h *Hover) Move(pointer Pixel) {
	if s, ok := h.state.(Hovering); ok {
		s.Pointer = pointer
		h.state = s
	}
}

// Leave returns h to Idle.
func (h *Hover) Leave() {
	h.state = Idle{}
}

// Point drives h from a raw pointer position for surfaces without
// their own hit-testing. The nearest marker within tolerance of the
// plot-area position plot becomes active; pointer is recorded as
// the container position.
func (h *Hover) Point(pointer, plot Pixel, markers []Marker, tolerance float64) {
	m, ok := ResolveHover(plot, markers, tolerance)
	if !ok {
		h.Leave()
		return
	}
	if cur, ok := h.state.(Hovering); ok && cur.Marker.Same(m) {
		h.Move(pointer)
		return
	}
	h.Enter(m, pointer)
}

// A Tooltip is the hover detail box.
type Tooltip struct {
	// Anchor is the top-left corner in container coordinates.
	Anchor Pixel
	Title  string
	Lines  []string
}

// Anchor returns the tooltip anchor for the current state: the
// pointer displaced by the tooltip offset, clamped to be
// non-negative. ok is false when Idle.
func (h *Hover) Anchor() (anchor Pixel, ok bool) {
	s, ok := h.state.(Hovering)
	if !ok {
		return Pixel{}, false
	}
	return TooltipAnchor(s.Pointer, h.offset), true
}

// TooltipAnchor returns pointer displaced by off, clamped so neither
// coordinate is negative.
func TooltipAnchor(pointer Pixel, off Offset) Pixel {
	a := pointer.Add(off.DX, off.DY)
	return Pixel{math.Max(a.X, 0), math.Max(a.Y, 0)}
}

// ResolveHover returns the marker nearest to pos that lies within
// tolerance pixels of it. If tolerance <= 0, each marker's own radius
// is the tolerance. Among equally near markers the last one wins,
// since it is drawn on top.
func ResolveHover(pos Pixel, markers []Marker, tolerance float64) (Marker, bool) {
	best, bestD := -1, math.Inf(1)
	for i, m := range markers {
		tol := tolerance
		if tol <= 0 {
			tol = m.Radius
		}
		d := math.Hypot(m.Center.X-pos.X, m.Center.Y-pos.Y)
		if !finite(d) || d > tol {
			continue
		}
		if d <= bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Marker{}, false
	}
	return markers[best], true
}
