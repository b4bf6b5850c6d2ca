// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides simple time-driven animation curves.
package anim

import "time"

// Ramp is a linear animation value that starts at From at time Start
// and moves at Rate units per second toward To, where it stops.
// The value is always kept within the range spanned by From and To.
type Ramp struct {

	// Start is the time at which the ramp has the value From.
	Start time.Duration

	// From is the value at Start.
	From float32

	// To is the value at which the ramp stops.
	To float32

	// Rate is the change in value per second. A rate that moves away
	// from To leaves the value pinned at From.
	Rate float32
}

// Constant returns a ramp that always has the value v.
func Constant(v float32) Ramp {
	return Ramp{From: v, To: v}
}

// Value returns the value of the ramp at time t.
func (r Ramp) Value(t time.Duration) float32 {
	v := r.From + float32((t - r.Start).Seconds())*r.Rate
	return clamp(v, min(r.From, r.To), max(r.From, r.To))
}

// Done returns whether the ramp has reached To at time t.
func (r Ramp) Done(t time.Duration) bool {
	return r.Value(t) == r.To
}

// End returns the time at which the ramp reaches To. A ramp that
// never gets there, because its rate is zero or moves away from To,
// ends at Start unless it is already at To.
func (r Ramp) End() time.Duration {
	if r.From == r.To || r.Rate == 0 || (r.To-r.From)*r.Rate < 0 {
		return r.Start
	}
	return r.Start + time.Duration(float64((r.To-r.From)/r.Rate)*float64(time.Second))
}

// Retarget returns a new ramp starting at time t from the current
// value of r, moving toward to at the given rate.
func (r Ramp) Retarget(t time.Duration, to, rate float32) Ramp {
	return Ramp{Start: t, From: r.Value(t), To: to, Rate: rate}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
