// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"cogentcore.org/gldemos/anim"
)

// pulse is a scale that ramps back and forth between MinScale and
// MaxScale, and can be paused.
type pulse struct {
	params   *Params
	ramp     anim.Ramp
	paused   bool
	pausedAt time.Duration
}

func newPulse(p *Params) *pulse {
	return &pulse{params: p, ramp: anim.Ramp{From: p.MinScale, To: p.MaxScale, Rate: p.PulseRate}}
}

// value returns the scale at time t, which must not be earlier than
// the time of the previous call.
func (pl *pulse) value(t time.Duration) float32 {
	if pl.paused {
		return pl.ramp.Value(pl.pausedAt)
	}
	for {
		end := pl.ramp.End()
		if t < end || end <= pl.ramp.Start {
			break
		}
		pl.ramp = anim.Ramp{Start: end, From: pl.ramp.To, To: pl.ramp.From, Rate: -pl.ramp.Rate}
	}
	return pl.ramp.Value(t)
}

// toggle pauses or resumes the pulse at time t.
func (pl *pulse) toggle(t time.Duration) {
	if pl.paused {
		pl.ramp.Start += t - pl.pausedAt
		pl.paused = false
		return
	}
	pl.paused = true
	pl.pausedAt = t
}
