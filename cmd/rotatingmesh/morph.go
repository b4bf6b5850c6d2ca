// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"cogentcore.org/gldemos/anim"
	"github.com/chewxy/math32"
)

// morph tracks the number of sides of the prism, which is a ramp
// that shrinks while space is held and grows back when it is released.
type morph struct {
	params *Params
	ramp   anim.Ramp
	prev   float32
}

func newMorph(p *Params) *morph {
	return &morph{params: p, ramp: anim.Constant(p.MaxSides), prev: p.MaxSides}
}

// shrink starts moving toward MinSides at time t.
func (m *morph) shrink(t time.Duration) {
	m.ramp = m.ramp.Retarget(t, m.params.MinSides, -m.params.ShrinkRate)
}

// grow starts moving toward MaxSides at time t.
func (m *morph) grow(t time.Duration) {
	m.ramp = m.ramp.Retarget(t, m.params.MaxSides, m.params.GrowRate)
}

// update returns the whole number of sides and the fraction of the way
// to the next number at time t, and whether they changed since the
// last call.
func (m *morph) update(t time.Duration) (sides int, fraction float32, changed bool) {
	v := m.ramp.Value(t)
	if v == m.prev {
		return 0, 0, false
	}
	m.prev = v
	ip, frac := math32.Modf(v)
	return int(ip), frac, true
}
