// This file is part of Checkergen.
//
// Checkergen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Checkergen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Checkergen.  If not, see <https://www.gnu.org/licenses/>.

package phase

import (
	"math"
)

// the tolerance when deciding which half of the cycle a phase value belongs
// to. a phase that should be exactly 180 might be represented as 179.9999...
const epsilon = 1e-9

// Clock is the phase state of a single shape.
type Clock struct {
	policy Policy
	freq   float64

	// the starting phase. normalised into [0,360)
	start float64

	// the unwrapped phase at the time of the last rebase and the number of
	// frames since then
	base   float64
	frames int

	// the unwrapped phase values for the current and the previous frame
	cur  float64
	prev float64

	// the frame rate that dpf was calculated for
	fps float64
	dpf float64
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock(freq float64, phase float64, policy Policy) *Clock {
	c := &Clock{
		policy: policy,
		freq:   freq,
		start:  Normalise(phase),
	}
	c.Reset()
	return c
}

// Normalise an angle into the range [0,360).
func Normalise(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360-epsilon {
		deg = 0
	}
	return deg
}

// Reset the clock to the starting phase.
func (c *Clock) Reset() {
	c.base = c.start
	c.frames = 0
	c.cur = c.start
	c.prev = c.start
	c.fps = 0
	c.dpf = 0
}

// rebase is used when the rate of change of the phase must change. the phase
// continues from where it is now.
func (c *Clock) rebase() {
	c.base = c.cur
	c.frames = 0
	c.fps = 0
	c.dpf = 0
}

// SetFreq changes the frequency. A frequency of zero stops the clock.
func (c *Clock) SetFreq(freq float64) {
	if freq == c.freq {
		return
	}
	c.freq = freq
	c.rebase()
}

// Freq returns the current frequency.
func (c *Clock) Freq() float64 {
	return c.freq
}

// SetPhase changes the starting phase. It takes effect on the next Reset().
func (c *Clock) SetPhase(phase float64) {
	c.start = Normalise(phase)
}

// Start returns the starting phase.
func (c *Clock) Start() float64 {
	return c.start
}

// SetPolicy changes the policy used to advance the phase.
func (c *Clock) SetPolicy(policy Policy) {
	if policy == c.policy {
		return
	}
	c.policy = policy
	c.rebase()
}

// Policy returns the current policy.
func (c *Clock) Policy() Policy {
	return c.policy
}

// Update advances the clock by one frame.
func (c *Clock) Update(fps float64) {
	c.prev = c.cur

	if c.freq == 0 {
		return
	}

	if fps != c.fps {
		c.rebase()
		c.fps = fps
		c.dpf = DegreesPerFrame(c.freq, fps, c.policy)
	}

	c.frames++
	c.cur = c.base + float64(c.frames)*c.dpf
}

func halfIndex(deg float64) int64 {
	return int64(math.Floor(deg/180 + epsilon))
}

// Flipped returns true if the most recent Update() moved the phase into the
// other half of the cycle.
func (c *Clock) Flipped() bool {
	return halfIndex(c.cur) != halfIndex(c.prev)
}

// Phase returns the current phase in the range [0,360).
func (c *Clock) Phase() float64 {
	return Normalise(c.cur)
}

// Half returns 0 if the current phase is in [0,180) and 1 if it is in
// [180,360).
func (c *Clock) Half() int {
	return int(halfIndex(c.cur) & 0x01)
}
