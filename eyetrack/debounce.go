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

package eyetrack

import (
	"math"
)

// Debouncer filters a boolean signal so that the state only changes after the
// raw value has been different to the state for a number of consecutive
// frames.
type Debouncer struct {
	frames  int
	state   bool
	pending int
}

// FramesFromMillis converts a period in milliseconds to a number of frames.
func FramesFromMillis(ms float64, fps float64) int {
	return int(math.Round(ms / 1000 * fps))
}

// NewDebouncer is the preferred method of initialisation for the Debouncer
// type. A period of zero or one frame means that the state follows the raw
// value immediately.
func NewDebouncer(frames int) *Debouncer {
	return &Debouncer{frames: frames}
}

// Reset the state without debouncing.
func (d *Debouncer) Reset(state bool) {
	d.state = state
	d.pending = 0
}

// State returns the debounced state.
func (d *Debouncer) State() bool {
	return d.state
}

// Update with the raw value for the frame. Returns true if the debounced state
// changed.
func (d *Debouncer) Update(raw bool) bool {
	if raw == d.state {
		d.pending = 0
		return false
	}

	d.pending++
	if d.pending < d.frames {
		return false
	}

	d.state = raw
	d.pending = 0
	return true
}
