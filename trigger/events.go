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

package trigger

// Trigger codes and offsets.
const (
	BlockStart = 128
	BlockEnd   = 127

	Shown  = 100
	Hidden = 90
	Status = 110

	FixationStart = 4
	TrackingStart = 2
	TrackingStop  = 1

	Flips = 16
)

// MaxFlipShapes is the number of shapes that can be identified by the flip
// bitmask.
const MaxFlipShapes = 4

// None indicates that no event occurred in the frame.
const None = -1

// Events that occurred during a frame.
type Events struct {
	// index of the chosen order plus one. zero if there is no announcement
	Order int

	BlockStart bool
	BlockEnd   bool

	// visibility edges of the current group
	Shown  bool
	Hidden bool

	// eye tracking transitions
	FixationStart bool
	FixationStop  bool
	TrackingStart bool
	TrackingStop  bool

	// one bit for each shape that reached its flip count
	Flips uint8
}

// Flip marks the shape as having reached its flip count. Shapes beyond the
// first four cannot be identified and are ignored.
func (e *Events) Flip(id int) {
	if id >= 0 && id < MaxFlipShapes {
		e.Flips |= 1 << id
	}
}

// Tracking returns true if any eye tracking transition occurred.
func (e Events) Tracking() bool {
	return e.FixationStart || e.FixationStop || e.TrackingStart || e.TrackingStop
}

// Code returns the trigger code for the highest priority event. Returns None
// if no event occurred.
func (e Events) Code() int {
	if e.Order > 0 {
		return e.Order
	}
	if e.BlockStart {
		return BlockStart
	}
	if e.BlockEnd {
		return BlockEnd
	}

	var status int
	if e.FixationStart {
		status += FixationStart
	}
	if e.TrackingStart {
		status += TrackingStart
	}
	if e.TrackingStop {
		status += TrackingStop
	}

	if e.Shown {
		return Shown + status
	}
	if e.Hidden {
		return Hidden + status
	}
	if e.Tracking() {
		return Status + status
	}

	if e.Flips != 0 {
		return Flips + int(e.Flips&0x0f)
	}

	return None
}
