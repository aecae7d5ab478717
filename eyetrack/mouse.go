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

// Pointer is implemented by a display that can report the position of the
// mouse pointer.
type Pointer interface {
	// Pointer returns the position of the pointer in millimetres from the
	// centre of the display. Returns false if the pointer is outside the
	// display
	Pointer() (float64, float64, bool)
}

// Mouse is a tracker that uses the mouse pointer as the gaze.
type Mouse struct {
	ptr     Pointer
	running bool
}

// NewMouse is the preferred method of initialisation for the Mouse type.
func NewMouse(ptr Pointer) *Mouse {
	return &Mouse{ptr: ptr}
}

func (m *Mouse) String() string {
	return "mouse"
}

// Calibrated implements the Tracker interface.
func (m *Mouse) Calibrated() bool {
	return true
}

// Start implements the Tracker interface.
func (m *Mouse) Start() error {
	m.running = true
	return nil
}

// Stop implements the Tracker interface.
func (m *Mouse) Stop() error {
	m.running = false
	return nil
}

// Latest implements the Tracker interface. The pointer is untracked while the
// tracker is stopped.
func (m *Mouse) Latest() (Sample, error) {
	if !m.running {
		return Sample{}, nil
	}
	x, y, ok := m.ptr.Pointer()
	return Sample{Tracked: ok, X: x, Y: y}, nil
}
