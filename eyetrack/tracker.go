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
	"fmt"

	"github.com/jetsetilly/checkergen/curated"
)

// Sentinal error patterns.
const (
	NotAvailable  = "eyetrack: eye tracking not available: %s"
	NotCalibrated = "eyetrack: eye tracker not calibrated (%s)"
	SampleError   = "eyetrack: sample: %v"
)

// Sample is a single gaze sample.
type Sample struct {
	// Tracked is false if the eye was not found. X and Y are meaningless in
	// that case
	Tracked bool

	// position in millimetres from the centre of the screen. y increases
	// upwards
	X float64
	Y float64
}

func (s Sample) String() string {
	if !s.Tracked {
		return "untracked"
	}
	return fmt.Sprintf("(%.1f, %.1f)", s.X, s.Y)
}

// Tracker is the source of gaze samples.
type Tracker interface {
	fmt.Stringer
	Calibrated() bool
	Start() error
	Stop() error

	// Latest returns the most recent sample. It is called once per frame and
	// should not block
	Latest() (Sample, error)
}

// Config specifies which tracker to open.
type Config struct {
	// use the mouse pointer in place of the gaze
	User bool

	// replay samples from the file
	Playback string
}

// Open the tracker specified by the configuration. The pointer is required
// for the mouse tracker.
func Open(cfg Config, ptr Pointer) (Tracker, error) {
	if cfg.User {
		if ptr == nil {
			return nil, curated.Errorf(NotAvailable, "no pointer for user tracking")
		}
		return NewMouse(ptr), nil
	}

	if cfg.Playback != "" {
		p, err := LoadPlayback(cfg.Playback)
		if err != nil {
			return nil, curated.Errorf(NotAvailable, err)
		}
		return p, nil
	}

	return nil, curated.Errorf(NotAvailable, "no eye tracker source")
}
