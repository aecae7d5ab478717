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

// Default values for the gate.
const (
	DefaultFixRange    = 20.0
	DefaultFixPeriod   = 300.0
	DefaultTrackPeriod = 300.0
)

// GateConfig specifies the fixation area and the debounce periods.
type GateConfig struct {
	// centre and half-size of the fixation area in millimetres
	FixPos   [2]float64
	FixRange [2]float64

	// debounce periods in milliseconds
	FixPeriod   float64
	TrackPeriod float64
}

// DefaultGate returns the default gate configuration.
func DefaultGate() GateConfig {
	return GateConfig{
		FixRange:    [2]float64{DefaultFixRange, DefaultFixRange},
		FixPeriod:   DefaultFixPeriod,
		TrackPeriod: DefaultTrackPeriod,
	}
}

// Transitions of the debounced states during a frame.
type Transitions struct {
	FixationStart bool
	FixationStop  bool
	TrackingStart bool
	TrackingStop  bool
}

// Any returns true if any transition occurred.
func (t Transitions) Any() bool {
	return t.FixationStart || t.FixationStop || t.TrackingStart || t.TrackingStop
}

// Gate turns gaze samples into debounced tracking and fixation states.
type Gate struct {
	cfg     GateConfig
	tracked *Debouncer
	fixated *Debouncer
}

// NewGate is the preferred method of initialisation for the Gate type.
func NewGate(cfg GateConfig, fps float64) *Gate {
	return &Gate{
		cfg:     cfg,
		tracked: NewDebouncer(FramesFromMillis(cfg.TrackPeriod, fps)),
		fixated: NewDebouncer(FramesFromMillis(cfg.FixPeriod, fps)),
	}
}

// Reset the gate to the untracked state.
func (g *Gate) Reset() {
	g.tracked.Reset(false)
	g.fixated.Reset(false)
}

// Inside returns true if the sample is tracked and inside the fixation area.
func (g *Gate) Inside(s Sample) bool {
	return s.Tracked &&
		math.Abs(s.X-g.cfg.FixPos[0]) <= g.cfg.FixRange[0] &&
		math.Abs(s.Y-g.cfg.FixPos[1]) <= g.cfg.FixRange[1]
}

// Update the gate with the sample for the frame.
func (g *Gate) Update(s Sample) Transitions {
	var t Transitions

	if g.tracked.Update(s.Tracked) {
		t.TrackingStart = g.tracked.State()
		t.TrackingStop = !g.tracked.State()
	}

	if g.fixated.Update(g.Inside(s)) {
		t.FixationStart = g.fixated.State()
		t.FixationStop = !g.fixated.State()
	}

	return t
}

// Tracked returns the debounced tracking state.
func (g *Gate) Tracked() bool {
	return g.tracked.State()
}

// Fixated returns the debounced fixation state.
func (g *Gate) Fixated() bool {
	return g.fixated.State()
}
