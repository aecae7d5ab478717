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
	"strings"

	"github.com/jetsetilly/checkergen/curated"
)

// Policy decides how the phase advances every frame.
type Policy int

// List of valid Policy values.
const (
	Continuous Policy = iota
	HalfPeriod
)

// Sentinal error patterns.
const (
	UnknownPolicy = "phase: unknown policy (%s)"
)

func (p Policy) String() string {
	switch p {
	case Continuous:
		return "continuous"
	case HalfPeriod:
		return "halfperiod"
	}
	return "unknown"
}

// ParsePolicy returns the Policy named by the string.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "continuous":
		return Continuous, nil
	case "halfperiod":
		return HalfPeriod, nil
	}
	return Continuous, curated.Errorf(UnknownPolicy, s)
}

// DegreesPerFrame returns the number of degrees the phase advances every
// frame for the frequency and frame rate.
func DegreesPerFrame(freq float64, fps float64, policy Policy) float64 {
	if freq == 0 || fps <= 0 {
		return 0
	}

	if policy == HalfPeriod {
		fph := FramesPerHalf(freq, fps)
		return 180.0 / float64(fph)
	}

	return 360.0 * freq / fps
}

// FramesPerHalf returns the number of whole frames in each half period. The
// minimum value is one.
func FramesPerHalf(freq float64, fps float64) int {
	if freq == 0 {
		return 0
	}
	fph := int(fps/(2*freq) + 0.5)
	if fph < 1 {
		fph = 1
	}
	return fph
}
