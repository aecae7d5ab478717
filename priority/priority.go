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

// Package priority raises and restores the scheduling priority of the process
// during a display run.
package priority

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/checkergen/curated"
)

// Level is a process priority level.
type Level int

// List of valid Level values.
const (
	Low Level = iota
	Normal
	High
	Realtime
)

// Sentinal error patterns.
const (
	UnknownLevel = "priority: unknown level (%s)"
	SetError     = "priority: cannot set %s priority: %v"
)

var levelNames = []string{"low", "normal", "high", "realtime"}

func (l Level) String() string {
	if l < Low || l > Realtime {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel accepts either the name of a level or its number.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if s == n {
			return Level(i), nil
		}
	}
	if v, err := strconv.Atoi(s); err == nil && v >= int(Low) && v <= int(Realtime) {
		return Level(v), nil
	}
	return Normal, curated.Errorf(UnknownLevel, s)
}

// niceness returns the nice value for the level.
func (l Level) niceness() int {
	switch l {
	case Low:
		return 10
	case High:
		return -10
	case Realtime:
		return -20
	}
	return 0
}

// Set the priority of the process.
func Set(l Level) error {
	if err := set(l.niceness()); err != nil {
		return curated.Errorf(SetError, l, err)
	}
	return nil
}

// Reset the priority of the process to normal. Errors are ignored because
// there is nothing useful that can be done about them.
func Reset() {
	_ = set(Normal.niceness())
}
