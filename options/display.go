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

package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/eyetrack"
	"github.com/jetsetilly/checkergen/phase"
	"github.com/jetsetilly/checkergen/prefs"
	"github.com/jetsetilly/checkergen/priority"
	"github.com/jetsetilly/checkergen/trigger"
)

// Sentinal error patterns.
const (
	UnknownOption = "options: unknown option (%s)"
	InvalidOption = "options: %s: %v"
)

// Display is the set of display options.
type Display struct {
	Repeats    prefs.Int
	Waitless   prefs.Bool
	Fullscreen prefs.Bool
	Priority   prefs.String

	Phototest  prefs.Bool
	Photoburst prefs.Bool

	LogTime prefs.Bool
	LogDur  prefs.Bool
	NoLog   prefs.Bool
	Name    prefs.String

	TrigSer  prefs.Bool
	SerPort  prefs.String
	Baud     prefs.Int
	TrigPar  prefs.Bool
	ParChip  prefs.String
	ParLines prefs.String
	FPST     prefs.Int

	EyeTrack prefs.Bool
	ETUser   prefs.Bool
	ETVideo  prefs.String
	TryAgain prefs.Int
	TryBreak prefs.Int

	Lazy        prefs.Bool
	PhasePolicy prefs.String
	Seed        prefs.Int

	// the options in the order they appear in the log file
	entries []entry

	dsk *prefs.Disk
}

type entry struct {
	key string
	p   interface {
		fmt.Stringer
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
	}
}

func atLeast(key string, min int) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) < min {
			return curated.Errorf(InvalidOption, key, fmt.Sprintf("must be %d or greater", min))
		}
		return nil
	}
}

// NewDisplay returns the display options with default values.
func NewDisplay() *Display {
	o := &Display{}

	o.Repeats.SetDefault(1)
	o.Repeats.SetHookPre(atLeast("repeats", 1))
	o.Priority.SetDefault(priority.Normal.String())
	o.Priority.SetHookPre(func(v prefs.Value) error {
		if _, err := priority.ParseLevel(v.(string)); err != nil {
			return curated.Errorf(InvalidOption, "priority", err)
		}
		return nil
	})
	o.SerPort.SetDefault("/dev/ttyUSB0")
	o.Baud.SetDefault(115200)
	o.Baud.SetHookPre(atLeast("baud", 1))
	o.ParChip.SetDefault("gpiochip0")
	o.ParLines.SetDefault("0,1,2,3,4,5,6,7")
	o.ParLines.SetHookPre(func(v prefs.Value) error {
		if _, err := parseLines(v.(string)); err != nil {
			return curated.Errorf(InvalidOption, "parlines", err)
		}
		return nil
	})
	o.FPST.SetHookPre(atLeast("fpst", 0))
	o.TryAgain.SetHookPre(atLeast("tryagain", 0))
	o.TryBreak.SetHookPre(atLeast("trybreak", 0))
	o.Lazy.SetDefault(true)
	o.PhasePolicy.SetDefault(phase.Continuous.String())
	o.PhasePolicy.SetHookPre(func(v prefs.Value) error {
		if _, err := phase.ParsePolicy(v.(string)); err != nil {
			return curated.Errorf(InvalidOption, "phasepolicy", err)
		}
		return nil
	})

	o.entries = []entry{
		{"repeats", &o.Repeats},
		{"waitless", &o.Waitless},
		{"fullscreen", &o.Fullscreen},
		{"priority", &o.Priority},
		{"phototest", &o.Phototest},
		{"photoburst", &o.Photoburst},
		{"logtime", &o.LogTime},
		{"logdur", &o.LogDur},
		{"nolog", &o.NoLog},
		{"name", &o.Name},
		{"trigser", &o.TrigSer},
		{"serport", &o.SerPort},
		{"baud", &o.Baud},
		{"trigpar", &o.TrigPar},
		{"parchip", &o.ParChip},
		{"parlines", &o.ParLines},
		{"fpst", &o.FPST},
		{"eyetrack", &o.EyeTrack},
		{"etuser", &o.ETUser},
		{"etvideo", &o.ETVideo},
		{"tryagain", &o.TryAgain},
		{"trybreak", &o.TryBreak},
		{"lazy", &o.Lazy},
		{"phasepolicy", &o.PhasePolicy},
		{"seed", &o.Seed},
	}

	return o
}

// Keys returns the names of the options in a fixed order.
func (o *Display) Keys() []string {
	k := make([]string, len(o.entries))
	for i := range o.entries {
		k[i] = o.entries[i].key
	}
	return k
}

// Values returns the values of the options in the same order as Keys().
func (o *Display) Values() []string {
	v := make([]string, len(o.entries))
	for i := range o.entries {
		v[i] = o.entries[i].p.String()
	}
	return v
}

func (o *Display) String() string {
	s := strings.Builder{}
	for i := range o.entries {
		s.WriteString(fmt.Sprintf("%s=%s ", o.entries[i].key, o.entries[i].p))
	}
	return strings.TrimSpace(s.String())
}

// Set the named option.
func (o *Display) Set(key string, v prefs.Value) error {
	for _, e := range o.entries {
		if e.key == key {
			return e.p.Set(v)
		}
	}
	return curated.Errorf(UnknownOption, key)
}

// Get the string representation of the named option.
func (o *Display) Get(key string) (string, error) {
	for _, e := range o.entries {
		if e.key == key {
			return e.p.String(), nil
		}
	}
	return "", curated.Errorf(UnknownOption, key)
}

// Reset all options to their default values.
func (o *Display) Reset() error {
	for _, e := range o.entries {
		if err := e.p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a copy of the options. The copy is not attached to disk.
func (o *Display) Copy() *Display {
	c := NewDisplay()
	for i, e := range o.entries {
		// values have already been validated so the set cannot fail
		_ = c.entries[i].p.Set(e.p.String())
	}
	return c
}

// PriorityLevel returns the priority option as a priority.Level.
func (o *Display) PriorityLevel() priority.Level {
	l, _ := priority.ParseLevel(o.Priority.String())
	return l
}

// Policy returns the phase policy option as a phase.Policy.
func (o *Display) Policy() phase.Policy {
	p, _ := phase.ParsePolicy(o.PhasePolicy.String())
	return p
}

// Triggers returns the trigger port configuration.
func (o *Display) Triggers() trigger.Config {
	lines, _ := parseLines(o.ParLines.String())
	return trigger.Config{
		Serial:    o.TrigSer.Bool(),
		SerialDev: o.SerPort.String(),
		Baud:      o.Baud.Int(),
		Parallel:  o.TrigPar.Bool(),
		Chip:      o.ParChip.String(),
		ChipLines: lines,
	}
}

// Tracking returns the eye tracker configuration.
func (o *Display) Tracking() eyetrack.Config {
	return eyetrack.Config{
		User:     o.ETUser.Bool(),
		Playback: o.ETVideo.String(),
	}
}

// Retry returns true if groups that fail the fixation test should be tried
// again.
func (o *Display) Retry() bool {
	return o.EyeTrack.Bool() && o.TryAgain.Int() > 0
}

func parseLines(s string) ([]int, error) {
	f := strings.Split(s, ",")
	lines := make([]int, 0, len(f))
	for _, l := range f {
		v, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid line offset (%s)", l)
		}
		lines = append(lines, v)
	}
	if len(lines) != trigger.ParallelWidth {
		return nil, fmt.Errorf("%d line offsets required", trigger.ParallelWidth)
	}
	return lines, nil
}
