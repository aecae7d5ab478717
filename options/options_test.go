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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/phase"
	"github.com/jetsetilly/checkergen/priority"
	"github.com/jetsetilly/checkergen/test"
)

func TestDefaults(t *testing.T) {
	o := NewDisplay()
	test.Equate(t, o.Repeats.Int(), 1)
	test.Equate(t, o.Lazy.Bool(), true)
	test.ExpectEquality(t, o.PriorityLevel(), priority.Normal)
	test.ExpectEquality(t, o.Policy(), phase.Continuous)
	test.DemandEquality(t, len(o.Keys()), len(o.Values()))
	test.Equate(t, o.Keys()[0], "repeats")
	test.Equate(t, o.Values()[0], "1")

	cfg := o.Triggers()
	test.DemandEquality(t, len(cfg.ChipLines), 8)
	test.Equate(t, cfg.ChipLines[7], 7)
}

func TestValidation(t *testing.T) {
	o := NewDisplay()
	test.ExpectedSuccess(t, curated.Is(o.Set("repeats", 0), InvalidOption))
	test.ExpectedSuccess(t, curated.Is(o.Set("fpst", -1), InvalidOption))
	test.ExpectedSuccess(t, curated.Is(o.Set("priority", "urgent"), InvalidOption))
	test.ExpectedSuccess(t, curated.Is(o.Set("phasepolicy", "never"), InvalidOption))
	test.ExpectedSuccess(t, curated.Is(o.Set("parlines", "1,2,3"), InvalidOption))
	test.ExpectedSuccess(t, curated.Is(o.Set("flicker", true), UnknownOption))

	test.ExpectedSuccess(t, o.Set("repeats", "3"))
	v, err := o.Get("repeats")
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, "3")

	test.ExpectedSuccess(t, o.Set("priority", "realtime"))
	test.ExpectEquality(t, o.PriorityLevel(), priority.Realtime)

	test.ExpectedSuccess(t, o.Reset())
	test.Equate(t, o.Repeats.Int(), 1)
}

func TestRetry(t *testing.T) {
	o := NewDisplay()
	test.ExpectedSuccess(t, o.Set("tryagain", 2))
	test.ExpectedFailure(t, o.Retry())
	test.ExpectedSuccess(t, o.Set("eyetrack", true))
	test.ExpectedSuccess(t, o.Retry())
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), OptionsFile)

	o := NewDisplay()
	test.DemandSuccess(t, o.attach(pth, "flicker"))
	test.ExpectedSuccess(t, o.Set("repeats", 4))
	test.ExpectedSuccess(t, o.Set("name", "subject 1"))
	test.DemandSuccess(t, o.Save())

	// options of another project are independent
	p := NewDisplay()
	test.DemandSuccess(t, p.attach(pth, "other"))
	test.Equate(t, p.Repeats.Int(), 1)

	q := NewDisplay()
	test.DemandSuccess(t, q.attach(pth, "flicker"))
	test.Equate(t, q.Repeats.Int(), 4)
	test.Equate(t, q.Name.String(), "subject 1")
}

func TestCopy(t *testing.T) {
	o := NewDisplay()
	test.DemandSuccess(t, o.Set("fpst", 3))
	test.DemandSuccess(t, o.Set("eyetrack", true))
	test.DemandSuccess(t, o.Set("priority", "high"))
	test.DemandSuccess(t, o.Set("name", "session one"))

	c := o.Copy()
	test.ExpectEquality(t, c.String(), o.String())

	// the copy is independent of the original
	test.DemandSuccess(t, c.Set("eyetrack", false))
	test.Equate(t, o.EyeTrack.Bool(), true)
	test.Equate(t, c.FPST.Int(), 3)
}
