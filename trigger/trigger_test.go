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

package trigger_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/test"
	"github.com/jetsetilly/checkergen/trigger"
)

func TestPriority(t *testing.T) {
	var e trigger.Events
	test.Equate(t, e.Code(), trigger.None)

	e.Flip(0)
	e.Flip(2)
	test.Equate(t, e.Code(), 16+1+4)

	// shapes beyond the fourth are ignored
	e.Flip(4)
	test.Equate(t, e.Code(), 16+1+4)

	e.TrackingStart = true
	test.Equate(t, e.Code(), 110+2)

	e.Hidden = true
	test.Equate(t, e.Code(), 90+2)

	e.Shown = true
	e.FixationStart = true
	test.Equate(t, e.Code(), 100+4+2)

	e.BlockEnd = true
	test.Equate(t, e.Code(), 127)

	e.BlockStart = true
	test.Equate(t, e.Code(), 128)

	e.Order = 3
	test.Equate(t, e.Code(), 3)
}

func TestFixationStop(t *testing.T) {
	// fixation stop has no bit of its own but it is still an event
	e := trigger.Events{FixationStop: true}
	test.Equate(t, e.Code(), 110)

	e = trigger.Events{FixationStop: true, TrackingStop: true}
	test.Equate(t, e.Code(), 111)
}

func TestSession(t *testing.T) {
	r := &trigger.Recorder{}
	s := trigger.NewSession(r)

	// no event, nothing sent
	sent, err := s.Frame(trigger.None)
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, sent)
	test.Equate(t, s.Last(), trigger.None)

	sent, _ = s.Frame(128)
	test.ExpectedSuccess(t, sent)

	// same code on the next frame is not sent again
	sent, _ = s.Frame(128)
	test.ExpectedFailure(t, sent)

	// but the same code after a frame with no event is sent
	s.Frame(trigger.None)
	sent, _ = s.Frame(128)
	test.ExpectedSuccess(t, sent)

	s.Frame(17)
	test.Equate(t, s.Last(), 17)

	test.DemandEquality(t, len(r.Codes), 3)
	test.Equate(t, r.Codes[0], 128)
	test.Equate(t, r.Codes[1], 128)
	test.Equate(t, r.Codes[2], 17)

	test.ExpectedSuccess(t, s.Close())
	test.ExpectedSuccess(t, r.Closed())
}

type failingPort struct{}

func (failingPort) String() string    { return "failing" }
func (failingPort) Send(v byte) error { return errors.New("broken pipe") }
func (failingPort) Close() error      { return errors.New("broken pipe") }

func TestSessionErrors(t *testing.T) {
	r := &trigger.Recorder{}
	s := trigger.NewSession(failingPort{}, r)

	_, err := s.Frame(100)
	test.ExpectedSuccess(t, curated.Is(err, trigger.SendError))

	// all ports are closed even when one fails
	err = s.Close()
	test.ExpectedSuccess(t, curated.Is(err, trigger.CloseError))
	test.ExpectedSuccess(t, r.Closed())
}

func TestParallelLines(t *testing.T) {
	// the wrong number of lines is always an error regardless of platform
	_, err := trigger.OpenParallel("gpiochip0", []int{1, 2, 3})
	test.ExpectedFailure(t, err)
}
