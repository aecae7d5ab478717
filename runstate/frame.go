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

package runstate

import (
	"image/color"
	"math"
	"time"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/eyetrack"
	"github.com/jetsetilly/checkergen/logger"
	"github.com/jetsetilly/checkergen/trigger"
)

var phototestCol = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// BeginFrame is the first step of each frame. The eye tracker is polled and
// the cross colour selected. Returns true if the frame can be drawn lazily,
// in which case the canvas still holds the previous frame and only shapes
// that have changed need to be drawn. Otherwise the canvas has been cleared
// and every visible shape must be drawn.
func (rs *RunState) BeginFrame(f Frame) bool {
	cross := noCross

	if rs.gate != nil {
		s, err := rs.tracker.Latest()
		if err != nil {
			logger.Log(logger.Allow, "eyetrack", err)
			s = eyetrack.Sample{}
		}

		t := rs.gate.Update(s)
		rs.events.FixationStart = t.FixationStart
		rs.events.FixationStop = t.FixationStop
		rs.events.TrackingStart = t.TrackingStart
		rs.events.TrackingStop = t.TrackingStop

		// untracked frames never count as a failure
		if f.Visible && rs.gate.Tracked() && !rs.gate.Fixated() {
			rs.fail = true
		}

		if f.Cross {
			switch {
			case rs.gate.Fixated():
				cross = CrossFixated
			case rs.gate.Tracked():
				cross = CrossTracked
			default:
				cross = CrossUntracked
			}
		}
	} else if f.Cross {
		cross = rs.alternation()
	}

	// the hidden edge is decided here rather than by the stage because a
	// stage that ends while visible is hidden in the first frame of the next
	// stage
	hidden := rs.lastVisible && !f.Visible
	rs.lastVisible = f.Visible

	rs.events.Shown = f.Shown
	rs.events.Hidden = hidden

	full := !rs.opts.Lazy.Bool() || !f.Lazy ||
		rs.stageFrame == 0 ||
		f.Shown || hidden ||
		cross != rs.lastCross ||
		rs.photoDrawn

	rs.cross = cross
	rs.lastCross = cross
	rs.stageFrame++

	if full {
		rs.canvas.Clear(rs.set.BG)
	}

	return !full
}

// alternation returns the colour of the alternating cross for the current
// frame.
func (rs *RunState) alternation() int {
	a := rs.set.CrossTimes[0]
	b := rs.set.CrossTimes[1]

	if math.IsInf(a, 1) {
		return CrossFixated
	}

	af := int(math.Round(a * rs.set.FPS))
	if math.IsInf(b, 1) {
		if rs.count < af {
			return CrossFixated
		}
		return CrossTracked
	}

	period := af + int(math.Round(b*rs.set.FPS))
	if period == 0 || rs.count%period < af {
		return CrossFixated
	}
	return CrossTracked
}

// Update is the final step of each frame. The frame is composited and
// presented, the trigger for the frame is sent and the frame counter
// advanced.
func (rs *RunState) Update() error {
	code := rs.events.Code()

	drawPhoto := rs.opts.Phototest.Bool() && code != trigger.None
	if drawPhoto {
		rs.canvas.Fill(rs.photoRect, phototestCol)
	}
	rs.photoDrawn = drawPhoto

	if rs.cross != noCross && rs.canvas.Dirty() {
		rs.canvas.Blit(rs.crosses[rs.cross], rs.crossAt)
	}

	if rs.lmtr != nil {
		rs.lmtr.wait()
	}

	if err := rs.out.Present(rs.count, rs.canvas.Image(), rs.canvas.Dirty()); err != nil {
		return curated.Errorf(FrameError, rs.count, err)
	}
	rs.canvas.Clean()

	now := time.Now()
	if rs.opts.LogTime.Bool() {
		rs.result.Timestamps = append(rs.result.Timestamps, now.Sub(rs.start).Seconds())
	}
	if rs.opts.LogDur.Bool() {
		rs.result.Durations = append(rs.result.Durations, now.Sub(rs.prev).Seconds())
	}
	rs.prev = now

	// the trigger is sent as soon as possible after the frame has been
	// presented
	sent, err := rs.session.Frame(code)
	if err != nil {
		return curated.Errorf(FrameError, rs.count, err)
	}
	if sent {
		rs.result.Triggers = append(rs.result.Triggers, code)
	} else {
		rs.result.Triggers = append(rs.result.Triggers, trigger.None)
	}

	rs.events = trigger.Events{Order: rs.pendingOrder}
	rs.pendingOrder = 0

	rs.count++

	closed, key := rs.out.Service()
	rs.key = key
	if closed {
		rs.terminated = true
		logger.Logf(logger.Allow, "runstate", "run ended at frame %d", rs.count)
	}

	return nil
}
