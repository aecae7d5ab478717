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
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/jetsetilly/checkergen/canvas"
	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/eyetrack"
	"github.com/jetsetilly/checkergen/logger"
	"github.com/jetsetilly/checkergen/options"
	"github.com/jetsetilly/checkergen/phase"
	"github.com/jetsetilly/checkergen/priority"
	"github.com/jetsetilly/checkergen/trigger"
)

// Sentinal error patterns.
const (
	InvalidSettings      = "runstate: invalid settings: %v"
	StartError           = "runstate: start: %v"
	TrackerNotCalibrated = "runstate: eye tracker (%s) is not calibrated"
	FrameError           = "runstate: frame %d: %v"
	StopError            = "runstate: stop: %v"
)

// Cross colour indexes.
const (
	CrossFixated   = 0
	CrossTracked   = 1
	CrossUntracked = 2
)

// the value of cross when the cross is not shown.
const noCross = -1

// Settings of the project being run.
type Settings struct {
	// name of the project. used to name the log file
	Name string

	FPS float64
	Res image.Point
	BG  color.RGBA

	// cross colours, indexed by CrossFixated, CrossTracked and CrossUntracked.
	// when eye tracking is not enabled the cross alternates between the
	// first two colours
	CrossCols [3]color.RGBA

	// the duration in seconds of each colour of the alternating cross. either
	// value may be infinite
	CrossTimes [2]float64

	Gate eyetrack.GateConfig
}

func (s Settings) validate() error {
	if s.FPS <= 0 || math.IsInf(s.FPS, 0) || math.IsNaN(s.FPS) {
		return curated.Errorf(InvalidSettings, fmt.Sprintf("fps must be a positive number (%v)", s.FPS))
	}
	if s.Res.X <= 0 || s.Res.Y <= 0 {
		return curated.Errorf(InvalidSettings, fmt.Sprintf("resolution must be positive (%v)", s.Res))
	}
	for _, t := range s.CrossTimes {
		if t < 0 || math.IsNaN(t) {
			return curated.Errorf(InvalidSettings, fmt.Sprintf("cross times must not be negative (%v)", t))
		}
	}
	return nil
}

// Output receives each composited frame.
type Output interface {
	// Present the frame. changed is false if the image is identical to the
	// image of the previous frame
	Present(frame int, img *image.RGBA, changed bool) error

	// Service is called once per frame after Present(). closed is true if the
	// run should end. key is true if a key has been pressed since the
	// previous call
	Service() (closed bool, key bool)

	// Realtime returns true if frames are shown to a subject as they are
	// presented
	Realtime() bool

	// VSync returns true if Present() waits for the vertical blank
	VSync() bool

	Close() error
}

// Devices used by the run. Ports and Tracker are opened from the options if
// they are nil.
type Devices struct {
	Output  Output
	Ports   []trigger.Port
	Tracker eyetrack.Tracker

	// the pointer used when the mouse stands in for the eye tracker
	Pointer eyetrack.Pointer
}

// Frame describes the state of the current stage for a single frame.
type Frame struct {
	// shapes are visible during the frame
	Visible bool

	// the shapes of the stage became visible in this frame
	Shown bool

	// the fixation cross is to be shown
	Cross bool

	// the stage allows lazy drawing. a stage with overlapping shapes cannot
	// be drawn lazily
	Lazy bool
}

// RunState is the state of a single run. It is threaded through every group
// displayed by the sequencer.
type RunState struct {
	set  Settings
	opts *options.Display

	out     Output
	canvas  *canvas.Canvas
	session *trigger.Session
	tracker eyetrack.Tracker
	gate    *eyetrack.Gate
	lmtr    *limiter

	crosses   [3]*image.RGBA
	crossAt   image.Point
	photoRect image.Rectangle

	// frame counter for the entire run
	count int

	// frame counter for the current stage
	stageFrame int

	// events for the current frame and the order announcement deferred to
	// the next frame
	events       trigger.Events
	pendingOrder int

	// the cross colour shown in the current frame and the previous frame.
	// noCross if not shown
	cross     int
	lastCross int

	// the phototest rectangle was drawn in the previous frame
	photoDrawn bool

	// shapes were visible in the previous frame. this carries over from one
	// stage to the next
	lastVisible bool

	// the current stage has failed the fixation test
	fail bool

	terminated bool
	key        bool
	stopped    bool

	start time.Time
	prev  time.Time

	result Result
}

// Start a new run. The output is owned by the run from this point and is
// closed by Stop(), or by Start() if an error occurs.
//
// All devices are opened and checked before any frame is rendered. If any
// device cannot be opened then the devices already opened are closed again and
// the error is returned.
func Start(set Settings, opts *options.Display, dev Devices) (rs *RunState, err error) {
	if dev.Output == nil {
		return nil, curated.Errorf(StartError, "no output")
	}

	var undo []func()
	defer func() {
		if err != nil {
			for i := len(undo) - 1; i >= 0; i-- {
				undo[i]()
			}
		}
	}()

	undo = append(undo, func() {
		if err := dev.Output.Close(); err != nil {
			logger.Log(logger.Allow, "runstate", err)
		}
	})

	if err := set.validate(); err != nil {
		return nil, err
	}

	rs = &RunState{
		set:       set,
		opts:      opts,
		out:       dev.Output,
		canvas:    canvas.New(set.Res),
		crossAt:   canvas.CrossPosition(set.Res),
		cross:     noCross,
		lastCross: noCross,
	}

	// the phototest rectangle occupies the top-left corner of the screen
	rs.photoRect = image.Rect(0, set.Res.Y-set.Res.Y/8, set.Res.X/8, set.Res.Y)

	for i, col := range set.CrossCols {
		rs.crosses[i], err = crossTile(set.BG, col)
		if err != nil {
			return nil, curated.Errorf(StartError, err)
		}
	}

	ports := dev.Ports
	if ports == nil {
		ports, err = trigger.Open(opts.Triggers())
		if err != nil {
			return nil, curated.Errorf(StartError, err)
		}
	}
	session := trigger.NewSession(ports...)
	rs.session = session
	undo = append(undo, func() {
		_ = session.Close()
	})
	logger.Logf(logger.Allow, "runstate", "trigger ports: %s", rs.session)

	if opts.EyeTrack.Bool() {
		rs.tracker = dev.Tracker
		if rs.tracker == nil {
			rs.tracker, err = eyetrack.Open(opts.Tracking(), dev.Pointer)
			if err != nil {
				return nil, curated.Errorf(StartError, err)
			}
		}
		if !rs.tracker.Calibrated() {
			return nil, curated.Errorf(TrackerNotCalibrated, rs.tracker)
		}
		if err = rs.tracker.Start(); err != nil {
			return nil, curated.Errorf(StartError, err)
		}
		tracker := rs.tracker
		undo = append(undo, func() {
			_ = tracker.Stop()
		})
		rs.gate = eyetrack.NewGate(set.Gate, set.FPS)
		logger.Logf(logger.Allow, "runstate", "eye tracker: %s", rs.tracker)
	}

	if rs.out.Realtime() {
		if err = priority.Set(opts.PriorityLevel()); err != nil {
			return nil, curated.Errorf(StartError, err)
		}
		undo = append(undo, priority.Reset)

		rs.lmtr = newLimiter(set.FPS, !rs.out.VSync())
	}

	rs.canvas.Clear(set.BG)
	rs.start = time.Now()
	rs.prev = rs.start

	return rs, nil
}

// crossTile prepares an opaque cross tile. the cross is composited onto the
// background colour so that blitting the tile gives the same result every
// time, whatever is underneath.
func crossTile(bg color.RGBA, col color.RGBA) (*image.RGBA, error) {
	cross, err := canvas.Cross(col)
	if err != nil {
		return nil, err
	}
	c := canvas.New(cross.Bounds().Size())
	c.Clear(bg)
	c.Overlay(cross, image.Point{})
	return c.Image(), nil
}

// Stop the run. Every device is released even if an error occurs, and the
// process priority is always restored. Stop() can be called more than once.
//
// The log file is written for realtime runs unless the nolog option is set.
func (rs *RunState) Stop() error {
	if rs.stopped {
		return nil
	}
	rs.stopped = true

	var first error
	keep := func(err error) {
		if err == nil {
			return
		}
		logger.Log(logger.Allow, "runstate", err)
		if first == nil {
			first = curated.Errorf(StopError, err)
		}
	}

	if rs.tracker != nil {
		keep(rs.tracker.Stop())
	}

	keep(rs.out.Close())
	keep(rs.session.Close())

	if rs.lmtr != nil {
		rs.lmtr.stop()
		logger.Logf(logger.Allow, "runstate", "achieved %.2f fps (requested %.2f)", rs.lmtr.actual, rs.lmtr.requested)
		priority.Reset()
	}

	if rs.out.Realtime() && !rs.opts.NoLog.Bool() {
		keep(rs.writeLog())
	}

	return first
}

// Canvas returns the canvas that shapes should be drawn on.
func (rs *RunState) Canvas() *canvas.Canvas {
	return rs.canvas
}

// FPS returns the frame rate of the run.
func (rs *RunState) FPS() float64 {
	return rs.set.FPS
}

// Res returns the resolution of the canvas.
func (rs *RunState) Res() image.Point {
	return rs.set.Res
}

// BG returns the background colour.
func (rs *RunState) BG() color.RGBA {
	return rs.set.BG
}

// Policy returns the phase policy that shapes should use.
func (rs *RunState) Policy() phase.Policy {
	return rs.opts.Policy()
}

// FPST returns the number of flips of a shape between flip triggers. Zero
// disables flip triggers.
func (rs *RunState) FPST() int {
	return rs.opts.FPST.Int()
}

// Photoburst returns true if shapes should be drawn in photoburst mode.
func (rs *RunState) Photoburst() bool {
	return rs.opts.Photoburst.Bool()
}

// Realtime returns true if the output is shown to a subject.
func (rs *RunState) Realtime() bool {
	return rs.out.Realtime()
}

// Frames returns the number of frames presented so far.
func (rs *RunState) Frames() int {
	return rs.count
}

// Terminated returns true if the run should end.
func (rs *RunState) Terminated() bool {
	return rs.terminated
}

// KeyPressed returns true if a key was pressed during the most recent frame
// of the current stage.
func (rs *RunState) KeyPressed() bool {
	return rs.key
}

// Failed returns true if the current stage has failed the fixation test. A
// stage fails if at any point the shapes are visible while the eye is tracked
// but not fixated.
func (rs *RunState) Failed() bool {
	return rs.fail
}

// BeginStage is called before the first frame of each group.
func (rs *RunState) BeginStage() {
	rs.stageFrame = 0
	rs.fail = false
	rs.key = false
}

// StartBlock marks the current frame as the start of a block. If order is not
// negative the order is announced in the next frame.
func (rs *RunState) StartBlock(order int) {
	rs.events.BlockStart = true
	if order >= 0 {
		rs.pendingOrder = order + 1
	}
}

// EndBlock marks the current frame as the end of a block.
func (rs *RunState) EndBlock() {
	rs.events.BlockEnd = true
}

// Flip marks the shape as having reached its flip count in the current frame.
func (rs *RunState) Flip(id int) {
	rs.events.Flip(id)
}

// RestartTracking stops and starts the eye tracker and returns the gate to
// the untracked state. Does nothing if eye tracking is not enabled.
func (rs *RunState) RestartTracking() error {
	if rs.tracker == nil {
		return nil
	}
	if err := rs.tracker.Stop(); err != nil {
		return curated.Errorf(FrameError, rs.count, err)
	}
	if err := rs.tracker.Start(); err != nil {
		return curated.Errorf(FrameError, rs.count, err)
	}
	rs.gate.Reset()
	logger.Logf(logger.Allow, "runstate", "eye tracker restarted at frame %d", rs.count)
	return nil
}

// Record the outcome of a played group.
func (rs *RunState) Record(id int, pass bool) {
	rs.result.Played = append(rs.result.Played, Played{ID: id, Pass: pass})
}

// SetOrder records the order of group ids being played.
func (rs *RunState) SetOrder(order []int) {
	rs.result.Order = append([]int{}, order...)
}

// Result returns the log buffers accumulated so far.
func (rs *RunState) Result() Result {
	return rs.result
}
