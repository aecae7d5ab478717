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

package group

import (
	"fmt"
	"math"

	"github.com/jetsetilly/checkergen/canvas"
	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/phase"
	"github.com/jetsetilly/checkergen/runstate"
	"github.com/jetsetilly/checkergen/shapes"
)

// Sentinal error patterns.
const (
	InvalidTime  = "group: invalid time: %s (%v)"
	InvalidCross = "group: invalid cross schedule: %v"
)

// Infinite is the number of frames in an infinite period.
const Infinite = math.MaxInt

// Step is a single step of a cross schedule.
type Step struct {
	// duration of the step in seconds
	Time float64
	Show bool
}

// Cue tells a stage where it sits in the block being played.
type Cue struct {
	// the stage is the first of a block
	BlockStart bool

	// the stage is the last of a block
	BlockEnd bool

	// the index of the order to announce after the block start. negative if
	// there is no order to announce
	Order int
}

// Stage is anything that can be played by the sequencer.
type Stage interface {
	// Duration in seconds. The stage may end sooner than this if the run is
	// terminated
	Duration() float64

	// Display the stage. Returns false if the stage failed the fixation test
	Display(rs *runstate.RunState, cue Cue) (bool, error)
}

// Group is a bundle of shapes displayed together.
type Group struct {
	shapes []shapes.Shape

	pre  float64
	disp float64
	post float64

	preCross  []Step
	postCross []Step

	fps float64

	// the frame count and the thresholds decided by Reset()
	count     int
	dispStart int
	dispStop  int
	end       int

	visible    bool
	oldVisible bool
	over       bool

	// flips of each shape since its last flip trigger
	flips []int

	// shapes overlap and so cannot be drawn lazily
	overlap bool
}

// NewGroup is the preferred method of initialisation for the Group type. The
// disp duration may be infinite.
func NewGroup(pre float64, disp float64, post float64) (*Group, error) {
	g := &Group{}
	if err := g.SetTimes(pre, disp, post); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Group) String() string {
	return fmt.Sprintf("pre=%g disp=%g post=%g shapes=%d", g.pre, g.disp, g.post, len(g.shapes))
}

func validTime(name string, t float64, inf bool) error {
	if math.IsNaN(t) || t < 0 {
		return curated.Errorf(InvalidTime, name, t)
	}
	if math.IsInf(t, 1) && !inf {
		return curated.Errorf(InvalidTime, name, t)
	}
	return nil
}

// SetTimes sets the pre, disp and post durations in seconds. Only the disp
// duration may be infinite.
func (g *Group) SetTimes(pre float64, disp float64, post float64) error {
	if err := validTime("pre", pre, false); err != nil {
		return err
	}
	if err := validTime("disp", disp, true); err != nil {
		return err
	}
	if err := validTime("post", post, false); err != nil {
		return err
	}
	g.pre = pre
	g.disp = disp
	g.post = post
	return nil
}

// Times returns the pre, disp and post durations.
func (g *Group) Times() (float64, float64, float64) {
	return g.pre, g.disp, g.post
}

func validSchedule(steps []Step) error {
	for _, s := range steps {
		if math.IsNaN(s.Time) || s.Time < 0 || math.IsInf(s.Time, 0) {
			return curated.Errorf(InvalidCross, s.Time)
		}
	}
	return nil
}

// SetCross sets the cross schedules for the pre and post periods. Each step
// follows on from the previous step. The cross is shown once a schedule is
// exhausted, and always while the shapes are visible.
func (g *Group) SetCross(pre []Step, post []Step) error {
	if err := validSchedule(pre); err != nil {
		return err
	}
	if err := validSchedule(post); err != nil {
		return err
	}
	g.preCross = append([]Step{}, pre...)
	g.postCross = append([]Step{}, post...)
	return nil
}

// Cross returns the cross schedules.
func (g *Group) Cross() ([]Step, []Step) {
	return g.preCross, g.postCross
}

// AddShape adds the shape to the group. The id of the shape is its position
// in the group.
func (g *Group) AddShape(s shapes.Shape) int {
	g.shapes = append(g.shapes, s)
	return len(g.shapes) - 1
}

// RemoveShape removes the shape with the id. The ids of later shapes change.
func (g *Group) RemoveShape(id int) bool {
	if id < 0 || id >= len(g.shapes) {
		return false
	}
	g.shapes = append(g.shapes[:id], g.shapes[id+1:]...)
	return true
}

// Shapes returns the shapes in the group.
func (g *Group) Shapes() []shapes.Shape {
	return g.shapes
}

// Duration implements the Stage interface.
func (g *Group) Duration() float64 {
	return g.pre + g.disp + g.post
}

// frames converts seconds to frames. an infinite period is infinite frames.
func frames(t float64, fps float64) int {
	if math.IsInf(t, 1) {
		return Infinite
	}
	return int(math.Round(t * fps))
}

// Frames returns the number of frames the group lasts for at the frame rate.
// Returns Infinite if the disp duration is infinite.
func (g *Group) Frames(fps float64) int {
	return frames(g.Duration(), fps)
}

// Reset the frame count, the shapes and the thresholds for the frame rate.
func (g *Group) Reset(fps float64, policy phase.Policy) {
	g.fps = fps
	g.count = 0
	// thresholds are rounded from the start of the group
	g.dispStart = frames(g.pre, fps)
	g.dispStop = frames(g.pre+g.disp, fps)
	g.end = g.Frames(fps)

	g.oldVisible = false
	g.visible = g.dispStart == 0 && g.dispStop > 0
	g.over = g.end == 0

	g.flips = make([]int, len(g.shapes))
	for _, s := range g.shapes {
		s.Reset(policy)
	}

	g.overlap = false
	for i := range g.shapes {
		for j := i + 1; j < len(g.shapes); j++ {
			if g.shapes[i].Bounds().Overlaps(g.shapes[j].Bounds()) {
				g.overlap = true
			}
		}
	}
}

// Visible returns true if the shapes are to be shown in the current frame.
func (g *Group) Visible() bool {
	return g.visible
}

// Shown returns true if the current frame is the first visible frame.
func (g *Group) Shown() bool {
	return g.visible && !g.oldVisible
}

// Over returns true if the group has ended.
func (g *Group) Over() bool {
	return g.over
}

// Count returns the number of frames since the group was reset.
func (g *Group) Count() int {
	return g.count
}

// CrossShown returns true if the fixation cross is to be shown in the current
// frame.
func (g *Group) CrossShown() bool {
	switch {
	case g.count < g.dispStart:
		return scheduled(g.preCross, g.count, g.fps)
	case g.count < g.dispStop:
		return true
	}
	return scheduled(g.postCross, g.count-g.dispStop, g.fps)
}

func scheduled(steps []Step, frame int, fps float64) bool {
	var t int
	for _, s := range steps {
		t += frames(s.Time, fps)
		if frame < t {
			return s.Show
		}
	}
	return true
}

// Draw the shapes if the group is visible. If lazy is true only shapes that
// have changed since they were last drawn are drawn.
func (g *Group) Draw(c *canvas.Canvas, lazy bool, burst bool) {
	if !g.visible {
		return
	}
	for _, s := range g.shapes {
		if lazy {
			s.LazyDraw(c, burst)
		} else {
			s.Draw(c, burst)
		}
	}
}

// Update advances the group by one frame. While the group is visible, shapes
// that flipped in the previous update count towards their flip trigger. flip
// is called with the id of every shape that reaches fpst flips. An fpst of
// zero disables flip triggers.
//
// The visibility of the next frame is decided here.
func (g *Group) Update(fpst int, flip func(id int)) {
	if g.visible {
		for id, s := range g.shapes {
			if fpst > 0 && s.Flipped() {
				g.flips[id]++
				if g.flips[id] >= fpst {
					g.flips[id] = 0
					flip(id)
				}
			}
		}
		for _, s := range g.shapes {
			s.Update(g.fps)
		}
	}

	g.count++
	g.oldVisible = g.visible
	g.visible = g.dispStart <= g.count && g.count < g.dispStop
	g.over = g.count >= g.end
}

// Display implements the Stage interface. The group is reset and then
// displayed until it is over or the run is terminated.
func (g *Group) Display(rs *runstate.RunState, cue Cue) (bool, error) {
	g.Reset(rs.FPS(), rs.Policy())
	rs.BeginStage()

	if cue.BlockStart {
		rs.StartBlock(cue.Order)
	}

	var n int
	for !g.over && !rs.Terminated() {
		lazy := rs.BeginFrame(runstate.Frame{
			Visible: g.visible,
			Shown:   g.Shown(),
			Cross:   g.CrossShown(),
			Lazy:    !g.overlap,
		})

		g.Draw(rs.Canvas(), lazy, rs.Photoburst())
		g.Update(rs.FPST(), rs.Flip)

		if g.over && cue.BlockEnd {
			rs.EndBlock()
		}

		if err := rs.Update(); err != nil {
			return false, err
		}
		n++
	}

	// a group without frames leaves the block end to the next frame
	if n == 0 && cue.BlockEnd {
		rs.EndBlock()
	}

	return !rs.Failed(), nil
}
