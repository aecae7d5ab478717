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

package group_test

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/group"
	"github.com/jetsetilly/checkergen/options"
	"github.com/jetsetilly/checkergen/phase"
	"github.com/jetsetilly/checkergen/runstate"
	"github.com/jetsetilly/checkergen/shapes"
	"github.com/jetsetilly/checkergen/test"
	"github.com/jetsetilly/checkergen/trigger"
)

var bg = color.RGBA{R: 128, G: 128, B: 128, A: 255}
var black = color.RGBA{A: 255}
var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func newGroup(t *testing.T, pre, disp, post float64) *group.Group {
	t.Helper()
	g, err := group.NewGroup(pre, disp, post)
	test.DemandSuccess(t, err)
	return g
}

// play the group until it is over or the limit is reached. returns the
// visibility of every frame.
func play(g *group.Group, limit int) []bool {
	var vis []bool
	for !g.Over() && len(vis) < limit {
		vis = append(vis, g.Visible())
		g.Update(0, nil)
	}
	return vis
}

func TestVisibleFrames(t *testing.T) {
	g := newGroup(t, 1, 2, 1)
	g.Reset(10, phase.Continuous)

	test.ExpectedFailure(t, g.Visible())
	test.ExpectedFailure(t, g.Over())

	vis := play(g, 1000)
	test.DemandEquality(t, len(vis), 40)
	test.ExpectedSuccess(t, g.Over())

	for i, v := range vis {
		test.ExpectEquality(t, v, i >= 10 && i <= 29, i)
	}
}

func TestPartition(t *testing.T) {
	times := [][3]float64{
		{0, 1, 0},
		{0.5, 0.25, 2},
		{0.05, 0.1, 0.05},
		{3, 0, 1},
		{0, 0.1, 0.3},
	}

	for _, fps := range []float64{10, 30, 60, 144} {
		for _, tm := range times {
			g := newGroup(t, tm[0], tm[1], tm[2])
			g.Reset(fps, phase.Continuous)
			vis := play(g, 100000)

			var n int
			for _, v := range vis {
				if v {
					n++
				}
			}

			start := int(math.Round(tm[0] * fps))
			stop := int(math.Round((tm[0] + tm[1]) * fps))
			end := int(math.Round((tm[0] + tm[1] + tm[2]) * fps))
			test.ExpectEquality(t, n, stop-start, fps, tm)
			test.ExpectEquality(t, len(vis), end, fps, tm)
			test.ExpectEquality(t, g.Frames(fps), end, fps, tm)
		}
	}
}

func TestHalfFrames(t *testing.T) {
	// every boundary falls on a half frame. rounding each period separately
	// would give 8+30+8 frames
	g := newGroup(t, 0.125, 0.5, 0.125)
	test.ExpectEquality(t, g.Frames(60), 45)

	g.Reset(60, phase.Continuous)
	vis := play(g, 1000)
	test.DemandEquality(t, len(vis), 45)
	test.ExpectedSuccess(t, g.Over())

	for i, v := range vis {
		test.ExpectEquality(t, v, i >= 8 && i < 38, i)
	}

	g = newGroup(t, 1, math.Inf(1), 1)
	test.ExpectEquality(t, g.Frames(60), group.Infinite)
}

func TestZeroDurations(t *testing.T) {
	g := newGroup(t, 0, 1, 0)
	g.Reset(60, phase.Continuous)
	test.ExpectedSuccess(t, g.Visible())
	test.ExpectedSuccess(t, g.Shown())

	g = newGroup(t, 0, 0, 0)
	g.Reset(60, phase.Continuous)
	test.ExpectedFailure(t, g.Visible())
	test.ExpectedSuccess(t, g.Over())
	test.Equate(t, g.Duration(), 0.0)
}

func TestInfiniteDisp(t *testing.T) {
	g := newGroup(t, 1, math.Inf(1), 1)
	test.Equate(t, g.Duration(), math.Inf(1))

	g.Reset(60, phase.Continuous)
	vis := play(g, 10000)
	test.ExpectEquality(t, len(vis), 10000)
	test.ExpectedFailure(t, g.Over())
	test.ExpectedSuccess(t, g.Visible())
}

func TestInvalidTimes(t *testing.T) {
	_, err := group.NewGroup(-1, 1, 1)
	test.ExpectedSuccess(t, curated.Is(err, group.InvalidTime))

	_, err = group.NewGroup(math.Inf(1), 1, 1)
	test.ExpectedSuccess(t, curated.Is(err, group.InvalidTime))

	_, err = group.NewGroup(0, math.NaN(), 1)
	test.ExpectedSuccess(t, curated.Is(err, group.InvalidTime))

	g := newGroup(t, 1, 2, 3)
	test.ExpectedFailure(t, g.SetTimes(1, 1, math.Inf(1)))
	pre, disp, post := g.Times()
	test.Equate(t, pre, 1.0)
	test.Equate(t, disp, 2.0)
	test.Equate(t, post, 3.0)

	test.ExpectedSuccess(t, curated.Is(g.SetCross([]group.Step{{Time: -1}}, nil), group.InvalidCross))
}

func TestCrossSchedule(t *testing.T) {
	g := newGroup(t, 1, 0.5, 0.5)
	err := g.SetCross(
		[]group.Step{{Time: 0.3, Show: false}, {Time: 0.2, Show: true}, {Time: 0.1, Show: false}},
		[]group.Step{{Time: 0.2, Show: false}},
	)
	test.DemandSuccess(t, err)

	g.Reset(10, phase.Continuous)

	var cross []bool
	for !g.Over() {
		cross = append(cross, g.CrossShown())
		g.Update(0, nil)
	}

	expected := []bool{
		false, false, false, true, true, false, true, true, true, true,
		true, true, true, true, true,
		false, false, true, true, true,
	}
	test.DemandEquality(t, len(cross), len(expected))
	for i := range expected {
		test.ExpectEquality(t, cross[i], expected[i], i)
	}
}

func TestFlipTriggers(t *testing.T) {
	// a board that flips on every frame
	cb, err := shapes.NewCheckerBoard(shapes.Params{
		Dims:     [2]int{2, 2},
		InitUnit: [2]float64{10, 10},
		EndUnit:  [2]float64{10, 10},
		Anchor:   "bottomleft",
		Cols:     [2]color.RGBA{black, white},
		Freq:     5,
	})
	test.DemandSuccess(t, err)

	g := newGroup(t, 0, math.Inf(1), 0)
	test.Equate(t, g.AddShape(cb), 0)
	g.Reset(10, phase.Continuous)

	var triggered []int
	for i := 0; i < 20; i++ {
		g.Update(3, func(id int) {
			test.ExpectEquality(t, id, 0)
			triggered = append(triggered, i)
		})
	}

	expected := []int{3, 6, 9, 12, 15, 18}
	test.DemandEquality(t, len(triggered), len(expected))
	for i := range expected {
		test.ExpectEquality(t, triggered[i], expected[i])
	}

	// flip triggers are disabled with an fpst of zero
	g.Reset(10, phase.Continuous)
	for i := 0; i < 20; i++ {
		g.Update(0, func(id int) {
			t.Errorf("unexpected flip trigger")
		})
	}
}

func TestShapes(t *testing.T) {
	g := newGroup(t, 0, 1, 0)
	a, _ := shapes.NewCheckerBoard(shapes.Params{Dims: [2]int{1, 1}, Anchor: "center"})
	b, _ := shapes.NewCheckerBoard(shapes.Params{Dims: [2]int{2, 2}, Anchor: "center"})
	test.Equate(t, g.AddShape(a), 0)
	test.Equate(t, g.AddShape(b), 1)
	test.ExpectedSuccess(t, g.RemoveShape(0))
	test.ExpectedFailure(t, g.RemoveShape(1))
	test.DemandEquality(t, len(g.Shapes()), 1)
	test.ExpectEquality[shapes.Shape](t, g.Shapes()[0], b)
}

// output keeps a copy of every presented frame.
type output struct {
	frames []*image.RGBA
	keyAt  int
}

func (o *output) Present(frame int, img *image.RGBA, changed bool) error {
	cp := image.NewRGBA(img.Bounds())
	copy(cp.Pix, img.Pix)
	o.frames = append(o.frames, cp)
	return nil
}

func (o *output) Service() (bool, bool) {
	return false, len(o.frames) == o.keyAt
}

func (o *output) Realtime() bool {
	return false
}

func (o *output) VSync() bool {
	return false
}

func (o *output) Close() error {
	return nil
}

func start(t *testing.T, out *output, rec *trigger.Recorder) *runstate.RunState {
	t.Helper()
	rs, err := runstate.Start(runstate.Settings{
		FPS:        10,
		Res:        image.Pt(100, 100),
		BG:         bg,
		CrossCols:  [3]color.RGBA{black, black, black},
		CrossTimes: [2]float64{math.Inf(1), 0},
	}, options.NewDisplay(), runstate.Devices{Output: out, Ports: []trigger.Port{rec}})
	test.DemandSuccess(t, err)
	return rs
}

func TestDisplay(t *testing.T) {
	cb, err := shapes.NewCheckerBoard(shapes.Params{
		Dims:     [2]int{2, 2},
		InitUnit: [2]float64{10, 10},
		EndUnit:  [2]float64{10, 10},
		Position: [2]float64{10, 10},
		Anchor:   "bottomleft",
		Cols:     [2]color.RGBA{white, white},
	})
	test.DemandSuccess(t, err)

	g := newGroup(t, 0.2, 0.2, 0.2)
	g.AddShape(cb)

	out := &output{keyAt: -1}
	rec := &trigger.Recorder{}
	rs := start(t, out, rec)

	pass, err := g.Display(rs, group.Cue{BlockStart: true, BlockEnd: true, Order: 0})
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, pass)
	test.DemandSuccess(t, rs.Stop())

	// block start, order announcement, shown, hidden and block end
	test.DemandEquality(t, len(rec.Codes), 5)
	test.ExpectEquality(t, rec.Codes[0], byte(128))
	test.ExpectEquality(t, rec.Codes[1], byte(1))
	test.ExpectEquality(t, rec.Codes[2], byte(100))
	test.ExpectEquality(t, rec.Codes[3], byte(90))
	test.ExpectEquality(t, rec.Codes[4], byte(127))

	// the board is at the bottom-left of the scene which is the bottom-left
	// of the image
	test.DemandEquality(t, len(out.frames), 6)
	for i, f := range out.frames {
		var col color.RGBA
		if i == 2 || i == 3 {
			col = white
		} else {
			col = bg
		}
		test.ExpectEquality(t, f.RGBAAt(15, 85), col, i)
	}
}

func TestWaitScreen(t *testing.T) {
	out := &output{keyAt: 5}
	rec := &trigger.Recorder{}
	rs := start(t, out, rec)

	w := &group.WaitScreen{}
	test.Equate(t, w.Duration(), 0.0)

	pass, err := w.Display(rs, group.Cue{})
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, pass)
	test.DemandSuccess(t, rs.Stop())

	// the wait screen ends on the frame the key is pressed. no triggers are
	// sent while waiting
	test.ExpectEquality(t, len(out.frames), 5)
	test.ExpectEquality(t, len(rec.Codes), 0)
}

func TestEmptyGroupInBlock(t *testing.T) {
	empty := newGroup(t, 0, 0, 0)
	g := newGroup(t, 0, 0.2, 0.1)

	out := &output{keyAt: -1}
	rec := &trigger.Recorder{}
	rs := start(t, out, rec)

	// the block starts with a group that has no frames
	pass, err := empty.Display(rs, group.Cue{BlockStart: true, Order: 1})
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, pass)
	test.ExpectEquality(t, len(out.frames), 0)

	_, err = g.Display(rs, group.Cue{Order: -1})
	test.DemandSuccess(t, err)

	// and ends with one
	_, err = empty.Display(rs, group.Cue{BlockEnd: true, Order: -1})
	test.DemandSuccess(t, err)

	_, err = g.Display(rs, group.Cue{Order: -1})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, rs.Stop())

	test.DemandEquality(t, len(out.frames), 6)

	// the block start and the block end are carried by the first frame of
	// the following group, in place of its shown edge
	test.DemandEquality(t, len(rec.Codes), 5)
	test.ExpectEquality(t, rec.Codes[0], byte(128))
	test.ExpectEquality(t, rec.Codes[1], byte(2))
	test.ExpectEquality(t, rec.Codes[2], byte(90))
	test.ExpectEquality(t, rec.Codes[3], byte(127))
	test.ExpectEquality(t, rec.Codes[4], byte(90))
}
