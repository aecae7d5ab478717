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
	"image"
	"image/color"

	"github.com/jetsetilly/checkergen/canvas"
	"github.com/jetsetilly/checkergen/runstate"
)

// WaitText is the message shown by the wait screen when no other text is
// specified.
const WaitText = "press any key to continue"

// WaitScreen shows a message until a key is pressed. It has no duration of its
// own and so never contributes to the timing of a run.
type WaitScreen struct {
	Text string
}

// Duration implements the Stage interface.
func (w *WaitScreen) Duration() float64 {
	return 0
}

// contrast returns black or white, whichever is more visible on the colour.
func contrast(bg color.RGBA) color.RGBA {
	lum := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if lum > 128*1000 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// Display implements the Stage interface. The keyboard is polled once per
// frame through the run state. The eye tracker is restarted once a key has
// been pressed. The cue is ignored and the wait screen never fails.
func (w *WaitScreen) Display(rs *runstate.RunState, _ Cue) (bool, error) {
	text := w.Text
	if text == "" {
		text = WaitText
	}

	tile, err := canvas.Message(rs.Res(), rs.BG(), contrast(rs.BG()), text)
	if err != nil {
		return false, err
	}

	rs.BeginStage()

	for !rs.Terminated() {
		if !rs.BeginFrame(runstate.Frame{Lazy: true}) {
			rs.Canvas().Blit(tile, image.Point{})
		}

		if err := rs.Update(); err != nil {
			return false, err
		}

		if rs.KeyPressed() {
			break
		}
	}

	if err := rs.RestartTracking(); err != nil {
		return false, err
	}

	return true, nil
}
