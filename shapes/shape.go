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

package shapes

import (
	"image"

	"github.com/jetsetilly/checkergen/canvas"
	"github.com/jetsetilly/checkergen/phase"
)

// Kind identifies the type of a Shape.
type Kind int

// List of valid Kind values.
const (
	KindCheckerBoard Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindCheckerBoard:
		return "checkerboard"
	}
	return "unknown"
}

// Shape is the interface implemented by every stimulus.
type Shape interface {
	Kind() Kind

	// Reset the phase of the shape to its starting phase, using the policy
	// for all future updates
	Reset(policy phase.Policy)

	// Update advances the phase by one frame
	Update(fps float64)

	// Flipped returns true if the most recent Update() changed the model
	Flipped() bool

	// Draw the current model onto the canvas. In burst mode the first model
	// is drawn only on the frame immediately after a flip
	Draw(c *canvas.Canvas, burst bool)

	// LazyDraw is the same as Draw() except that nothing is drawn if the model
	// has not changed since the previous draw. Returns true if the shape was
	// drawn
	LazyDraw(c *canvas.Canvas, burst bool) bool

	// Bounds returns the area covered by the shape in scene coordinates
	Bounds() image.Rectangle
}
