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
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/jetsetilly/checkergen/canvas"
	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/phase"
)

// Sentinal error patterns.
const (
	InvalidDims = "checkerboard: dims must be at least 1 (%d, %d)"
	InvalidUnit = "checkerboard: unit size must be zero or greater (%v, %v)"
	InvalidFreq = "checkerboard: frequency must be zero or greater (%v)"
	InvalidPos  = "checkerboard: position must be a finite number (%v, %v)"
)

// Params are the attributes of a CheckerBoard.
type Params struct {
	Dims     [2]int
	InitUnit [2]float64
	EndUnit  [2]float64
	Position [2]float64
	Anchor   string
	Cols     [2]color.RGBA
	Freq     float64
	Phase    float64
}

// CheckerBoard is a grid of cells in two alternating colours.
type CheckerBoard struct {
	dims     [2]int
	initUnit [2]float64
	endUnit  [2]float64
	position [2]float64
	anchor   Anchor
	cols     [2]color.RGBA

	clock *phase.Clock

	// computed is false if the geometry must be computed before drawing
	computed bool
	cells    []Cell
	bounds   image.Rectangle
	tiles    [2]*image.RGBA

	// the model that was most recently drawn. -1 if nothing has been drawn
	// since the last reset
	lastDrawn int
}

// NewCheckerBoard is the preferred method of initialisation for the
// CheckerBoard type.
func NewCheckerBoard(p Params) (*CheckerBoard, error) {
	cb := &CheckerBoard{
		clock:     phase.NewClock(0, 0, phase.Continuous),
		lastDrawn: -1,
	}

	if err := cb.SetDims(p.Dims[0], p.Dims[1]); err != nil {
		return nil, err
	}
	if err := cb.SetInitUnit(p.InitUnit[0], p.InitUnit[1]); err != nil {
		return nil, err
	}
	if err := cb.SetEndUnit(p.EndUnit[0], p.EndUnit[1]); err != nil {
		return nil, err
	}
	if err := cb.SetPosition(p.Position[0], p.Position[1]); err != nil {
		return nil, err
	}
	if err := cb.SetAnchor(p.Anchor); err != nil {
		return nil, err
	}
	cb.SetCols(p.Cols[0], p.Cols[1])
	if err := cb.SetFreq(p.Freq); err != nil {
		return nil, err
	}
	cb.SetPhase(p.Phase)

	return cb, nil
}

func (cb *CheckerBoard) String() string {
	return fmt.Sprintf("%dx%d %s at (%v, %v) %vHz", cb.dims[0], cb.dims[1], cb.anchor, cb.position[0], cb.position[1], cb.clock.Freq())
}

// Params returns the current attributes of the board.
func (cb *CheckerBoard) Params() Params {
	return Params{
		Dims:     cb.dims,
		InitUnit: cb.initUnit,
		EndUnit:  cb.endUnit,
		Position: cb.position,
		Anchor:   cb.anchor.String(),
		Cols:     cb.cols,
		Freq:     cb.clock.Freq(),
		Phase:    cb.clock.Start(),
	}
}

// Kind implements the Shape interface.
func (cb *CheckerBoard) Kind() Kind {
	return KindCheckerBoard
}

// SetDims sets the number of cells horizontally and vertically.
func (cb *CheckerBoard) SetDims(w int, h int) error {
	if w < 1 || h < 1 {
		return curated.Errorf(InvalidDims, w, h)
	}
	cb.dims = [2]int{w, h}
	cb.computed = false
	return nil
}

func validUnit(w float64, h float64) error {
	if !(w >= 0) || !(h >= 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return curated.Errorf(InvalidUnit, w, h)
	}
	return nil
}

// SetInitUnit sets the size of the cells at the anchor.
func (cb *CheckerBoard) SetInitUnit(w float64, h float64) error {
	if err := validUnit(w, h); err != nil {
		return err
	}
	cb.initUnit = [2]float64{w, h}
	cb.computed = false
	return nil
}

// SetEndUnit sets the size of the cells at the far edge.
func (cb *CheckerBoard) SetEndUnit(w float64, h float64) error {
	if err := validUnit(w, h); err != nil {
		return err
	}
	cb.endUnit = [2]float64{w, h}
	cb.computed = false
	return nil
}

// SetPosition sets the position of the anchor in scene coordinates.
func (cb *CheckerBoard) SetPosition(x float64, y float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return curated.Errorf(InvalidPos, x, y)
	}
	cb.position = [2]float64{x, y}
	cb.computed = false
	return nil
}

// SetAnchor sets the anchor by name.
func (cb *CheckerBoard) SetAnchor(name string) error {
	a, err := ParseAnchor(name)
	if err != nil {
		return err
	}
	cb.anchor = a
	cb.computed = false
	return nil
}

// SetCols sets the two colours. The alpha channel is ignored.
func (cb *CheckerBoard) SetCols(a color.RGBA, b color.RGBA) {
	a.A = 255
	b.A = 255
	cb.cols = [2]color.RGBA{a, b}
	cb.computed = false
}

// SetFreq sets the flicker frequency in Hz. A frequency of zero means that the
// board never flips.
func (cb *CheckerBoard) SetFreq(freq float64) error {
	if !(freq >= 0) || math.IsInf(freq, 0) {
		return curated.Errorf(InvalidFreq, freq)
	}
	cb.clock.SetFreq(freq)
	return nil
}

// SetPhase sets the starting phase in degrees. The value is normalised into
// the range [0,360).
func (cb *CheckerBoard) SetPhase(deg float64) {
	cb.clock.SetPhase(deg)
}

// Compute the geometry of the board and prepare the tiles for each model.
// Returns the cells of the board.
func (cb *CheckerBoard) Compute() []Cell {
	cb.cells, cb.bounds = geometry(cb.dims, cb.initUnit, cb.endUnit, cb.position, cb.anchor)

	sz := cb.bounds.Size()
	for m := range cb.tiles {
		cb.tiles[m] = canvas.NewTile(sz)
		p := canvas.NewPainter(cb.tiles[m])
		for _, c := range cb.cells {
			r := image.Rect(c.Rect.Min.X-cb.bounds.Min.X, cb.bounds.Max.Y-c.Rect.Max.Y,
				c.Rect.Max.X-cb.bounds.Min.X, cb.bounds.Max.Y-c.Rect.Min.Y)
			p.Rect(r, cb.cols[c.colour(m)])
		}
	}

	cb.computed = true
	cb.lastDrawn = -1

	return cb.cells
}

// Cells returns the cells of the board, computing them if necessary.
func (cb *CheckerBoard) Cells() []Cell {
	if !cb.computed {
		cb.Compute()
	}
	return cb.cells
}

// Bounds implements the Shape interface.
func (cb *CheckerBoard) Bounds() image.Rectangle {
	if !cb.computed {
		cb.Compute()
	}
	return cb.bounds
}

// Reset implements the Shape interface.
func (cb *CheckerBoard) Reset(policy phase.Policy) {
	cb.clock.SetPolicy(policy)
	cb.clock.Reset()
	cb.lastDrawn = -1
}

// Update implements the Shape interface.
func (cb *CheckerBoard) Update(fps float64) {
	cb.clock.Update(fps)
}

// Flipped implements the Shape interface.
func (cb *CheckerBoard) Flipped() bool {
	return cb.clock.Flipped()
}

// Model returns the model that would be drawn by the next call to Draw().
func (cb *CheckerBoard) Model(burst bool) int {
	if burst {
		if cb.clock.Flipped() {
			return 0
		}
		return 1
	}
	return cb.clock.Half()
}

// Draw implements the Shape interface.
func (cb *CheckerBoard) Draw(c *canvas.Canvas, burst bool) {
	if !cb.computed {
		cb.Compute()
	}
	m := cb.Model(burst)
	c.Blit(cb.tiles[m], cb.bounds.Min)
	cb.lastDrawn = m
}

// LazyDraw implements the Shape interface.
func (cb *CheckerBoard) LazyDraw(c *canvas.Canvas, burst bool) bool {
	if !cb.computed {
		cb.Compute()
	}
	if cb.Model(burst) == cb.lastDrawn {
		return false
	}
	cb.Draw(c, burst)
	return true
}
