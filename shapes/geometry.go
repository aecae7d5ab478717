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
	"math"
)

// Cell is a single cell of a checkerboard.
type Cell struct {
	// column and row of the cell counting from the anchor
	Col int
	Row int

	// exact extent of the cell in scene coordinates
	X0, X1 float64
	Y0, Y1 float64

	// pixel extent of the cell in scene coordinates
	Rect image.Rectangle
}

// colour index of the cell for the model. model 0 is model A and model 1 is
// model B.
func (c Cell) colour(model int) int {
	return (c.Col + c.Row + model) % 2
}

type span struct {
	lo, hi float64
}

// layout the cells along one axis.
//
// for a non-zero direction the cells walk away from the position with sizes
// sampled at the midpoint of each cell on the line from init to end. for the
// zero direction the board is centred on the position and the size of a cell
// depends on its distance from the centre line. the per-cell step is doubled
// because the line from init to end is covered in half the number of cells.
// when n is even the two cells either side of the centre line are the same
// size.
func layout(n int, init float64, end float64, pos float64, dir int) []span {
	sizes := make([]float64, n)
	var total float64

	if dir == 0 {
		grad := 2 * (end - init) / float64(n)
		for i := range sizes {
			sizes[i] = init + grad*math.Abs(float64(i)+0.5-float64(n)/2)
			total += sizes[i]
		}
	} else {
		grad := (end - init) / float64(n)
		for i := range sizes {
			sizes[i] = init + grad*(float64(i)+0.5)
		}
	}

	spans := make([]span, n)

	switch {
	case dir == 0:
		x := pos - total/2
		for i := range spans {
			spans[i] = span{lo: x, hi: x + sizes[i]}
			x = spans[i].hi
		}
	case dir > 0:
		x := pos
		for i := range spans {
			spans[i] = span{lo: x, hi: x + sizes[i]}
			x = spans[i].hi
		}
	default:
		x := pos
		for i := range spans {
			spans[i] = span{lo: x - sizes[i], hi: x}
			x = spans[i].lo
		}
	}

	return spans
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// geometry computes the cells of a board. the outer loop is over rows.
func geometry(dims [2]int, init [2]float64, end [2]float64, pos [2]float64, anchor Anchor) ([]Cell, image.Rectangle) {
	dx, dy := anchor.Direction()
	cols := layout(dims[0], init[0], end[0], pos[0], dx)
	rows := layout(dims[1], init[1], end[1], pos[1], dy)

	cells := make([]Cell, 0, dims[0]*dims[1])
	var bounds image.Rectangle

	for j, r := range rows {
		for i, c := range cols {
			cl := Cell{
				Col: i,
				Row: j,
				X0:  c.lo,
				X1:  c.hi,
				Y0:  r.lo,
				Y1:  r.hi,
			}

			// rounding the edges rather than the position and size means that
			// adjacent cells always meet without a gap
			cl.Rect = image.Rect(round(c.lo), round(r.lo), round(c.hi), round(r.hi))

			bounds = bounds.Union(cl.Rect)
			cells = append(cells, cl)
		}
	}

	return cells, bounds
}
