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

// Package shapes contains the stimuli that can be placed in a display group.
//
// Every stimulus implements the Shape interface. A shape has two models that
// it alternates between according to its phase clock. The CheckerBoard type
// is currently the only implementation.
//
// A checkerboard is a grid of rectangular cells. The cells nearest the anchor
// point are init_unit pixels in size and the cells grow (or shrink) linearly
// towards end_unit at the far edge of the board. For anchors in the middle of
// an edge, or in the centre, the board is centred on the position along that
// axis and the cells change size symmetrically from the centre line outwards.
//
// Geometry is computed lazily. Changing any attribute that affects the
// geometry marks the board for recomputation the next time it is drawn. The
// two models are rasterised into tiles when the geometry is computed so that
// drawing a board is a single copy onto the canvas.
package shapes
