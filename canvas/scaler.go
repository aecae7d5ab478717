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

package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scaler stretches a frame to a different size. Used when the window is not
// the same size as the canvas.
type Scaler struct {
	dst *image.RGBA
}

// NewScaler is the preferred method of initialisation for the Scaler type.
func NewScaler(size image.Point) *Scaler {
	return &Scaler{
		dst: image.NewRGBA(image.Rectangle{Max: size}),
	}
}

// Scale returns the scaled frame. If the frame is already the correct size it
// is returned unchanged. Nearest neighbour scaling preserves the hard edges of
// the checkerboard cells.
func (s *Scaler) Scale(src *image.RGBA) *image.RGBA {
	if src.Bounds().Size() == s.dst.Bounds().Size() {
		return src
	}
	xdraw.NearestNeighbor.Scale(s.dst, s.dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return s.dst
}
