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
	"image/color"

	"github.com/srwiley/rasterx"
)

// Painter rasterises filled rectangles into a tile. Rectangles are specified
// in the image coordinates of the tile.
type Painter struct {
	img    *image.RGBA
	filler *rasterx.Filler
}

// NewTile creates a transparent tile of the specified size.
func NewTile(size image.Point) *image.RGBA {
	return image.NewRGBA(image.Rectangle{Max: size})
}

// NewPainter is the preferred method of initialisation for the Painter type.
func NewPainter(img *image.RGBA) *Painter {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Painter{
		img:    img,
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

// Rect fills the rectangle with the colour. Empty rectangles are ignored.
func (p *Painter) Rect(r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	p.filler.SetColor(col)
	rasterx.AddRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y), 0, p.filler)
	p.filler.Draw()
	p.filler.Clear()
}
