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

	xdraw "golang.org/x/image/draw"
)

// Canvas is a frame buffer in scene coordinates.
type Canvas struct {
	img *image.RGBA

	// dirty is set by any operation that changes the content of the canvas
	dirty bool
}

// New is the preferred method of initialisation for the Canvas type.
func New(size image.Point) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rectangle{Max: size}),
	}
}

// Size returns the dimensions of the canvas in pixels.
func (c *Canvas) Size() image.Point {
	return c.img.Bounds().Size()
}

// Image returns the underlying image. The image should not be modified.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Dirty returns true if the canvas has changed since the last call to Clean().
func (c *Canvas) Dirty() bool {
	return c.dirty
}

// Clean resets the dirty flag.
func (c *Canvas) Clean() {
	c.dirty = false
}

// ImageRect converts a rectangle in scene coordinates to image coordinates.
func (c *Canvas) ImageRect(r image.Rectangle) image.Rectangle {
	h := c.img.Bounds().Dy()
	return image.Rect(r.Min.X, h-r.Max.Y, r.Max.X, h-r.Min.Y)
}

// Clear the entire canvas with the colour.
func (c *Canvas) Clear(col color.RGBA) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
	c.dirty = true
}

// Fill the rectangle, in scene coordinates, with the colour.
func (c *Canvas) Fill(r image.Rectangle, col color.RGBA) {
	xdraw.Draw(c.img, c.ImageRect(r), image.NewUniform(col), image.Point{}, xdraw.Src)
	c.dirty = true
}

// Blit copies the tile onto the canvas. The bottom-left corner of the tile is
// placed at the scene coordinate. The tile replaces the canvas pixels,
// including any transparent pixels in the tile.
func (c *Canvas) Blit(tile image.Image, at image.Point) {
	c.draw(tile, at, xdraw.Src)
}

// Overlay is the same as Blit() except that the tile is composited over the
// canvas pixels.
func (c *Canvas) Overlay(tile image.Image, at image.Point) {
	c.draw(tile, at, xdraw.Over)
}

func (c *Canvas) draw(tile image.Image, at image.Point, op xdraw.Op) {
	b := tile.Bounds()
	r := c.ImageRect(image.Rectangle{Min: at, Max: at.Add(b.Size())})
	xdraw.Draw(c.img, r, tile, b.Min, op)
	c.dirty = true
}
