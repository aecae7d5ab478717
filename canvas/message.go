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
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/jetsetilly/checkergen/curated"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// MessageSize is the size of message text in points.
const MessageSize = 24

// Sentinal error patterns.
const (
	MessageError = "canvas: message: %v"
)

// Message prepares a tile the size of the canvas containing the lines of text,
// centred horizontally and vertically, on the background colour.
func Message(size image.Point, bg color.RGBA, fg color.RGBA, text string) (*image.RGBA, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, curated.Errorf(MessageError, err)
	}

	tile := NewTile(size)
	p := NewPainter(tile)
	p.Rect(tile.Bounds(), bg)

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    MessageSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(MessageSize)
	ctx.SetClip(tile.Bounds())
	ctx.SetDst(tile)
	ctx.SetSrc(image.NewUniform(fg))
	ctx.SetHinting(font.HintingFull)

	lines := strings.Split(text, "\n")
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	top := (size.Y-lineHeight*len(lines))/2 + metrics.Ascent.Ceil()

	for i, l := range lines {
		w := font.MeasureString(face, l).Ceil()
		pt := freetype.Pt((size.X-w)/2, top+i*lineHeight)
		if _, err := ctx.DrawString(l, pt); err != nil {
			return nil, curated.Errorf(MessageError, err)
		}
	}

	return tile, nil
}
