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
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// CrossSize is the width and height of the fixation cross in pixels.
const CrossSize = 20

// the thickness of each bar of the fixation cross
const crossBar = 4

// Sentinal error patterns.
const (
	CrossError = "canvas: cross: %v"
)

const crossSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[1]d" viewBox="0 0 %[1]d %[1]d">
<rect x="0" y="%[2]d" width="%[1]d" height="%[3]d" fill="%[4]s"/>
<rect x="%[2]d" y="0" width="%[3]d" height="%[1]d" fill="%[4]s"/>
</svg>`

func hex(col color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B)
}

// Cross prepares a tile containing the fixation cross in the colour. The
// pixels around the cross are transparent so the tile should be placed on the
// canvas with Overlay().
func Cross(col color.RGBA) (*image.RGBA, error) {
	svg := fmt.Sprintf(crossSVG, CrossSize, (CrossSize-crossBar)/2, crossBar, hex(col))

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, curated.Errorf(CrossError, err)
	}

	tile := NewTile(image.Pt(CrossSize, CrossSize))
	icon.SetTarget(0, 0, CrossSize, CrossSize)
	scanner := rasterx.NewScannerGV(CrossSize, CrossSize, tile, tile.Bounds())
	icon.Draw(rasterx.NewDasher(CrossSize, CrossSize, scanner), 1.0)

	return tile, nil
}

// CrossPosition returns the scene coordinate of the bottom-left corner of a
// cross tile centred on a canvas of the given size.
func CrossPosition(size image.Point) image.Point {
	return image.Pt((size.X-CrossSize)/2, (size.Y-CrossSize)/2)
}
