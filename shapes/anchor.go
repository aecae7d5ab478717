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
	"strings"

	"github.com/jetsetilly/checkergen/curated"
)

// Anchor is the point of a checkerboard that is placed at its position.
type Anchor int

// List of valid Anchor values.
const (
	TopLeft Anchor = iota
	TopRight
	BottomLeft
	BottomRight
	MidTop
	MidBottom
	MidLeft
	MidRight
	Center
)

// Sentinal error patterns.
const (
	UnknownAnchor = "checkerboard: unknown anchor (%s)"
)

var anchorNames = []string{
	"topleft", "topright", "bottomleft", "bottomright",
	"midtop", "midbottom", "midleft", "midright", "center",
}

func (a Anchor) String() string {
	if int(a) < 0 || int(a) >= len(anchorNames) {
		return "unknown"
	}
	return anchorNames[a]
}

// ParseAnchor returns the Anchor named by the string.
func ParseAnchor(s string) (Anchor, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for i := range anchorNames {
		if anchorNames[i] == n {
			return Anchor(i), nil
		}
	}
	return Center, curated.Errorf(UnknownAnchor, s)
}

// Direction returns the direction in which the board extends away from the
// anchor along each axis. A value of zero means that the board is centred on
// the position along that axis. Note that the y-axis points upwards.
func (a Anchor) Direction() (int, int) {
	switch a {
	case TopLeft:
		return 1, -1
	case TopRight:
		return -1, -1
	case BottomLeft:
		return 1, 1
	case BottomRight:
		return -1, 1
	case MidTop:
		return 0, -1
	case MidBottom:
		return 0, 1
	case MidLeft:
		return 1, 0
	case MidRight:
		return -1, 0
	}
	return 0, 0
}
