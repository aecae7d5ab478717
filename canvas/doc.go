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

// Package canvas is the software frame buffer that every frame is composited
// onto before it is shown in a window or written to an image file. Because
// both outputs use the same canvas, an exported frame is identical to the
// frame that would have been displayed.
//
// The canvas uses scene coordinates. The origin is the bottom-left corner of
// the screen and the y-axis increases upwards. Conversion to image coordinates
// (origin top-left, y-axis downwards) happens inside the package.
//
// Tiles are small images that are prepared before a run starts and then
// blitted onto the canvas every frame. The Painter type rasterises filled
// rectangles into a tile. The Cross() and Message() functions prepare the
// fixation cross and the text of a wait screen.
package canvas
