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

// Package group implements the display group. A group is a bundle of shapes
// shown together, preceded and followed by a blank screen. The timing of a
// group is decided entirely by frame counts calculated when the group is
// reset.
//
// The WaitScreen type is a degenerate stage that shows a message until a key
// is pressed.
package group
