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

// Package options contains the display options of a run. The options control
// how a project is displayed rather than what is displayed: the number of
// repeats, which trigger ports are used, whether eye tracking gates the run
// and so on.
//
// Options are prefs values so they can be set from strings on the command
// line and saved to disk as the default options of a project. Invalid values
// are rejected when they are set.
package options
