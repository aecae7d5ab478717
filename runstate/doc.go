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

// Package runstate holds the state of a single display or export run. It
// composites each frame onto the software canvas, hands the frame to the
// output, sends triggers and accumulates the run log.
//
// A run is started with Start() and must be ended with Stop(), usually with
// defer so that ports are released and the process priority restored on
// every exit path:
//
//	rs, err := runstate.Start(settings, opts, devices)
//	if err != nil {
//		return err
//	}
//	defer rs.Stop()
//
// Each frame is bracketed by BeginFrame() and Update(). Shapes are drawn
// onto the canvas between the two calls.
package runstate
