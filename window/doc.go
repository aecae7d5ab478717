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

// Package window is the display output of a run. It opens an SDL window with
// an OpenGL backed renderer and implements the runstate.Output interface.
//
// Frames are copied to a streaming texture and presented. When vsync is
// available the present blocks until the vertical blank and glFinish() is
// called afterwards so that the flip has completed before the trigger for
// the frame is sent.
//
// The window also implements the eyetrack.Pointer interface so that the
// mouse can stand in for an eye tracker.
//
// SDL requires that all calls are made from the main thread. The caller must
// lock the main goroutine to the OS thread.
package window
