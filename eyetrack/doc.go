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

// Package eyetrack gates a run on the gaze of the subject.
//
// A Tracker provides the most recent gaze sample. Samples are in millimetres
// relative to the centre of the screen. The Gate type turns the stream of
// samples into debounced tracking and fixation states. A state only changes
// once the raw value has been different for the whole of the debounce period.
//
// Two trackers are provided. The Playback tracker replays samples recorded in
// a file, one sample per frame. The Mouse tracker uses the mouse pointer as a
// stand-in for the gaze and is useful for trying out a project without eye
// tracking hardware.
package eyetrack
