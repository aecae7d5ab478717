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

// Package trigger encodes the events of a frame as a single byte and sends
// that byte to external recording equipment.
//
// Only one code is sent per frame. When more than one event occurs in the same
// frame the event with the highest priority is encoded. In order of priority:
//
//	order announcement   index of the chosen order plus one
//	block start          128
//	block end            127
//	group shown          100 + status bits
//	group hidden          90 + status bits
//	eye tracking change  110 + status bits
//	shape flips           16 + one bit for each of the first four shapes
//
// The status bits are fixation start (4), tracking start (2) and tracking stop
// (1). A code is only sent if an event occurred and the code is different to
// the code of the previous frame. Lines are never driven back to zero between
// codes, so recording equipment should treat a change of value as the event.
//
// The Session type holds the ports and the state needed to apply the rule
// above. The Port interface is implemented by the Serial and Parallel types
// for real hardware, and by the Recorder type for testing and for writing the
// trigger track of an export.
package trigger
