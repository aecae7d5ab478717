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

// Package phase implements the clock that drives the flicker of a shape. The
// clock tracks a phase angle in degrees. Each half of the cycle, [0,180) and
// [180,360), selects one of the two models of a shape. A flip occurs on the
// frame where the half changes.
//
// The phase is derived from the number of frames since the clock was last
// rebased rather than accumulated frame by frame. Long runs therefore do not
// drift due to rounding errors. The clock is rebased whenever the frequency or
// the frame rate changes.
//
// Two policies decide how many degrees the phase advances every frame. The
// Continuous policy advances by 360·freq/fps degrees and so approximates the
// requested frequency as closely as possible over a long interval. The
// HalfPeriod policy rounds each half period to a whole number of frames so
// that every half period is the same length, at the cost of an approximated
// frequency.
package phase
