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

// Package sequencer decides the order in which the groups of a project are
// played and plays them, either to a window or to an image sequence.
//
// Each repeat of the order is a block. The first group of a block sends the
// block-start trigger and the last group sends the block-end trigger. When
// the order is one of the orders registered with the project its index is
// announced in the frame after the block start.
//
// When eye tracking is enabled, groups during which the subject failed to
// fixate can be played again at the end of the run. See the tryagain and
// trybreak options.
package sequencer
