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

// Package logger is the central log for checkergen. Entries are tagged with
// the name of the package or the subject of the entry. Repeated entries are
// collapsed into a single entry with a repeat count.
//
// The central log is accessed through the package level functions. Additional
// logs can be created with NewLogger(), which is useful for testing.
//
// The Permission type controls whether a log request is honoured. The Allow
// value can be used when an entry should always be made.
package logger
