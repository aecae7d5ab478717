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

package test

import "bytes"

// CompareWriter collects everything written to it so that the output of a
// function can be checked against an expected string.
type CompareWriter struct {
	buf bytes.Buffer
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.buf.Write(p)
}

// Clear discards everything written so far.
func (tw *CompareWriter) Clear() {
	tw.buf.Reset()
}

// Compare returns true if everything written so far is exactly equal to s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.buf.String() == s
}

func (tw *CompareWriter) String() string {
	return tw.buf.String()
}
