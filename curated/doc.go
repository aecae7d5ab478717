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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Each package that creates curated errors exports its patterns as
// named string constants. For example:
//
//	const FrameOverflow = "export: frame overflow: %d frames (maximum %d)"
//
//	e := curated.Errorf(FrameOverflow, n, max)
//
//	if curated.Is(e, FrameOverflow) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("runstate: %v", e)
//
//	if curated.Has(f, FrameOverflow) {
//		fmt.Println("true")
//	}
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. A chain is made of parts separated by the
// sub-string ": ". So wrapping an error with a pattern that begins with the
// same part as the wrapped error:
//
//	curated.Errorf("project: %v", curated.Errorf("project: no such group (%d)", 3))
//
// produces the message:
//
//	project: no such group (3)
//
// and not:
//
//	project: project: no such group (3)
package curated
