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

package trigger

import (
	"testing"

	"github.com/jetsetilly/checkergen/test"
)

func TestBits(t *testing.T) {
	b := bits(0x81)
	test.DemandEquality(t, len(b), ParallelWidth)
	test.Equate(t, b[0], 1)
	test.Equate(t, b[1], 0)
	test.Equate(t, b[7], 1)
}
