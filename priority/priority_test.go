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

package priority_test

import (
	"testing"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/priority"
	"github.com/jetsetilly/checkergen/test"
)

func TestParseLevel(t *testing.T) {
	l, err := priority.ParseLevel("high")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, l, priority.High)

	l, err = priority.ParseLevel("3")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, l, priority.Realtime)

	_, err = priority.ParseLevel("4")
	test.ExpectedSuccess(t, curated.Is(err, priority.UnknownLevel))

	test.Equate(t, priority.Low.String(), "low")
}

func TestNormal(t *testing.T) {
	// normal priority can always be set and reset never fails
	test.ExpectedSuccess(t, priority.Set(priority.Normal))
	priority.Reset()
}
