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

package test_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jetsetilly/checkergen/test"
)

func TestExpectedSuccess(t *testing.T) {
	test.ExpectedSuccess(t, true)
	test.ExpectedSuccess(t, nil)

	var err error
	test.ExpectedSuccess(t, err)
}

func TestExpectedFailure(t *testing.T) {
	test.ExpectedFailure(t, false)
	test.ExpectedFailure(t, errors.New("test"))
}

func TestEquate(t *testing.T) {
	test.Equate(t, uint8(128), 128)
	test.Equate(t, 0.1+0.2, 0.3)
	test.Equate(t, math.Inf(1), math.Inf(1))
	test.Equate(t, "foo", "foo")
	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, 10, 11)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	_, _ = w.Write([]byte("display options:"))
	test.ExpectedSuccess(t, w.Compare("display options:"))
	w.Clear()
	test.ExpectedSuccess(t, w.Compare(""))
}
