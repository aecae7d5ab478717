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

import "testing"

// DemandEquality is the same as ExpectEquality() except that the test is
// stopped immediately on failure. Use it when later steps of the test depend
// on the value, such as the length of a slice that is about to be indexed.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sdemanded %v but got %v (%T)", id(tags...), expectedValue, v, v)
	}
}

// DemandSuccess is the same as ExpectedSuccess() except that the test is
// stopped immediately on failure.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v) {
		t.Fatalf("%sdemanded success but got %v (%T)", id(tags...), v, v)
	}
}

// DemandFailure is the same as ExpectedFailure() except that the test is
// stopped immediately on success.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v) {
		t.Fatalf("%sdemanded failure (%T)", id(tags...), v)
	}
}
