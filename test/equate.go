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

import (
	"math"
	"reflect"
	"testing"
)

// the tolerance used when comparing floating point values.
const tolerance = 1e-9

// numeric returns the value as a float64 if it is of any integer or floating
// point kind.
func numeric(v any) (float64, bool) {
	r := reflect.ValueOf(v)
	switch r.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(r.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(r.Uint()), true
	case reflect.Float32, reflect.Float64:
		return r.Float(), true
	}
	return 0, false
}

// Equate tests a value against the expected value. Numeric values of
// different types can be compared so that an untyped constant can be used
// for the expected value without a conversion:
//
//	var b byte = codeForFrame()
//	test.Equate(t, b, 128)
//
// Floating point values are equal if they are within a small tolerance of
// each other. Infinite values must be exactly equal. Values that are not
// numeric must be of the same type.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	if value == nil || expectedValue == nil {
		if value != expectedValue {
			t.Errorf("equate failed: %v does not equal %v", value, expectedValue)
		}
		return
	}

	v, vok := numeric(value)
	ev, evok := numeric(expectedValue)
	if vok && evok {
		if math.IsInf(v, 0) || math.IsInf(ev, 0) || math.IsNaN(v) || math.IsNaN(ev) {
			if v != ev {
				t.Errorf("equate failed for %T: %v does not equal %v", value, value, expectedValue)
			}
		} else if math.Abs(v-ev) > tolerance {
			t.Errorf("equate failed for %T: %v does not equal %v", value, value, expectedValue)
		}
		return
	}

	if reflect.TypeOf(value) != reflect.TypeOf(expectedValue) {
		t.Fatalf("equate cannot compare %T with %T", value, expectedValue)
	}

	if !reflect.TypeOf(value).Comparable() {
		t.Fatalf("equate cannot compare values of type %T", value)
	}

	if value != expectedValue {
		t.Errorf("equate failed for %T: %v does not equal %v", value, value, expectedValue)
	}
}
