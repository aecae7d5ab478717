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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated errors keep the pattern they were created with so that they can be
// identified by Is() and Has().
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a curated error. The pattern is formatted with the values in
// the same way as fmt.Errorf() but the pattern itself is kept for later
// comparison.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// separator between the parts of an error chain.
const separator = ": "

// Error implements the error interface. Adjacent parts of the message that
// are identical are reduced to one.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), separator)

	msg := parts[:1]
	for _, p := range parts[1:] {
		if p != msg[len(msg)-1] {
			msg = append(msg, p)
		}
	}

	return strings.Join(msg, separator)
}

// wrapped returns the values that are errors.
func (er curated) wrapped() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// Unwrap returns the first value that is an error, or nil if there is no such
// value. Curated errors can therefore be used with errors.Is() and
// errors.As().
func (er curated) Unwrap() error {
	if w := er.wrapped(); len(w) > 0 {
		return w[0]
	}
	return nil
}

// IsAny returns true if the error is, or wraps, a curated error.
func IsAny(err error) bool {
	var er curated
	return err != nil && errors.As(err, &er)
}

// Is returns true if the error is a curated error created with the pattern.
// Wrapped errors are not considered.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if the error, or any curated error wrapped by it, was
// created with the pattern.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, e := range er.wrapped() {
		if Has(e, pattern) {
			return true
		}
	}
	return false
}
