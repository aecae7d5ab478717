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

//go:build !linux

package trigger

import (
	"fmt"
)

// Parallel is a trigger port made from eight GPIO lines.
type Parallel struct{}

// OpenParallel is not supported on this platform.
func OpenParallel(chip string, offsets []int) (*Parallel, error) {
	if err := checkLines(offsets); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("GPIO lines are not supported on this platform")
}

func (p *Parallel) String() string {
	return "parallel"
}

// Send implements the Port interface.
func (p *Parallel) Send(v byte) error {
	return nil
}

// Close implements the Port interface.
func (p *Parallel) Close() error {
	return nil
}
