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

//go:build linux

package trigger

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Parallel is a trigger port made from eight GPIO lines. The code is presented
// on the lines with line 0 as the least significant bit.
type Parallel struct {
	chip  string
	lines *gpiocdev.Lines
}

// OpenParallel requests the lines on the GPIO chip as outputs.
func OpenParallel(chip string, offsets []int) (*Parallel, error) {
	if err := checkLines(offsets); err != nil {
		return nil, err
	}

	l, err := gpiocdev.RequestLines(chip, offsets,
		gpiocdev.AsOutput(bits(0)...),
		gpiocdev.WithConsumer("checkergen"))
	if err != nil {
		return nil, err
	}

	return &Parallel{chip: chip, lines: l}, nil
}

func (p *Parallel) String() string {
	return fmt.Sprintf("parallel (%s)", p.chip)
}

// Send implements the Port interface.
func (p *Parallel) Send(v byte) error {
	return p.lines.SetValues(bits(v))
}

// Close implements the Port interface. The lines are set to zero before they
// are released.
func (p *Parallel) Close() error {
	_ = p.lines.SetValues(bits(0))
	return p.lines.Close()
}
