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

//go:build !windows

package trigger

import (
	"fmt"

	"github.com/pkg/term"
)

// Serial is a trigger port on a serial device.
type Serial struct {
	dev string
	t   *term.Term
}

// OpenSerial opens the serial device in raw mode at the baud rate.
func OpenSerial(dev string, baud int) (*Serial, error) {
	t, err := term.Open(dev, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, err
	}
	return &Serial{dev: dev, t: t}, nil
}

func (s *Serial) String() string {
	return fmt.Sprintf("serial (%s)", s.dev)
}

// Send implements the Port interface.
func (s *Serial) Send(v byte) error {
	_, err := s.t.Write([]byte{v})
	return err
}

// Close implements the Port interface.
func (s *Serial) Close() error {
	return s.t.Close()
}
