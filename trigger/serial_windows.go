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

//go:build windows

package trigger

import (
	"fmt"
)

// Serial is a trigger port on a serial device.
type Serial struct{}

// OpenSerial is not supported on this platform.
func OpenSerial(dev string, baud int) (*Serial, error) {
	return nil, fmt.Errorf("serial ports are not supported on this platform")
}

func (s *Serial) String() string {
	return "serial"
}

// Send implements the Port interface.
func (s *Serial) Send(v byte) error {
	return nil
}

// Close implements the Port interface.
func (s *Serial) Close() error {
	return nil
}
