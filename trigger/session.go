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
	"fmt"
	"strings"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/logger"
)

// Sentinal error patterns.
const (
	SendError  = "trigger: send: %s: %v"
	CloseError = "trigger: close: %v"
)

// Port is an output for trigger codes.
type Port interface {
	fmt.Stringer
	Send(v byte) error
	Close() error
}

// Session sends trigger codes to all ports.
type Session struct {
	ports []Port

	// code of the previous frame
	prev int

	// the most recently sent code
	sent int
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(ports ...Port) *Session {
	return &Session{
		ports: ports,
		prev:  None,
		sent:  None,
	}
}

func (s *Session) String() string {
	if len(s.ports) == 0 {
		return "no ports"
	}
	n := make([]string, len(s.ports))
	for i := range s.ports {
		n[i] = s.ports[i].String()
	}
	return strings.Join(n, ", ")
}

// Frame is called once per frame with the code returned by Events.Code(). The
// code is sent if it is not None and if it is different to the code of the
// previous frame. Returns true if the code was sent.
//
// The code is considered sent even if there are no ports.
func (s *Session) Frame(code int) (bool, error) {
	prev := s.prev
	s.prev = code

	if code == None || code == prev {
		return false, nil
	}

	s.sent = code

	for _, p := range s.ports {
		if err := p.Send(byte(code)); err != nil {
			return true, curated.Errorf(SendError, p, err)
		}
	}

	return true, nil
}

// Last returns the most recently sent code. Returns None if no code has been
// sent.
func (s *Session) Last() int {
	return s.sent
}

// Close all ports. All ports are closed even if an error occurs. The first
// error is returned.
func (s *Session) Close() error {
	var first error
	for _, p := range s.ports {
		if err := p.Close(); err != nil {
			logger.Logf(logger.Allow, "trigger", "closing %s: %v", p, err)
			if first == nil {
				first = curated.Errorf(CloseError, err)
			}
		}
	}
	s.ports = nil
	return first
}
