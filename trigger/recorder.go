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

// Recorder is an implementation of the Port interface that remembers every
// code sent to it.
type Recorder struct {
	Codes  []byte
	closed bool
}

func (r *Recorder) String() string {
	return "recorder"
}

// Send implements the Port interface.
func (r *Recorder) Send(v byte) error {
	r.Codes = append(r.Codes, v)
	return nil
}

// Close implements the Port interface.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Closed returns true if Close() has been called.
func (r *Recorder) Closed() bool {
	return r.closed
}
