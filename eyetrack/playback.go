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

package eyetrack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/checkergen/curated"
)

// Playback is a tracker that replays recorded samples, one sample per frame.
// Once the samples are exhausted the eye is reported as untracked.
type Playback struct {
	name    string
	samples []Sample
	idx     int
	running bool
}

// NewPlayback creates a Playback tracker from a list of samples.
func NewPlayback(name string, samples []Sample) *Playback {
	return &Playback{
		name:    name,
		samples: samples,
	}
}

// LoadPlayback reads samples from a file.
func LoadPlayback(filename string) (*Playback, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := ReadSamples(f)
	if err != nil {
		return nil, err
	}

	return NewPlayback(filename, samples), nil
}

// ReadSamples parses one sample per line. Each line is either the word
// "untracked" or two numbers separated by white space giving the position in
// millimetres. Blank lines and lines beginning with '#' are ignored.
func ReadSamples(r io.Reader) ([]Sample, error) {
	var samples []Sample

	scanner := bufio.NewScanner(r)
	var ln int
	for scanner.Scan() {
		ln++
		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}

		if strings.EqualFold(l, "untracked") {
			samples = append(samples, Sample{})
			continue
		}

		f := strings.Fields(l)
		if len(f) != 2 {
			return nil, fmt.Errorf("line %d: expected two values", ln)
		}
		x, err := strconv.ParseFloat(f[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", ln, err)
		}
		y, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", ln, err)
		}
		samples = append(samples, Sample{Tracked: true, X: x, Y: y})
	}

	return samples, scanner.Err()
}

func (p *Playback) String() string {
	return fmt.Sprintf("playback (%s)", p.name)
}

// Calibrated implements the Tracker interface.
func (p *Playback) Calibrated() bool {
	return true
}

// Start implements the Tracker interface. Playback continues from where it
// was stopped.
func (p *Playback) Start() error {
	p.running = true
	return nil
}

// Stop implements the Tracker interface.
func (p *Playback) Stop() error {
	p.running = false
	return nil
}

// Latest implements the Tracker interface.
func (p *Playback) Latest() (Sample, error) {
	if !p.running {
		return Sample{}, curated.Errorf(SampleError, "tracker not started")
	}
	if p.idx >= len(p.samples) {
		return Sample{}, nil
	}
	s := p.samples[p.idx]
	p.idx++
	return s, nil
}
