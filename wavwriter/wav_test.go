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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/checkergen/test"
	"github.com/jetsetilly/checkergen/trigger"
	"github.com/jetsetilly/checkergen/wavwriter"
)

func TestSamples(t *testing.T) {
	codes := []int{trigger.None, 128, trigger.None, 100}
	data := wavwriter.Samples(codes, 30)

	// 44100 samples per second at 30 frames per second
	test.DemandEquality(t, len(data), 4*1470)
	test.Equate(t, data[0], 0)
	test.Equate(t, data[1469], 0)
	test.Equate(t, data[1470], 128<<7)
	test.Equate(t, data[2*1470], 128<<7)
	test.Equate(t, data[3*1470], 100<<7)

	// the sample count per frame varies with the frame rate but the total
	// never drifts
	data = wavwriter.Samples(make([]int, 144), 144)
	test.Equate(t, len(data), wavwriter.SampleRate)
}

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "track.wav")
	test.DemandSuccess(t, wavwriter.Write(fn, []int{127, trigger.None, 1}, 60))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectedSuccess(t, dec.IsValidFile())
	test.Equate(t, int(dec.SampleRate), wavwriter.SampleRate)
	test.Equate(t, int(dec.BitDepth), wavwriter.BitDepth)
	test.Equate(t, int(dec.NumChans), 1)
}
