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

// Package wavwriter writes the triggers of an exported run as an audio track.
// The track can be loaded alongside the exported frames in a video editor so
// that the timing of every trigger can be checked against the image.
//
// Each sample is the most recently sent trigger code. The level is held
// between triggers in the same way that a trigger port is never driven back
// to zero.
package wavwriter

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/logger"
	"github.com/jetsetilly/checkergen/trigger"
)

// SampleRate of the trigger track.
const SampleRate = 44100

// BitDepth of each sample.
const BitDepth = 16

// the trigger code is shifted into the upper bits of each sample. the largest
// code still fits in a signed 16 bit sample.
const levelShift = 7

// Sentinal error patterns.
const (
	WavError = "wavwriter: %v"
)

// Samples converts per-frame trigger codes into samples. Frames with a code of
// trigger.None hold the previous level.
func Samples(codes []int, fps float64) []int {
	var data []int
	var level int

	var start int
	for f, c := range codes {
		if c != trigger.None {
			level = c << levelShift
		}

		// the number of samples in each frame varies so that the track does
		// not drift from the frames
		end := int(math.Round(float64(f+1) * SampleRate / fps))
		for i := start; i < end; i++ {
			data = append(data, level)
		}
		start = end
	}

	return data
}

// Write the trigger codes to the named file.
func Write(filename string, codes []int, fps float64) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(WavError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WavError, err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, BitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           Samples(codes, fps),
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavError, err)
	}

	logger.Logf(logger.Allow, "wavwriter", "trigger track written to %s (%d samples)", filename, len(buf.Data))

	return nil
}
