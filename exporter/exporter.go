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

// Package exporter writes every frame of a run to an image file. The exporter
// implements the runstate.Output interface and so frames are composited
// exactly as they would be for display.
//
// Filenames are the project name followed by the zero padded frame number.
// The padding is wide enough for the final frame so that the files sort in
// frame order.
package exporter

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/logger"
)

// MaxExportFrames is the number of frames that can be exported without
// forcing.
const MaxExportFrames = 100000

// Sentinal error patterns.
const (
	FrameOverflow  = "export: very large number (%d) of frames to be exported"
	InfiniteExport = "export: cannot export an infinite number of frames"
	NotADirectory  = "export: export path is not a directory (%s)"
	WriteError     = "export: frame %d: %v"
)

// Frames returns the number of frames to export. The duration is in seconds
// and may be infinite. The total is the number of frames in the run and is
// negative if the run never ends. The export is limited to the shorter of the
// two but both cannot be unlimited.
func Frames(duration float64, fps float64, total int) (int, error) {
	if math.IsNaN(duration) {
		return 0, curated.Errorf(InfiniteExport)
	}
	duration = math.Max(duration, 0)

	if math.IsInf(duration, 1) {
		if total < 0 {
			return 0, curated.Errorf(InfiniteExport)
		}
		return total, nil
	}

	n := int(math.Round(duration * fps))
	if total >= 0 && total < n {
		return total, nil
	}
	return n, nil
}

// Params for a new Exporter.
type Params struct {
	// the directory to export to. the directory must exist
	Dir string

	// the project name, used as the prefix of every filename
	Name string

	// the number of frames to export
	Frames int

	// export to a sub-directory of Dir named after the project
	Folder bool

	// allow more than MaxExportFrames to be exported
	Force bool
}

// Exporter writes frames to PNG files.
type Exporter struct {
	dir    string
	name   string
	frames int
	width  int

	// the encoding of the most recent frame. reused when a frame has not
	// changed
	last []byte

	written int
}

// digits returns the number of decimal digits in n.
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// NewExporter is the preferred method of initialisation for the Exporter type.
func NewExporter(p Params) (*Exporter, error) {
	if p.Frames > MaxExportFrames && !p.Force {
		return nil, curated.Errorf(FrameOverflow, p.Frames)
	}

	fi, err := os.Stat(p.Dir)
	if err != nil || !fi.IsDir() {
		return nil, curated.Errorf(NotADirectory, p.Dir)
	}

	dir := p.Dir
	if p.Folder {
		dir = filepath.Join(dir, p.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, curated.Errorf(WriteError, 0, err)
		}
	}

	n := p.Frames - 1
	if n < 0 {
		n = 0
	}

	return &Exporter{
		dir:    dir,
		name:   p.Name,
		frames: p.Frames,
		width:  digits(n),
	}, nil
}

// Filename returns the path of the file for the frame.
func (ex *Exporter) Filename(frame int) string {
	return filepath.Join(ex.dir, fmt.Sprintf("%s%0*d.png", ex.name, ex.width, frame))
}

// Dir returns the directory the files are written to.
func (ex *Exporter) Dir() string {
	return ex.dir
}

// Frames returns the number of frames to be exported.
func (ex *Exporter) Frames() int {
	return ex.frames
}

// Present implements the runstate.Output interface.
func (ex *Exporter) Present(frame int, img *image.RGBA, changed bool) error {
	if frame >= ex.frames {
		return nil
	}

	if changed || ex.last == nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return curated.Errorf(WriteError, frame, err)
		}
		ex.last = buf.Bytes()
	}

	if err := os.WriteFile(ex.Filename(frame), ex.last, 0o644); err != nil {
		return curated.Errorf(WriteError, frame, err)
	}
	ex.written++

	return nil
}

// Service implements the runstate.Output interface. The run is ended once the
// final frame has been written.
func (ex *Exporter) Service() (bool, bool) {
	return ex.written >= ex.frames, false
}

// Realtime implements the runstate.Output interface.
func (ex *Exporter) Realtime() bool {
	return false
}

// VSync implements the runstate.Output interface.
func (ex *Exporter) VSync() bool {
	return false
}

// Close implements the runstate.Output interface.
func (ex *Exporter) Close() error {
	logger.Logf(logger.Allow, "export", "%d frames written to %s", ex.written, ex.dir)
	return nil
}
