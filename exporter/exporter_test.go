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

package exporter_test

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/exporter"
	"github.com/jetsetilly/checkergen/test"
)

func TestFrames(t *testing.T) {
	n, err := exporter.Frames(math.Inf(1), 30, 90)
	test.DemandSuccess(t, err)
	test.Equate(t, n, 90)

	n, err = exporter.Frames(1, 30, 90)
	test.DemandSuccess(t, err)
	test.Equate(t, n, 30)

	// the run is shorter than the duration
	n, err = exporter.Frames(10, 30, 45)
	test.DemandSuccess(t, err)
	test.Equate(t, n, 45)

	n, err = exporter.Frames(2, 60, -1)
	test.DemandSuccess(t, err)
	test.Equate(t, n, 120)

	_, err = exporter.Frames(math.Inf(1), 60, -1)
	test.ExpectedSuccess(t, curated.Is(err, exporter.InfiniteExport))
}

func TestFilenames(t *testing.T) {
	dir := t.TempDir()

	widths := map[int]string{
		0:    "proj0.png",
		1:    "proj0.png",
		10:   "proj0.png",
		11:   "proj00.png",
		90:   "proj00.png",
		100:  "proj00.png",
		101:  "proj000.png",
		1000: "proj000.png",
	}

	for frames, first := range widths {
		ex, err := exporter.NewExporter(exporter.Params{Dir: dir, Name: "proj", Frames: frames})
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, ex.Filename(0), filepath.Join(dir, first), frames)
	}

	ex, err := exporter.NewExporter(exporter.Params{Dir: dir, Name: "proj", Frames: 90})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ex.Filename(89), filepath.Join(dir, "proj89.png"))
}

func TestPreconditions(t *testing.T) {
	dir := t.TempDir()

	_, err := exporter.NewExporter(exporter.Params{Dir: dir, Name: "proj", Frames: exporter.MaxExportFrames + 1})
	test.ExpectedSuccess(t, curated.Is(err, exporter.FrameOverflow))

	_, err = exporter.NewExporter(exporter.Params{Dir: dir, Name: "proj", Frames: exporter.MaxExportFrames + 1, Force: true})
	test.ExpectedSuccess(t, err)

	_, err = exporter.NewExporter(exporter.Params{Dir: filepath.Join(dir, "missing"), Name: "proj", Frames: 1})
	test.ExpectedSuccess(t, curated.Is(err, exporter.NotADirectory))

	// the folder option creates a directory named after the project
	ex, err := exporter.NewExporter(exporter.Params{Dir: dir, Name: "proj", Frames: 1, Folder: true})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ex.Filename(0), filepath.Join(dir, "proj", "proj0.png"))
	fi, err := os.Stat(filepath.Join(dir, "proj"))
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, fi.IsDir())
}

func TestPresent(t *testing.T) {
	dir := t.TempDir()
	ex, err := exporter.NewExporter(exporter.Params{Dir: dir, Name: "img", Frames: 3})
	test.DemandSuccess(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(1, 2, color.RGBA{R: 255, A: 255})

	test.DemandSuccess(t, ex.Present(0, img, true))
	closed, key := ex.Service()
	test.ExpectedFailure(t, closed)
	test.ExpectedFailure(t, key)

	// an unchanged frame is written from the previous encoding
	test.DemandSuccess(t, ex.Present(1, img, false))
	test.DemandSuccess(t, ex.Present(2, img, false))
	closed, _ = ex.Service()
	test.ExpectedSuccess(t, closed)

	a, err := os.ReadFile(ex.Filename(0))
	test.DemandSuccess(t, err)
	b, err := os.ReadFile(ex.Filename(2))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(a), string(b))

	f, err := os.Open(ex.Filename(1))
	test.DemandSuccess(t, err)
	defer f.Close()
	dec, err := png.Decode(f)
	test.DemandSuccess(t, err)
	r, g, _, _ := dec.At(1, 2).RGBA()
	test.Equate(t, int(r>>8), 255)
	test.Equate(t, int(g>>8), 0)

	test.DemandSuccess(t, ex.Close())
}
