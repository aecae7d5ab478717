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

package project

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/eyetrack"
	"github.com/jetsetilly/checkergen/group"
	"github.com/jetsetilly/checkergen/runstate"
)

// Sentinal error patterns.
const (
	InvalidSetting = "project: invalid %s: %v"
	UnknownGroup   = "project: no group with id %d"
	InvalidOrder   = "project: invalid order: %v"
)

// Default values for a new project.
const (
	DefaultName = "untitled"
	DefaultFPS  = 60.0
)

// DefaultRes is the default resolution of a new project.
var DefaultRes = image.Pt(800, 600)

// DefaultBG is the default background colour of a new project.
var DefaultBG = color.RGBA{R: 127, G: 127, B: 127, A: 255}

// DefaultCrossCols are the default colours of the fixation cross.
var DefaultCrossCols = [3]color.RGBA{
	{A: 255},
	{R: 255, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// DefaultCrossTimes are the default durations of the alternating cross colours.
var DefaultCrossTimes = [2]float64{math.Inf(1), 1}

// Project is a checkergen project.
type Project struct {
	name string

	fps float64
	res image.Point
	bg  color.RGBA

	// blank periods before the first and after the last group
	pre  float64
	post float64

	crossCols  [3]color.RGBA
	crossTimes [2]float64

	groups []*group.Group
	orders [][]int

	dirty bool
}

// New is the preferred method of initialisation for the Project type.
func New(name string) *Project {
	if name == "" {
		name = DefaultName
	}
	return &Project{
		name:       name,
		fps:        DefaultFPS,
		res:        DefaultRes,
		bg:         DefaultBG,
		crossCols:  DefaultCrossCols,
		crossTimes: DefaultCrossTimes,
	}
}

func (p *Project) String() string {
	return fmt.Sprintf("%s: %gfps %dx%d, %d groups, %d orders", p.name, p.fps, p.res.X, p.res.Y, len(p.groups), len(p.orders))
}

// Name of the project.
func (p *Project) Name() string {
	return p.name
}

// Dirty returns true if the project has changed since it was loaded or saved.
func (p *Project) Dirty() bool {
	return p.dirty
}

// MarkDirty should be called after a group returned by Group() or Groups() has
// been changed.
func (p *Project) MarkDirty() {
	p.dirty = true
}

// SetFPS sets the frame rate. The frame rate must be positive and finite.
func (p *Project) SetFPS(fps float64) error {
	if fps <= 0 || math.IsInf(fps, 0) || math.IsNaN(fps) {
		return curated.Errorf(InvalidSetting, "fps", fps)
	}
	p.fps = fps
	p.dirty = true
	return nil
}

// FPS returns the frame rate.
func (p *Project) FPS() float64 {
	return p.fps
}

// SetRes sets the resolution.
func (p *Project) SetRes(w int, h int) error {
	if w <= 0 || h <= 0 {
		return curated.Errorf(InvalidSetting, "resolution", fmt.Sprintf("%dx%d", w, h))
	}
	p.res = image.Pt(w, h)
	p.dirty = true
	return nil
}

// Res returns the resolution.
func (p *Project) Res() image.Point {
	return p.res
}

// SetBG sets the background colour.
func (p *Project) SetBG(col color.RGBA) {
	col.A = 255
	p.bg = col
	p.dirty = true
}

// BG returns the background colour.
func (p *Project) BG() color.RGBA {
	return p.bg
}

// SetBlank sets the blank periods shown before the first group and after the
// last group. Neither may be infinite.
func (p *Project) SetBlank(pre float64, post float64) error {
	for _, t := range []float64{pre, post} {
		if t < 0 || math.IsInf(t, 0) || math.IsNaN(t) {
			return curated.Errorf(InvalidSetting, "blank period", t)
		}
	}
	p.pre = pre
	p.post = post
	p.dirty = true
	return nil
}

// Blank returns the blank periods.
func (p *Project) Blank() (float64, float64) {
	return p.pre, p.post
}

// SetCrossCols sets the colours of the fixation cross.
func (p *Project) SetCrossCols(cols [3]color.RGBA) {
	for i := range cols {
		cols[i].A = 255
	}
	p.crossCols = cols
	p.dirty = true
}

// CrossCols returns the colours of the fixation cross.
func (p *Project) CrossCols() [3]color.RGBA {
	return p.crossCols
}

// SetCrossTimes sets the durations of the alternating cross colours. Either
// may be infinite.
func (p *Project) SetCrossTimes(a float64, b float64) error {
	for _, t := range []float64{a, b} {
		if t < 0 || math.IsNaN(t) {
			return curated.Errorf(InvalidSetting, "cross time", t)
		}
	}
	p.crossTimes = [2]float64{a, b}
	p.dirty = true
	return nil
}

// CrossTimes returns the durations of the alternating cross colours.
func (p *Project) CrossTimes() [2]float64 {
	return p.crossTimes
}

// AddGroup adds the group to the end of the project. Returns the id of the
// group.
func (p *Project) AddGroup(g *group.Group) int {
	p.groups = append(p.groups, g)
	p.dirty = true
	return len(p.groups) - 1
}

// RemoveGroup removes the group with the id. Orders are discarded because they
// no longer refer to the correct groups.
func (p *Project) RemoveGroup(id int) error {
	if id < 0 || id >= len(p.groups) {
		return curated.Errorf(UnknownGroup, id)
	}
	p.groups = append(p.groups[:id], p.groups[id+1:]...)
	p.orders = nil
	p.dirty = true
	return nil
}

// Group returns the group with the id.
func (p *Project) Group(id int) (*group.Group, error) {
	if id < 0 || id >= len(p.groups) {
		return nil, curated.Errorf(UnknownGroup, id)
	}
	return p.groups[id], nil
}

// Groups returns every group in the project.
func (p *Project) Groups() []*group.Group {
	return p.groups
}

// Settings returns the run settings for the project.
func (p *Project) Settings() runstate.Settings {
	return runstate.Settings{
		Name:       p.name,
		FPS:        p.fps,
		Res:        p.res,
		BG:         p.bg,
		CrossCols:  p.crossCols,
		CrossTimes: p.crossTimes,
		Gate:       eyetrack.DefaultGate(),
	}
}

// Duration returns the duration in seconds of the groups in the order,
// including the blank periods of the project.
func (p *Project) Duration(order []int) float64 {
	d := p.pre + p.post
	for _, id := range order {
		if id >= 0 && id < len(p.groups) {
			d += p.groups[id].Duration()
		}
	}
	return d
}
