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
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/group"
	"github.com/jetsetilly/checkergen/logger"
	"github.com/jetsetilly/checkergen/shapes"
)

// Extension of project files.
const Extension = ".ckg"

// Sentinal error patterns.
const (
	LoadError  = "project: load: %v"
	SaveError  = "project: save: %v"
	GroupError = "project: group %d: %v"
	ShapeError = "project: group %d: shape %d: %v"
)

// Seconds is a duration that is written as "Infinity" when it is infinite.
type Seconds float64

// MarshalJSON implements the json.Marshaler interface.
func (s Seconds) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(s), 1) {
		return []byte(`"Infinity"`), nil
	}
	return json.Marshal(float64(s))
}

// UnmarshalJSON implements the json.Unmarshaler interface. Numbers and numeric
// strings are accepted in addition to "Infinity".
func (s *Seconds) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*s = Seconds(v)
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("duration must be a number or \"Infinity\" (%s)", b)
	}

	switch strings.ToLower(strings.TrimSpace(str)) {
	case "infinity", "inf":
		*s = Seconds(math.Inf(1))
		return nil
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("duration must be a number or \"Infinity\" (%s)", str)
	}
	*s = Seconds(v)
	return nil
}

// RGB is a colour as three integers in the range 0 to 255.
type RGB [3]int

// Colour converts the value to a color.RGBA.
func (c RGB) Colour() (color.RGBA, error) {
	for _, v := range c {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("colour component out of range (%v)", c)
		}
	}
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}, nil
}

func rgb(col color.RGBA) RGB {
	return RGB{int(col.R), int(col.G), int(col.B)}
}

type stepFile struct {
	Time float64 `json:"time"`
	Show bool    `json:"show"`
}

type boardFile struct {
	Dims     [2]int     `json:"dims"`
	InitUnit [2]float64 `json:"init_unit"`
	EndUnit  [2]float64 `json:"end_unit"`
	Position [2]float64 `json:"position"`
	Anchor   string     `json:"anchor"`
	Cols     [2]RGB     `json:"cols"`
	Freq     float64    `json:"freq"`
	Phase    float64    `json:"phase"`
}

type groupFile struct {
	Pre       Seconds     `json:"pre"`
	Disp      Seconds     `json:"disp"`
	Post      Seconds     `json:"post"`
	PreCross  []stepFile  `json:"pre_cross,omitempty"`
	PostCross []stepFile  `json:"post_cross,omitempty"`
	Shapes    []boardFile `json:"shapes"`
}

type projectFile struct {
	FPS        float64     `json:"fps"`
	Res        [2]int      `json:"res"`
	BG         RGB         `json:"bg"`
	Pre        Seconds     `json:"pre"`
	Post       Seconds     `json:"post"`
	CrossCols  [3]RGB      `json:"cross_cols"`
	CrossTimes [2]Seconds  `json:"cross_times"`
	Groups     []groupFile `json:"groups"`
	Orders     [][]int     `json:"orders,omitempty"`
}

// defaultFile returns the file for a new project. values missing from a
// loaded file keep these values.
func defaultFile() projectFile {
	p := New("")
	return p.file()
}

func (p *Project) file() projectFile {
	f := projectFile{
		FPS:        p.fps,
		Res:        [2]int{p.res.X, p.res.Y},
		BG:         rgb(p.bg),
		Pre:        Seconds(p.pre),
		Post:       Seconds(p.post),
		CrossTimes: [2]Seconds{Seconds(p.crossTimes[0]), Seconds(p.crossTimes[1])},
		Orders:     p.orders,
	}

	for i, c := range p.crossCols {
		f.CrossCols[i] = rgb(c)
	}

	for _, g := range p.groups {
		pre, disp, post := g.Times()
		gf := groupFile{
			Pre:    Seconds(pre),
			Disp:   Seconds(disp),
			Post:   Seconds(post),
			Shapes: []boardFile{},
		}

		preCross, postCross := g.Cross()
		for _, s := range preCross {
			gf.PreCross = append(gf.PreCross, stepFile{Time: s.Time, Show: s.Show})
		}
		for _, s := range postCross {
			gf.PostCross = append(gf.PostCross, stepFile{Time: s.Time, Show: s.Show})
		}

		for _, s := range g.Shapes() {
			cb, ok := s.(*shapes.CheckerBoard)
			if !ok {
				logger.Logf(logger.Allow, "project", "cannot save shape of kind %s", s.Kind())
				continue
			}
			bp := cb.Params()
			gf.Shapes = append(gf.Shapes, boardFile{
				Dims:     bp.Dims,
				InitUnit: bp.InitUnit,
				EndUnit:  bp.EndUnit,
				Position: bp.Position,
				Anchor:   bp.Anchor,
				Cols:     [2]RGB{rgb(bp.Cols[0]), rgb(bp.Cols[1])},
				Freq:     bp.Freq,
				Phase:    bp.Phase,
			})
		}

		f.Groups = append(f.Groups, gf)
	}

	return f
}

func steps(sf []stepFile) []group.Step {
	s := make([]group.Step, len(sf))
	for i := range sf {
		s[i] = group.Step{Time: sf[i].Time, Show: sf[i].Show}
	}
	return s
}

// apply the file to the project. all values are validated by the setters.
func (p *Project) apply(f projectFile) error {
	if err := p.SetFPS(f.FPS); err != nil {
		return err
	}
	if err := p.SetRes(f.Res[0], f.Res[1]); err != nil {
		return err
	}

	bg, err := f.BG.Colour()
	if err != nil {
		return curated.Errorf(InvalidSetting, "bg", err)
	}
	p.SetBG(bg)

	if err := p.SetBlank(float64(f.Pre), float64(f.Post)); err != nil {
		return err
	}

	var cols [3]color.RGBA
	for i := range f.CrossCols {
		cols[i], err = f.CrossCols[i].Colour()
		if err != nil {
			return curated.Errorf(InvalidSetting, "cross_cols", err)
		}
	}
	p.SetCrossCols(cols)

	if err := p.SetCrossTimes(float64(f.CrossTimes[0]), float64(f.CrossTimes[1])); err != nil {
		return err
	}

	for gi, gf := range f.Groups {
		g, err := group.NewGroup(float64(gf.Pre), float64(gf.Disp), float64(gf.Post))
		if err != nil {
			return curated.Errorf(GroupError, gi, err)
		}
		if err := g.SetCross(steps(gf.PreCross), steps(gf.PostCross)); err != nil {
			return curated.Errorf(GroupError, gi, err)
		}

		for si, bf := range gf.Shapes {
			var cols [2]color.RGBA
			for i := range bf.Cols {
				cols[i], err = bf.Cols[i].Colour()
				if err != nil {
					return curated.Errorf(ShapeError, gi, si, err)
				}
			}
			cb, err := shapes.NewCheckerBoard(shapes.Params{
				Dims:     bf.Dims,
				InitUnit: bf.InitUnit,
				EndUnit:  bf.EndUnit,
				Position: bf.Position,
				Anchor:   bf.Anchor,
				Cols:     cols,
				Freq:     bf.Freq,
				Phase:    bf.Phase,
			})
			if err != nil {
				return curated.Errorf(ShapeError, gi, si, err)
			}
			g.AddShape(cb)
		}

		p.AddGroup(g)
	}

	return p.SetOrders(f.Orders)
}

// NameFromPath returns the project name for the file. The name of a project is
// always its filename without the extension.
func NameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Load the project from the file.
func Load(path string) (*Project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	f := defaultFile()
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	p := New(NameFromPath(path))
	if err := p.apply(f); err != nil {
		return nil, err
	}
	p.dirty = false

	logger.Logf(logger.Allow, "project", "loaded %s", p)

	return p, nil
}

// Save the project to the file. The name of the project changes to match the
// filename.
func (p *Project) Save(path string) error {
	if filepath.Ext(path) == "" {
		path = path + Extension
	}

	b, err := json.MarshalIndent(p.file(), "", "\t")
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return curated.Errorf(SaveError, err)
	}

	p.name = NameFromPath(path)
	p.dirty = false

	logger.Logf(logger.Allow, "project", "saved %s", path)

	return nil
}
