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

package project_test

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/group"
	"github.com/jetsetilly/checkergen/project"
	"github.com/jetsetilly/checkergen/shapes"
	"github.com/jetsetilly/checkergen/test"
)

func example(t *testing.T) *project.Project {
	t.Helper()

	p := project.New("example")

	g, err := group.NewGroup(1, math.Inf(1), 0)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.SetCross([]group.Step{{Time: 0.5, Show: false}}, nil))

	cb, err := shapes.NewCheckerBoard(shapes.Params{
		Dims:     [2]int{5, 5},
		InitUnit: [2]float64{30, 30},
		EndUnit:  [2]float64{50, 50},
		Position: [2]float64{400, 300},
		Anchor:   "bottomleft",
		Cols:     [2]color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		Freq:     7.5,
		Phase:    90,
	})
	test.DemandSuccess(t, err)
	g.AddShape(cb)
	p.AddGroup(g)

	g, err = group.NewGroup(0, 2, 0.5)
	test.DemandSuccess(t, err)
	p.AddGroup(g)

	return p
}

func TestDefaults(t *testing.T) {
	p := project.New("")
	test.ExpectEquality(t, p.Name(), project.DefaultName)
	test.Equate(t, p.FPS(), 60.0)
	test.ExpectEquality(t, p.Res(), image.Pt(800, 600))
	test.ExpectEquality(t, p.BG(), color.RGBA{R: 127, G: 127, B: 127, A: 255})
	test.Equate(t, p.CrossTimes()[0], math.Inf(1))
	test.ExpectedFailure(t, p.Dirty())
}

func TestSetters(t *testing.T) {
	p := project.New("test")

	test.ExpectedSuccess(t, curated.Is(p.SetFPS(0), project.InvalidSetting))
	test.ExpectedSuccess(t, curated.Is(p.SetFPS(math.Inf(1)), project.InvalidSetting))
	test.ExpectedSuccess(t, curated.Is(p.SetRes(0, 100), project.InvalidSetting))
	test.ExpectedSuccess(t, curated.Is(p.SetBlank(math.Inf(1), 0), project.InvalidSetting))
	test.ExpectedSuccess(t, curated.Is(p.SetCrossTimes(-1, 0), project.InvalidSetting))
	test.ExpectedFailure(t, p.Dirty())

	test.DemandSuccess(t, p.SetFPS(30))
	test.ExpectedSuccess(t, p.Dirty())
	test.Equate(t, p.FPS(), 30.0)

	_, err := p.Group(0)
	test.ExpectedSuccess(t, curated.Is(err, project.UnknownGroup))
}

func TestOrders(t *testing.T) {
	p := example(t)

	test.ExpectedSuccess(t, curated.Is(p.SetOrders([][]int{{0, 2}}), project.InvalidOrder))
	test.ExpectedSuccess(t, curated.Is(p.SetOrders([][]int{{}}), project.InvalidOrder))
	test.DemandSuccess(t, p.SetOrders([][]int{{1, 0}, {0, 1, 1}}))
	test.DemandEquality(t, len(p.Orders()), 2)

	p.GenerateOrders()
	test.DemandEquality(t, len(p.Orders()), 2)
	test.ExpectEquality(t, p.Orders()[0][0], 0)
	test.ExpectEquality(t, p.Orders()[1][0], 1)

	// removing a group discards the orders
	test.DemandSuccess(t, p.RemoveGroup(1))
	test.ExpectEquality(t, len(p.Orders()), 0)
}

func TestParseOrder(t *testing.T) {
	order, err := project.ParseOrder("2,0, 1 -1")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(order), 4)
	test.ExpectEquality(t, order[0], 2)
	test.ExpectEquality(t, order[3], project.WaitID)

	_, err = project.ParseOrder("")
	test.ExpectedSuccess(t, curated.Is(err, project.InvalidOrder))
	_, err = project.ParseOrder("0,a")
	test.ExpectedSuccess(t, curated.Is(err, project.InvalidOrder))
}

func TestCyclicPermutations(t *testing.T) {
	perms := project.CyclicPermutations(3)
	expected := [][]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
	test.DemandEquality(t, len(perms), 3)
	for i := range expected {
		for j := range expected[i] {
			test.ExpectEquality(t, perms[i][j], expected[i][j], i, j)
		}
	}

	// every id appears in every position exactly once
	perms = project.CyclicPermutations(7)
	for pos := 0; pos < 7; pos++ {
		seen := make(map[int]bool)
		for _, o := range perms {
			seen[o[pos]] = true
		}
		test.ExpectEquality(t, len(seen), 7, pos)
	}
}

func TestDuration(t *testing.T) {
	p := example(t)
	test.DemandSuccess(t, p.SetBlank(1, 2))
	test.Equate(t, p.Duration([]int{1}), 1+2.5+2)
	test.Equate(t, p.Duration([]int{0, 1}), math.Inf(1))
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	p := example(t)
	test.DemandSuccess(t, p.SetBlank(0.5, 0.25))
	p.GenerateOrders()

	pth := filepath.Join(dir, "saved")
	test.DemandSuccess(t, p.Save(pth))
	test.ExpectedFailure(t, p.Dirty())
	test.ExpectEquality(t, p.Name(), "saved")

	b, err := os.ReadFile(pth + project.Extension)
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, strings.Contains(string(b), `"disp": "Infinity"`))

	l, err := project.Load(pth + project.Extension)
	test.DemandSuccess(t, err)
	test.ExpectedFailure(t, l.Dirty())
	test.ExpectEquality(t, l.Name(), "saved")
	test.ExpectEquality(t, l.String(), p.String())

	pre, post := l.Blank()
	test.Equate(t, pre, 0.5)
	test.Equate(t, post, 0.25)

	test.DemandEquality(t, len(l.Groups()), 2)
	g, err := l.Group(0)
	test.DemandSuccess(t, err)
	_, disp, _ := g.Times()
	test.Equate(t, disp, math.Inf(1))
	preCross, _ := g.Cross()
	test.DemandEquality(t, len(preCross), 1)
	test.ExpectEquality(t, preCross[0], group.Step{Time: 0.5, Show: false})

	test.DemandEquality(t, len(g.Shapes()), 1)
	cb, ok := g.Shapes()[0].(*shapes.CheckerBoard)
	test.DemandEquality(t, ok, true)
	orig, _ := example(t).Groups()[0].Shapes()[0].(*shapes.CheckerBoard)
	test.ExpectEquality(t, cb.Params(), orig.Params())

	test.DemandEquality(t, len(l.Orders()), 2)
	test.ExpectEquality(t, l.Orders()[1][0], 1)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := project.Load(filepath.Join(dir, "missing.ckg"))
	test.ExpectedSuccess(t, curated.Is(err, project.LoadError))

	bad := filepath.Join(dir, "bad.ckg")
	test.DemandSuccess(t, os.WriteFile(bad, []byte(`{"groups": [{"disp": 1, "shapes": [{"dims": [0, 1], "anchor": "center"}]}]}`), 0o644))
	_, err = project.Load(bad)
	test.ExpectedSuccess(t, curated.Is(err, project.ShapeError))
	test.ExpectedSuccess(t, curated.Has(err, shapes.InvalidDims))

	bad = filepath.Join(dir, "colour.ckg")
	test.DemandSuccess(t, os.WriteFile(bad, []byte(`{"bg": [300, 0, 0]}`), 0o644))
	_, err = project.Load(bad)
	test.ExpectedSuccess(t, curated.Is(err, project.InvalidSetting))

	// missing values take their defaults
	partial := filepath.Join(dir, "partial.ckg")
	test.DemandSuccess(t, os.WriteFile(partial, []byte(`{"fps": 85}`), 0o644))
	p, err := project.Load(partial)
	test.DemandSuccess(t, err)
	test.Equate(t, p.FPS(), 85.0)
	test.ExpectEquality(t, p.Res(), project.DefaultRes)
}
