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

package modalflag_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/checkergen/modalflag"
	"github.com/jetsetilly/checkergen/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-verbose", "a.ckg", "b.ckg"})
	verbose := md.AddBool("verbose", false, "more output")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectedSuccess(t, *verbose)
	test.ExpectEquality(t, fmt.Sprint(md.RemainingArgs()), "[a.ckg b.ckg]")
	test.ExpectEquality(t, md.GetArg(1), "b.ckg")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-statsview", "export", "-dir", "out", "a.ckg"})
	md.NewMode()
	md.AddSubModes("DISPLAY", "EXPORT", "ORDERS")
	statsview := md.AddBool("statsview", false, "")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "EXPORT")
	test.ExpectedSuccess(t, *statsview)

	md.NewMode()
	dir := md.AddString("dir", ".", "")
	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *dir, "out")
	test.ExpectEquality(t, fmt.Sprint(md.RemainingArgs()), "[a.ckg]")
	test.ExpectEquality(t, md.Path(), "EXPORT")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"a.ckg"})
	md.NewMode()
	md.AddSubModes("display", "export")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DISPLAY")
	test.ExpectEquality(t, md.GetArg(0), "a.ckg")
}

func TestOptions(t *testing.T) {
	opts := map[string]string{}
	set := func(key string) func(string) error {
		return func(s string) error {
			if s == "bad" {
				return fmt.Errorf("bad value")
			}
			opts[key] = s
			return nil
		}
	}

	md := modalflag.Modes{}
	md.NewArgs([]string{"-waitless", "-repeats", "3", "a.ckg"})
	md.AddOption("waitless", "false", true, "", set("waitless"))
	md.AddOption("repeats", "1", false, "", set("repeats"))

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, opts["waitless"], "true")
	test.ExpectEquality(t, opts["repeats"], "3")

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquality(t, fmt.Sprint(visited), "[repeats waitless]")

	md.NewArgs([]string{"-repeats", "bad"})
	md.AddOption("repeats", "1", false, "", set("repeats"))
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectedFailure(t, err)
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectedSuccess(t, tw.Compare("No help available\n"))

	tw.Clear()
	md.NewArgs([]string{"-help"})
	md.AddSubModes("display", "export")
	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectedSuccess(t, tw.Compare("Usage:\n  modes: DISPLAY, EXPORT (default DISPLAY)\n"))
}
