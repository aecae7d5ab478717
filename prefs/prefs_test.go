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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/prefs"
	"github.com/jetsetilly/checkergen/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading tmp file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))
	test.ExpectedSuccess(t, dsk.Add("testB", &w))
	test.ExpectedSuccess(t, dsk.Add("testC", &x))

	test.ExpectedSuccess(t, v.Set(true))
	test.ExpectedSuccess(t, w.Set("foo"))
	test.ExpectedSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectedSuccess(t, dsk.Add("test", &v))
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestNumbers(t *testing.T) {
	var i prefs.Int
	test.ExpectedFailure(t, i.Set("ten"))
	test.ExpectedSuccess(t, i.Set("10"))
	test.Equate(t, i.Int(), 10)

	var f prefs.Float
	test.ExpectedSuccess(t, f.Set("59.94"))
	test.Equate(t, f.Float(), 59.94)
	test.Equate(t, f.String(), "59.94")

	i.SetDefault(3)
	test.ExpectedSuccess(t, i.Set(5))
	test.ExpectedSuccess(t, i.Reset())
	test.Equate(t, i.Int(), 3)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	v.SetDefault(1)
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 1 {
			return fmt.Errorf("too small")
		}
		return nil
	})

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectedFailure(t, v.Set(0))
	test.Equate(t, v.Int(), 1)
	test.ExpectedSuccess(t, v.Set(4))
	test.Equate(t, post, 4)
}

// values saved from one Disk instance must survive a save from another
// instance using the same file.
func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("a.flag", &v))
	test.ExpectedSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectedSuccess(t, dsk.Add("b.name", &s))
	test.ExpectedSuccess(t, s.Set("session 1"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "a.flag :: true\nb.name :: session 1\n")

	// and load
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var w prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("a.flag", &w))
	test.DemandSuccess(t, dsk.Load(false))
	test.Equate(t, w.Bool(), true)
}

func TestLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	v.SetDefault(7)
	test.ExpectedSuccess(t, dsk.Add("repeats", &v))
	test.DemandSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "repeats :: 7\n")
}
