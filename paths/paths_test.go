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

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/checkergen/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 9, 8, 7, 0, time.UTC)
	test.Equate(t, uniqueFilename("log", "flicker", n), "log_flicker_20240305_090807")
	test.Equate(t, uniqueFilename("log", " ", n), "log_20240305_090807")
}

func TestResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(localResourcePath, 0o700))

	pth, err := ResourcePath("options", "flicker")
	test.DemandSuccess(t, err)
	test.Equate(t, pth, filepath.Join(localResourcePath, "options", "flicker"))

	_, err = os.Stat(filepath.Join(localResourcePath, "options"))
	test.ExpectedSuccess(t, err)

	pth, err = ResourcePath("", "")
	test.DemandSuccess(t, err)
	test.Equate(t, pth, localResourcePath)
}
