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

package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Checkergen"

// set by the linker for numbered releases.
var number string

// Version returns the version string and the vcs revision string. A version of
// "unreleased" means that the program was built from a vcs checkout without
// a version number. A version of "local" means there is no version number and
// no vcs information.
func Version() (string, string) {
	var vcs bool
	var revision string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	if number != "" {
		return number, revision
	}
	if vcs {
		return "unreleased", revision
	}
	return "local", revision
}
