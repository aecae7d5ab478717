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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage text of the flag package.
type helpWriter struct {
	buffer strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

// help writes the collected usage text with the list of sub-modes.
func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	lines := strings.Split(strings.TrimRight(hw.buffer.String(), "\n"), "\n")

	// the first line is the banner written by the flag package
	flags := lines[1:]

	if len(flags) == 0 && len(subModes) == 0 && additionalHelp == "" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, "Usage:")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", path)
	}

	for _, l := range flags {
		fmt.Fprintln(output, l)
	}

	if len(subModes) > 0 {
		if len(flags) > 0 {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  modes: %s (default %s)\n", strings.Join(subModes, ", "), subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintln(output)
		fmt.Fprintln(output, additionalHelp)
	}
}
