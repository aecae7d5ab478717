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
)

// the base path for all resources when it is present in the current directory.
const localResourcePath = ".checkergen"

// the name of the directory in the user's config directory.
const configDir = "checkergen"

// ResourcePath returns the resource string (representing the resource to be
// loaded or saved) prepended with the base path. The sub-path is created if
// it doesn't exist. Either argument may be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}

// getBasePath returns the local resource path if it exists. Otherwise the
// resource path in the user's config directory.
func getBasePath() (string, error) {
	if _, err := os.Stat(localResourcePath); err == nil {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDir), nil
}
