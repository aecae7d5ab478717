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

// Package paths contains functions to prepare paths to checkergen resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the saved display options of a project.
//
//	d, err := paths.ResourcePath("options", "flicker")
//
// The policy of ResourcePath() is simple: if the base resource path, currently
// defined to be ".checkergen", is present in the program's current directory
// then that is the base path that will be used. If it is not present then the
// user's config directory is used. The directory, and any sub-directory, is
// created as required.
//
// On a modern Linux system, the path returned in the example above will be:
//
//	/home/user/.config/checkergen/options/flicker
package paths
