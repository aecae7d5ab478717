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

// Package modalflag wraps the flag package so that the command line can be
// split into modes, each with its own set of flags. The checkergen command
// line is of the form:
//
//	checkergen [flags] MODE [mode flags] [arguments]
//
// A new set of flags is started with NewMode() and the list of modes that may
// follow is given with AddSubModes(). The first sub-mode is the default and is
// selected if the next argument is not one of the listed modes. Mode names
// are case insensitive.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("DISPLAY", "EXPORT")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// Options that are set by name, such as the display options, are added with
// AddOption(). The set function is called for every occurrence of the flag.
package modalflag
