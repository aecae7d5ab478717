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

// Package prefs holds typed preference values and the means to store them on
// disk.
//
// The Bool, Int, Float and String types can be used as struct fields without
// initialisation. Values are set with Set(), which accepts either the native
// type or a string representation. Validation is attached with SetHookPre(),
// which can reject a value before it is stored. SetHookPost() is called after
// the value has been stored.
//
// Values are associated with a key by adding them to a Disk instance. The Disk
// type saves and loads all its values to and from a text file. Values saved by
// other Disk instances in the same file are preserved.
//
//	var v prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("display.repeats", &v)
//	dsk.Load(true)
package prefs
