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

package options

import (
	"fmt"

	"github.com/jetsetilly/checkergen/paths"
	"github.com/jetsetilly/checkergen/prefs"
)

// OptionsFile is the name of the file in the resource directory that the
// default options of each project are saved to.
const OptionsFile = "options"

// AttachDisk associates the options with the saved defaults of the project.
// The defaults are loaded immediately if they exist.
func (o *Display) AttachDisk(project string) error {
	pth, err := paths.ResourcePath("", OptionsFile)
	if err != nil {
		return err
	}
	return o.attach(pth, project)
}

func (o *Display) attach(pth string, project string) error {
	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return err
	}

	for _, e := range o.entries {
		err := dsk.Add(fmt.Sprintf("%s.%s", project, e.key), e.p)
		if err != nil {
			return err
		}
	}

	o.dsk = dsk
	return o.dsk.Load(false)
}

// Save the current options as the defaults for the project. Does nothing if
// AttachDisk() has not been called.
func (o *Display) Save() error {
	if o.dsk == nil {
		return nil
	}
	return o.dsk.Save()
}
