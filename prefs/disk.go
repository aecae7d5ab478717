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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/checkergen/curated"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySeparator separates the key from the value on each line of a prefs file.
const KeySeparator = " :: "

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	Load         = "prefs: load: %v"
	Save         = "prefs: save: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySeparator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to the disk using the specified key.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// read the prefs file into a map of key/value strings. a missing file is not
// an error.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line is the boilerplate warning
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), KeySeparator, 2)
		if len(kv) == 2 {
			data[kv[0]] = kv[1]
		}
	}

	return data, scanner.Err()
}

// Save current preference values to disk. Values in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(Save, err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySeparator, data[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(Save, err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and saveOnFail
// is true then the current values are saved to create the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	if _, err := os.Stat(dsk.path); errors.Is(err, fs.ErrNotExist) {
		if saveOnFail {
			return dsk.Save()
		}
		return nil
	}

	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(Load, err)
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(Load, err)
			}
		}
	}

	return nil
}
