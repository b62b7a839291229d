// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/jetsetilly/gopher64/curated"
)

// WarningBoilerPlate is added to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file.
const separator = " :: "

// Sentinel error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	BadFile      = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit sync.Mutex

	fs      afero.Fs
	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(fs afero.Fs, path string) (*Disk, error) {
	if fs == nil {
		return nil, curated.Errorf(BadFile, "no filesystem")
	}
	return &Disk{
		fs:      fs,
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

// Path returns the location of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to Disk under key. Any value for the key in the
// command line stack is applied immediately.
func (dsk *Disk) Add(key string, p Pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(BadFile, err)
		}
	}

	return nil
}

// read the preferences file into a map of raw strings. a missing file is not
// an error
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := dsk.fs.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, curated.Errorf(BadFile, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boilerplate
	if !scanner.Scan() {
		return data, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(BadFile, "not a preferences file")
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		data[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(BadFile, err)
	}

	return data, nil
}

// Save current preference values to disk. Keys in the existing file that
// have not been added to this instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s strings.Builder
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, data[k]))
	}

	if err := afero.WriteFile(dsk.fs, dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(BadFile, err)
	}

	return nil
}

// Load preference values from disk. Values in the file for keys that have not
// been added to this instance are ignored.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(BadFile, err)
			}
		}
	}

	return nil
}

// Reset all preference values added to this instance.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
