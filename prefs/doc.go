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

// Package prefs facilitates the storage of preferential values in the
// application. Values are declared with one of the supported types (Bool,
// Int, Float, String) and associated with a key in a Disk instance:
//
//	var rate prefs.Int
//	dsk, _ := prefs.NewDisk(afero.NewOsFs(), "preferences")
//	dsk.Add("sid.samplerate", &rate)
//	dsk.Load()
//
// The file format is one key/value pair per line, separated by " :: ". Keys
// in the file that have not been added to the Disk instance are preserved
// when the file is saved. This means that separate Disk instances can safely
// share the same file.
//
// Values can be overridden by the command line stack. PushCommandLineStack()
// takes a string of the form "key::value; key::value" and any key found in
// the most recent group is applied when the value is added to a Disk.
package prefs
