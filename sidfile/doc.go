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

// Package sidfile reads tunes in the PSID and RSID file formats.
//
// A file consists of a header followed by the C64 program. The header gives
// the addresses of the init and play routines, the number of subtunes and
// how the play routine should be called. Later versions of the header add
// flags for the clock and SID model the tune was written for, and the
// addresses of a second and third SID.
//
// RSID tunes expect to be run in a real C64 environment. The play address is
// always zero and the init routine installs its own interrupt handlers.
//
// Use Load() to read a tune from a file or Parse() if the data is already in
// memory:
//
//	tune, err := sidfile.Load(afero.NewOsFs(), "Commando.sid")
//	if err != nil {
//		return err
//	}
package sidfile
