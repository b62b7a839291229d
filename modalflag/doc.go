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


// Package modalflag wraps the flag package of the standard library so that the
// command line can be divided into modes. Each mode has its own set of flags
// and optionally a list of sub-modes, one of which is selected by the first
// argument that is not a flag.
//
// For example, the gopher64 command line has the modes INFO, RENDER and PLAY:
//
//	gopher64 RENDER -seconds 60 -o out.wav tune.sid
//
// The idiomatic usage is:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "RENDER", "INFO")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		seconds := md.AddInt("seconds", 60, "length of output")
//		...
//	}
//
// The first sub-mode in the list is the default and is selected if the first
// argument is not one of the listed sub-modes. Sub-mode comparisons are not
// case sensitive.
package modalflag
