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

// Package vic implements the raster timing of the VIC-II video chip. No video
// is produced. The raster row is advanced according to the number of CPU
// cycles that have elapsed and a raster interrupt is raised when the row
// matches the value written to the raster compare registers.
//
// Many C64 tunes use the raster interrupt to call their player routine once
// per frame, which is why it is needed by a sound player.
//
// The VIC keeps two banks of registers. Values written by the CPU are stored
// in one bank and the values read by the CPU in the other. This reflects the
// fact that the raster registers mean different things when written and when
// read.
package vic
