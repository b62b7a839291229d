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

// Package addresses contains the addresses of the KERNAL routines and RAM
// vectors that the emulation knows about.
//
// The emulation does not include the KERNAL ROM. Instead, small routines are
// placed at the addresses of the KERNAL interrupt handlers. These are enough
// for tunes that hook into the interrupt vectors in RAM.
package addresses
