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

// Package memorymap describes how the address space of the C64 is divided
// between RAM, ROM and the IO area.
//
// What the CPU sees at an address depends on the processor port at address
// $0001. The lowest two bits of the port select the configuration:
//
//	port&3   $a000-$bfff   $d000-$dfff   $e000-$ffff
//	  0        RAM           RAM           RAM
//	  1        RAM           IO            RAM
//	  2        RAM           IO            KERNAL
//	  3        BASIC         IO            KERNAL
//
// Writes never reach ROM. A write to an address that reads as ROM goes to the
// RAM underneath.
//
// The MapAddress() function should be used whenever an address is being used
// from the viewpoint of the CPU.
//
//	area := memorymap.MapAddress(address, port, true)
//
// The third argument indicates if the address is being read or being written
// to.
package memorymap
