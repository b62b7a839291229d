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

// Package memory implements the memory of the C64 as seen by the CPU. The
// memory is the hub through which the CPU reaches the other chips:
//
//	                           ---- VIC
//	                          |
//	                          |---- SID (up to three)
//	    CPU ---- cpu bus ---- *
//	                          |---- CIA1, CIA2
//	                          |
//	                           ---- RAM / ROM
//
// The asterisk indicates that addresses used by the CPU are first mapped with
// the memorymap package according to the processor port.
//
// The Memory type implements the cpubus.Memory interface along with the
// optional cpubus.StoreMemory and cpubus.IdleDetector interfaces. Side effects
// of memory access are handled here:
//
// In real SID mode, reading the interrupt control register of a CIA
// acknowledges the CIA interrupt. Writing to the VIC interrupt register
// acknowledges the raster interrupt. For store instructions this only happens
// if bit 0 of the value is set. The write cycle of a read-modify-write
// instruction always acknowledges the interrupt.
//
// In PSID mode, a jump to the end of the KERNAL interrupt handler is the end
// of the play routine.
//
// Reading a SID register returns the value that was last written to it, with
// the exception of the OSC3 and ENV3 registers. SID registers between $d420
// and $d7ff that are not claimed by a second or third SID are mirrors of the
// first SID.
package memory
