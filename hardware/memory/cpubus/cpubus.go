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

// Package cpubus defines the interfaces through which the CPU accesses
// memory. Side effects of memory access (interrupt acknowledgement, chip
// register updates) are the responsibility of the implementation.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Reads and writes never fail. Addresses outside of any mapped area are
// the responsibility of the implementation, which should return whatever the
// real machine would return.
//
// Write() is used for the write cycles of read-modify-write instructions and
// for the stack. Store instructions use StoreMemory.Store() if it is
// implemented.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// StoreMemory is an optional extension to the Memory interface. Some memory
// mapped registers behave differently when written by a store instruction
// compared to the write cycle of a read-modify-write instruction.
type StoreMemory interface {
	Store(address uint16, data uint8)
}

// IdleDetector is an optional extension to the Memory interface. After every
// instruction the CPU asks whether the jump from prevPC to pc should be
// treated as the end of an interrupt routine.
type IdleDetector interface {
	IdleReturn(prevPC uint16, pc uint16) bool
}

// Vector addresses.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
