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

// Package registers implements the register types of the 6510: the 16 bit
// program counter, the 8 bit general purpose register type used for A, X and
// Y, the stack pointer and the status register.
//
// The types only implement storage and the tests required for status updates
// (is the value zero, is the value negative). Arithmetic is performed by the
// CPU on plain integers so that carry and overflow can be derived in the same
// way as the hardware derives them, before the result is stored with Load().
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For instance, in the CPU, we might have this sequence:
//
//	a.Load(0)
//	sr.Zero = a.IsZero()
//
// The Value() and FromValue() functions convert the status flags to and from
// the 8 bit form used when pushing and pulling the register to and from the
// stack.
package registers
