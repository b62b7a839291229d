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

// Package cpu emulates the 6510 microprocessor found in the Commodore 64. The
// emulation is instruction stepped rather than cycle stepped. Each call to
// Step() executes exactly one instruction and returns the number of cycles
// that instruction takes on the real hardware. The cycle counts are exact,
// including the page crossing penalties of the indexed addressing modes.
//
// Decoding does not use a table of instruction definitions. Instead, the
// opcode is split by bit pattern into four groups:
//
//	xxxxxxx1	accumulator instructions and their undocumented relatives
//	xxxxxx10	shift, rotate, increment and X register instructions
//	xxxx10x0	register transfers, stack and flag instructions
//	xxxxxx00	flow control, Y register and compare instructions
//
// Inside each group the addressing mode is decoded from bits 2 to 4 and the
// operation from bits 5 to 7. Undocumented opcodes fall naturally out of this
// scheme.
//
// The CPU requires an implementation of the cpubus.Memory interface:
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset(0x1000)
//
//	for {
//		cycles := mc.Step()
//		if cycles >= cpu.Idle {
//			break
//		}
//	}
//
// Step() returns one of two sentinel values instead of a cycle count when the
// routine being executed has finished. SubroutineReturned is returned when an
// RTS is executed with an empty stack and Idle is returned when an interrupt
// routine returns to an idle main program. Emulation of a PSID tune relies on
// these sentinel values to know when the init and play routines have
// completed.
//
// Interrupts are serviced by calling ServiceInterrupts() before Step(). The
// NMI line is edge triggered and the IRQ line is level triggered.
package cpu
