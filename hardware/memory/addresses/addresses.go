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

package addresses

// Vectors in RAM used by the KERNAL interrupt handlers.
const (
	IRQVector = uint16(0x0314)
	BRKVector = uint16(0x0316)
	NMIVector = uint16(0x0318)
)

// Addresses of the KERNAL routines.
const (
	// the hardware IRQ vector points here. registers are saved and the IRQ
	// vector in RAM is called
	IRQEntry = uint16(0xff48)

	// the default value of the IRQ vector in RAM. the end of this routine
	// restores the registers and returns from the interrupt
	IRQHandler = uint16(0xea31)
	IRQReturn  = uint16(0xea81)

	// acknowledges the CIA interrupt before falling through to IRQReturn
	IRQAcknowledge = uint16(0xea7e)

	// the hardware NMI vector points here. the NMI vector in RAM is called
	NMIEntry = uint16(0xfe43)

	// the default value of the NMI and BRK vectors in RAM. an RTI
	NMIReturn = uint16(0xfe47)
	BRKReturn = uint16(0xfe66)
)

// IRQEntryCode saves the registers and jumps through the IRQ vector in RAM.
// The test of the break flag on the stack is replaced with NOPs.
var IRQEntryCode = []uint8{
	0x48,             // PHA
	0x8a,             // TXA
	0x48,             // PHA
	0x98,             // TYA
	0x48,             // PHA
	0xba,             // TSX
	0xbd, 0x04, 0x01, // LDA $0104,X
	0x29, 0x10,       // AND #$10
	0xea,             // NOP
	0xea,             // NOP
	0xea,             // NOP
	0xea,             // NOP
	0x6c, 0x14, 0x03, // JMP ($0314)
}

// IRQReturnCode restores the registers saved by IRQEntryCode.
var IRQReturnCode = []uint8{
	0x68, // PLA
	0xa8, // TAY
	0x68, // PLA
	0xaa, // TAX
	0x68, // PLA
	0x40, // RTI
}

// NMIEntryCode jumps through the NMI vector in RAM.
var NMIEntryCode = []uint8{
	0x6c, 0x18, 0x03, // JMP ($0318)
	0x40,             // RTI
}
