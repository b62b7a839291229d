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

package cpu

// the addressing mode functions set the effective address and the base cycle
// count of the instruction. the program counter is left on the last byte of
// the instruction

func (mc *CPU) immediate() {
	mc.PC.Increment()
	mc.address = mc.PC.Address()
	mc.cycles = 2
}

func (mc *CPU) zeroPage() {
	mc.PC.Increment()
	mc.address = uint16(mc.read(mc.PC.Address()))
	mc.cycles = 3
}

// zero page indexing wraps around inside the zero page
func (mc *CPU) zeroPageIndexed(index uint8) {
	mc.PC.Increment()
	mc.address = uint16(mc.read(mc.PC.Address()) + index)
	mc.cycles = 4
}

func (mc *CPU) absolute() {
	mc.PC.Increment()
	lo := uint16(mc.read(mc.PC.Address()))
	mc.PC.Increment()
	mc.address = lo | uint16(mc.read(mc.PC.Address()))<<8
	mc.cycles = 4
}

func (mc *CPU) absoluteIndexed(index uint8) {
	mc.PC.Increment()
	lo := uint16(mc.read(mc.PC.Address())) + uint16(index)
	mc.samePageFromLo(lo)
	mc.PC.Increment()
	mc.address = lo + uint16(mc.read(mc.PC.Address()))<<8
	mc.cycles = 5
}

// (zp,X)
func (mc *CPU) preIndexedIndirect() {
	mc.PC.Increment()
	ptr := mc.read(mc.PC.Address()) + mc.X.Value()
	mc.address = uint16(mc.read(uint16(ptr))) | uint16(mc.read(uint16(ptr+1)))<<8
	mc.cycles = 6
}

// (zp),Y
func (mc *CPU) postIndexedIndirect() {
	mc.PC.Increment()
	ptr := mc.read(mc.PC.Address())
	lo := uint16(mc.read(uint16(ptr))) + uint16(mc.Y.Value())
	mc.samePageFromLo(lo)
	mc.address = lo + uint16(mc.read(uint16(ptr+1)))<<8
	mc.cycles = 6
}

func (mc *CPU) samePageFromLo(lo uint16) {
	if lo <= 0xff {
		mc.samePage = 1
	} else {
		mc.samePage = 0
	}
}

// some undocumented opcodes with bit pattern 10xxxxxx index with Y rather than
// with X
func (mc *CPU) indexForOpcode() uint8 {
	if mc.opcode&0xc0 == 0x80 {
		return mc.Y.Value()
	}
	return mc.X.Value()
}
