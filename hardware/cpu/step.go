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

import "github.com/jetsetilly/gopher64/hardware/memory/cpubus"

// Step executes the next instruction and returns the number of cycles it took.
// One of the sentinel values SubroutineReturned or Idle is returned if the
// instruction signals the end of the routine being executed.
func (mc *CPU) Step() int {
	mc.prevPC = mc.PC.Address()
	mc.opcode = mc.read(mc.PC.Address())
	mc.cycles = 2
	mc.samePage = 0

	switch {
	case mc.opcode&0x01 == 0x01:
		mc.accumulatorGroup()
	case mc.opcode&0x02 == 0x02:
		mc.shiftGroup()
	case mc.opcode&0x0c == 0x08:
		mc.registerGroup()
	default:
		if s := mc.controlGroup(); s != 0 {
			return s
		}
	}

	mc.PC.Increment()

	if mc.idle != nil && mc.idle.IdleReturn(mc.prevPC, mc.PC.Address()) {
		return Idle
	}

	return mc.cycles
}

// bit patterns xxxxxxx1: ORA AND EOR ADC STA LDA CMP SBC and the undocumented
// opcodes that combine them with the shift group
func (mc *CPU) accumulatorGroup() {
	// the xxxxxx11 opcodes share the addressing mode of their xxxxxx01
	// neighbour except for zp,X and abs,X, which index with Y for the
	// 10xxxxxx opcodes
	switch mc.opcode & 0x1f {
	case 0x01, 0x03:
		mc.preIndexedIndirect()
	case 0x05, 0x07:
		mc.zeroPage()
	case 0x09, 0x0b:
		mc.immediate()
	case 0x0d, 0x0f:
		mc.absolute()
	case 0x11, 0x13:
		mc.postIndexedIndirect()
	case 0x15:
		mc.zeroPageIndexed(mc.X.Value())
	case 0x17:
		mc.zeroPageIndexed(mc.indexForOpcode())
	case 0x19, 0x1b:
		mc.absoluteIndexed(mc.Y.Value())
	case 0x1d:
		mc.absoluteIndexed(mc.X.Value())
	case 0x1f:
		mc.absoluteIndexed(mc.indexForOpcode())
	}

	// undocumented opcodes have both bit 0 and bit 1 set
	illegal := mc.opcode&0x03 == 0x03
	undocImmediate := mc.opcode&0x1f == 0x0b

	switch mc.opcode >> 5 {
	case 0x00:
		// ORA SLO ANC
		if undocImmediate {
			mc.anc(mc.read(mc.address))
			break
		}
		if illegal {
			mc.write(mc.address, mc.shiftLeft(mc.read(mc.address), 0))
			mc.cycles += 2
		} else {
			mc.cycles -= mc.samePage
		}
		mc.A.Load(mc.A.Value() | mc.read(mc.address))
		mc.setNZ(mc.A.Value())

	case 0x01:
		// AND RLA ANC
		if undocImmediate {
			mc.anc(mc.read(mc.address))
			break
		}
		if illegal {
			mc.write(mc.address, mc.shiftLeft(mc.read(mc.address), mc.carry()))
			mc.cycles += 2
		} else {
			mc.cycles -= mc.samePage
		}
		mc.A.Load(mc.A.Value() & mc.read(mc.address))
		mc.setNZ(mc.A.Value())

	case 0x02:
		// EOR SRE ALR
		if undocImmediate {
			a := mc.A.Value() & mc.read(mc.address)
			mc.A.Load(mc.shiftRight(a, 0))
			break
		}
		if illegal {
			mc.write(mc.address, mc.shiftRight(mc.read(mc.address), 0))
			mc.cycles += 2
		} else {
			mc.cycles -= mc.samePage
		}
		mc.A.Load(mc.A.Value() ^ mc.read(mc.address))
		mc.setNZ(mc.A.Value())

	case 0x03:
		// ADC RRA ARR
		if undocImmediate {
			mc.arr(mc.read(mc.address))
			break
		}
		if illegal {
			mc.write(mc.address, mc.shiftRight(mc.read(mc.address), mc.carry()))
			mc.cycles += 2
		} else {
			mc.cycles -= mc.samePage
		}
		mc.adc(mc.read(mc.address))

	case 0x04:
		// STA SAX XAA TAS
		switch mc.opcode & 0x1f {
		case 0x0b:
			mc.A.Load(mc.X.Value() & mc.read(mc.address))
			mc.setNZ(mc.A.Value())
		case 0x1b:
			mc.SP.Load(mc.A.Value() & mc.X.Value())
			mc.write(mc.address, mc.SP.Value()&(uint8(mc.address>>8)+1))
		default:
			v := mc.A.Value()
			if illegal {
				v &= mc.X.Value()
			}
			mc.storeValue(mc.address, v)
		}

	case 0x05:
		// LDA LAX LAS
		if mc.opcode&0x1f == 0x1b {
			v := mc.read(mc.address) & mc.SP.Value()
			mc.A.Load(v)
			mc.X.Load(v)
			mc.SP.Load(v)
		} else {
			mc.A.Load(mc.read(mc.address))
			if illegal {
				mc.X.Load(mc.A.Value())
			}
		}
		mc.setNZ(mc.A.Value())
		mc.cycles -= mc.samePage

	case 0x06:
		// CMP DCP SBX
		if undocImmediate {
			t := int(mc.A.Value()&mc.X.Value()) - int(mc.read(mc.address))
			mc.X.Load(uint8(t))
			mc.subtractFlags(t)
			break
		}
		if illegal {
			mc.write(mc.address, mc.read(mc.address)-1)
			mc.cycles += 2
		} else {
			mc.cycles -= mc.samePage
		}
		mc.compare(mc.A.Value(), mc.read(mc.address))

	case 0x07:
		// SBC ISC
		if illegal && !undocImmediate {
			mc.write(mc.address, mc.read(mc.address)+1)
			mc.cycles += 2
		} else {
			mc.cycles -= mc.samePage
		}
		mc.sbc(mc.read(mc.address))
	}
}

// anc is AND with the carry flag taking the value of bit 7
func (mc *CPU) anc(m uint8) {
	mc.A.Load(mc.A.Value() & m)
	mc.setNZ(mc.A.Value())
	mc.Status.Carry = mc.Status.Negative
}

// arr is AND followed by ROR. carry and overflow are set by the intermediate
// sum of the ANDed value and the operand. the new carry is rotated into bit 7
func (mc *CPU) arr(m uint8) {
	a := mc.A.Value() & m
	t := int(a) + int(m) + mc.carry()
	mc.Status.Negative = false
	mc.Status.Zero = false
	mc.Status.Carry = t > 0xff
	mc.Status.Overflow = ^(t^int(m))&(t^int(a))&0x80 == 0x80
	r := a>>1 | uint8(mc.carry()<<7)
	mc.Status.Carry = a >= 0x80
	mc.A.Load(r)
	mc.setNZ(r)
}

// bit patterns xxxxxx10: ASL ROL LSR ROR STX LDX DEC INC and the X register
// transfers
func (mc *CPU) shiftGroup() {
	switch mc.opcode & 0x1f {
	case 0x02:
		mc.immediate()
	case 0x06:
		mc.zeroPage()
	case 0x0e:
		mc.absolute()
	case 0x16:
		mc.zeroPageIndexed(mc.indexForOpcode())
	case 0x1e:
		mc.absoluteIndexed(mc.indexForOpcode())
	}

	accumulator := mc.opcode&0x0f == 0x0a

	switch mc.opcode >> 5 {
	case 0x00, 0x01:
		// ASL ROL
		carryIn := 0
		if mc.opcode>>5 == 0x01 {
			carryIn = mc.carry()
		}
		if accumulator {
			mc.A.Load(mc.shiftLeft(mc.A.Value(), carryIn))
		} else {
			mc.write(mc.address, mc.shiftLeft(mc.read(mc.address), carryIn))
			mc.cycles += 2
		}

	case 0x02, 0x03:
		// LSR ROR
		carryIn := 0
		if mc.opcode>>5 == 0x03 {
			carryIn = mc.carry()
		}
		if accumulator {
			mc.A.Load(mc.shiftRight(mc.A.Value(), carryIn))
		} else {
			mc.write(mc.address, mc.shiftRight(mc.read(mc.address), carryIn))
			mc.cycles += 2
		}

	case 0x04:
		// STX TXS TXA
		if mc.opcode&0x04 == 0x04 {
			mc.storeValue(mc.address, mc.X.Value())
		} else if mc.opcode&0x10 == 0x10 {
			mc.SP.Load(mc.X.Value())
		} else {
			mc.A.Load(mc.X.Value())
			mc.setNZ(mc.A.Value())
		}

	case 0x05:
		// LDX TSX TAX
		if !accumulator {
			mc.X.Load(mc.read(mc.address))
			mc.cycles -= mc.samePage
		} else if mc.opcode&0x10 == 0x10 {
			mc.X.Load(mc.SP.Value())
		} else {
			mc.X.Load(mc.A.Value())
		}
		mc.setNZ(mc.X.Value())

	case 0x06:
		// DEC DEX
		if mc.opcode&0x04 == 0x04 {
			v := mc.read(mc.address) - 1
			mc.write(mc.address, v)
			mc.setNZ(v)
			mc.cycles += 2
		} else {
			mc.X.Decrement()
			mc.setNZ(mc.X.Value())
		}

	case 0x07:
		// INC and NOP
		if mc.opcode&0x04 == 0x04 {
			v := mc.read(mc.address) + 1
			mc.write(mc.address, v)
			mc.setNZ(v)
			mc.cycles += 2
		}
	}
}

// flag instructions by bits 5 to 7 of the opcode. the low bits select the
// flag and bit 5 selects whether the flag is set or cleared
var flagSwitches = [8]uint8{0x01, 0x21, 0x04, 0x24, 0x00, 0x40, 0x08, 0x28}

// bit patterns xxxx10x0: PHP PLP PHA PLA DEY TAY INY INX, TYA and the flag
// instructions
func (mc *CPU) registerGroup() {
	if mc.opcode&0x10 == 0x10 {
		if mc.opcode == 0x98 {
			mc.A.Load(mc.Y.Value())
			mc.setNZ(mc.A.Value())
			return
		}

		sw := flagSwitches[mc.opcode>>5]
		st := mc.Status.Value()
		if sw&0x20 == 0x20 {
			st |= sw & 0xdf
		} else {
			st &^= sw
		}
		mc.Status.FromValue(st)
		return
	}

	switch mc.opcode >> 5 {
	case 0x00:
		mc.push(mc.Status.Value())
		mc.cycles = 3
	case 0x01:
		mc.Status.FromValue(mc.pull())
		mc.cycles = 4
	case 0x02:
		mc.push(mc.A.Value())
		mc.cycles = 3
	case 0x03:
		mc.A.Load(mc.pull())
		mc.setNZ(mc.A.Value())
		mc.cycles = 4
	case 0x04:
		mc.Y.Decrement()
		mc.setNZ(mc.Y.Value())
	case 0x05:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y.Value())
	case 0x06:
		mc.Y.Increment()
		mc.setNZ(mc.Y.Value())
	case 0x07:
		mc.X.Increment()
		mc.setNZ(mc.X.Value())
	}
}

// the flag tested by each branch instruction, by bits 6 and 7 of the opcode
var branchFlags = [4]uint8{0x80, 0x40, 0x01, 0x02}

// bit patterns xxxxxx00: branches, BRK JSR RTI RTS JMP BIT STY LDY CPY CPX and
// undocumented NOPs. returns a non-zero sentinel value if the instruction
// ends the routine
func (mc *CPU) controlGroup() int {
	if mc.opcode&0x1f == 0x10 {
		mc.PC.Increment()
		offset := int8(mc.read(mc.PC.Address()))
		set := mc.Status.Value()&branchFlags[mc.opcode>>6] != 0
		if set == (mc.opcode&0x20 == 0x20) {
			mc.PC.Add(int(offset))
			mc.cycles = 3
		}
		return 0
	}

	switch mc.opcode & 0x1f {
	case 0x00:
		mc.immediate()
	case 0x04:
		mc.zeroPage()
	case 0x0c:
		mc.absolute()
	case 0x14:
		mc.zeroPageIndexed(mc.X.Value())
	case 0x1c:
		mc.absoluteIndexed(mc.X.Value())
	}

	switch mc.opcode >> 5 {
	case 0x00:
		// BRK and NOPs
		if mc.opcode&0x04 == 0 {
			mc.pushReturn()
			mc.push(mc.Status.Value() | 0x10)
			mc.Status.InterruptDisable = true
			mc.PC.Load(mc.readWord(cpubus.IRQ) - 1)
			mc.cycles = 7
		} else if mc.opcode == 0x1c {
			mc.cycles -= mc.samePage
		}

	case 0x01:
		// BIT JSR and NOPs
		if mc.opcode&0x0f != 0 {
			if mc.opcode&0x10 == 0 {
				m := mc.read(mc.address)
				mc.Status.Negative = m&0x80 == 0x80
				mc.Status.Overflow = m&0x40 == 0x40
				mc.Status.Zero = mc.A.Value()&m == 0
			} else if mc.opcode == 0x3c {
				mc.cycles -= mc.samePage
			}
		} else {
			mc.pushReturn()
			mc.PC.Load(mc.readWord(mc.address) - 1)
			mc.cycles = 6
		}

	case 0x02:
		// JMP RTI and NOPs
		if mc.opcode&0x0f != 0 {
			if mc.opcode == 0x4c {
				mc.PC.Load(mc.address - 1)
				mc.cycles = 3

				// some tunes rely on the read of the byte following the
				// target address (eg. JMP $DD0C)
				_ = mc.read(mc.address + 1)
			} else if mc.opcode == 0x5c {
				mc.cycles -= mc.samePage
			}
		} else {
			mc.Status.FromValue(mc.pull())
			lo := uint16(mc.pull())
			mc.PC.Load(uint16(mc.pull())<<8 + lo - 1)
			mc.cycles = 6
			if mc.Returned && mc.SP.Value() >= 0xff {
				mc.PC.Increment()
				return Idle
			}
		}

	case 0x03:
		// JMP indirect RTS and NOPs
		if mc.opcode&0x0f != 0 {
			if mc.opcode == 0x6c {
				// the high byte of the vector is read from the same page as the
				// low byte
				hi := mc.read(mc.address&0xff00 | (mc.address+1)&0x00ff)
				lo := mc.read(mc.address)
				mc.PC.Load(uint16(hi)<<8 + uint16(lo) - 1)
				mc.cycles = 5
			} else if mc.opcode == 0x7c {
				mc.cycles -= mc.samePage
			}
		} else {
			if mc.SP.Value() >= 0xff {
				mc.Returned = true
				return SubroutineReturned
			}
			lo := uint16(mc.pull())
			mc.PC.Load(uint16(mc.pull())<<8 + lo)
			mc.cycles = 6
		}

	case 0x04:
		// STY and NOPs
		if mc.opcode&0x04 == 0x04 {
			mc.storeValue(mc.address, mc.Y.Value())
		}

	case 0x05:
		// LDY
		mc.Y.Load(mc.read(mc.address))
		mc.setNZ(mc.Y.Value())
		mc.cycles -= mc.samePage

	case 0x06:
		// CPY
		if mc.opcode&0x10 == 0 {
			mc.compare(mc.Y.Value(), mc.read(mc.address))
		} else if mc.opcode == 0xdc {
			mc.cycles -= mc.samePage
		}

	case 0x07:
		// CPX
		if mc.opcode&0x10 == 0 {
			mc.compare(mc.X.Value(), mc.read(mc.address))
		} else if mc.opcode == 0xfc {
			mc.cycles -= mc.samePage
		}
	}

	return 0
}
