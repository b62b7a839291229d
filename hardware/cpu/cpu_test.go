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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/test"
)

func TestReset(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.A.Load(0x10)
	mc.SP.Load(0x80)
	mc.Reset(0x1000)
	test.ExpectEquality(t, mc.String(), "PC=1000 A=00 X=00 Y=00 SP=ff SR=nv-bdIzc")
}

func TestStatusInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(0x0200, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)

	step(t, mc, 2) // SEC
	assertStatus(t, mc, "nv-bdIzC")
	step(t, mc, 2) // CLC
	assertStatus(t, mc, "nv-bdIzc")
	step(t, mc, 2) // CLI
	assertStatus(t, mc, "nv-bdizc")
	step(t, mc, 2) // SEI
	assertStatus(t, mc, "nv-bdIzc")
	step(t, mc, 2) // SED
	assertStatus(t, mc, "nv-bDIzc")
	step(t, mc, 2) // CLD
	assertStatus(t, mc, "nv-bdIzc")
	mc.Status.Overflow = true
	step(t, mc, 2) // CLV
	assertStatus(t, mc, "nv-bdIzc")
}

func TestLoadAndTransfer(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	// LDA #$00; LDA #$80; TAX; LDY #$7f; TYA; DEX; INY; TSX; TXS
	mem.putInstructions(0x0200, 0xa9, 0x00, 0xa9, 0x80, 0xaa, 0xa0, 0x7f, 0x98, 0xca, 0xc8, 0xba, 0x9a)

	step(t, mc, 2) // LDA #$00
	assertStatus(t, mc, "nv-bdIZc")
	step(t, mc, 2) // LDA #$80
	assertStatus(t, mc, "Nv-bdIzc")
	step(t, mc, 2) // TAX
	test.Equate(t, mc.X.Value(), 0x80)
	step(t, mc, 2) // LDY #$7f
	test.Equate(t, mc.Y.Value(), 0x7f)
	assertStatus(t, mc, "nv-bdIzc")
	step(t, mc, 2) // TYA
	test.Equate(t, mc.A.Value(), 0x7f)
	step(t, mc, 2) // DEX
	test.Equate(t, mc.X.Value(), 0x7f)
	step(t, mc, 2) // INY
	test.Equate(t, mc.Y.Value(), 0x80)
	assertStatus(t, mc, "Nv-bdIzc")
	step(t, mc, 2) // TSX
	test.Equate(t, mc.X.Value(), 0xff)
	mc.X.Load(0x40)
	step(t, mc, 2) // TXS
	test.Equate(t, mc.SP.Value(), 0x40)
}

func TestAddressingModeCycles(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)
	mc.X.Load(0x01)
	mc.Y.Load(0x01)

	// pointers for the indirect modes
	mem.putWord(0x20, 0x1000)
	mem.putWord(0x22, 0x10ff)
	mem.putWord(0x31, 0x1234)
	mem.internal[0x1001] = 0x11
	mem.internal[0x1100] = 0x22
	mem.internal[0x1234] = 0x33

	origin := mem.putInstructions(0x0200, 0xa5, 0x10)      // LDA $10
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x10) // LDA $1000
	origin = mem.putInstructions(origin, 0xb5, 0x10)       // LDA $10,X
	origin = mem.putInstructions(origin, 0xbd, 0x00, 0x10) // LDA $1000,X
	origin = mem.putInstructions(origin, 0xbd, 0xff, 0x10) // LDA $10ff,X
	origin = mem.putInstructions(origin, 0xb1, 0x20)       // LDA ($20),Y
	origin = mem.putInstructions(origin, 0xb1, 0x22)       // LDA ($22),Y
	origin = mem.putInstructions(origin, 0xa1, 0x30)       // LDA ($30,X)
	origin = mem.putInstructions(origin, 0x9d, 0x00, 0x10) // STA $1000,X
	origin = mem.putInstructions(origin, 0x91, 0x20)       // STA ($20),Y
	origin = mem.putInstructions(origin, 0xbe, 0x00, 0x10) // LDX $1000,Y
	_ = mem.putInstructions(origin, 0xb6, 0xff)            // LDX $ff,Y

	step(t, mc, 3)
	step(t, mc, 4)
	step(t, mc, 4)
	step(t, mc, 4)
	test.Equate(t, mc.A.Value(), 0x11)
	step(t, mc, 5)
	test.Equate(t, mc.A.Value(), 0x22)
	step(t, mc, 5)
	test.Equate(t, mc.A.Value(), 0x11)
	step(t, mc, 6)
	test.Equate(t, mc.A.Value(), 0x22)
	step(t, mc, 6)
	test.Equate(t, mc.A.Value(), 0x33)
	step(t, mc, 5)
	step(t, mc, 6)
	step(t, mc, 4)
	test.Equate(t, mc.X.Value(), 0x33)

	// zero page indexing wraps around. $ff + $01 is $00
	mem.internal[0x00] = 0x44
	step(t, mc, 4)
	test.Equate(t, mc.X.Value(), 0x44)
}

func TestReadModifyWrite(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)
	mc.X.Load(0x01)

	mem.internal[0x10] = 0x80
	mem.internal[0x1001] = 0xff

	origin := mem.putInstructions(0x0200, 0x06, 0x10)      // ASL $10
	origin = mem.putInstructions(origin, 0xfe, 0x00, 0x10) // INC $1000,X
	origin = mem.putInstructions(origin, 0x0a)             // ASL A
	origin = mem.putInstructions(origin, 0x6a)             // ROR A
	_ = mem.putInstructions(origin, 0xce, 0x10, 0x00)      // DEC $0010

	step(t, mc, 5)
	mem.assert(t, 0x10, 0x00)
	assertStatus(t, mc, "nv-bdIZC")

	step(t, mc, 7)
	mem.assert(t, 0x1001, 0x00)
	assertStatus(t, mc, "nv-bdIZC")

	mc.A.Load(0x41)
	step(t, mc, 2)
	test.Equate(t, mc.A.Value(), 0x82)
	assertStatus(t, mc, "Nv-bdIzc")

	mc.Status.Carry = true
	step(t, mc, 2)
	test.Equate(t, mc.A.Value(), 0xc1)
	assertStatus(t, mc, "Nv-bdIzc")

	step(t, mc, 6)
	mem.assert(t, 0x10, 0xff)
	assertStatus(t, mc, "Nv-bdIzc")
}

func TestAddWithCarry(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	// ADC #$50; ADC #$01; ADC #$01
	mem.putInstructions(0x0200, 0x69, 0x50, 0x69, 0x01, 0x69, 0x01)

	mc.A.Load(0x50)
	step(t, mc, 2)
	test.Equate(t, mc.A.Value(), 0xa0)
	assertStatus(t, mc, "NV-bdIzc")

	mc.A.Load(0xff)
	step(t, mc, 2)
	test.Equate(t, mc.A.Value(), 0x00)
	assertStatus(t, mc, "nv-bdIZC")

	// decimal mode only corrects the low nibble
	mc.A.Load(0x09)
	mc.Status.Carry = false
	mc.Status.DecimalMode = true
	step(t, mc, 2)
	test.Equate(t, mc.A.Value(), 0x10)
}

func TestCompare(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	// CMP #$10; CPX #$20; CPY #$05; BIT $10
	mem.putInstructions(0x0200, 0xc9, 0x10, 0xe0, 0x20, 0xc0, 0x05, 0x24, 0x10)
	mem.internal[0x10] = 0xc0

	mc.A.Load(0x10)
	mc.X.Load(0x10)
	mc.Y.Load(0x06)

	step(t, mc, 2)
	assertStatus(t, mc, "nv-bdIZC")
	step(t, mc, 2)
	assertStatus(t, mc, "Nv-bdIzc")
	step(t, mc, 2)
	assertStatus(t, mc, "nv-bdIzC")

	mc.A.Load(0x01)
	step(t, mc, 3)
	assertStatus(t, mc, "NV-bdIZC")
}

func TestBranching(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	// BNE +2; BEQ +2; BPL -2
	mem.putInstructions(0x0200, 0xd0, 0x02)
	mem.putInstructions(0x0204, 0xf0, 0x02)
	mem.putInstructions(0x0206, 0x10, 0xfe)

	step(t, mc, 3)
	test.Equate(t, mc.PC.Address(), 0x0204)
	step(t, mc, 2)
	test.Equate(t, mc.PC.Address(), 0x0206)

	// branch to self
	step(t, mc, 3)
	test.Equate(t, mc.PC.Address(), 0x0206)
	mc.Status.Negative = true
	step(t, mc, 2)
	test.Equate(t, mc.PC.Address(), 0x0208)
}

func TestJumps(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	mem.putInstructions(0x0200, 0x4c, 0x00, 0x03) // JMP $0300
	mem.putInstructions(0x0300, 0x6c, 0xff, 0x30) // JMP ($30ff)
	mem.internal[0x30ff] = 0x00
	mem.internal[0x3000] = 0x40
	mem.internal[0x3100] = 0x50

	step(t, mc, 3)
	test.Equate(t, mc.PC.Address(), 0x0300)

	// the vector's high byte is read from $3000 and not $3100
	step(t, mc, 5)
	test.Equate(t, mc.PC.Address(), 0x4000)
}

func TestSubroutine(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	// JSR $3000; ... RTS
	mem.putInstructions(0x0200, 0x20, 0x00, 0x30)
	mem.putInstructions(0x3000, 0x60)

	step(t, mc, 6)
	test.Equate(t, mc.PC.Address(), 0x3000)
	test.Equate(t, mc.SP.Value(), 0xfd)
	mem.assert(t, 0x01ff, 0x02)
	mem.assert(t, 0x01fe, 0x02)

	step(t, mc, 6)
	test.Equate(t, mc.PC.Address(), 0x0203)
	test.Equate(t, mc.SP.Value(), 0xff)
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	// PHA; PHP; LDA #$00; PLP; PLA
	mem.putInstructions(0x0200, 0x48, 0x08, 0xa9, 0x00, 0x28, 0x68)

	mc.A.Load(0x81)
	mc.Status.Carry = true
	step(t, mc, 3)
	mem.assert(t, 0x01ff, 0x81)
	step(t, mc, 3)

	// the unused bit is always set when status is pushed
	mem.assert(t, 0x01fe, 0x25)

	step(t, mc, 2)
	test.Equate(t, mc.A.Value(), 0x00)
	step(t, mc, 4)
	assertStatus(t, mc, "nv-bdIzC")
	step(t, mc, 4)
	test.Equate(t, mc.A.Value(), 0x81)
	assertStatus(t, mc, "Nv-bdIzC")
	test.Equate(t, mc.SP.Value(), 0xff)
}

func TestBRK(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	mem.putInstructions(0x0200, 0x00)
	mem.putWord(0xfffe, 0x3000)
	mem.putInstructions(0x3000, 0x40) // RTI

	mc.Status.InterruptDisable = false
	step(t, mc, 7)
	test.Equate(t, mc.PC.Address(), 0x3000)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// return address is the address of the BRK plus two
	mem.assert(t, 0x01ff, 0x02)
	mem.assert(t, 0x01fe, 0x02)
	mem.assert(t, 0x01fd, 0x30)
	test.Equate(t, mc.SP.Value(), 0xfc)

	step(t, mc, 6)
	test.Equate(t, mc.PC.Address(), 0x0202)
	test.ExpectFailure(t, mc.Status.InterruptDisable)
	test.Equate(t, mc.SP.Value(), 0xff)
}

func TestStoreMemory(t *testing.T) {
	mem := &storeMem{mockMem: newMockMem()}
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	// STA $10; INC $11; STX $12; STY $13; SAX $14
	mem.putInstructions(0x0200, 0x85, 0x10, 0xe6, 0x11, 0x86, 0x12, 0x84, 0x13, 0x87, 0x14)

	for range 5 {
		mc.Step()
	}

	// read-modify-write instructions do not use Store()
	test.Equate(t, len(mem.stores), 4)
	test.Equate(t, mem.stores[0], 0x10)
	test.Equate(t, mem.stores[1], 0x12)
	test.Equate(t, mem.stores[2], 0x13)
	test.Equate(t, mem.stores[3], 0x14)
	test.Equate(t, mem.writes, 1)
}

func TestSnapshot(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)
	mc.A.Load(0x10)

	s := mc.Snapshot()
	mc.A.Load(0x20)
	test.Equate(t, s.A.Value(), 0x10)
	test.Equate(t, mc.A.Value(), 0x20)
}
