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

func TestUndocumentedOpcodes(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)

	origin := mem.putInstructions(0x0200, 0xa7, 0x10) // LAX $10
	origin = mem.putInstructions(origin, 0x87, 0x11)  // SAX $11
	origin = mem.putInstructions(origin, 0xc7, 0x12)  // DCP $12
	origin = mem.putInstructions(origin, 0xe7, 0x13)  // ISC $13
	origin = mem.putInstructions(origin, 0x07, 0x14)  // SLO $14
	origin = mem.putInstructions(origin, 0x0b, 0x80)  // ANC #$80
	origin = mem.putInstructions(origin, 0x4b, 0x03)  // ALR #$03
	_ = mem.putInstructions(origin, 0xcb, 0x01)       // SBX #$01

	mem.internal[0x10] = 0x81
	mem.internal[0x12] = 0x11
	mem.internal[0x13] = 0x0f
	mem.internal[0x14] = 0x81

	step(t, mc, 3)
	test.Equate(t, mc.A.Value(), 0x81)
	test.Equate(t, mc.X.Value(), 0x81)
	assertStatus(t, mc, "Nv-bdIzc")

	mc.A.Load(0xf0)
	mc.X.Load(0x3c)
	step(t, mc, 3)
	mem.assert(t, 0x11, 0x30)

	mc.A.Load(0x10)
	step(t, mc, 5)
	mem.assert(t, 0x12, 0x10)
	assertStatus(t, mc, "nv-bdIZC")

	mc.A.Load(0x20)
	step(t, mc, 5)
	mem.assert(t, 0x13, 0x10)
	test.Equate(t, mc.A.Value(), 0x10)
	assertStatus(t, mc, "nv-bdIzC")

	mc.A.Load(0x01)
	mc.Status.Carry = false
	step(t, mc, 5)
	mem.assert(t, 0x14, 0x02)
	test.Equate(t, mc.A.Value(), 0x03)
	assertStatus(t, mc, "nv-bdIzC")

	mc.A.Load(0xff)
	mc.Status.Carry = false
	step(t, mc, 2)
	test.Equate(t, mc.A.Value(), 0x80)
	assertStatus(t, mc, "Nv-bdIzC")

	mc.A.Load(0x03)
	mc.Status.Carry = false
	step(t, mc, 2)
	test.Equate(t, mc.A.Value(), 0x01)
	assertStatus(t, mc, "nv-bdIzC")

	mc.A.Load(0x0f)
	mc.X.Load(0xf3)
	mc.Status.Carry = false
	step(t, mc, 2)
	test.Equate(t, mc.X.Value(), 0x02)
	test.Equate(t, mc.A.Value(), 0x0f)
	assertStatus(t, mc, "nv-bdIzC")
}

func TestUndocumentedNOPs(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(0x0200)
	mc.X.Load(0x01)

	origin := mem.putInstructions(0x0200, 0x04, 0x10)      // NOP $10
	origin = mem.putInstructions(origin, 0x1c, 0x00, 0x10) // NOP $1000,X
	origin = mem.putInstructions(origin, 0xfc, 0xff, 0x10) // NOP $10ff,X
	_ = mem.putInstructions(origin, 0x0c, 0x00, 0x10)      // NOP $1000

	step(t, mc, 3)
	step(t, mc, 4)
	step(t, mc, 5)
	step(t, mc, 4)
	test.Equate(t, mc.PC.Address(), 0x020b)
	test.Equate(t, mem.writes, 0)
}
