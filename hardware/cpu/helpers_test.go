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
	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/test"
)

type mockMem struct {
	internal [0x10000]uint8

	// number of calls to Write()
	writes int
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.writes++
	mem.internal[address] = data
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putWord(address uint16, word uint16) {
	mem.internal[address] = uint8(word)
	mem.internal[address+1] = uint8(word >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", mem.internal[address], value, address)
	}
}

// storeMem records the addresses written to by store instructions
type storeMem struct {
	*mockMem
	stores []uint16
}

func (mem *storeMem) Store(address uint16, data uint8) {
	mem.stores = append(mem.stores, address)
	mem.internal[address] = data
}

// idleMem treats a jump to idleAddress as the end of an interrupt routine
type idleMem struct {
	*mockMem
	idleAddress uint16
}

func (mem *idleMem) IdleReturn(_ uint16, pc uint16) bool {
	return pc == mem.idleAddress
}

// step executes the next instruction and checks the number of cycles it took
func step(t *testing.T, mc *cpu.CPU, cycles int) {
	t.Helper()
	c := mc.Step()
	if c != cycles {
		t.Errorf("wrong number of cycles for instruction at %s (%d - wanted %d)", mc.PC, c, cycles)
	}
}

func assertStatus(t *testing.T, mc *cpu.CPU, status string) {
	t.Helper()
	test.ExpectEquality(t, mc.Status.String(), status)
}

// flags returns the NVZC bits of the status register
func flags(mc *cpu.CPU) uint8 {
	return mc.Status.Value() & (registers.Negative | registers.Overflow | registers.Zero | registers.Carry)
}
