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

import (
	"fmt"

	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
)

// Sentinel values returned by Step() instead of a cycle count. Both values
// are larger than the cycle count of any instruction.
const (
	// an RTS was executed with an empty stack. the routine called by the
	// host has finished
	SubroutineReturned = 0xff

	// an interrupt routine has returned to an idle main program
	Idle = 0xfe
)

// CPU implements the 6510 found in the Commodore 64.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// the NMI level seen by the previous call to ServiceInterrupts(). the NMI
	// line is edge triggered
	PrevNMI int

	// Returned is set when Step() returns SubroutineReturned. it is not
	// cleared by Reset() because it describes the state of the tune and not
	// the state of the CPU. once set, an RTI that leaves the stack empty will
	// cause Step() to return Idle
	Returned bool

	mem   cpubus.Memory
	store cpubus.StoreMemory
	idle  cpubus.IdleDetector

	// state of the instruction being executed. the effective address is not
	// reset between instructions. opcodes that have no addressing mode see
	// the address of the previous instruction
	opcode   uint8
	prevPC   uint16
	address  uint16
	cycles   int
	samePage int
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0xff),
		Status: registers.NewStatusRegister(),
	}
	mc.Plumb(mem)
	mc.Reset(0)
	return mc
}

// Plumb a new memory implementation into the CPU. The optional StoreMemory and
// IdleDetector interfaces are detected here.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
	mc.store, _ = mem.(cpubus.StoreMemory)
	mc.idle, _ = mem.(cpubus.IdleDetector)
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset initialises the registers to their power-on values and sets the
// program counter to the specified address.
func (mc *CPU) Reset(pc uint16) {
	mc.PC.Load(pc)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.PrevNMI = 0
}

func (mc *CPU) read(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

// the store instructions use StoreMemory if it is available
func (mc *CPU) storeValue(address uint16, data uint8) {
	if mc.store != nil {
		mc.store.Store(address, data)
		return
	}
	mc.mem.Write(address, data)
}

func (mc *CPU) push(data uint8) {
	mc.write(mc.SP.Push(), data)
}

func (mc *CPU) pull() uint8 {
	return mc.read(mc.SP.Pull())
}

// the program counter value that is pushed by JSR and BRK. at the point of
// the push the program counter is one byte beyond the opcode
func (mc *CPU) pushReturn() {
	ret := mc.PC.Address() + 1
	mc.push(uint8(ret >> 8))
	mc.push(uint8(ret))
}

func (mc *CPU) readWord(address uint16) uint16 {
	return uint16(mc.read(address)) | uint16(mc.read(address+1))<<8
}

func (mc *CPU) setNZ(v uint8) {
	mc.Status.Negative = v&0x80 == 0x80
	mc.Status.Zero = v == 0
}

func (mc *CPU) carry() int {
	if mc.Status.Carry {
		return 1
	}
	return 0
}
