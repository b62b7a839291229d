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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cia"
	"github.com/jetsetilly/gopher64/hardware/instance"
	"github.com/jetsetilly/gopher64/hardware/memory/addresses"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/hardware/sid"
	"github.com/jetsetilly/gopher64/hardware/vic"
)

// Sentinel error patterns.
const (
	UnsupportedSIDAddress = "memory: unsupported SID address (%04x)"
	ProgramTooLarge       = "memory: program at %04x does not fit in memory (%d bytes)"
)

// the mirror size of a SID within the IO area
const sidWindow = 0x20

type attachedSID struct {
	origin uint16
	chip   *sid.SID
}

// Memory is the C64 memory as seen by the CPU.
type Memory struct {
	ins *instance.Instance

	RAM [0x10000]uint8

	// only the KERNAL routines listed in the addresses package are present.
	// the rest of the ROM reads as zero
	rom [0x10000]uint8

	// the parts of the IO area not used by a chip. colour RAM and the
	// expansion port
	io [0x1000]uint8

	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA

	// the first attached SID is mirrored over the whole SID area
	sids []attachedSID
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(ins *instance.Instance, v *vic.VIC, cia1 *cia.CIA, cia2 *cia.CIA) *Memory {
	mem := &Memory{
		ins:  ins,
		VIC:  v,
		CIA1: cia1,
		CIA2: cia2,
	}

	copy(mem.rom[addresses.IRQEntry:], addresses.IRQEntryCode)
	copy(mem.rom[addresses.IRQHandler:], addresses.IRQReturnCode)
	copy(mem.rom[addresses.IRQReturn:], addresses.IRQReturnCode)
	copy(mem.rom[addresses.NMIEntry:], addresses.NMIEntryCode)
	mem.rom[addresses.NMIReturn] = 0x40
	mem.rom[addresses.BRKReturn] = 0x40
	mem.putWord(mem.rom[:], cpubus.NMI, addresses.NMIEntry)
	mem.putWord(mem.rom[:], cpubus.IRQ, addresses.IRQEntry)

	mem.Reset()

	return mem
}

// Snapshot creates a copy of the memory in its current state. The copy
// refers to the same chips until Plumb() is called.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.sids = make([]attachedSID, len(mem.sids))
	copy(n.sids, mem.sids)
	return &n
}

// Plumb attaches new instances of the chips. The SIDs replace the attached
// SIDs in the order they were attached.
func (mem *Memory) Plumb(ins *instance.Instance, v *vic.VIC, cia1 *cia.CIA, cia2 *cia.CIA, sids []*sid.SID) {
	mem.ins = ins
	mem.VIC = v
	mem.CIA1 = cia1
	mem.CIA2 = cia2
	for i := range min(len(mem.sids), len(sids)) {
		mem.sids[i].chip = sids[i]
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("port=%02x sids=%d", mem.Port(), len(mem.sids))
}

func (mem *Memory) putWord(b []uint8, address uint16, data uint16) {
	b[address] = uint8(data)
	b[address+1] = uint8(data >> 8)
}

// Reset clears RAM and the IO area and sets the processor port and the RAM
// vectors to their power-on values. Attached chips are not reset.
func (mem *Memory) Reset() {
	clear(mem.RAM[:])
	clear(mem.io[:])
	mem.RAM[memorymap.PortDirection] = memorymap.PortDirectionDefault
	mem.RAM[memorymap.Port] = memorymap.PortDefault
	mem.putWord(mem.RAM[:], addresses.IRQVector, addresses.IRQHandler)
	mem.putWord(mem.RAM[:], addresses.BRKVector, addresses.BRKReturn)
	mem.putWord(mem.RAM[:], addresses.NMIVector, addresses.NMIReturn)
}

// AttachSID places a SID chip at the address. The first SID attached is
// mirrored over all of the SID area not claimed by another SID.
func (mem *Memory) AttachSID(origin uint16, chip *sid.SID) error {
	if origin&(sidWindow-1) != 0 {
		return curated.Errorf(UnsupportedSIDAddress, origin)
	}
	if !(origin >= memorymap.OriginSID && origin <= memorymap.MemtopSID) &&
		!(origin >= memorymap.OriginExpander && origin <= memorymap.MemtopExpander) {
		return curated.Errorf(UnsupportedSIDAddress, origin)
	}
	mem.sids = append(mem.sids, attachedSID{origin: origin, chip: chip})
	return nil
}

// DetachSIDs removes all SID chips from the memory.
func (mem *Memory) DetachSIDs() {
	mem.sids = mem.sids[:0]
}

// Port returns the current value of the processor port.
func (mem *Memory) Port() uint8 {
	return mem.RAM[memorymap.Port]
}

// LoadRAM copies data into RAM at the address.
func (mem *Memory) LoadRAM(address uint16, data []uint8) error {
	if int(address)+len(data) > len(mem.RAM) {
		return curated.Errorf(ProgramTooLarge, address, len(data))
	}
	copy(mem.RAM[address:], data)
	return nil
}

// ReadWord returns the little endian word at the address. There are no side
// effects.
func (mem *Memory) ReadWord(address uint16) uint16 {
	return uint16(mem.Peek(address)) | uint16(mem.Peek(address+1))<<8
}

// the SID at the address. the second return value is the register
func (mem *Memory) sidAt(address uint16) (*sid.SID, uint8) {
	base := address &^ (sidWindow - 1)
	for _, s := range mem.sids {
		if s.origin == base {
			return s.chip, uint8(address - base)
		}
	}
	if address <= memorymap.MemtopSID && len(mem.sids) > 0 {
		return mem.sids[0].chip, uint8(address - base)
	}
	return nil, 0
}

// Peek returns the value at the address without side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	switch memorymap.MapAddress(address, mem.Port(), true) {
	case memorymap.IO:
		return mem.readIO(address, false)
	case memorymap.BASIC, memorymap.KERNAL:
		return mem.rom[address]
	}
	return mem.RAM[address]
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	switch memorymap.MapAddress(address, mem.Port(), true) {
	case memorymap.IO:
		return mem.readIO(address, mem.ins.Live.RealSIDMode)
	case memorymap.BASIC, memorymap.KERNAL:
		return mem.rom[address]
	}
	return mem.RAM[address]
}

func (mem *Memory) readIO(address uint16, sideEffects bool) uint8 {
	switch {
	case address <= memorymap.MemtopVIC:
		return mem.VIC.Read(address)

	case address <= memorymap.MemtopSID:
		if chip, reg := mem.sidAt(address); chip != nil {
			return chip.Read(reg)
		}

	case address <= memorymap.MemtopColour:

	case address <= memorymap.MemtopCIA1:
		return mem.readCIA(mem.CIA1, address, sideEffects)

	case address <= memorymap.MemtopCIA2:
		return mem.readCIA(mem.CIA2, address, sideEffects)

	default:
		if chip, reg := mem.sidAt(address); chip != nil {
			return chip.Read(reg)
		}
	}

	return mem.io[address-memorymap.OriginIO]
}

func (mem *Memory) readCIA(c *cia.CIA, address uint16, sideEffects bool) uint8 {
	v := c.Read(address)
	if sideEffects && address%cia.NumRegisters == cia.Interrupts {
		c.Acknowledge()
	}
	return v
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.write(address, data, false)
}

// Store is an implementation of cpubus.StoreMemory.
func (mem *Memory) Store(address uint16, data uint8) {
	mem.write(address, data, true)
}

func (mem *Memory) write(address uint16, data uint8, store bool) {
	if memorymap.MapAddress(address, mem.Port(), false) != memorymap.IO {
		mem.RAM[address] = data
		return
	}

	switch {
	case address <= memorymap.MemtopVIC:
		mem.VIC.Write(address, data)
		if mem.ins.Live.RealSIDMode && address%vic.NumRegisters == vic.Interrupt {
			if !store || data&vic.RasterMatchIRQ == vic.RasterMatchIRQ {
				mem.VIC.Acknowledge()
			}
		}
		return

	case address <= memorymap.MemtopSID:
		if chip, reg := mem.sidAt(address); chip != nil {
			chip.Write(reg, data)
			return
		}

	case address <= memorymap.MemtopColour:

	case address <= memorymap.MemtopCIA1:
		mem.writeCIA(mem.CIA1, address, data)
		return

	case address <= memorymap.MemtopCIA2:
		mem.writeCIA(mem.CIA2, address, data)
		return

	default:
		if chip, reg := mem.sidAt(address); chip != nil {
			chip.Write(reg, data)
			return
		}
	}

	mem.io[address-memorymap.OriginIO] = data
}

func (mem *Memory) writeCIA(c *cia.CIA, address uint16, data uint8) {
	if address%cia.NumRegisters == cia.Interrupts {
		c.WriteIRQMask(data)
		return
	}
	c.Write(address, data)
}

// IdleReturn is an implementation of cpubus.IdleDetector. In PSID mode a jump
// from outside the KERNAL to the end of the KERNAL interrupt handler means the
// play routine has finished. The KERNAL must be banked in.
func (mem *Memory) IdleReturn(prevPC uint16, pc uint16) bool {
	if mem.ins.Live.RealSIDMode {
		return false
	}

	switch pc {
	case addresses.IRQHandler, addresses.IRQReturn, addresses.IRQAcknowledge:
	default:
		return false
	}

	if !memorymap.IsArea(pc, mem.Port(), memorymap.KERNAL) {
		return false
	}

	return prevPC < memorymap.OriginKERNAL
}
