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

package memory_test

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cia"
	"github.com/jetsetilly/gopher64/hardware/instance"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/addresses"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/hardware/sid"
	"github.com/jetsetilly/gopher64/hardware/vic"
	"github.com/jetsetilly/gopher64/test"
)

func newTestMemory(t *testing.T) (*memory.Memory, *instance.Instance) {
	t.Helper()
	p, err := preferences.NewPreferences(afero.NewMemMapFs())
	test.DemandSuccess(t, err)
	ins, err := instance.NewInstance(p)
	test.DemandSuccess(t, err)
	ins.Label = instance.Testing
	return memory.NewMemory(ins, vic.NewVIC(), cia.NewCIA("CIA1"), cia.NewCIA("CIA2")), ins
}

func TestInterfaces(t *testing.T) {
	mem, _ := newTestMemory(t)
	test.DemandImplements[cpubus.Memory](t, mem)
	test.DemandImplements[cpubus.StoreMemory](t, mem)
	test.DemandImplements[cpubus.IdleDetector](t, mem)
}

func TestBanking(t *testing.T) {
	mem, _ := newTestMemory(t)

	// KERNAL vectors are visible in the default configuration
	test.ExpectEquality(t, mem.ReadWord(cpubus.IRQ), addresses.IRQEntry)
	test.ExpectEquality(t, mem.ReadWord(cpubus.NMI), addresses.NMIEntry)
	test.ExpectEquality(t, mem.ReadWord(addresses.IRQVector), addresses.IRQHandler)
	test.ExpectEquality(t, mem.Read(addresses.IRQEntry), addresses.IRQEntryCode[0])

	// writes to ROM go to the RAM underneath
	mem.Write(0xa000, 0x12)
	mem.Write(0xfffe, 0x34)
	test.ExpectEquality(t, mem.Read(0xa000), 0x00)
	test.ExpectEquality(t, mem.ReadWord(cpubus.IRQ), addresses.IRQEntry)

	mem.Write(memorymap.Port, memorymap.PortAllRAM)
	test.ExpectEquality(t, mem.Read(0xa000), 0x12)
	test.ExpectEquality(t, mem.Read(0xfffe), 0x34)

	// IO is mapped out so the write goes to RAM
	mem.Write(0xd418, 0x56)
	test.ExpectEquality(t, mem.RAM[0xd418], 0x56)
}

func TestSIDMirrors(t *testing.T) {
	mem, ins := newTestMemory(t)
	sid1 := sid.NewSID(ins, sid.MOS8580, sid.Both)
	sid2 := sid.NewSID(ins, sid.MOS8580, sid.Both)
	sid3 := sid.NewSID(ins, sid.MOS8580, sid.Both)
	test.DemandSuccess(t, mem.AttachSID(0xd400, sid1))
	test.DemandSuccess(t, mem.AttachSID(0xd420, sid2))
	test.DemandSuccess(t, mem.AttachSID(0xde00, sid3))

	mem.Store(0xd418, 0x0f)
	test.ExpectEquality(t, sid1.Read(sid.ModeVol), 0x0f)
	test.ExpectEquality(t, mem.Read(0xd418), 0x0f)

	mem.Store(0xd438, 0x0e)
	test.ExpectEquality(t, sid2.Read(sid.ModeVol), 0x0e)
	test.ExpectEquality(t, sid1.Read(sid.ModeVol), 0x0f)

	// unclaimed SID addresses mirror the first SID
	mem.Store(0xd458, 0x0d)
	test.ExpectEquality(t, sid1.Read(sid.ModeVol), 0x0d)

	mem.Store(0xde18, 0x0c)
	test.ExpectEquality(t, sid3.Read(sid.ModeVol), 0x0c)

	// but the expansion area does not
	mem.Store(0xde38, 0x0b)
	test.ExpectEquality(t, sid1.Read(sid.ModeVol), 0x0d)
	test.ExpectEquality(t, mem.Read(0xde38), 0x0b)
}

func TestAttachSID(t *testing.T) {
	mem, ins := newTestMemory(t)
	s := sid.NewSID(ins, sid.MOS6581, sid.Both)

	err := mem.AttachSID(0xd410, s)
	test.ExpectSuccess(t, curated.Is(err, memory.UnsupportedSIDAddress))
	err = mem.AttachSID(0xc000, s)
	test.ExpectSuccess(t, curated.Is(err, memory.UnsupportedSIDAddress))
	test.ExpectSuccess(t, mem.AttachSID(0xd500, s))

	// without any SIDs the area is ordinary IO memory
	mem.DetachSIDs()
	mem.Store(0xd400, 0x99)
	test.ExpectEquality(t, s.Read(sid.FreqLo), 0x00)
	test.ExpectEquality(t, mem.Read(0xd400), 0x99)
}

func TestCIAAcknowledge(t *testing.T) {
	mem, ins := newTestMemory(t)

	// no side effects outside of real SID mode
	mem.CIA1.Poke(cia.Interrupts, cia.InterruptHappened|cia.TimerAIRQ)
	test.ExpectEquality(t, mem.Read(0xdc0d), 0x81)
	test.ExpectEquality(t, mem.Read(0xdc0d), 0x81)

	ins.Live.RealSIDMode = true
	test.ExpectEquality(t, mem.Read(0xdc0d), 0x81)
	test.ExpectEquality(t, mem.Read(0xdc0d), 0x00)

	// peeking never acknowledges
	mem.CIA2.Poke(cia.Interrupts, cia.InterruptHappened|cia.TimerBIRQ)
	test.ExpectEquality(t, mem.Peek(0xdd0d), 0x82)
	test.ExpectEquality(t, mem.Read(0xdd0d), 0x82)
	test.ExpectEquality(t, mem.Read(0xdd0d), 0x00)
}

func TestCIAMask(t *testing.T) {
	mem, _ := newTestMemory(t)

	mem.Store(0xdc0d, cia.SetClear|cia.TimerAIRQ|cia.TimerBIRQ)
	test.ExpectEquality(t, mem.CIA1.Peek(cia.Interrupts), 0x03)
	mem.Store(0xdc0d, cia.TimerBIRQ)
	test.ExpectEquality(t, mem.CIA1.Peek(cia.Interrupts), 0x01)

	// other registers are written normally
	mem.Store(0xdc04, 0x25)
	test.ExpectEquality(t, mem.CIA1.Peek(cia.TimerALo), 0x25)
}

func TestVICAcknowledge(t *testing.T) {
	mem, ins := newTestMemory(t)
	ins.Live.RealSIDMode = true

	mem.VIC.Poke(vic.Interrupt, vic.IRQ|vic.RasterMatchIRQ)

	// stores only acknowledge if bit 0 is set
	mem.Store(0xd019, 0x00)
	test.ExpectEquality(t, mem.Read(0xd019), 0x81)
	mem.Store(0xd019, 0x01)
	test.ExpectEquality(t, mem.Read(0xd019), 0x00)

	// the write cycle of a read-modify-write instruction always acknowledges
	mem.VIC.Poke(vic.Interrupt, vic.IRQ|vic.RasterMatchIRQ)
	mem.Write(0xd019, 0x00)
	test.ExpectEquality(t, mem.Read(0xd019), 0x00)
}

func TestIdleReturn(t *testing.T) {
	mem, ins := newTestMemory(t)

	test.ExpectSuccess(t, mem.IdleReturn(0x1003, addresses.IRQHandler))
	test.ExpectSuccess(t, mem.IdleReturn(0x1003, addresses.IRQReturn))
	test.ExpectSuccess(t, mem.IdleReturn(0x1003, addresses.IRQAcknowledge))
	test.ExpectFailure(t, mem.IdleReturn(0x1003, 0x1006))
	test.ExpectFailure(t, mem.IdleReturn(addresses.IRQHandler-2, addresses.IRQHandler))
	test.ExpectFailure(t, mem.IdleReturn(addresses.IRQEntry+6, addresses.IRQHandler))

	// tune code in RAM under the KERNAL is not the KERNAL handler
	for _, port := range []uint8{memorymap.PortIO, memorymap.PortAllRAM} {
		mem.Write(memorymap.Port, port)
		test.ExpectFailure(t, mem.IdleReturn(0x1003, addresses.IRQHandler), port)
		test.ExpectFailure(t, mem.IdleReturn(0x1003, addresses.IRQReturn), port)
	}

	mem.Write(memorymap.Port, memorymap.PortIOAndKERNAL)
	test.ExpectSuccess(t, mem.IdleReturn(0x1003, addresses.IRQHandler))

	ins.Live.RealSIDMode = true
	test.ExpectFailure(t, mem.IdleReturn(0x1003, addresses.IRQHandler))
}

func TestLoadRAM(t *testing.T) {
	mem, _ := newTestMemory(t)

	test.DemandSuccess(t, mem.LoadRAM(0x1000, []uint8{0xa9, 0x00, 0x60}))
	test.ExpectEquality(t, mem.Read(0x1002), 0x60)

	err := mem.LoadRAM(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))
}
