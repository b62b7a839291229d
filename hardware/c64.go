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


package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cia"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/instance"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/addresses"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/hardware/sid"
	"github.com/jetsetilly/gopher64/hardware/vic"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/sidfile"
)

// Sentinel error patterns.
const (
	UnsupportedTune   = "c64: unsupported tune (%s)"
	TuneOverlapsStack = "c64: tune overlaps zero page or stack (%04x)"
	TuneOverlapsIO    = "c64: tune overlaps IO area (%04x to %04x)"
	LoadError         = "c64: %v"
)

// the maximum number of instructions the init routine of a PSID tune is
// allowed before it is abandoned
const initTimeout = 10000000

// cycles used by the interrupt sequence. the same number of cycles is used
// for each step while the CPU is idle
const interruptCycles = 7

// cycles used by the RTS that ends a routine
const returnCycles = 6

// values for CIA1 timer A that give a 50Hz or 60Hz frame
const (
	ciaLatchPAL  = 0x4025
	ciaLatchNTSC = 0x4295
)

// the interrupt flags set in PSID mode at the start of every frame
const (
	vicFrameFlags = vic.IRQ | vic.RasterMatchIRQ
	ciaFrameFlags = cia.InterruptHappened | cia.TimerAIRQ | cia.TimerBIRQ
)

// the CIA interrupt mask for the timer A interrupt
const ciaTimerAMask = cia.SetClear | cia.TimerAIRQ

// schedule is the part of the C64 state that is not held by a chip.
type schedule struct {
	// the subtune being played, numbered from one
	subtune int

	// the play routine called at the start of each frame in PSID mode
	playAddress uint16

	// the init or play routine has finished and the CPU is idle
	finished bool

	frameCycles    int
	frameCycleCnt  int
	sampleCycleCnt int

	// interrupt lines as set by the chips after the previous instruction
	irq bool
	nmi int

	// samples until the next tick of the time-of-day clock
	todCounter int
}

// C64 struct is the main container for the emulated components of the C64.
type C64 struct {
	ins *instance.Instance

	CPU  *cpu.CPU
	Mem  *memory.Memory
	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA

	// one to three SIDs depending on the loaded tune
	SIDs []*sid.SID

	tune  *sidfile.Tune
	sched schedule

	// waveform outputs accumulated over one sample in high quality mode. one
	// entry per SID
	hq []sid.WaveOutput

	// the state of the C64 after the init routine of the tune has been run
	initState *State
}

// NewC64 creates a new C64 and everything associated with the hardware. If
// the instance argument is nil then a new instance is created with the
// preferences file on disk.
func NewC64(ins *instance.Instance) (*C64, error) {
	var err error

	if ins == nil {
		ins, err = instance.NewInstance(nil)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
	}

	c := &C64{
		ins:  ins,
		VIC:  vic.NewVIC(),
		CIA1: cia.NewCIA("CIA1"),
		CIA2: cia.NewCIA("CIA2"),
	}
	c.Mem = memory.NewMemory(ins, c.VIC, c.CIA1, c.CIA2)
	c.CPU = cpu.NewCPU(c.Mem)

	c.Reset()

	return c, nil
}

func (c *C64) String() string {
	s := strings.Builder{}
	s.WriteString(c.CPU.String())
	s.WriteString("\n")
	s.WriteString(c.VIC.String())
	s.WriteString("\n")
	s.WriteString(c.CIA1.String())
	s.WriteString("\n")
	s.WriteString(c.CIA2.String())
	for i, chip := range c.SIDs {
		s.WriteString(fmt.Sprintf("\nSID%d: %s", i+1, chip.String()))
	}
	return s.String()
}

// Instance returns the instance the C64 was created with.
func (c *C64) Instance() *instance.Instance {
	return c.ins
}

// Tune returns the loaded tune and the subtune being played. The tune is nil
// if no tune has been loaded.
func (c *C64) Tune() (*sidfile.Tune, int) {
	return c.tune, c.sched.subtune
}

// Reset all chips and memory. The loaded tune is forgotten.
func (c *C64) Reset() {
	c.VIC.Reset()
	c.CIA1.Reset()
	c.CIA2.Reset()
	c.Mem.Reset()
	c.Mem.DetachSIDs()
	c.CPU.Reset(0)
	c.SIDs = c.SIDs[:0]
	c.hq = c.hq[:0]
	c.tune = nil
	c.initState = nil
	c.sched = schedule{finished: true}
}

// NMILevel implements the cpu.InterruptLines interface.
func (c *C64) NMILevel() int {
	return c.sched.nmi
}

// IRQAsserted implements the cpu.InterruptLines interface.
func (c *C64) IRQAsserted() bool {
	return c.sched.irq
}

// LoadTune resets the C64 and prepares the subtune for playback. Subtunes are
// numbered from one. A subtune of zero selects the start song of the tune.
//
// In PSID mode the init routine of the tune is run to completion before the
// function returns. In real SID mode the init routine is run as part of the
// normal sample generation.
func (c *C64) LoadTune(tune *sidfile.Tune, subtune int) error {
	if subtune == 0 {
		subtune = tune.StartSong
	}
	if err := tune.CheckSubtune(subtune); err != nil {
		return curated.Errorf(LoadError, err)
	}
	if err := c.checkLayout(tune); err != nil {
		return err
	}

	realMode := tune.IsRSID() || (c.ins.Prefs.RealSIDMode.Get().(bool) && tune.PlayAddress == 0)
	if !realMode && c.ins.Prefs.RealSIDMode.Get().(bool) {
		logger.Logf(c.ins, "c64", "real SID mode not possible for PSID tunes with a play address")
	}

	c.Reset()

	c.ins.UpdateLive(tune.IsNTSC())
	c.ins.Live.RealSIDMode = realMode

	if err := c.attachSIDs(tune); err != nil {
		return err
	}

	if c.ins.Live.NTSC {
		c.VIC.SetTiming(vic.NTSCRasterLines, vic.NTSCRasterRowCycles)
		c.setCIALatch(ciaLatchNTSC)
	} else {
		c.VIC.SetTiming(vic.PALRasterLines, vic.PALRasterRowCycles)
		c.setCIALatch(ciaLatchPAL)
	}

	if realMode {
		c.CIA1.Write(cia.ControlA, cia.EnableTimer|cia.ForceLoad)
		c.CIA1.WriteIRQMask(ciaTimerAMask)
	}

	if err := c.Mem.LoadRAM(tune.LoadAddress, tune.Data); err != nil {
		return curated.Errorf(LoadError, err)
	}

	if realMode {
		c.Mem.RAM[memorymap.Port] = memorymap.PortDefault
	} else {
		c.Mem.RAM[memorymap.Port] = memorymap.PortFor(tune.InitAddress)
	}

	c.tune = tune
	c.sched.subtune = subtune
	c.sched.todCounter = c.ins.Live.SampleRate / 10

	c.CPU.Reset(tune.InitAddress)
	c.CPU.A.Load(uint8(subtune - 1))
	c.CPU.Returned = false
	c.sched.finished = false

	if !realMode {
		c.runInit()
		c.sched.playAddress = c.resolvePlayAddress()
		c.sched.frameCycles = c.currentFrameCycles()

		// the play routine is called on the first step
		c.sched.finished = true
		c.sched.frameCycleCnt = c.sched.frameCycles
	}

	logger.Logf(c.ins, "c64", "%s: subtune %d of %d", tune.Name, subtune, tune.Songs)
	if realMode {
		logger.Logf(c.ins, "c64", "real SID mode")
	} else {
		timing := "VIC"
		if tune.UsesCIATiming(subtune) {
			timing = "CIA"
		}
		logger.Logf(c.ins, "c64", "%s timing (%.2fHz): play routine at %04x", timing,
			clocks.FrameRate(c.ins.Live.ClockFrequency, c.sched.frameCycles), c.sched.playAddress)
	}

	c.initState = c.Snapshot()

	return nil
}

// Restart the subtune from the state immediately after the init routine was
// run. Does nothing if no tune has been loaded.
func (c *C64) Restart() {
	if c.initState == nil {
		return
	}
	c.Plumb(c.initState)
}

// the tune formats that are not supported and program layouts that cannot be
// loaded
func (c *C64) checkLayout(tune *sidfile.Tune) error {
	if tune.Flags&sidfile.FlagMUSPlayer == sidfile.FlagMUSPlayer {
		return curated.Errorf(UnsupportedTune, "MUS player required")
	}
	if tune.IsRSID() && tune.Flags&sidfile.FlagBASIC == sidfile.FlagBASIC {
		return curated.Errorf(UnsupportedTune, "BASIC program")
	}

	if tune.LoadAddress <= memorymap.MemtopStack {
		return curated.Errorf(TuneOverlapsStack, tune.LoadAddress)
	}

	// RSID tunes are played with the IO area mapped in. loading over the IO
	// area is allowed in PSID mode because the processor port is chosen from
	// the init and play addresses
	end := tune.LoadEnd() - 1
	if tune.IsRSID() && int(tune.LoadAddress) <= int(memorymap.MemtopIO) && end >= int(memorymap.OriginIO) {
		return curated.Errorf(TuneOverlapsIO, tune.LoadAddress, end)
	}

	return nil
}

// the SID model for the SID number. the preference takes priority over the
// model in the tune
func (c *C64) sidModel(tune *sidfile.Tune, n int) sid.Model {
	var pref *prefs.String
	switch n {
	case 0:
		pref = &c.ins.Prefs.SID1Model
	case 1:
		pref = &c.ins.Prefs.SID2Model
	default:
		pref = &c.ins.Prefs.SID3Model
	}

	switch strings.ToUpper(pref.String()) {
	case preferences.Model6581:
		return sid.MOS6581
	case preferences.Model8580:
		return sid.MOS8580
	}

	if m, ok := tune.Model(n); ok {
		return m
	}
	if m, ok := tune.Model(0); ok {
		return m
	}
	return sid.MOS8580
}

// the stereo position of each SID for the number of SIDs
var channels = [][]sid.OutputChannel{
	{sid.Both},
	{sid.Left, sid.Right},
	{sid.Left, sid.Right, sid.Both},
}

func (c *C64) attachSIDs(tune *sidfile.Tune) error {
	var origins []uint16
	for _, a := range tune.SIDAddress {
		if a != 0 {
			origins = append(origins, a)
		}
	}

	for i, origin := range origins {
		chip := sid.NewSID(c.ins, c.sidModel(tune, i), channels[len(origins)-1][i])
		if err := c.Mem.AttachSID(origin, chip); err != nil {
			return curated.Errorf(LoadError, err)
		}
		c.SIDs = append(c.SIDs, chip)
		c.hq = append(c.hq, sid.WaveOutput{})
		logger.Logf(c.ins, "c64", "SID%d: %s at %04x", i+1, chip.Model, origin)
	}

	return nil
}

// set the latch and the counter of CIA1 timer A
func (c *C64) setCIALatch(v uint16) {
	c.CIA1.Write(cia.TimerALo, uint8(v))
	c.CIA1.Write(cia.TimerAHi, uint8(v>>8))
	c.CIA1.Poke(cia.TimerALo, uint8(v))
	c.CIA1.Poke(cia.TimerAHi, uint8(v>>8))
}

// run the init routine of a PSID tune until it returns
func (c *C64) runInit() {
	for range initTimeout {
		cycles := c.CPU.Step()
		if cycles >= cpu.Idle {
			return
		}
		c.VIC.Step(cycles)
	}
	logger.Logf(c.ins, "c64", "init routine at %04x did not return after %d instructions",
		c.tune.InitAddress, initTimeout)
}

// a play address of zero means the init routine installed an interrupt
// handler. the handler is called directly
func (c *C64) resolvePlayAddress() uint16 {
	if c.tune.PlayAddress != 0 {
		return c.tune.PlayAddress
	}

	ram := c.Mem.RAM[:]
	if c.Mem.Port()&0x03 < 0x02 {
		return uint16(ram[cpubus.IRQ]) | uint16(ram[cpubus.IRQ+1])<<8
	}
	return uint16(ram[addresses.IRQVector]) | uint16(ram[addresses.IRQVector+1])<<8
}

// the number of cycles in a frame for the current subtune. in PSID mode the
// tune can change the CIA latch to alter the speed of playback
func (c *C64) currentFrameCycles() int {
	if c.tune != nil && c.tune.UsesCIATiming(c.sched.subtune) {
		l := int(c.CIA1.Peek(cia.TimerAHi))<<8 | int(c.CIA1.Peek(cia.TimerALo))
		if l > 0 {
			return l
		}
		if c.ins.Live.NTSC {
			return ciaLatchNTSC
		}
		return ciaLatchPAL
	}
	return c.VIC.RasterLines * c.VIC.RasterRowCycles
}
