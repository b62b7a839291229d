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
	"math"

	"github.com/jetsetilly/gopher64/hardware/cia"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/hardware/sid"
	"github.com/jetsetilly/gopher64/hardware/vic"
)

// GenerateSample runs the emulation for the duration of one audio sample and
// returns the output of the left and right channels. The values are not
// clipped.
func (c *C64) GenerateSample() (int, int) {
	if c.tune == nil {
		return 0, 0
	}

	ratio := c.ins.Live.ClockRatio
	hq := c.ins.Live.HighQuality

	var total int
	if hq {
		clear(c.hq)
	}

	for c.sched.sampleCycleCnt <= ratio {
		cycles := c.step()
		c.sched.sampleCycleCnt += cycles << 4
		total += cycles

		for i, s := range c.SIDs {
			s.EmulateADSRs(cycles)
			if hq {
				w := s.EmulateHQWaves(cycles)
				c.hq[i].NonFiltered += w.NonFiltered * cycles
				c.hq[i].FilterInput += w.FilterInput * cycles
			}
		}
	}
	c.sched.sampleCycleCnt -= ratio

	if !c.ins.Live.RealSIDMode {
		c.tickTOD()
	}

	var left, right int
	for i, s := range c.SIDs {
		var out int
		if hq {
			// at high sample rates a sample can pass without an instruction
			// being executed. the previous accumulation is used again
			if total > 0 {
				s.SetAccumulated(c.hq[i].NonFiltered/total, c.hq[i].FilterInput/total)
			}
			out = s.OutputStage()
		} else {
			out = s.EmulateWaves()
		}

		if s.Channel&sid.Left == sid.Left {
			left += out
		}
		if s.Channel&sid.Right == sid.Right {
			right += out
		}
	}

	return left, right
}

// GenerateSamples fills the buffer with interleaved stereo samples. The
// number of samples generated is half the length of the buffer.
func (c *C64) GenerateSamples(buf []int16) {
	for i := 0; i+1 < len(buf); i += 2 {
		l, r := c.GenerateSample()
		buf[i] = clip(l)
		buf[i+1] = clip(r)
	}
}

func clip(v int) int16 {
	return int16(min(max(v, math.MinInt16), math.MaxInt16))
}

// step the CPU by one instruction, or by the idle cycles, and advance the
// chips. returns the number of cycles used
func (c *C64) step() int {
	if c.ins.Live.RealSIDMode {
		return c.stepReal()
	}
	return c.stepPSID()
}

// execute one instruction of the current routine. the CPU idles once the
// routine has finished
func (c *C64) execute() int {
	if c.sched.finished {
		return interruptCycles
	}

	cycles := c.CPU.Step()
	if cycles >= cpu.Idle {
		c.sched.finished = true
		return returnCycles
	}

	return cycles
}

func (c *C64) stepReal() int {
	var cycles int
	if c.CPU.ServiceInterrupts(c) {
		c.sched.finished = false
		cycles = interruptCycles
	} else {
		cycles = c.execute()
	}

	// every chip must be stepped regardless of the state of the others
	vicIRQ := c.VIC.Step(cycles)
	ciaIRQ := c.CIA1.Step(cycles)
	c.sched.irq = vicIRQ || ciaIRQ

	if c.CIA2.Step(cycles) {
		c.sched.nmi = 1
	} else {
		c.sched.nmi = 0
	}

	return cycles
}

func (c *C64) stepPSID() int {
	if c.sched.frameCycleCnt >= c.sched.frameCycles {
		c.sched.frameCycleCnt -= c.sched.frameCycles
		c.sched.frameCycles = c.currentFrameCycles()
		if c.sched.finished {
			c.callPlay()
		}
	}

	cycles := c.execute()
	c.sched.frameCycleCnt += cycles

	// tunes that poll the timer see it change
	c.CIA1.Poke(cia.TimerALo, c.CIA1.Read(cia.TimerALo)+uint8(cycles))

	c.VIC.Step(cycles)

	return cycles
}

// start the play routine. the interrupt flags are set as they would be if the
// play routine had been called by an interrupt handler
func (c *C64) callPlay() {
	c.Mem.RAM[memorymap.Port] = memorymap.PortFor(c.sched.playAddress)
	c.CPU.Reset(c.sched.playAddress)
	c.sched.finished = false

	if c.tune.UsesCIATiming(c.sched.subtune) {
		c.CIA1.Poke(cia.Interrupts, ciaFrameFlags)
	} else {
		c.VIC.Poke(vic.Interrupt, vicFrameFlags)
	}
}

// advance the time-of-day clock of CIA1 once per tenth of a second. only in
// PSID mode
func (c *C64) tickTOD() {
	c.sched.todCounter--
	if c.sched.todCounter > 0 {
		return
	}
	c.sched.todCounter = c.ins.Live.SampleRate / 10

	tenths := c.CIA1.Read(cia.TODTenths) + 1
	if tenths >= 10 {
		tenths = 0
		c.CIA1.Poke(cia.TODSeconds, c.CIA1.Read(cia.TODSeconds)+1)
	}
	c.CIA1.Poke(cia.TODTenths, tenths)
}
