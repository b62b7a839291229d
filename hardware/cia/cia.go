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

package cia

import "fmt"

// Register offsets from the CIA base address.
const (
	TimerALo   = 0x04
	TimerAHi   = 0x05
	TimerBLo   = 0x06
	TimerBHi   = 0x07
	TODTenths  = 0x08
	TODSeconds = 0x09
	Interrupts = 0x0d
	ControlA   = 0x0e
	ControlB   = 0x0f
)

// Bits in the control registers.
const (
	EnableTimer    = 0x01
	OneShot        = 0x08
	ForceLoad      = 0x10
	TimerAFromCNT  = 0x20
	TimerBInputs   = 0x60
	TimerBFromTimA = 0x40
)

// Bits in the interrupt control register.
const (
	TimerAIRQ         = 0x01
	TimerBIRQ         = 0x02
	InterruptHappened = 0x80
	SetClear          = 0x80
	interruptMask     = 0x1f
)

// NumRegisters is the size of the CIA register window. The window is mirrored
// throughout the 256 byte area of each CIA.
const NumRegisters = 0x10

// CIA implements the timers and interrupt control of a 6526.
type CIA struct {
	label string

	// registers as written by the CPU and as read by the CPU. the written
	// timer registers are the latch values and the read timer registers are
	// the counters
	wr [NumRegisters]uint8
	rd [NumRegisters]uint8
}

// NewCIA is the preferred method of initialisation for the CIA type.
func NewCIA(label string) *CIA {
	cia := &CIA{label: label}
	cia.Reset()
	return cia
}

// Reset clears all registers.
func (cia *CIA) Reset() {
	clear(cia.wr[:])
	clear(cia.rd[:])
}

// Snapshot creates a copy of the CIA in its current state.
func (cia *CIA) Snapshot() *CIA {
	n := *cia
	return &n
}

// Label returns the name of the CIA given to NewCIA().
func (cia *CIA) Label() string {
	return cia.label
}

func (cia *CIA) String() string {
	return fmt.Sprintf("%s: ta=%04x tb=%04x icr=%02x mask=%02x cra=%02x crb=%02x", cia.label,
		cia.counter(TimerALo), cia.counter(TimerBLo),
		cia.rd[Interrupts], cia.wr[Interrupts], cia.wr[ControlA], cia.wr[ControlB])
}

// Write a value to the write bank. Writes to the interrupt control register
// should be made with WriteIRQMask().
func (cia *CIA) Write(reg uint16, data uint8) {
	cia.wr[reg%NumRegisters] = data
}

// Read a value from the read bank. Reading the interrupt control register does
// not acknowledge the interrupt. Use Acknowledge() for that.
func (cia *CIA) Read(reg uint16) uint8 {
	return cia.rd[reg%NumRegisters]
}

// Peek returns the last value written to a register.
func (cia *CIA) Peek(reg uint16) uint8 {
	return cia.wr[reg%NumRegisters]
}

// Poke sets a value in the read bank directly.
func (cia *CIA) Poke(reg uint16, data uint8) {
	cia.rd[reg%NumRegisters] = data
}

// WriteIRQMask changes the interrupt mask. If bit 7 of the value is set then
// the other bits of the value are set in the mask, otherwise they are cleared.
func (cia *CIA) WriteIRQMask(data uint8) {
	if data&SetClear == SetClear {
		cia.wr[Interrupts] |= data & interruptMask
	} else {
		cia.wr[Interrupts] &^= data & interruptMask
	}
}

// Acknowledge clears the interrupt flags. On the real chip this happens when
// the interrupt control register is read.
func (cia *CIA) Acknowledge() {
	cia.rd[Interrupts] = 0x00
}

func (cia *CIA) counter(lo uint16) int {
	return int(cia.rd[lo+1])<<8 | int(cia.rd[lo])
}

func (cia *CIA) latch(lo uint16) int {
	return int(cia.wr[lo+1])<<8 | int(cia.wr[lo])
}

func (cia *CIA) setCounter(lo uint16, v int) {
	cia.rd[lo] = uint8(v)
	cia.rd[lo+1] = uint8(v >> 8)
}

// timer advances one of the two timers and returns the number of underflows.
// counting is not done when the timer is being force loaded
func (cia *CIA) timer(lo uint16, control uint16, irq uint8, decrement int) int {
	var underflows int

	if cia.wr[control]&ForceLoad == ForceLoad {
		cia.rd[lo] = cia.wr[lo]
		cia.rd[lo+1] = cia.wr[lo+1]
	} else if decrement > 0 {
		v := cia.counter(lo) - decrement
		if v <= 0 {
			v += cia.latch(lo)
			underflows++
			if cia.wr[control]&OneShot == OneShot {
				cia.wr[control] &^= EnableTimer
			}
			cia.rd[Interrupts] |= irq
			if cia.wr[Interrupts]&irq == irq {
				cia.rd[Interrupts] |= InterruptHappened
			}
		}
		cia.setCounter(lo, v)
	}

	// the force load strobe is edge sensitive. the control registers are
	// readable
	cia.wr[control] &^= ForceLoad
	cia.rd[control] = cia.wr[control]

	return underflows
}

// Step advances the timers by the number of CPU cycles. Returns true if an
// enabled interrupt has happened and not yet been acknowledged.
func (cia *CIA) Step(cycles int) bool {
	var timerA int
	if cia.wr[ControlA]&(EnableTimer|TimerAFromCNT) == EnableTimer {
		timerA = cycles
	}
	underflows := cia.timer(TimerALo, ControlA, TimerAIRQ, timerA)

	var timerB int
	if cia.wr[ControlB]&EnableTimer == EnableTimer {
		switch cia.wr[ControlB] & TimerBInputs {
		case 0x00:
			timerB = cycles
		case TimerBFromTimA:
			timerB = underflows
		}
	}
	cia.timer(TimerBLo, ControlB, TimerBIRQ, timerB)

	return cia.rd[Interrupts]&InterruptHappened == InterruptHappened
}
