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

package vic

import "fmt"

// Register offsets from the VIC base address.
const (
	Control         = 0x11
	RasterRowL      = 0x12
	SpriteEnable    = 0x15
	Interrupt       = 0x19
	InterruptEnable = 0x1a
)

// Bits in the Control register.
const (
	RasterRowMSB  = 0x80
	DisplayEnable = 0x10
	Rows          = 0x08
	YScrollMask   = 0x07
)

// Bits in the Interrupt and InterruptEnable registers.
const (
	IRQ              = 0x80
	RasterMatchIRQ   = 0x01
	interruptPending = IRQ | RasterMatchIRQ
)

// NumRegisters is the size of the VIC register window. The window is mirrored
// throughout the $d000 to $d3ff area.
const NumRegisters = 0x40

// Raster timing for the two television standards.
const (
	PALRasterLines      = 312
	PALRasterRowCycles  = 63
	NTSCRasterLines     = 263
	NTSCRasterRowCycles = 65
)

// VIC implements the raster timer of the VIC-II.
type VIC struct {
	// registers as written by the CPU and as read by the CPU
	wr [NumRegisters]uint8
	rd [NumRegisters]uint8

	RasterLines     int
	RasterRowCycles int

	// cycles accumulated since the last raster row change
	rowCycleCnt int
}

// NewVIC is the preferred method of initialisation for the VIC type. Timing
// defaults to PAL.
func NewVIC() *VIC {
	vic := &VIC{}
	vic.SetTiming(PALRasterLines, PALRasterRowCycles)
	vic.Reset()
	return vic
}

// Reset clears all registers and the cycle accumulator. Timing is unchanged.
func (vic *VIC) Reset() {
	clear(vic.wr[:])
	clear(vic.rd[:])
	vic.rowCycleCnt = 0
}

// Snapshot creates a copy of the VIC in its current state.
func (vic *VIC) Snapshot() *VIC {
	n := *vic
	return &n
}

// SetTiming sets the number of raster lines in a frame and the number of CPU
// cycles in a raster line.
func (vic *VIC) SetTiming(lines int, rowCycles int) {
	vic.RasterLines = lines
	vic.RasterRowCycles = rowCycles
}

func (vic *VIC) String() string {
	return fmt.Sprintf("row=%03d cmp=%03d irq=%02x en=%02x",
		vic.RasterRow(), vic.compareRow(), vic.rd[Interrupt], vic.wr[InterruptEnable])
}

// Write a value to the write bank. The register is masked to the size of the
// register window.
func (vic *VIC) Write(reg uint16, data uint8) {
	vic.wr[reg%NumRegisters] = data
}

// Read a value from the read bank.
func (vic *VIC) Read(reg uint16) uint8 {
	return vic.rd[reg%NumRegisters]
}

// Peek returns the last value written to a register.
func (vic *VIC) Peek(reg uint16) uint8 {
	return vic.wr[reg%NumRegisters]
}

// Poke sets a value in the read bank directly.
func (vic *VIC) Poke(reg uint16, data uint8) {
	vic.rd[reg%NumRegisters] = data
}

// RasterRow returns the current raster row as seen by the CPU.
func (vic *VIC) RasterRow() int {
	return int(vic.rd[Control]&RasterRowMSB)<<1 | int(vic.rd[RasterRowL])
}

func (vic *VIC) setRasterRow(row int) {
	vic.rd[Control] = vic.rd[Control]&^RasterRowMSB | uint8((row&0x100)>>1)
	vic.rd[RasterRowL] = uint8(row)
}

// the row at which the raster interrupt is raised, as written by the CPU
func (vic *VIC) compareRow() int {
	return int(vic.wr[Control]&RasterRowMSB)<<1 | int(vic.wr[RasterRowL])
}

// Step advances the raster by the number of CPU cycles. Returns true if the
// IRQ flag in the interrupt register is set.
func (vic *VIC) Step(cycles int) bool {
	vic.rowCycleCnt += cycles

	if vic.rowCycleCnt >= vic.RasterRowCycles {
		vic.rowCycleCnt -= vic.RasterRowCycles

		row := vic.RasterRow() + 1
		if row >= vic.RasterLines {
			row = 0
		}
		vic.setRasterRow(row)

		if vic.wr[InterruptEnable]&RasterMatchIRQ == RasterMatchIRQ && row == vic.compareRow() {
			vic.rd[Interrupt] |= interruptPending
		}
	}

	return vic.rd[Interrupt]&IRQ == IRQ
}

// Acknowledge the raster interrupt. The IRQ flag and the raster match flag are
// cleared.
func (vic *VIC) Acknowledge() {
	vic.wr[Interrupt] &^= RasterMatchIRQ
	vic.rd[Interrupt] &^= interruptPending
}
