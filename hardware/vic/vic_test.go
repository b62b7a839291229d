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

package vic_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/vic"
	"github.com/jetsetilly/gopher64/test"
)

func TestRasterRow(t *testing.T) {
	v := vic.NewVIC()
	test.Equate(t, v.RasterLines, vic.PALRasterLines)
	test.Equate(t, v.RasterRowCycles, vic.PALRasterRowCycles)

	test.ExpectFailure(t, v.Step(62))
	test.Equate(t, v.RasterRow(), 0)
	test.ExpectFailure(t, v.Step(1))
	test.Equate(t, v.RasterRow(), 1)

	// remainder is carried to the next row
	v.Step(70)
	test.Equate(t, v.RasterRow(), 2)
	v.Step(56)
	test.Equate(t, v.RasterRow(), 3)
}

func TestRasterRowMSB(t *testing.T) {
	v := vic.NewVIC()

	// row 255 to row 256 sets the MSB in the control register
	v.Poke(vic.RasterRowL, 0xff)
	v.Step(vic.PALRasterRowCycles)
	test.Equate(t, v.RasterRow(), 256)
	test.Equate(t, v.Read(vic.Control), vic.RasterRowMSB)
	test.Equate(t, v.Read(vic.RasterRowL), 0x00)

	// last row wraps to row zero
	v.Poke(vic.RasterRowL, 0x37)
	test.Equate(t, v.RasterRow(), 311)
	v.Step(vic.PALRasterRowCycles)
	test.Equate(t, v.RasterRow(), 0)
	test.Equate(t, v.Read(vic.Control), 0x00)
}

func TestNTSC(t *testing.T) {
	v := vic.NewVIC()
	v.SetTiming(vic.NTSCRasterLines, vic.NTSCRasterRowCycles)

	v.Step(64)
	test.Equate(t, v.RasterRow(), 0)
	v.Step(1)
	test.Equate(t, v.RasterRow(), 1)

	for range vic.NTSCRasterLines - 1 {
		v.Step(vic.NTSCRasterRowCycles)
	}
	test.Equate(t, v.RasterRow(), 0)
}

func TestRasterInterrupt(t *testing.T) {
	v := vic.NewVIC()
	v.Write(vic.RasterRowL, 5)

	// interrupt not enabled
	for range 10 {
		test.ExpectFailure(t, v.Step(vic.PALRasterRowCycles))
	}
	test.Equate(t, v.Read(vic.Interrupt), 0x00)

	v.Reset()
	v.Write(vic.RasterRowL, 5)
	v.Write(vic.InterruptEnable, vic.RasterMatchIRQ)

	for range 4 {
		test.ExpectFailure(t, v.Step(vic.PALRasterRowCycles))
	}
	test.ExpectSuccess(t, v.Step(vic.PALRasterRowCycles))
	test.Equate(t, v.RasterRow(), 5)
	test.Equate(t, v.Read(vic.Interrupt), 0x81)

	// the flag stays set until it is acknowledged
	test.ExpectSuccess(t, v.Step(vic.PALRasterRowCycles))
	v.Acknowledge()
	test.Equate(t, v.Read(vic.Interrupt), 0x00)
	test.ExpectFailure(t, v.Step(vic.PALRasterRowCycles))
}

func TestAcknowledge(t *testing.T) {
	v := vic.NewVIC()
	v.Write(vic.Interrupt, 0x8f)
	v.Poke(vic.Interrupt, 0x8f)

	// only the IRQ and raster match bits are cleared
	v.Acknowledge()
	test.Equate(t, v.Peek(vic.Interrupt), 0x8e)
	test.Equate(t, v.Read(vic.Interrupt), 0x0e)
}

func TestMirroring(t *testing.T) {
	v := vic.NewVIC()
	v.Write(vic.NumRegisters+vic.RasterRowL, 0x42)
	test.Equate(t, v.Peek(vic.RasterRowL), 0x42)
}
