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

package cia_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cia"
	"github.com/jetsetilly/gopher64/test"
)

func TestIRQMask(t *testing.T) {
	c := cia.NewCIA("CIA1")
	c.WriteIRQMask(0x83)
	test.Equate(t, c.Peek(cia.Interrupts), 0x03)
	c.WriteIRQMask(0x01)
	test.Equate(t, c.Peek(cia.Interrupts), 0x02)
	c.WriteIRQMask(0xff)
	test.Equate(t, c.Peek(cia.Interrupts), 0x1f)
}

func TestTimerA(t *testing.T) {
	c := cia.NewCIA("CIA1")
	c.Write(cia.TimerALo, 100)
	c.Write(cia.TimerAHi, 0)
	c.Write(cia.ControlA, cia.ForceLoad|cia.EnableTimer)

	// the force load does not count
	test.ExpectFailure(t, c.Step(10))
	test.Equate(t, c.Read(cia.TimerALo), 100)
	test.Equate(t, c.Read(cia.ControlA), cia.EnableTimer)

	test.ExpectFailure(t, c.Step(50))
	test.Equate(t, c.Read(cia.TimerALo), 50)

	// underflow without the interrupt enabled sets the flag but does not
	// raise the interrupt
	test.ExpectFailure(t, c.Step(50))
	test.Equate(t, c.Read(cia.TimerALo), 100)
	test.Equate(t, c.Read(cia.Interrupts), cia.TimerAIRQ)

	c.Acknowledge()
	c.WriteIRQMask(cia.SetClear | cia.TimerAIRQ)
	test.ExpectFailure(t, c.Step(60))
	test.ExpectSuccess(t, c.Step(60))
	test.Equate(t, c.Read(cia.Interrupts), cia.InterruptHappened|cia.TimerAIRQ)
	test.Equate(t, c.Read(cia.TimerALo), 80)

	// interrupt stays until acknowledged
	test.ExpectSuccess(t, c.Step(2))
	c.Acknowledge()
	test.ExpectFailure(t, c.Step(2))
}

func TestOneShot(t *testing.T) {
	c := cia.NewCIA("CIA2")
	c.Write(cia.TimerALo, 10)
	c.Write(cia.ControlA, cia.ForceLoad|cia.EnableTimer|cia.OneShot)
	c.WriteIRQMask(cia.SetClear | cia.TimerAIRQ)
	c.Step(1)

	test.ExpectSuccess(t, c.Step(10))
	test.Equate(t, c.Peek(cia.ControlA)&cia.EnableTimer, 0)

	c.Acknowledge()
	for range 10 {
		test.ExpectFailure(t, c.Step(10))
	}
	test.Equate(t, c.Read(cia.TimerALo), 10)
}

func TestTimerBFromTimerA(t *testing.T) {
	c := cia.NewCIA("CIA1")
	c.Write(cia.TimerALo, 10)
	c.Write(cia.TimerBLo, 2)
	c.Write(cia.ControlA, cia.ForceLoad|cia.EnableTimer)
	c.Write(cia.ControlB, cia.ForceLoad|cia.EnableTimer|cia.TimerBFromTimA)
	c.WriteIRQMask(cia.SetClear | cia.TimerBIRQ)
	c.Step(1)

	test.ExpectFailure(t, c.Step(10))
	test.Equate(t, c.Read(cia.TimerBLo), 1)
	test.ExpectSuccess(t, c.Step(10))
	test.Equate(t, c.Read(cia.TimerBLo), 2)
	test.Equate(t, c.Read(cia.Interrupts), cia.InterruptHappened|cia.TimerAIRQ|cia.TimerBIRQ)
}

func TestTimerB(t *testing.T) {
	c := cia.NewCIA("CIA1")
	c.Write(cia.TimerBLo, 0x00)
	c.Write(cia.TimerBHi, 0x01)
	c.Write(cia.ControlB, cia.ForceLoad|cia.EnableTimer)
	c.Step(7)
	c.Step(7)
	test.Equate(t, c.Read(cia.TimerBHi), 0x00)
	test.Equate(t, c.Read(cia.TimerBLo), 0xf9)

	// timer A is not running
	test.Equate(t, c.Read(cia.TimerALo), 0x00)
}
