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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectFailure(t, r.IsNegative())

	r.Decrement()
	test.Equate(t, r.Value(), 0xff)
	test.ExpectSuccess(t, r.IsNegative())

	r.Increment()
	test.ExpectSuccess(t, r.IsZero())

	r.Load(0x7f)
	test.ExpectEquality(t, r.String(), "7f")
	test.ExpectEquality(t, r.Label(), "A")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	pc.Increment()
	test.Equate(t, pc.Address(), 0xffff)
	pc.Increment()
	test.Equate(t, pc.Address(), 0x0000)

	pc.Load(0x1000)
	pc.Add(-2)
	test.Equate(t, pc.Address(), 0x0ffe)
	pc.Add(0x7f)
	test.Equate(t, pc.Address(), 0x107d)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x00)
	test.Equate(t, sp.Push(), 0x0100)
	test.Equate(t, sp.Value(), 0xff)
	test.Equate(t, sp.Address(), 0x01ff)
	test.Equate(t, sp.Pull(), 0x0100)
	test.Equate(t, sp.Value(), 0x00)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "nv-bdizc")

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "nv-bdIzc")
	test.Equate(t, sr.Value(), registers.InterruptDisable|registers.Unused)

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	test.Equate(t, sr.Value(), 0xff)

	sr.FromValue(registers.Negative | registers.Carry)
	test.ExpectEquality(t, sr.String(), "Nv-bdizC")
}
