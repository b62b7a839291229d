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

import "github.com/jetsetilly/gopher64/hardware/memory/cpubus"

// InterruptLines is the view of the interrupt lines needed by
// ServiceInterrupts().
type InterruptLines interface {
	// the NMI line is edge triggered. an NMI is taken when the level is
	// higher than it was on the previous call to ServiceInterrupts()
	NMILevel() int

	// the IRQ line is level triggered. an IRQ is taken for as long as the
	// line is asserted and the interrupt disable flag is clear
	IRQAsserted() bool
}

// ServiceInterrupts should be called before every call to Step(). Returns true
// if an interrupt was taken. The interrupt sequence takes 7 cycles.
func (mc *CPU) ServiceInterrupts(lines InterruptLines) bool {
	nmi := lines.NMILevel()
	defer func() {
		mc.PrevNMI = nmi
	}()

	if nmi > mc.PrevNMI {
		mc.interrupt(cpubus.NMI)
		return true
	}

	if lines.IRQAsserted() && !mc.Status.InterruptDisable {
		mc.interrupt(cpubus.IRQ)
		return true
	}

	return false
}

func (mc *CPU) interrupt(vector uint16) {
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
	mc.push(mc.Status.Value())
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.readWord(vector))
}
