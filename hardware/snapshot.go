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
	"github.com/jetsetilly/gopher64/hardware/cia"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/sid"
	"github.com/jetsetilly/gopher64/hardware/vic"
)

// State stores the C64 sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
type State struct {
	CPU  *cpu.CPU
	Mem  *memory.Memory
	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA
	SIDs []*sid.SID

	sched schedule
}

// Snapshot creates a copy of a previously snapshotted C64 State.
func (s *State) Snapshot() *State {
	n := &State{
		CPU:   s.CPU.Snapshot(),
		Mem:   s.Mem.Snapshot(),
		VIC:   s.VIC.Snapshot(),
		CIA1:  s.CIA1.Snapshot(),
		CIA2:  s.CIA2.Snapshot(),
		sched: s.sched,
	}
	for _, chip := range s.SIDs {
		n.SIDs = append(n.SIDs, chip.Snapshot())
	}
	return n
}

// Snapshot the state of the C64 sub-systems.
func (c *C64) Snapshot() *State {
	s := &State{
		CPU:   c.CPU,
		Mem:   c.Mem,
		VIC:   c.VIC,
		CIA1:  c.CIA1,
		CIA2:  c.CIA2,
		SIDs:  c.SIDs,
		sched: c.sched,
	}
	return s.Snapshot()
}

// Plumb a previously snapshotted system. The state can be plumbed in more
// than once.
func (c *C64) Plumb(state *State) {
	if state == nil {
		panic("c64: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. the stored state
	// must not change as the emulation continues
	state = state.Snapshot()

	c.CPU = state.CPU
	c.Mem = state.Mem
	c.VIC = state.VIC
	c.CIA1 = state.CIA1
	c.CIA2 = state.CIA2
	c.SIDs = state.SIDs
	c.sched = state.sched

	c.Mem.Plumb(c.ins, c.VIC, c.CIA1, c.CIA2, c.SIDs)
	c.CPU.Plumb(c.Mem)

	if len(c.hq) != len(c.SIDs) {
		c.hq = make([]sid.WaveOutput, len(c.SIDs))
	}
}
