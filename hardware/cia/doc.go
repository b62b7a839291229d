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

// Package cia implements the interval timers of the 6526 Complex Interface
// Adapter. The C64 has two CIA chips. The timers of CIA1 raise the IRQ line
// of the CPU and the timers of CIA2 raise the NMI line.
//
// Only the parts of the CIA that are used for music playback are emulated:
// the two timers and the interrupt control register. The I/O ports, the
// serial port and the time-of-day clock are not emulated.
package cia
