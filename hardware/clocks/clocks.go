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


// Package clocks defines the constant values that define the speed of the main
// clock in the C64.
//
// The values are the frequencies of the CPU clock in Hz. The CPU clock is
// derived from the video crystal and so differs between the PAL and NTSC
// machines.
package clocks

const (
	PAL  = 985248
	NTSC = 1022727
)

// FrameRate returns the number of frames per second for the clock and the
// number of CPU cycles in one frame.
func FrameRate(clock int, frameCycles int) float64 {
	if frameCycles == 0 {
		return 0
	}
	return float64(clock) / float64(frameCycles)
}
