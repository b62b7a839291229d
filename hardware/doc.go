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


// Package hardware is the base package for the C64 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The C64 type is the root of the emulation and contains external references
// to all the C64 sub-systems. From here, the emulation can either be started
// to generate audio samples with GenerateSample() or GenerateSamples().
//
// A tune must be loaded with LoadTune() before any samples are generated. A
// C64 with no tune produces silence.
//
// # Scheduling
//
// Samples are generated on demand. For each sample the CPU is stepped until
// the number of cycles for one sample, the ClockRatio field in the live
// preferences, has been used. The envelope generators of each SID are
// advanced by the number of cycles of every instruction and the waveforms are
// generated once per sample. In high quality mode the waveforms are also
// generated for every instruction and averaged over the sample.
//
// Tunes are played in one of two modes. In PSID mode the play routine is
// called at the start of every frame and the CPU idles once it has returned.
// The length of a frame is determined by the VIC raster or by the CIA timer,
// depending on the speed field of the tune.
//
// In real SID mode the interrupt lines of the VIC and the CIAs are serviced
// before every instruction. Tunes in this mode install their own interrupt
// handlers in the same way as they would on real hardware. RSID tunes always
// play in real SID mode.
package hardware
