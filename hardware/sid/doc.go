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

// Package sid emulates the 6581 and 8580 Sound Interface Device chips.
//
// Each SID has three voices. Each voice has a waveform generator and an
// envelope generator. The output of each voice is routed either through the
// shared multimode filter or directly to the output mixer.
//
// The envelope generators are advanced with EmulateADSRs() on every CPU
// instruction. The waveform generators can be emulated in one of two ways:
//
// EmulateWaves() is called once per output sample. The phase accumulators are
// advanced by the number of CPU cycles in a sample period. Aliasing is reduced
// by shaping the edges of the pulse and sawtooth waveforms according to the
// frequency of the voice. The result of the output stage is returned.
//
// EmulateHQWaves() is called on every CPU instruction with the number of
// cycles that the instruction took. The waveforms are not shaped because the
// sampling rate is high enough. The host is expected to average the returned
// values over a sample period, pass them to SetAccumulated() and then call
// OutputStage().
//
// Tables for the combined waveforms, the 6581 envelope DAC and the filter are
// created when the package is initialised. They are calculated from models of
// the chip's analogue behaviour rather than from sampled data, so output
// approximates a sampled-table player closely but is not bit-exact. The
// envelope rate and exponent tables are exact.
package sid
