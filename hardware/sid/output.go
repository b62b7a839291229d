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

package sid

// SetAccumulated sets the input of the output stage. Used with the time
// stepped emulation: the values should be the averages of the values
// returned by EmulateHQWaves() over the sample period.
func (sid *SID) SetAccumulated(nonFiltered int, filterInput int) {
	sid.nonFiltered = nonFiltered
	sid.filterInput = filterInput
}

// OutputStage applies the filter and the master volume to the most recent
// waveform output and returns the attenuated sample.
func (sid *SID) OutputStage() int {
	nonFiltered := sid.nonFiltered
	filterInput := sid.filterInput

	cutoff := sid.cutoff()
	resonance := sid.regs[ResFilt] >> 4

	if sid.Model == MOS8580 {
		cutoff = cutoff8580[cutoff]
	} else {
		// the MOSFET resistance of the 6581 filter is modulated by the signal
		// passing through it
		cutoff += (filterInput * 105) >> 16
		cutoff = min(max(cutoff, 0), 0x7ff)
		cutoff = cutoff6581[cutoff]
	}

	var res int
	if sid.Model == MOS8580 {
		res = resonance8580[resonance]
	} else {
		res = resonance6581[resonance]
	}

	mode := sid.regs[ModeVol]

	var filterOutput int

	t := filterInput + ((sid.prevBandPass * res) >> 12) + sid.prevLowPass
	if mode&modeHighPass == modeHighPass {
		filterOutput -= t
	}
	sid.prevBandPass -= (t * cutoff) >> 12
	if mode&modeBandPass == modeBandPass {
		filterOutput -= sid.prevBandPass
	}
	sid.prevLowPass += (sid.prevBandPass * cutoff) >> 12
	if mode&modeLowPass == modeLowPass {
		filterOutput += sid.prevLowPass
	}

	// in real SID mode the volume register is split into a slow moving DC
	// part that sets the main volume and an AC part that is mixed in as a
	// fourth channel. digis played through the volume register are heard
	// without clicks when the volume is changed
	var volume int
	if sid.ins.Live.RealSIDMode {
		v := int(mode&modeVolume) << 12
		nonFiltered += (v - sid.prevVolume) * digiVolume
		sid.prevVolume += (v - sid.prevVolume) >> 10
		volume = sid.prevVolume >> 12
	} else {
		volume = int(mode & modeVolume)
	}

	sid.output = (nonFiltered + filterOutput) * volume

	a := sid.output
	if a < 0 {
		a = -a
	}
	sid.level += (a - sid.level) >> 10

	return sid.output / (volumeScale + sid.ins.Live.Attenuation)
}
