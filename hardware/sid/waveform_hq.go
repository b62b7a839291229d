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

// the time stepped emulation uses the 24 bit phase accumulator of the real
// chip
const (
	hqPhaseMask     = 0xffffff
	hqPhaseMSB      = 0x800000
	hqPhaseNoiseBit = 0x100000
)

// EmulateHQWaves advances the waveform generators by the number of cycles.
// The waveforms are not shaped so this should be called often, usually after
// every CPU instruction.
//
// The returned values should be averaged over the sample period and given to
// SetAccumulated() before calling OutputStage().
func (sid *SID) EmulateHQWaves(cycles int) WaveOutput {
	var w WaveOutput

	var out uint32
	for v := range sid.voices {
		out = sid.hqWave(v, cycles)
		sid.route(v, out, &w.NonFiltered, &w.FilterInput)
	}

	sid.osc3 = uint8(out >> 8)
	sid.env3 = sid.voices[2].envelope

	return w
}

// combined waveform without smoothing
func (sid *SID) hqCombined(tbl *[4096]uint8, osc uint32) uint32 {
	return uint32(tbl[sid.combinedIndex(tbl, osc)]) << 8
}

func (sid *SID) hqWave(voice int, cycles int) uint32 {
	ch := &sid.voices[voice]
	r := sid.voiceRegs(voice)
	wf := r[Control]
	test := wf&ctrlTest == ctrlTest

	if test || (wf&ctrlSync == ctrlSync && sid.syncSourceMSBRise) {
		ch.phase = 0
	} else {
		ch.phase += sid.frequency(r) * uint32(cycles)
		if ch.phase >= hqPhaseMask+1 {
			ch.phase -= hqPhaseMask + 1
		}
	}
	ch.phase &= hqPhaseMask

	msb := ch.phase & hqPhaseMSB
	sid.syncSourceMSBRise = msb > ch.prevPhase&hqPhaseMSB

	var ring uint32
	if wf&ctrlRing == ctrlRing {
		ring = sid.ringSourceMSB
	}

	var out uint32

	switch {
	case wf&ctrlNoise == ctrlNoise:
		if ch.phase&hqPhaseNoiseBit != ch.prevPhase&hqPhaseNoiseBit {
			ch.clockNoise(test)
		}
		out = ch.noiseOutput(wf)

	case wf&ctrlPulse == ctrlPulse:
		osc := ch.phase >> 8
		if osc < sid.pulseWidth(r) && !test {
			break
		}
		out = 0xffff
		switch {
		case wf&ctrlWaveform == ctrlPulse:
		case wf&(ctrlTriangle|ctrlSawtooth) == ctrlTriangle|ctrlSawtooth:
			out = sid.hqCombined(&pulseSawTriangle, osc)
		case wf&ctrlTriangle == ctrlTriangle:
			out = sid.hqCombined(&pulseTriangle, (ch.phase^ring)>>8)
		case wf&ctrlSawtooth == ctrlSawtooth:
			out = sid.hqCombined(&pulseSawtooth, osc)
		}

	case wf&ctrlSawtooth == ctrlSawtooth:
		out = ch.phase >> 8
		if wf&ctrlTriangle == ctrlTriangle {
			out = sid.hqCombined(&sawTriangle, out)
		}

	case wf&ctrlTriangle == ctrlTriangle:
		t := ch.phase ^ ring
		if t&hqPhaseMSB == hqPhaseMSB {
			t ^= hqPhaseMask
		}
		out = t >> 7
	}

	out &= 0xffff

	if wf&ctrlWaveform != 0 {
		ch.prevWavOut = out
	} else {
		out = ch.prevWavOut
	}

	ch.prevPhase = ch.phase
	sid.ringSourceMSB = msb

	return out
}
