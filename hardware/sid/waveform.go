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

// the phase accumulator of the frame synchronous emulation has four more bits
// of precision than the real SID. the extra bits hold the fractional part of
// the clock ratio
const (
	phaseMask     = 0xfffffff
	phaseMSB      = 0x8000000
	phaseNoiseBit = 0x1000000
)

// clock the noise generator shift register. the test bit fills the register
// with ones
func (ch *channel) clockNoise(test bool) {
	feedback := uint32(0)
	if (ch.noise&0x400000)^((ch.noise&0x20000)<<5) != 0 {
		feedback = 1
	}
	ch.noise = (ch.noise << 1) | feedback
	if test {
		ch.noise |= 1
	}
	ch.noise &= 0x7fffff
}

// the output of the noise generator is taken from eight bits of the shift
// register. noise combined with any other waveform is silent
func (ch *channel) noiseOutput(wf uint8) uint32 {
	if wf&(ctrlPulse|ctrlSawtooth|ctrlTriangle) != 0 {
		return 0
	}
	n := ch.noise
	return ((n & 0x100000) >> 5) | ((n & 0x40000) >> 4) | ((n & 0x4000) >> 1) | ((n & 0x800) << 1) |
		((n & 0x200) << 2) | ((n & 0x20) << 5) | ((n & 0x04) << 7) | ((n & 0x01) << 8)
}

// the 6581 combined waveforms are silent in the top half of the oscillator,
// except for pulse+triangle
func (sid *SID) combinedIndex(tbl *[4096]uint8, osc uint32) uint32 {
	osc &= 0xffff
	if sid.Model == MOS6581 && tbl != &pulseTriangle {
		osc &= 0x7fff
	}
	return osc >> 4
}

// combined waveform with a one pole lowpass. the smoothing is stronger for
// lower pitches
func (sid *SID) combined(voice int, tbl *[4096]uint8, osc uint32) uint32 {
	ch := &sid.voices[voice]

	pitch := uint32(sid.voiceRegs(voice)[FreqHi])
	if pitch == 0 {
		pitch = 1
	}
	filt := 0x7777 + (0x8888 / pitch)

	ch.prevWavData = uint8((uint32(tbl[sid.combinedIndex(tbl, osc)])*filt + uint32(ch.prevWavData)*(0xffff-filt)) >> 16)
	return uint32(ch.prevWavData) << 8
}

// EmulateWaves advances the waveform generators by one sample period and
// returns the result of the output stage.
func (sid *SID) EmulateWaves() int {
	sid.nonFiltered = 0
	sid.filterInput = 0

	var out uint32
	for v := range sid.voices {
		out = sid.wave(v)
		sid.route(v, out, &sid.nonFiltered, &sid.filterInput)
	}

	// some players rely on these values for timing
	sid.osc3 = uint8(out >> 8)
	sid.env3 = sid.voices[2].envelope

	return sid.OutputStage()
}

func (sid *SID) wave(voice int) uint32 {
	ch := &sid.voices[voice]
	r := sid.voiceRegs(voice)
	wf := r[Control]
	test := wf&ctrlTest == ctrlTest

	step := sid.frequency(r) * uint32(sid.ins.Live.ClockRatio)
	if test || (wf&ctrlSync == ctrlSync && sid.syncSourceMSBRise) {
		ch.phase = 0
	} else {
		ch.phase += step
		if ch.phase >= phaseMask+1 {
			ch.phase -= phaseMask + 1
		}
	}
	ch.phase &= phaseMask

	msb := ch.phase & phaseMSB
	sid.syncSourceMSBRise = msb > ch.prevPhase&phaseMSB

	var ring uint32
	if wf&ctrlRing == ctrlRing {
		ring = sid.ringSourceMSB
	}

	var out uint32

	switch {
	case wf&ctrlNoise == ctrlNoise:
		// the noise generator is clocked on every sample if the oscillator is
		// too fast for the toggles to be observed
		if ch.phase&phaseNoiseBit != ch.prevPhase&phaseNoiseBit || step >= phaseNoiseBit {
			ch.clockNoise(test)
		}
		out = ch.noiseOutput(wf)

	case wf&ctrlPulse == ctrlPulse:
		pw := int64(sid.pulseWidth(r))

		// pulses too thin to be represented at the sample rate are widened
		thin := int64(step >> 13)
		if 0 < pw && pw < thin {
			pw = thin
		}
		thin ^= 0xffff
		if pw > thin {
			pw = thin
		}

		osc := int64(ch.phase >> 12)

		if wf&ctrlWaveform == ctrlPulse {
			out = trapezoid(osc, pw, int64(step), test)
			break
		}

		if osc < pw && !test {
			out = 0
			break
		}
		switch {
		case wf&(ctrlTriangle|ctrlSawtooth) == ctrlTriangle|ctrlSawtooth:
			out = sid.combined(voice, &pulseSawTriangle, uint32(osc))
		case wf&ctrlTriangle == ctrlTriangle:
			out = sid.combined(voice, &pulseTriangle, (ch.phase^ring)>>12)
		case wf&ctrlSawtooth == ctrlSawtooth:
			out = sid.combined(voice, &pulseSawtooth, uint32(osc))
		default:
			out = 0xffff
		}

	case wf&ctrlSawtooth == ctrlSawtooth:
		out = ch.phase >> 12
		if wf&ctrlTriangle == ctrlTriangle {
			out = sid.combined(voice, &sawTriangle, out)
		} else {
			out = bandLimitedSaw(int64(out), int64(step))
		}

	case wf&ctrlTriangle == ctrlTriangle:
		t := ch.phase ^ ring
		if t&phaseMSB == phaseMSB {
			t ^= phaseMask
		}
		out = t >> 11
	}

	out &= 0xffff

	// with no waveform selected the DAC floats at the last output value.
	// digi players make use of this
	if wf&ctrlWaveform != 0 {
		ch.prevWavOut = out
	} else {
		out = ch.prevWavOut
	}

	ch.prevPhase = ch.phase
	sid.ringSourceMSB = msb

	return out
}

// pulse with sloped edges. the steepness of the slope depends on the
// oscillator frequency. very thin pulses are spikes that do not reach the full
// level
func trapezoid(osc int64, pw int64, step int64, test bool) uint32 {
	if test {
		return 0xffff
	}

	steepness := int64(0xffff)
	if step >= 4096 {
		steepness = phaseMask / step
	}

	if osc < pw {
		peak := min((0xffff-pw)*steepness, 0xffff)
		t := peak - (pw-osc)*steepness
		return uint32(max(t, 0))
	}

	peak := min(pw*steepness, 0xffff)
	t := (0xffff-osc)*steepness - peak
	if t >= 0 {
		return 0xffff
	}
	return uint32(t) & 0xffff
}

// sawtooth shaped as an asymmetric triangle. the falling edge is steeper the
// lower the frequency
func bandLimitedSaw(saw int64, step int64) uint32 {
	steepness := (step >> 4) / 288
	if steepness == 0 {
		steepness = 1
	}
	saw += (saw * steepness) >> 16
	if saw > 0xffff {
		saw = 0xffff - (((saw - 0x10000) << 16) / steepness)
	}
	return uint32(saw) & 0xffff
}
