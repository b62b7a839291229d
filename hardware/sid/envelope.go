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

// state bits of the envelope generator
const (
	envGate         = 0x01
	envAttack       = 0x80
	envDecaySustain = 0x40

	// the envelope counter is frozen at zero when this bit is clear
	envHoldZeroN = 0x10
)

// the rate counter is a 15 bit counter
const rateCounterWrap = 0x8000

// channel is the state of one voice of the SID.
type channel struct {
	// envelope generator
	state    uint8
	rate     int
	envelope uint8
	exponent uint8

	// waveform generator
	phase     uint32
	prevPhase uint32
	noise     uint32

	// the last waveform output. the waveform DAC floats at this value when
	// no waveform is selected
	prevWavOut uint32

	// the previous output of the combined waveform smoothing
	prevWavData uint8
}

// EmulateADSRs advances the envelope generators of all three voices by the
// number of cycles.
func (sid *SID) EmulateADSRs(cycles int) {
	for v := range sid.voices {
		r := sid.voiceRegs(v)
		sid.voices[v].stepEnvelope(cycles, r[Control], r[AttackDecay], r[SustainRelease])
	}
}

func (ch *channel) stepEnvelope(cycles int, control uint8, ad uint8, sr uint8) {
	gate := control & ctrlGate
	if ch.state&envGate != gate {
		if gate == 0 {
			ch.state &^= envGate | envAttack | envDecaySustain
		} else {
			ch.state = envGate | envAttack | envDecaySustain | envHoldZeroN
		}
	}

	var period int
	switch {
	case ch.state&envAttack == envAttack:
		period = prescalePeriods[ad>>4]
	case ch.state&envDecaySustain == envDecaySustain:
		period = prescalePeriods[ad&0x0f]
	default:
		period = prescalePeriods[sr&0x0f]
	}

	// the counter can wrap around before matching the period. this is the
	// cause of the ADSR delay bug
	ch.rate += cycles
	if ch.rate >= rateCounterWrap {
		ch.rate -= rateCounterWrap
	}

	if ch.rate < period || ch.rate >= period+cycles {
		return
	}
	ch.rate -= period

	if ch.state&envAttack == 0 {
		ch.exponent++
		if ch.exponent != exponentPeriods[ch.envelope] {
			return
		}
	}
	ch.exponent = 0

	if ch.state&envHoldZeroN == 0 {
		return
	}

	if ch.state&envAttack == envAttack {
		ch.envelope++
		if ch.envelope == 0xff {
			ch.state &^= envAttack
		}
		return
	}

	// sustain level is the nibble repeated in both halves of the byte
	sustain := (sr & 0xf0) | (sr >> 4)
	if ch.state&envDecaySustain == 0 || ch.envelope != sustain {
		ch.envelope--
		if ch.envelope == 0 {
			ch.state &^= envHoldZeroN
		}
	}
}
