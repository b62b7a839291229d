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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/hardware/instance"
)

// Model is the revision of the SID chip.
type Model int

// List of valid Model values.
const (
	MOS6581 Model = iota
	MOS8580
)

func (m Model) String() string {
	switch m {
	case MOS6581:
		return "6581"
	case MOS8580:
		return "8580"
	}
	return "unknown"
}

// OutputChannel says which side of the stereo output a SID contributes to.
type OutputChannel int

// List of valid OutputChannel values.
const (
	Left OutputChannel = iota + 1
	Right
	Both
)

// Register offsets. The voice registers are repeated for each voice at an
// offset of VoiceRegisters bytes.
const (
	FreqLo uint8 = iota
	FreqHi
	PWLo
	PWHi
	Control
	AttackDecay
	SustainRelease
)

// Register offsets for the shared registers.
const (
	CutoffLo uint8 = 0x15 + iota
	CutoffHi
	ResFilt
	ModeVol
	PotX
	PotY
	Osc3
	Env3
)

// NumRegisters is the size of the register window of a SID chip.
const NumRegisters = 0x20

// VoiceRegisters is the distance between the register blocks of two voices.
const VoiceRegisters = 7

// waveform and control bits in the voice control register
const (
	ctrlNoise    = 0x80
	ctrlPulse    = 0x40
	ctrlSawtooth = 0x20
	ctrlTriangle = 0x10
	ctrlTest     = 0x08
	ctrlRing     = 0x04
	ctrlSync     = 0x02
	ctrlGate     = 0x01
	ctrlWaveform = 0xf0
)

// filter mode bits in the MODEVOL register
const (
	modeVoice3Off = 0x80
	modeHighPass  = 0x40
	modeBandPass  = 0x20
	modeLowPass   = 0x10
	modeVolume    = 0x0f
)

// the number of voices plus the digi channel multiplied by the maximum volume
const volumeScale = (3 + 1) * 0x0f

// the AC part of the volume register is mixed into the output at this level
const digiVolume = 2

// the value the noise generator shift register is reset to
const noiseReset = 0x7fffff

// WaveOutput is the result of the time stepped waveform emulation. The values
// should be averaged over a sample period and passed to SetAccumulated().
type WaveOutput struct {
	NonFiltered int
	FilterInput int
}

// SID is the emulation of a single SID chip.
type SID struct {
	ins *instance.Instance

	Model   Model
	Channel OutputChannel

	// the registers as most recently written by the CPU
	regs [NumRegisters]uint8

	// the read-only registers that show the state of the third voice
	osc3 uint8
	env3 uint8

	voices [3]channel

	// the MSB of the previously emulated voice. the previous voice is the
	// source for hard sync and ring modulation
	syncSourceMSBRise bool
	ringSourceMSB     uint32

	// filter integrators
	prevLowPass  int
	prevBandPass int

	// lowpass filtered copy of the volume register
	prevVolume int

	// the input to the output stage
	nonFiltered int
	filterInput int

	// unattenuated result of the most recent output stage
	output int

	// slow moving average of the output
	level int
}

// NewSID is the preferred method of initialisation for the SID type.
func NewSID(ins *instance.Instance, model Model, channel OutputChannel) *SID {
	sid := &SID{
		ins:     ins,
		Model:   model,
		Channel: channel,
	}
	sid.Reset()
	return sid
}

// Reset the SID to its power-on state.
func (sid *SID) Reset() {
	clear(sid.regs[:])
	sid.osc3 = 0
	sid.env3 = 0
	for i := range sid.voices {
		sid.voices[i] = channel{
			noise: noiseReset,
		}
	}
	sid.syncSourceMSBRise = false
	sid.ringSourceMSB = 0
	sid.prevLowPass = 0
	sid.prevBandPass = 0
	sid.prevVolume = 0
	sid.nonFiltered = 0
	sid.filterInput = 0
	sid.output = 0
	sid.level = 0
}

// Snapshot creates a copy of the SID in its current state.
func (sid *SID) Snapshot() *SID {
	n := *sid
	return &n
}

func (sid *SID) String() string {
	s := strings.Builder{}
	s.WriteString(sid.Model.String())
	for v := range sid.voices {
		r := sid.voiceRegs(v)
		fmt.Fprintf(&s, " [%02x%02x %03x %02x %02x%02x env=%02x]",
			r[FreqHi], r[FreqLo], (uint16(r[PWHi]&0x0f)<<8)|uint16(r[PWLo]),
			r[Control], r[AttackDecay], r[SustainRelease], sid.voices[v].envelope)
	}
	fmt.Fprintf(&s, " cut=%03x res=%x filt=%x mode=%x vol=%x",
		sid.cutoff(), sid.regs[ResFilt]>>4, sid.regs[ResFilt]&0x0f,
		sid.regs[ModeVol]>>4, sid.regs[ModeVol]&modeVolume)
	return s.String()
}

// Write a value to the register. The register is masked to the size of the
// register window.
func (sid *SID) Write(reg uint8, data uint8) {
	sid.regs[reg%NumRegisters] = data
}

// Read the register. OSC3 and ENV3 show the state of the third voice as of
// the most recent waveform update. All other registers return the last
// written value.
func (sid *SID) Read(reg uint8) uint8 {
	switch reg % NumRegisters {
	case Osc3:
		return sid.osc3
	case Env3:
		return sid.env3
	}
	return sid.regs[reg%NumRegisters]
}

// Output returns the unattenuated output of the most recent output stage.
func (sid *SID) Output() int {
	return sid.output
}

// Level returns a slow moving average of the output magnitude. Suitable for a
// VU meter.
func (sid *SID) Level() int {
	return sid.level
}

// Envelope returns the current value of the envelope counter for the voice.
func (sid *SID) Envelope(voice int) uint8 {
	return sid.voices[voice].envelope
}

func (sid *SID) voiceRegs(voice int) []uint8 {
	return sid.regs[voice*VoiceRegisters : (voice+1)*VoiceRegisters]
}

func (sid *SID) frequency(r []uint8) uint32 {
	return (uint32(r[FreqHi]) << 8) | uint32(r[FreqLo])
}

// the pulse width register value shifted into the top of a 16 bit value
func (sid *SID) pulseWidth(r []uint8) uint32 {
	return ((uint32(r[PWHi]&0x0f) << 8) | uint32(r[PWLo])) << 4
}

func (sid *SID) cutoff() int {
	return (int(sid.regs[CutoffHi]) << 3) | int(sid.regs[CutoffLo]&0x07)
}

// the envelope scaled by the DAC of the chip model
func (sid *SID) envelopeDAC(voice int) int {
	if sid.Model == MOS8580 {
		return int(sid.voices[voice].envelope)
	}
	return int(envelopeDAC6581[sid.voices[voice].envelope])
}

// route the voice output to the filter or directly to the mixer, according
// to the filter selection register
func (sid *SID) route(voice int, out uint32, nonFiltered *int, filterInput *int) {
	v := ((int(out) - 0x8000) * sid.envelopeDAC(voice)) >> 8
	if sid.regs[ResFilt]&(1<<voice) != 0 {
		*filterInput += v
	} else if voice != 2 || sid.regs[ModeVol]&modeVoice3Off == 0 {
		*nonFiltered += v
	}
}
