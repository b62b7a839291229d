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

package preferences

import (
	"strings"

	"github.com/jetsetilly/gopher64/hardware/clocks"
)

// Live preferences are read by the emulation on every sample. For
// performance reasons they are plain values rather than prefs types and are
// only updated between samples with instance.UpdateLive().
type Live struct {
	SampleRate  int
	NTSC        bool
	RealSIDMode bool
	HighQuality bool
	Attenuation int

	// processor clock in Hz
	ClockFrequency int

	// number of processor cycles per output sample. fixed point with four
	// fractional bits
	ClockRatio int
}

// Live returns the current preference values as a Live instance. The ntsc
// argument is used when the VideoStandard preference is AUTO.
func (p *Preferences) Live(ntsc bool) Live {
	l := Live{
		SampleRate:  p.SampleRate.Get().(int),
		RealSIDMode: p.RealSIDMode.Get().(bool),
		HighQuality: p.HighQuality.Get().(bool),
		Attenuation: p.Attenuation.Get().(int),
	}

	switch strings.ToUpper(p.VideoStandard.String()) {
	case StandardPAL:
		l.NTSC = false
	case StandardNTSC:
		l.NTSC = true
	default:
		l.NTSC = ntsc
	}

	l.UpdateClock()

	return l
}

// UpdateClock recalculates the clock frequency and ratio after the NTSC or
// SampleRate fields have been changed.
func (l *Live) UpdateClock() {
	if l.NTSC {
		l.ClockFrequency = clocks.NTSC
	} else {
		l.ClockFrequency = clocks.PAL
	}
	l.ClockRatio = (l.ClockFrequency << 4) / l.SampleRate
}
