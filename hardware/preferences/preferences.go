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
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/paths"
	"github.com/jetsetilly/gopher64/prefs"
)

// the name of the preferences file in the resource directory.
const prefsFile = "preferences"

// Sentinel error patterns.
const (
	UnsupportedSampleRate = "preferences: unsupported sample rate (%d)"
	UnsupportedModel      = "preferences: unsupported SID model (%s)"
	UnsupportedStandard   = "preferences: unsupported video standard (%s)"
)

// List of valid values for the SID model preferences.
const (
	ModelAuto = "AUTO"
	Model6581 = "6581"
	Model8580 = "8580"
)

// List of valid values for the VideoStandard preference.
const (
	StandardAuto = "AUTO"
	StandardPAL  = "PAL"
	StandardNTSC = "NTSC"
)

// Default values.
const (
	DefaultSampleRate  = 44100
	DefaultAttenuation = 26
)

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// output sample rate in Hz
	SampleRate prefs.Int

	// PAL or NTSC timing. AUTO uses the clock bits of the tune file
	VideoStandard prefs.String

	// real SID mode runs tunes with genuine interrupt wiring rather than by
	// calling the play routine once per frame. RSID tunes always run in
	// real SID mode
	RealSIDMode prefs.Bool

	// high quality mode runs the waveform generators for every processor
	// instruction rather than once per output sample
	HighQuality prefs.Bool

	// divisor applied to the final mixed output. larger values are quieter
	Attenuation prefs.Int

	// chip models for each of the three possible SIDs. AUTO uses the model
	// bits of the tune file
	SID1Model prefs.String
	SID2Model prefs.String
	SID3Model prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("rate=%s standard=%s realsid=%s hq=%s attenuation=%s models=%s/%s/%s",
		p.SampleRate.String(), p.VideoStandard.String(), p.RealSIDMode.String(),
		p.HighQuality.String(), p.Attenuation.String(),
		p.SID1Model.String(), p.SID2Model.String(), p.SID3Model.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// filesystem if it exists.
func NewPreferences(fs afero.Fs) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		r := v.(int)
		if r < 8000 || r > 192000 {
			return curated.Errorf(UnsupportedSampleRate, r)
		}
		return nil
	})

	modelHook := func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case ModelAuto, Model6581, Model8580:
			return nil
		}
		return curated.Errorf(UnsupportedModel, v)
	}
	p.SID1Model.SetHookPre(modelHook)
	p.SID2Model.SetHookPre(modelHook)
	p.SID3Model.SetHookPre(modelHook)

	p.VideoStandard.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case StandardAuto, StandardPAL, StandardNTSC:
			return nil
		}
		return curated.Errorf(UnsupportedStandard, v)
	})

	pth, err := paths.ResourcePath(fs, "", prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(fs, pth)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefs.Pref{
		"sid.samplerate":    &p.SampleRate,
		"sid.videostandard": &p.VideoStandard,
		"sid.realmode":      &p.RealSIDMode,
		"sid.highquality":   &p.HighQuality,
		"sid.attenuation":   &p.Attenuation,
		"sid.model1":        &p.SID1Model,
		"sid.model2":        &p.SID2Model,
		"sid.model3":        &p.SID3Model,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// errors from the hooks are not possible for the default values
	_ = p.SampleRate.Set(DefaultSampleRate)
	_ = p.VideoStandard.Set(StandardAuto)
	_ = p.RealSIDMode.Set(false)
	_ = p.HighQuality.Set(false)
	_ = p.Attenuation.Set(DefaultAttenuation)
	_ = p.SID1Model.Set(ModelAuto)
	_ = p.SID2Model.Set(ModelAuto)
	_ = p.SID3Model.Set(ModelAuto)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
