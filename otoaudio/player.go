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


package otoaudio

import (
	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/gopher64/curated"
)

// Sentinel error patterns.
const (
	AudioError = "otoaudio: %v"
)

// Player plays a Source through the audio device.
type Player struct {
	*Reader

	ctx *oto.Context
	p   *oto.Player
}

// NewPlayer opens the audio device. The sample rate must be the same as the
// sample rate used by the Source. Only one Player can be created by a
// program.
func NewPlayer(src Source, sampleRate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, curated.Errorf(AudioError, err)
	}

	<-ready

	pl := &Player{
		Reader: NewReader(src),
		ctx:    ctx,
	}
	pl.p = ctx.NewPlayer(pl.Reader)

	return pl, nil
}

// Play starts or resumes playback.
func (pl *Player) Play() {
	pl.p.Play()
}

// Pause playback. Playback is resumed with Play().
func (pl *Player) Pause() {
	pl.p.Pause()
}

// IsPlaying returns true if the Player is playing.
func (pl *Player) IsPlaying() bool {
	return pl.p.IsPlaying()
}

// Err returns any error from the audio device.
func (pl *Player) Err() error {
	if err := pl.p.Err(); err != nil {
		return curated.Errorf(AudioError, err)
	}
	return nil
}
