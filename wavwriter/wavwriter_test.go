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


package wavwriter_test

import (
	"testing"

	"github.com/go-audio/wav"
	"github.com/spf13/afero"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/test"
	"github.com/jetsetilly/gopher64/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fs := afero.NewMemMapFs()

	aw, err := wavwriter.NewWavWriter(fs, "out.wav", 44100)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio([]int16{100, -100, 200, -200, 300}))
	test.ExpectEquality(t, aw.Samples(), 2)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := fs.Open("out.wav")
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.SampleRate), 44100)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.DemandEquality(t, len(buf.Data), 4)
	test.ExpectEquality(t, buf.Data[0], 100)
	test.ExpectEquality(t, buf.Data[1], -100)
	test.ExpectEquality(t, buf.Data[3], -200)
}

func TestReset(t *testing.T) {
	aw, err := wavwriter.NewWavWriter(afero.NewMemMapFs(), "out.wav", 48000)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, aw.SetAudio(make([]int16, 10)))
	test.ExpectEquality(t, aw.Samples(), 5)
	aw.Reset()
	test.ExpectEquality(t, aw.Samples(), 0)
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.NewWavWriter(afero.NewMemMapFs(), "out.wav", 0)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.WavWriterError))
}
