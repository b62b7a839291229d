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


// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore only suitable for rendering a
// tune of a fixed length.
package wavwriter

import (
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/afero"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/logger"
)

// Sentinel error patterns.
const (
	WavWriterError = "wavwriter: %v"
)

// the format of the output file. samples are interleaved stereo
const (
	bitDepth    = 16
	numChannels = 2

	// PCM in the WAV format field
	wavFormatPCM = 1
)

// WavWriter collects stereo samples and writes them to a WAV file.
type WavWriter struct {
	fs         afero.Fs
	filename   string
	sampleRate int
	buffer     []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(fs afero.Fs, filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf(WavWriterError, "bad sample rate")
	}

	aw := &WavWriter{
		fs:         fs,
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate*numChannels),
	}

	return aw, nil
}

// SetAudio adds interleaved stereo samples to the buffer. A trailing odd
// sample is ignored.
func (aw *WavWriter) SetAudio(samples []int16) error {
	for i := 0; i+1 < len(samples); i += numChannels {
		aw.buffer = append(aw.buffer, int(samples[i]), int(samples[i+1]))
	}
	return nil
}

// Samples returns the number of stereo samples in the buffer.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer) / numChannels
}

// EndMixing writes the buffered samples to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := aw.fs.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	// the encoder must be closed to finalise the WAV header
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}

// Reset empties the buffer.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
