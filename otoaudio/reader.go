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
	"encoding/binary"
	"sync"
)

// Source of interleaved stereo samples. Implemented by hardware.C64.
type Source interface {
	GenerateSamples(buf []int16)
}

// bytes per stereo sample
const frameSize = 4

// Reader converts the samples of a Source into the byte stream expected by
// the audio device.
type Reader struct {
	crit    sync.Mutex
	src     Source
	samples []int16
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// Read implements the io.Reader interface. Only whole stereo samples are
// written to the buffer.
func (r *Reader) Read(buf []uint8) (int, error) {
	n := len(buf) / frameSize
	if n == 0 {
		return 0, nil
	}

	if cap(r.samples) < n*2 {
		r.samples = make([]int16, n*2)
	}
	r.samples = r.samples[:n*2]

	r.crit.Lock()
	r.src.GenerateSamples(r.samples)
	r.crit.Unlock()

	for i, s := range r.samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}

	return n * frameSize, nil
}

// Do runs the function while the Source is not being read.
func (r *Reader) Do(f func()) {
	r.crit.Lock()
	defer r.crit.Unlock()
	f()
}
