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


package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the length of the buffer before the digest is updated. the first part of
// the buffer is the previous digest value
const audioBufferLength = 1024 * sha1.Size

const audioBufferStart = sha1.Size

// Audio collects samples and folds them into a SHA-1 digest.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	samples  int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]uint8, audioBufferLength),
	}
	dig.Reset()
	return dig
}

// Hash returns the digest of all samples so far.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.current())
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Samples returns the number of values added to the digest.
func (dig *Audio) Samples() int {
	return dig.samples
}

// Reset the digest to zero.
func (dig *Audio) Reset() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
	dig.samples = 0
}

// SetAudio adds the samples to the digest.
func (dig *Audio) SetAudio(samples []int16) error {
	for _, s := range samples {
		binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(s))
		dig.bufferCt += 2
		dig.samples++
		if dig.bufferCt >= audioBufferLength {
			dig.digest = dig.current()
			dig.bufferCt = audioBufferStart
		}
	}
	return nil
}

// the digest including any buffered samples. the previous digest value is
// placed at the start of the buffer so that it is part of the new value
func (dig *Audio) current() [sha1.Size]byte {
	if dig.bufferCt == audioBufferStart {
		return dig.digest
	}
	copy(dig.buffer, dig.digest[:])
	return sha1.Sum(dig.buffer[:dig.bufferCt])
}
