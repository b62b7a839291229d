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

package sidfile

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/sid"
)

// Sentinel error patterns.
const (
	InvalidMagic = "sidfile: invalid magic (%s)"
	TooShort     = "sidfile: file too short (%d bytes)"
	BadOffset    = "sidfile: invalid data offset (%d)"
	BadSubtune   = "sidfile: subtune %d does not exist"
	LoadError    = "sidfile: %v"
)

// Magic strings for the two file formats.
const (
	MagicPSID = "PSID"
	MagicRSID = "RSID"
)

// sizes of the two header versions
const (
	headerV1 = 0x76
	headerV2 = 0x7c
)

// the length of the name, author and released fields
const infoLen = 32

// Bits in the Flags field.
const (
	FlagMUSPlayer = 0x0001
	FlagBASIC     = 0x0002
	clockShift    = 2
	modelShift    = 4
)

// values of the two bit model fields in Flags. a value of three means the
// tune plays on both models
const (
	flags6581 = 0x01
	flags8580 = 0x02
)

// the clock field uses the same values with different meanings
const (
	clockPAL  = flags6581
	clockNTSC = flags8580
)

// Tune is a PSID or RSID file.
type Tune struct {
	Magic      string
	Version    int
	DataOffset int

	// the load address is taken from the first two bytes of the data if it
	// is zero in the header
	LoadAddress uint16
	InitAddress uint16

	// a play address of zero means that the init routine installs an
	// interrupt handler
	PlayAddress uint16

	Songs     int
	StartSong int

	// one bit for each subtune. a set bit means the play routine is called
	// by a CIA timer rather than the VIC raster interrupt
	Speed uint32

	Name     string
	Author   string
	Released string

	Flags      uint16
	StartPage  uint8
	PageLength uint8

	// address of each SID. the first SID is always at $d400. an address of
	// zero means the SID is not present
	SIDAddress [3]uint16

	// the C64 program without the load address
	Data []uint8

	// hash of the file
	Hash string
}

// Parse the contents of a SID file.
func Parse(data []uint8) (*Tune, error) {
	if len(data) < headerV1 {
		return nil, curated.Errorf(TooShort, len(data))
	}

	tune := &Tune{
		Magic: string(data[0x00:0x04]),
		Hash:  fmt.Sprintf("%x", sha1.Sum(data)),
	}

	if tune.Magic != MagicPSID && tune.Magic != MagicRSID {
		return nil, curated.Errorf(InvalidMagic, tune.Magic)
	}

	be := binary.BigEndian
	tune.Version = int(be.Uint16(data[0x04:]))
	tune.DataOffset = int(be.Uint16(data[0x06:]))
	tune.LoadAddress = be.Uint16(data[0x08:])
	tune.InitAddress = be.Uint16(data[0x0a:])
	tune.PlayAddress = be.Uint16(data[0x0c:])
	tune.Songs = int(be.Uint16(data[0x0e:]))
	tune.StartSong = int(be.Uint16(data[0x10:]))
	tune.Speed = be.Uint32(data[0x12:])
	tune.Name = info(data[0x16:])
	tune.Author = info(data[0x36:])
	tune.Released = info(data[0x56:])

	if tune.DataOffset != headerV1 && tune.DataOffset != headerV2 {
		return nil, curated.Errorf(BadOffset, tune.DataOffset)
	}

	// at least one byte of program data. a load address of zero means the
	// load address is stored in the first two bytes of data
	minLen := tune.DataOffset + 1
	if tune.LoadAddress == 0 {
		minLen += 2
	}
	if len(data) < minLen {
		return nil, curated.Errorf(TooShort, len(data))
	}

	tune.SIDAddress[0] = 0xd400
	if tune.DataOffset == headerV2 {
		tune.Flags = be.Uint16(data[0x76:])
		tune.StartPage = data[0x78]
		tune.PageLength = data[0x79]
		tune.SIDAddress[1] = sidAddress(data[0x7a])
		tune.SIDAddress[2] = sidAddress(data[0x7b])
	}

	tune.Data = data[tune.DataOffset:]
	if tune.LoadAddress == 0 {
		tune.LoadAddress = binary.LittleEndian.Uint16(tune.Data)
		tune.Data = tune.Data[2:]
	}

	// an init address of zero means the init routine is at the start of the
	// program
	if tune.InitAddress == 0 {
		tune.InitAddress = tune.LoadAddress
	}

	if tune.Songs < 1 {
		tune.Songs = 1
	}
	if tune.StartSong < 1 || tune.StartSong > tune.Songs {
		tune.StartSong = 1
	}

	return tune, nil
}

// SID addresses are stored as the middle two nibbles of the address. only
// even values in the $d420-$d7ff and $de00-$dfff ranges are valid
func sidAddress(v uint8) uint16 {
	if v&0x01 == 0x01 {
		return 0
	}
	if (v >= 0x42 && v <= 0x7e) || (v >= 0xe0 && v <= 0xfe) {
		return 0xd000 | uint16(v)<<4
	}
	return 0
}

// info fields are zero padded
func info(b []uint8) string {
	b = b[:infoLen]
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// Load a SID file from the filesystem.
func Load(fs afero.Fs, path string) (*Tune, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	return Parse(data)
}

func (tune *Tune) String() string {
	return fmt.Sprintf("%s v%d: %s by %s (%s)", tune.Magic, tune.Version, tune.Name, tune.Author, tune.Released)
}

// IsRSID returns true if the tune must be run in a real C64 environment.
func (tune *Tune) IsRSID() bool {
	return tune.Magic == MagicRSID
}

// IsNTSC returns true if the tune was written for NTSC machines only.
func (tune *Tune) IsNTSC() bool {
	return (tune.Flags>>clockShift)&0x03 == clockNTSC
}

// IsPAL returns true if the tune was written for PAL machines only. A tune
// can be neither PAL nor NTSC if the clock is unknown or if it plays on both.
func (tune *Tune) IsPAL() bool {
	return (tune.Flags>>clockShift)&0x03 == clockPAL
}

// Model returns the SID model the tune was written for. The n argument is
// the SID number in the range 0 to 2. The second return value is false if
// the model is not specified, in which case the model of the first SID should
// be used.
func (tune *Tune) Model(n int) (sid.Model, bool) {
	switch (tune.Flags >> (modelShift + n*2)) & 0x03 {
	case flags6581:
		return sid.MOS6581, true
	case flags8580:
		return sid.MOS8580, true
	}
	return sid.MOS6581, false
}

// NumSIDs returns the number of SID chips used by the tune.
func (tune *Tune) NumSIDs() int {
	n := 1
	for _, a := range tune.SIDAddress[1:] {
		if a != 0 {
			n++
		}
	}
	return n
}

// CheckSubtune returns an error if the subtune does not exist. Subtunes are
// numbered from one.
func (tune *Tune) CheckSubtune(subtune int) error {
	if subtune < 1 || subtune > tune.Songs {
		return curated.Errorf(BadSubtune, subtune)
	}
	return nil
}

// UsesCIATiming returns true if the play routine of the subtune is called by
// a CIA timer. Subtunes beyond the 32nd share the timing of the 32nd.
func (tune *Tune) UsesCIATiming(subtune int) bool {
	bit := min(max(subtune-1, 0), 31)
	return tune.Speed&(1<<bit) != 0
}

// LoadEnd returns the address after the last byte of the program.
func (tune *Tune) LoadEnd() int {
	return int(tune.LoadAddress) + len(tune.Data)
}
