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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case BASIC:
		return "BASIC"
	case IO:
		return "IO"
	case KERNAL:
		return "KERNAL"
	}

	return "undefined"
}

// The different memory areas in the C64
const (
	Undefined Area = iota
	RAM
	BASIC
	IO
	KERNAL
)

// The origin and memory top for each banked area of memory.
const (
	OriginBASIC  = uint16(0xa000)
	MemtopBASIC  = uint16(0xbfff)
	OriginIO     = uint16(0xd000)
	MemtopIO     = uint16(0xdfff)
	OriginKERNAL = uint16(0xe000)
	MemtopKERNAL = uint16(0xffff)
)

// The IO area is divided between the chips.
const (
	OriginVIC      = uint16(0xd000)
	MemtopVIC      = uint16(0xd3ff)
	OriginSID      = uint16(0xd400)
	MemtopSID      = uint16(0xd7ff)
	OriginColour   = uint16(0xd800)
	MemtopColour   = uint16(0xdbff)
	OriginCIA1     = uint16(0xdc00)
	MemtopCIA1     = uint16(0xdcff)
	OriginCIA2     = uint16(0xdd00)
	MemtopCIA2     = uint16(0xddff)
	OriginExpander = uint16(0xde00)
	MemtopExpander = uint16(0xdfff)
)

// The processor port is at address $0001. Its direction register is at
// address $0000.
const (
	PortDirection = uint16(0x0000)
	Port          = uint16(0x0001)
)

// The stack is always in page one.
const (
	OriginStack = uint16(0x0100)
	MemtopStack = uint16(0x01ff)
)

// Values of the processor port.
const (
	PortAllRAM      = uint8(0x34)
	PortIO          = uint8(0x35)
	PortIOAndKERNAL = uint8(0x36)
	PortDefault     = uint8(0x37)

	// the value of the direction register after reset
	PortDirectionDefault = uint8(0x2f)
)

// MapAddress returns the area of memory the address belongs to for the
// processor port value.
func MapAddress(address uint16, port uint8, read bool) Area {
	// note that the order of these filters is important

	if address >= OriginIO && address <= MemtopIO && port&0x03 != 0 {
		return IO
	}

	if !read {
		return RAM
	}

	if address >= OriginKERNAL && port&0x02 == 0x02 {
		return KERNAL
	}

	if address >= OriginBASIC && address <= MemtopBASIC && port&0x03 == 0x03 {
		return BASIC
	}

	return RAM
}

// IsArea returns true if the address is in the specificied area when read
// with the processor port value
func IsArea(address uint16, port uint8, area Area) bool {
	return MapAddress(address, port, true) == area
}

// PortFor returns the processor port value that leaves the address visible
// as RAM while keeping as much of the IO and ROM mapped in as possible. Used
// when a routine is to be run from an address that would otherwise be
// covered by ROM.
func PortFor(address uint16) uint8 {
	switch {
	case address < OriginBASIC:
		return PortDefault
	case address < OriginIO:
		return PortIOAndKERNAL
	case address >= OriginKERNAL:
		return PortIO
	}
	return PortAllRAM
}
