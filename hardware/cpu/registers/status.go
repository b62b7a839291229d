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

package registers

import (
	"strings"
)

// List of status register bits.
const (
	Negative         = 0x80
	Overflow         = 0x40
	Unused           = 0x20
	Break            = 0x10
	DecimalMode      = 0x08
	InterruptDisable = 0x04
	Zero             = 0x02
	Carry            = 0x01
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags in NV-BDIZC order. Lower case letters indicate that
// the flag is clear.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(sr.Negative, 'N')
	flag(sr.Overflow, 'V')
	s.WriteRune('-')
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset status flags to power-on state. Only the interrupt disable flag is
// set.
func (sr *StatusRegister) Reset() {
	sr.FromValue(InterruptDisable)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	// unused bit in the status register is always 1 when it is pushed
	v := uint8(Unused)

	if sr.Negative {
		v |= Negative
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.Break {
		v |= Break
	}
	if sr.DecimalMode {
		v |= DecimalMode
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Negative = v&Negative == Negative
	sr.Overflow = v&Overflow == Overflow
	sr.Break = v&Break == Break
	sr.DecimalMode = v&DecimalMode == DecimalMode
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}
