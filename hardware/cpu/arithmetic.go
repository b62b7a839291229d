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

package cpu

// adc adds the value and the carry flag to the accumulator. decimal mode only
// corrects the low nibble of the result. the overflow flag is always the
// binary overflow
func (mc *CPU) adc(m uint8) {
	t := int(mc.A.Value())
	a := t + int(m) + mc.carry()
	if mc.Status.DecimalMode && a&0x0f > 9 {
		a += 0x10
		a &= 0xf0
	}
	mc.Status.Negative = a&0x80 == 0x80
	mc.Status.Carry = a > 0xff
	a &= 0xff
	mc.Status.Zero = a == 0
	mc.Status.Overflow = ^(t^int(m))&(t^a)&0x80 == 0x80
	mc.A.Load(uint8(a))
}

// sbc subtracts the value and the inverse of the carry flag from the
// accumulator. there is no decimal mode correction
func (mc *CPU) sbc(m uint8) {
	t := int(mc.A.Value())
	a := t - int(m) - (1 - mc.carry())
	mc.subtractFlags(a)
	a &= 0xff
	mc.Status.Overflow = ^(t^int(^m))&(t^a)&0x80 == 0x80
	mc.A.Load(uint8(a))
}

// subtractFlags sets N, Z and C from the unmasked result of a subtraction
func (mc *CPU) subtractFlags(v int) {
	mc.Status.Negative = v&0x80 == 0x80
	mc.Status.Carry = v >= 0
	mc.Status.Zero = v&0xff == 0
}

func (mc *CPU) compare(reg uint8, m uint8) {
	mc.subtractFlags(int(reg) - int(m))
}

// asl and rol. the carry in is zero for asl
func (mc *CPU) shiftLeft(v uint8, carryIn int) uint8 {
	t := int(v)<<1 + carryIn
	mc.Status.Carry = t > 0xff
	r := uint8(t)
	mc.setNZ(r)
	return r
}

// lsr and ror. the carry in is zero for lsr
func (mc *CPU) shiftRight(v uint8, carryIn int) uint8 {
	r := v>>1 | uint8(carryIn<<7)
	mc.Status.Carry = v&0x01 == 0x01
	mc.setNZ(r)
	return r
}
