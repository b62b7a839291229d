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

import "fmt"

// the stack always occupies page one.
const stackPage = 0x0100

// StackPointer is the 8 bit SP register. The value is an offset into page one
// of memory.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the offset value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address the stack pointer refers to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address the next byte should be written to and moves the
// stack pointer down by one. The pointer wraps within page one.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the stack pointer up by one and returns the address the next
// byte should be read from. The pointer wraps within page one.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
