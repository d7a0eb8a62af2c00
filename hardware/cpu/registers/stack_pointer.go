// This file is part of nescore.
//
// nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nescore.  If not, see <https://www.gnu.org/licenses/>.

package registers

import "fmt"

// StackPointer is the 8-bit S register. Its value is always interpreted as
// an offset into page one of the address space (0x0100-0x01FF); the stack
// grows downward, so Push decrements and Pull pre-increments.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) *StackPointer {
	return &StackPointer{value: val}
}

func (s StackPointer) String() string {
	return fmt.Sprintf("SP=%#02x", s.value)
}

// Label returns an identifying string for the stack pointer.
func (s StackPointer) Label() string {
	return "SP"
}

// Value returns the raw 8-bit value of the register.
func (s StackPointer) Value() uint8 {
	return s.value
}

// Address returns the full 16-bit hardware-stack address the register
// currently points to (page one plus the register's value).
func (s StackPointer) Address() uint16 {
	return 0x0100 | uint16(s.value)
}

// Load sets the register's value directly.
func (s *StackPointer) Load(val uint8) {
	s.value = val
}

// Push returns the address to write to and moves the pointer down by one,
// wrapping mod 256. Callers perform the actual bus write.
func (s *StackPointer) Push() uint16 {
	addr := s.Address()
	s.value--
	return addr
}

// Pull moves the pointer up by one, wrapping mod 256, and returns the
// address to read from. Callers perform the actual bus read.
func (s *StackPointer) Pull() uint16 {
	s.value++
	return s.Address()
}

// Subtract decrements the register by n, wrapping mod 256. Used by RESET,
// which drops the stack pointer by three without touching memory.
func (s *StackPointer) Subtract(n uint8) {
	s.value -= n
}
