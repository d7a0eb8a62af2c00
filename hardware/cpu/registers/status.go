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

import "strings"

// StatusRegister is the 2A03 processor status byte, decomposed into its six
// named flags. Break has no physical storage on real hardware - there is no
// field for it here - it exists only in the byte value produced when the
// register is pushed onto the stack, supplied by the caller at push time via
// PushValue.
type StatusRegister struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Overflow         bool
	Negative         bool
}

// NewStatusRegister is the preferred method of initialisation for StatusRegister.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune('-')
		}
	}

	flag(sr.Negative, 'N')
	flag(sr.Overflow, 'V')
	s.WriteRune('U')
	s.WriteRune('-') // Break, never live
	flag(sr.Decimal, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// SetZN sets the Zero and Negative flags from the given result byte, as
// almost every load, transfer, and ALU operation does.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.Zero = v == 0
	sr.Negative = v&0x80 != 0
}

// Value packs the flags into the byte representation a bare read of P
// produces. The live register has no break bit, so it always reads back as
// 0; the unused bit always reads back as 1.
func (sr StatusRegister) Value() uint8 {
	return sr.pack(false)
}

// PushValue packs the flags the way they appear in a byte actually pushed
// onto the stack: brk is true for a software BRK or PHP (break set), false
// for a hardware NMI/IRQ service (break clear).
func (sr StatusRegister) PushValue(brk bool) uint8 {
	return sr.pack(brk)
}

func (sr StatusRegister) pack(brk bool) uint8 {
	var v uint8

	if sr.Negative {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	v |= 0x20 // unused, always reads as 1
	if brk {
		v |= 0x10
	}
	if sr.Decimal {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue unpacks an 8-bit value (pulled from the stack via PLP or RTI)
// into the flags. Bit 4 (break) is ignored - it never had a live home to
// restore to.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Negative = v&0x80 != 0
	sr.Overflow = v&0x40 != 0
	sr.Decimal = v&0x08 != 0
	sr.InterruptDisable = v&0x04 != 0
	sr.Zero = v&0x02 != 0
	sr.Carry = v&0x01 != 0
}
