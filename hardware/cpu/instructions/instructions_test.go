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

package instructions_test

import (
	"testing"

	"github.com/hexnibble/nescore/hardware/cpu/instructions"
	"github.com/hexnibble/nescore/test"
)

func TestDocumentedOpcodeCount(t *testing.T) {
	count := 0
	for _, d := range instructions.Table {
		if d.IsValid() {
			count++
		}
	}
	test.Equate(t, count, 151)
}

func TestUnimplementedOpcodeIsInvalid(t *testing.T) {
	d := instructions.Lookup(0x02)
	test.Equate(t, d.IsValid(), false)
	test.Equate(t, d.Mnemonic == instructions.ILLEGAL, true)
}

func TestKnownOpcode(t *testing.T) {
	d := instructions.Lookup(0xA9)
	test.Equate(t, d.Mnemonic == instructions.LDA, true)
	test.Equate(t, d.AddressingMode == instructions.Immediate, true)
	test.Equate(t, d.Cycles, 2)
	test.Equate(t, d.Bytes(), 2)
}

func TestBRKDefinition(t *testing.T) {
	d := instructions.Lookup(0x00)
	test.Equate(t, d.Mnemonic == instructions.BRK, true)
	test.Equate(t, d.Cycles, 7)
}

func TestIsBranch(t *testing.T) {
	d := instructions.Lookup(0xF0) // BEQ
	test.Equate(t, d.IsBranch(), true)

	d = instructions.Lookup(0xA9) // LDA imm
	test.Equate(t, d.IsBranch(), false)
}

func TestSamePage(t *testing.T) {
	test.Equate(t, instructions.SamePage(0x00FB, 0x00FC), true)
	test.Equate(t, instructions.SamePage(0x00FF, 0x0100), false)
}
