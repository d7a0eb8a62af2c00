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

package instructions

// Table is the 256-entry opcode decode table. Entries for the 151
// documented opcodes are filled in below; every other index keeps its zero
// value, which is {Mnemonic: ILLEGAL, AddressingMode: INVALID} - exactly the
// signal the CPU core needs to halt on an unimplemented opcode.
var Table [256]Definition

// entry is the terse (opcode, mnemonic, mode, cycles, page-sensitive)
// shorthand used to populate Table below, standing in for the CSV row this
// package would otherwise be generated from.
type entry struct {
	code  uint8
	mnem  Mnemonic
	mode  AddressingMode
	cyc   int
	pageS bool
}

var documented = []entry{
	{0x00, BRK, Implied, 7, false},
	{0x01, ORA, IndexedIndirect, 6, false},
	{0x05, ORA, ZeroPage, 3, false},
	{0x06, ASL, ZeroPage, 5, false},
	{0x08, PHP, Implied, 3, false},
	{0x09, ORA, Immediate, 2, false},
	{0x0A, ASL, Accumulator, 2, false},
	{0x0D, ORA, Absolute, 4, false},
	{0x0E, ASL, Absolute, 6, false},

	{0x10, BPL, Relative, 2, false},
	{0x11, ORA, IndirectIndexed, 5, true},
	{0x15, ORA, ZeroPageX, 4, false},
	{0x16, ASL, ZeroPageX, 6, false},
	{0x18, CLC, Implied, 2, false},
	{0x19, ORA, AbsoluteY, 4, true},
	{0x1D, ORA, AbsoluteX, 4, true},
	{0x1E, ASL, AbsoluteX, 7, false},

	{0x20, JSR, Absolute, 6, false},
	{0x21, AND, IndexedIndirect, 6, false},
	{0x24, BIT, ZeroPage, 3, false},
	{0x25, AND, ZeroPage, 3, false},
	{0x26, ROL, ZeroPage, 5, false},
	{0x28, PLP, Implied, 4, false},
	{0x29, AND, Immediate, 2, false},
	{0x2A, ROL, Accumulator, 2, false},
	{0x2C, BIT, Absolute, 4, false},
	{0x2D, AND, Absolute, 4, false},
	{0x2E, ROL, Absolute, 6, false},

	{0x30, BMI, Relative, 2, false},
	{0x31, AND, IndirectIndexed, 5, true},
	{0x35, AND, ZeroPageX, 4, false},
	{0x36, ROL, ZeroPageX, 6, false},
	{0x38, SEC, Implied, 2, false},
	{0x39, AND, AbsoluteY, 4, true},
	{0x3D, AND, AbsoluteX, 4, true},
	{0x3E, ROL, AbsoluteX, 7, false},

	{0x40, RTI, Implied, 6, false},
	{0x41, EOR, IndexedIndirect, 6, false},
	{0x45, EOR, ZeroPage, 3, false},
	{0x46, LSR, ZeroPage, 5, false},
	{0x48, PHA, Implied, 3, false},
	{0x49, EOR, Immediate, 2, false},
	{0x4A, LSR, Accumulator, 2, false},
	{0x4C, JMP, Absolute, 3, false},
	{0x4D, EOR, Absolute, 4, false},
	{0x4E, LSR, Absolute, 6, false},

	{0x50, BVC, Relative, 2, false},
	{0x51, EOR, IndirectIndexed, 5, true},
	{0x55, EOR, ZeroPageX, 4, false},
	{0x56, LSR, ZeroPageX, 6, false},
	{0x58, CLI, Implied, 2, false},
	{0x59, EOR, AbsoluteY, 4, true},
	{0x5D, EOR, AbsoluteX, 4, true},
	{0x5E, LSR, AbsoluteX, 7, false},

	{0x60, RTS, Implied, 6, false},
	{0x61, ADC, IndexedIndirect, 6, false},
	{0x65, ADC, ZeroPage, 3, false},
	{0x66, ROR, ZeroPage, 5, false},
	{0x68, PLA, Implied, 4, false},
	{0x69, ADC, Immediate, 2, false},
	{0x6A, ROR, Accumulator, 2, false},
	{0x6C, JMP, Indirect, 5, false},
	{0x6D, ADC, Absolute, 4, false},
	{0x6E, ROR, Absolute, 6, false},

	{0x70, BVS, Relative, 2, false},
	{0x71, ADC, IndirectIndexed, 5, true},
	{0x75, ADC, ZeroPageX, 4, false},
	{0x76, ROR, ZeroPageX, 6, false},
	{0x78, SEI, Implied, 2, false},
	{0x79, ADC, AbsoluteY, 4, true},
	{0x7D, ADC, AbsoluteX, 4, true},
	{0x7E, ROR, AbsoluteX, 7, false},

	{0x81, STA, IndexedIndirect, 6, false},
	{0x84, STY, ZeroPage, 3, false},
	{0x85, STA, ZeroPage, 3, false},
	{0x86, STX, ZeroPage, 3, false},
	{0x88, DEY, Implied, 2, false},
	{0x8A, TXA, Implied, 2, false},
	{0x8C, STY, Absolute, 4, false},
	{0x8D, STA, Absolute, 4, false},
	{0x8E, STX, Absolute, 4, false},

	{0x90, BCC, Relative, 2, false},
	{0x91, STA, IndirectIndexed, 6, false},
	{0x94, STY, ZeroPageX, 4, false},
	{0x95, STA, ZeroPageX, 4, false},
	{0x96, STX, ZeroPageY, 4, false},
	{0x98, TYA, Implied, 2, false},
	{0x99, STA, AbsoluteY, 5, false},
	{0x9A, TXS, Implied, 2, false},
	{0x9D, STA, AbsoluteX, 5, false},

	{0xA0, LDY, Immediate, 2, false},
	{0xA1, LDA, IndexedIndirect, 6, false},
	{0xA2, LDX, Immediate, 2, false},
	{0xA4, LDY, ZeroPage, 3, false},
	{0xA5, LDA, ZeroPage, 3, false},
	{0xA6, LDX, ZeroPage, 3, false},
	{0xA8, TAY, Implied, 2, false},
	{0xA9, LDA, Immediate, 2, false},
	{0xAA, TAX, Implied, 2, false},
	{0xAC, LDY, Absolute, 4, false},
	{0xAD, LDA, Absolute, 4, false},
	{0xAE, LDX, Absolute, 4, false},

	{0xB0, BCS, Relative, 2, false},
	{0xB1, LDA, IndirectIndexed, 5, true},
	{0xB4, LDY, ZeroPageX, 4, false},
	{0xB5, LDA, ZeroPageX, 4, false},
	{0xB6, LDX, ZeroPageY, 4, false},
	{0xB8, CLV, Implied, 2, false},
	{0xB9, LDA, AbsoluteY, 4, true},
	{0xBA, TSX, Implied, 2, false},
	{0xBC, LDY, AbsoluteX, 4, true},
	{0xBD, LDA, AbsoluteX, 4, true},
	{0xBE, LDX, AbsoluteY, 4, true},

	{0xC0, CPY, Immediate, 2, false},
	{0xC1, CMP, IndexedIndirect, 6, false},
	{0xC4, CPY, ZeroPage, 3, false},
	{0xC5, CMP, ZeroPage, 3, false},
	{0xC6, DEC, ZeroPage, 5, false},
	{0xC8, INY, Implied, 2, false},
	{0xC9, CMP, Immediate, 2, false},
	{0xCA, DEX, Implied, 2, false},
	{0xCC, CPY, Absolute, 4, false},
	{0xCD, CMP, Absolute, 4, false},
	{0xCE, DEC, Absolute, 6, false},

	{0xD0, BNE, Relative, 2, false},
	{0xD1, CMP, IndirectIndexed, 5, true},
	{0xD5, CMP, ZeroPageX, 4, false},
	{0xD6, DEC, ZeroPageX, 6, false},
	{0xD8, CLD, Implied, 2, false},
	{0xD9, CMP, AbsoluteY, 4, true},
	{0xDD, CMP, AbsoluteX, 4, true},
	{0xDE, DEC, AbsoluteX, 7, false},

	{0xE0, CPX, Immediate, 2, false},
	{0xE1, SBC, IndexedIndirect, 6, false},
	{0xE4, CPX, ZeroPage, 3, false},
	{0xE5, SBC, ZeroPage, 3, false},
	{0xE6, INC, ZeroPage, 5, false},
	{0xE8, INX, Implied, 2, false},
	{0xE9, SBC, Immediate, 2, false},
	{0xEA, NOP, Implied, 2, false},
	{0xEC, CPX, Absolute, 4, false},
	{0xED, SBC, Absolute, 4, false},
	{0xEE, INC, Absolute, 6, false},

	{0xF0, BEQ, Relative, 2, false},
	{0xF1, SBC, IndirectIndexed, 5, true},
	{0xF5, SBC, ZeroPageX, 4, false},
	{0xF6, INC, ZeroPageX, 6, false},
	{0xF8, SED, Implied, 2, false},
	{0xF9, SBC, AbsoluteY, 4, true},
	{0xFD, SBC, AbsoluteX, 4, true},
	{0xFE, INC, AbsoluteX, 7, false},
}

func init() {
	for _, e := range documented {
		Table[e.code] = Definition{
			OpCode:         e.code,
			Mnemonic:       e.mnem,
			AddressingMode: e.mode,
			Cycles:         e.cyc,
			PageSensitive:  e.pageS,
		}
	}

	// fill every remaining slot with its opcode byte, leaving the
	// ILLEGAL/INVALID zero values in place.
	for i := range Table {
		if Table[i].Mnemonic == ILLEGAL {
			Table[i].OpCode = uint8(i)
		}
	}
}
