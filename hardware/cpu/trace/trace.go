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

package trace

import (
	"bytes"
	"fmt"

	"github.com/hexnibble/nescore/hardware/cpu"
	"github.com/hexnibble/nescore/hardware/cpu/instructions"
)

// Line formats the instruction at the CPU's current PC, followed by the
// register file and the running cycle count, in the column layout nestest
// reference logs use: address, raw bytes, mnemonic/operand, registers, CYC.
func Line(c *cpu.CPU, totalCycles int) (string, error) {
	pc := c.PC.Address()

	def, raw, err := peek(c, pc)
	if err != nil {
		return "", err
	}

	b := &bytes.Buffer{}
	fmt.Fprintf(b, "%04X  %-9s %-32s ", pc, hexBytes(raw), disassemble(def, raw, pc))
	fmt.Fprintf(b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.A.Value(), c.X.Value(), c.Y.Value(), c.P.Value(), c.SP.Value(), totalCycles)

	return b.String(), nil
}

// peek reads the opcode at pc and as many operand bytes as the decoded
// definition calls for, without disturbing the CPU.
func peek(c *cpu.CPU, pc uint16) (instructions.Definition, []uint8, error) {
	opcode, err := c.Mem.Read(pc)
	if err != nil {
		return instructions.Definition{}, nil, err
	}

	def := instructions.Lookup(opcode)
	raw := make([]uint8, def.Bytes())
	raw[0] = opcode
	for i := 1; i < len(raw); i++ {
		v, err := c.Mem.Read(pc + uint16(i))
		if err != nil {
			return def, nil, err
		}
		raw[i] = v
	}

	return def, raw, nil
}

func hexBytes(raw []uint8) string {
	b := &bytes.Buffer{}
	for i, v := range raw {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%02X", v)
	}
	return b.String()
}

// disassemble renders def's mnemonic and operand in 6502-assembler notation.
// raw[0] is the opcode byte; raw[1:] are the operand bytes already read by
// peek, in the same order they appear in memory.
func disassemble(def instructions.Definition, raw []uint8, pc uint16) string {
	if !def.IsValid() {
		return fmt.Sprintf("%s (illegal)", def.Mnemonic)
	}

	var operand string
	switch def.AddressingMode {
	case instructions.Implied:
		operand = ""
	case instructions.Accumulator:
		operand = "A"
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02X", raw[1])
	case instructions.Relative:
		target := pc + uint16(len(raw)) + uint16(int8(raw[1]))
		operand = fmt.Sprintf("$%04X", target)
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02X", raw[1])
	case instructions.ZeroPageX:
		operand = fmt.Sprintf("$%02X,X", raw[1])
	case instructions.ZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", raw[1])
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04X", le16(raw[1], raw[2]))
	case instructions.AbsoluteX:
		operand = fmt.Sprintf("$%04X,X", le16(raw[1], raw[2]))
	case instructions.AbsoluteY:
		operand = fmt.Sprintf("$%04X,Y", le16(raw[1], raw[2]))
	case instructions.Indirect:
		operand = fmt.Sprintf("($%04X)", le16(raw[1], raw[2]))
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("($%02X,X)", raw[1])
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("($%02X),Y", raw[1])
	}

	if operand == "" {
		return def.Mnemonic.String()
	}
	return fmt.Sprintf("%s %s", def.Mnemonic, operand)
}

func le16(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
