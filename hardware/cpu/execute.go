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

package cpu

import (
	"github.com/hexnibble/nescore/curated"
	"github.com/hexnibble/nescore/hardware/cpu/instructions"
	"github.com/hexnibble/nescore/hardware/memory/cpubus"
)

// execute resolves def's operand and carries out its documented effect,
// returning the total cycle cost including any page-cross or branch-taken
// penalty.
func (c *CPU) execute(def instructions.Definition) (int, error) {
	op, err := c.resolve(def)
	if err != nil {
		return 0, curated.Errorf("cpu: %s: %v", def.Mnemonic, err)
	}

	cycles := def.Cycles
	if def.PageSensitive && op.pageCrossed {
		cycles++
	}

	switch def.Mnemonic {
	case instructions.ADC:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		carry, overflow := c.A.Add(v, c.P.Carry)
		c.P.Carry = carry
		c.P.Overflow = overflow
		c.P.SetZN(c.A.Value())

	case instructions.SBC:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		carry, overflow := c.A.Subtract(v, c.P.Carry)
		c.P.Carry = carry
		c.P.Overflow = overflow
		c.P.SetZN(c.A.Value())

	case instructions.AND:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.A.AND(v)
		c.P.SetZN(c.A.Value())

	case instructions.ORA:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.A.ORA(v)
		c.P.SetZN(c.A.Value())

	case instructions.EOR:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.A.EOR(v)
		c.P.SetZN(c.A.Value())

	case instructions.BIT:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.P.Zero = c.A.Value()&v == 0
		c.P.Overflow = v&0x40 != 0
		c.P.Negative = v&0x80 != 0

	case instructions.ASL:
		if op.accumulator {
			carry := c.A.ASL()
			c.P.Carry = carry
			c.P.SetZN(c.A.Value())
		} else {
			v, err := c.Mem.Read(op.address)
			if err != nil {
				return 0, err
			}
			nv, carry := shiftLeft(v)
			c.P.Carry = carry
			c.P.SetZN(nv)
			if err := c.Mem.Write(op.address, nv); err != nil {
				return 0, err
			}
		}

	case instructions.LSR:
		if op.accumulator {
			carry := c.A.LSR()
			c.P.Carry = carry
			c.P.SetZN(c.A.Value())
		} else {
			v, err := c.Mem.Read(op.address)
			if err != nil {
				return 0, err
			}
			nv, carry := shiftRight(v)
			c.P.Carry = carry
			c.P.SetZN(nv)
			if err := c.Mem.Write(op.address, nv); err != nil {
				return 0, err
			}
		}

	case instructions.ROL:
		if op.accumulator {
			carry := c.A.ROL(c.P.Carry)
			c.P.Carry = carry
			c.P.SetZN(c.A.Value())
		} else {
			v, err := c.Mem.Read(op.address)
			if err != nil {
				return 0, err
			}
			nv, carry := rotateLeft(v, c.P.Carry)
			c.P.Carry = carry
			c.P.SetZN(nv)
			if err := c.Mem.Write(op.address, nv); err != nil {
				return 0, err
			}
		}

	case instructions.ROR:
		if op.accumulator {
			carry := c.A.ROR(c.P.Carry)
			c.P.Carry = carry
			c.P.SetZN(c.A.Value())
		} else {
			v, err := c.Mem.Read(op.address)
			if err != nil {
				return 0, err
			}
			nv, carry := rotateRight(v, c.P.Carry)
			c.P.Carry = carry
			c.P.SetZN(nv)
			if err := c.Mem.Write(op.address, nv); err != nil {
				return 0, err
			}
		}

	case instructions.LDA:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.A.Load(v)
		c.P.SetZN(v)

	case instructions.LDX:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.X.Load(v)
		c.P.SetZN(v)

	case instructions.LDY:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.Y.Load(v)
		c.P.SetZN(v)

	case instructions.STA:
		if err := c.Mem.Write(op.address, c.A.Value()); err != nil {
			return 0, err
		}

	case instructions.STX:
		if err := c.Mem.Write(op.address, c.X.Value()); err != nil {
			return 0, err
		}

	case instructions.STY:
		if err := c.Mem.Write(op.address, c.Y.Value()); err != nil {
			return 0, err
		}

	case instructions.INC:
		v, err := c.Mem.Read(op.address)
		if err != nil {
			return 0, err
		}
		v++
		c.P.SetZN(v)
		if err := c.Mem.Write(op.address, v); err != nil {
			return 0, err
		}

	case instructions.DEC:
		v, err := c.Mem.Read(op.address)
		if err != nil {
			return 0, err
		}
		v--
		c.P.SetZN(v)
		if err := c.Mem.Write(op.address, v); err != nil {
			return 0, err
		}

	case instructions.INX:
		c.X.Load(c.X.Value() + 1)
		c.P.SetZN(c.X.Value())

	case instructions.INY:
		c.Y.Load(c.Y.Value() + 1)
		c.P.SetZN(c.Y.Value())

	case instructions.DEX:
		c.X.Load(c.X.Value() - 1)
		c.P.SetZN(c.X.Value())

	case instructions.DEY:
		c.Y.Load(c.Y.Value() - 1)
		c.P.SetZN(c.Y.Value())

	case instructions.CMP:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.compare(c.A.Value(), v)

	case instructions.CPX:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.compare(c.X.Value(), v)

	case instructions.CPY:
		v, err := c.readOperand(op)
		if err != nil {
			return 0, err
		}
		c.compare(c.Y.Value(), v)

	case instructions.TAX:
		c.X.Load(c.A.Value())
		c.P.SetZN(c.X.Value())

	case instructions.TAY:
		c.Y.Load(c.A.Value())
		c.P.SetZN(c.Y.Value())

	case instructions.TXA:
		c.A.Load(c.X.Value())
		c.P.SetZN(c.A.Value())

	case instructions.TYA:
		c.A.Load(c.Y.Value())
		c.P.SetZN(c.A.Value())

	case instructions.TSX:
		c.X.Load(c.SP.Value())
		c.P.SetZN(c.X.Value())

	case instructions.TXS:
		c.SP.Load(c.X.Value())

	case instructions.PHA:
		if err := c.push8(c.A.Value()); err != nil {
			return 0, err
		}

	case instructions.PLA:
		v, err := c.pull8()
		if err != nil {
			return 0, err
		}
		c.A.Load(v)
		c.P.SetZN(v)

	case instructions.PHP:
		if err := c.push8(c.P.PushValue(true)); err != nil {
			return 0, err
		}

	case instructions.PLP:
		v, err := c.pull8()
		if err != nil {
			return 0, err
		}
		c.P.FromValue(v)

	case instructions.JMP:
		c.PC.Load(op.address)

	case instructions.JSR:
		if err := c.push16(c.PC.Address() - 1); err != nil {
			return 0, err
		}
		c.PC.Load(op.address)

	case instructions.RTS:
		addr, err := c.pull16()
		if err != nil {
			return 0, err
		}
		c.PC.Load(addr + 1)

	case instructions.RTI:
		v, err := c.pull8()
		if err != nil {
			return 0, err
		}
		c.P.FromValue(v)
		addr, err := c.pull16()
		if err != nil {
			return 0, err
		}
		c.PC.Load(addr)

	case instructions.BRK:
		// BRK consumes a padding byte beyond the opcode itself; the pushed
		// return address is the address following that padding byte.
		c.PC.Increment()
		if err := c.push16(c.PC.Address()); err != nil {
			return 0, err
		}
		if err := c.push8(c.P.PushValue(true)); err != nil {
			return 0, err
		}
		c.P.InterruptDisable = true
		addr, err := memRead16(c.Mem, cpubus.VectorIRQ)
		if err != nil {
			return 0, err
		}
		c.PC.Load(addr)

	case instructions.BCC:
		c.branch(!c.P.Carry, op, &cycles)
	case instructions.BCS:
		c.branch(c.P.Carry, op, &cycles)
	case instructions.BEQ:
		c.branch(c.P.Zero, op, &cycles)
	case instructions.BNE:
		c.branch(!c.P.Zero, op, &cycles)
	case instructions.BMI:
		c.branch(c.P.Negative, op, &cycles)
	case instructions.BPL:
		c.branch(!c.P.Negative, op, &cycles)
	case instructions.BVC:
		c.branch(!c.P.Overflow, op, &cycles)
	case instructions.BVS:
		c.branch(c.P.Overflow, op, &cycles)

	case instructions.CLC:
		c.P.Carry = false
	case instructions.CLD:
		c.P.Decimal = false
	case instructions.CLI:
		c.P.InterruptDisable = false
	case instructions.CLV:
		c.P.Overflow = false
	case instructions.SEC:
		c.P.Carry = true
	case instructions.SED:
		c.P.Decimal = true
	case instructions.SEI:
		c.P.InterruptDisable = true

	case instructions.NOP:
		// nothing

	default:
		return 0, curated.Errorf("cpu: execute: unhandled mnemonic %s", def.Mnemonic)
	}

	return cycles, nil
}

// compare implements the shared CMP/CPX/CPY semantics: an unsigned subtract
// that sets flags but discards the result.
func (c *CPU) compare(reg, v uint8) {
	c.P.Carry = reg >= v
	diff := reg - v
	c.P.Zero = diff == 0
	c.P.Negative = diff&0x80 != 0
}

// branch takes the branch when taken is true, charging one extra cycle, plus
// two more if the target lies on a different page than the instruction
// following the branch.
func (c *CPU) branch(taken bool, op operand, cycles *int) {
	if !taken {
		return
	}
	*cycles++
	if op.pageCrossed {
		*cycles += 2
	}
	c.PC.Load(op.address)
}
