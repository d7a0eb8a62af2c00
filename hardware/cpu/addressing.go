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
)

// operand is the result of resolving an instruction's addressing mode: an
// effective address for every memory-referencing mode, a pre-fetched byte
// for Immediate, or a flag marking the accumulator itself as the target.
type operand struct {
	address     uint16
	value       uint8
	accumulator bool
	immediate   bool
	pageCrossed bool
}

// resolve advances PC past the instruction's operand bytes and computes the
// operand per def's addressing mode. It never touches the target's current
// value for write-only modes; callers read or write through readOperand and
// writeOperand as the instruction's semantics require.
func (c *CPU) resolve(def instructions.Definition) (operand, error) {
	switch def.AddressingMode {
	case instructions.Implied:
		return operand{}, nil

	case instructions.Accumulator:
		return operand{accumulator: true}, nil

	case instructions.Immediate:
		v, err := c.Mem.Read(c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Increment()
		return operand{immediate: true, value: v}, nil

	case instructions.Relative:
		off, err := c.Mem.Read(c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Increment()
		base := c.PC.Address()
		target := base + uint16(int8(off))
		return operand{address: target, pageCrossed: !instructions.SamePage(base, target)}, nil

	case instructions.Absolute:
		addr, err := memRead16(c.Mem, c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Add(2)
		return operand{address: addr}, nil

	case instructions.AbsoluteX:
		base, err := memRead16(c.Mem, c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Add(2)
		addr := base + uint16(c.X.Value())
		return operand{address: addr, pageCrossed: !instructions.SamePage(base, addr)}, nil

	case instructions.AbsoluteY:
		base, err := memRead16(c.Mem, c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Add(2)
		addr := base + uint16(c.Y.Value())
		return operand{address: addr, pageCrossed: !instructions.SamePage(base, addr)}, nil

	case instructions.ZeroPage:
		zp, err := c.Mem.Read(c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Increment()
		return operand{address: uint16(zp)}, nil

	case instructions.ZeroPageX:
		zp, err := c.Mem.Read(c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Increment()
		return operand{address: uint16(zp + c.X.Value())}, nil

	case instructions.ZeroPageY:
		zp, err := c.Mem.Read(c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Increment()
		return operand{address: uint16(zp + c.Y.Value())}, nil

	case instructions.Indirect:
		ptr, err := memRead16(c.Mem, c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Add(2)
		addr, err := memRead16ZeroPage(c.Mem, ptr)
		if err != nil {
			return operand{}, err
		}
		return operand{address: addr}, nil

	case instructions.IndexedIndirect:
		zp, err := c.Mem.Read(c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Increment()
		ptr := uint16(zp + c.X.Value())
		addr, err := memRead16ZeroPage(c.Mem, ptr)
		if err != nil {
			return operand{}, err
		}
		return operand{address: addr}, nil

	case instructions.IndirectIndexed:
		zp, err := c.Mem.Read(c.PC.Address())
		if err != nil {
			return operand{}, err
		}
		c.PC.Increment()
		base, err := memRead16ZeroPage(c.Mem, uint16(zp))
		if err != nil {
			return operand{}, err
		}
		addr := base + uint16(c.Y.Value())
		return operand{address: addr, pageCrossed: !instructions.SamePage(base, addr)}, nil

	default:
		return operand{}, curated.Errorf("cpu: resolve: unhandled addressing mode %s", def.AddressingMode)
	}
}

// readOperand fetches the value an instruction operates on: the pre-fetched
// immediate byte, the accumulator's current value, or a bus read at the
// resolved address.
func (c *CPU) readOperand(op operand) (uint8, error) {
	if op.immediate {
		return op.value, nil
	}
	if op.accumulator {
		return c.A.Value(), nil
	}
	return c.Mem.Read(op.address)
}

// writeOperand stores v back to wherever op pointed: the accumulator, or the
// resolved bus address. Never called for Immediate operands.
func (c *CPU) writeOperand(op operand, v uint8) error {
	if op.accumulator {
		c.A.Load(v)
		return nil
	}
	return c.Mem.Write(op.address, v)
}
