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
	"github.com/hexnibble/nescore/hardware/cpu/interrupts"
	"github.com/hexnibble/nescore/hardware/cpu/registers"
	"github.com/hexnibble/nescore/hardware/memory/cpubus"
	"github.com/hexnibble/nescore/logger"
)

// State is the CPU's run state.
type State int

const (
	// Running is the normal operating state.
	Running State = iota
	// Halted is entered when Step decodes an undocumented opcode, and can
	// only be left by PowerCycle or Reset.
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "halted"
	}
	return "running"
}

const (
	interruptServiceCycles = 7
	brkServiceCycles       = 7
)

// CPU is the Ricoh 2A03 register file and execution engine.
type CPU struct {
	PC *registers.ProgramCounter
	SP *registers.StackPointer
	A  *registers.Register
	X  *registers.Register
	Y  *registers.Register
	P  registers.StatusRegister

	Mem         cpubus.Memory
	Interrupts  *interrupts.Latch

	state State
}

// NewCPU builds a CPU wired to the given bus and interrupt latch. Neither
// register state nor the program counter are meaningful until PowerCycle or
// Reset has been called.
func NewCPU(mem cpubus.Memory, irq *interrupts.Latch) *CPU {
	return &CPU{
		PC:         registers.NewProgramCounter(0),
		SP:         registers.NewStackPointer(0),
		A:          registers.NewRegister(0, "A"),
		X:          registers.NewRegister(0, "X"),
		Y:          registers.NewRegister(0, "Y"),
		P:          registers.NewStatusRegister(),
		Mem:        mem,
		Interrupts: irq,
		state:      Running,
	}
}

// State reports whether the CPU is still executing instructions.
func (c *CPU) State() State {
	return c.state
}

// PowerCycle sets the register file to its documented power-on values,
// queues a RESET on the interrupt latch, and immediately services it -
// dropping the stack pointer by three (landing on 0xFD, since it starts at
// 0x00) and loading PC from the reset vector - so a freshly powered-on CPU
// is ready to fetch its first opcode without the caller having to drive an
// extra Step() first. Returns the 7-cycle cost of that service.
func (c *CPU) PowerCycle() (int, error) {
	c.A.Load(0)
	c.X.Load(0)
	c.Y.Load(0)
	c.SP.Load(0)
	c.P.FromValue(0x34)
	c.state = Running

	c.Interrupts.Request(interrupts.RESET)
	return c.serviceInterrupt(interrupts.RESET)
}

// Reset mimics pulling the reset line: it queues a RESET on the interrupt
// latch and immediately services it, which drops the stack pointer by three
// (no values are actually written), disables interrupts, and reloads PC from
// the reset vector. Unlike PowerCycle, A/X/Y and the other flags are left
// exactly as they were. Returns the 7-cycle cost of the service.
func (c *CPU) Reset() (int, error) {
	c.state = Running
	c.Interrupts.Request(interrupts.RESET)
	return c.serviceInterrupt(interrupts.RESET)
}

// push8 writes v to the hardware stack and moves SP down by one.
func (c *CPU) push8(v uint8) error {
	return c.Mem.Write(c.SP.Push(), v)
}

// pull8 reads the next byte off the hardware stack, moving SP up by one.
func (c *CPU) pull8() (uint8, error) {
	return c.Mem.Read(c.SP.Pull())
}

// push16 pushes a 16-bit value high byte first, so that pull16 retrieves it
// in the order the 6502 expects for a return address.
func (c *CPU) push16(v uint16) error {
	if err := c.push8(uint8(v >> 8)); err != nil {
		return err
	}
	return c.push8(uint8(v))
}

// pull16 is the inverse of push16: low byte first, then high byte.
func (c *CPU) pull16() (uint16, error) {
	lo, err := c.pull8()
	if err != nil {
		return 0, err
	}
	hi, err := c.pull8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func memRead16(m cpubus.Memory, addr uint16) (uint16, error) {
	lo, err := m.Read(addr)
	if err != nil {
		return 0, err
	}
	hi, err := m.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func memRead16ZeroPage(m cpubus.Memory, addr uint16) (uint16, error) {
	lo, err := m.Read(addr)
	if err != nil {
		return 0, err
	}
	hiAddr := (addr & 0xFF00) | ((addr + 1) & 0x00FF)
	hi, err := m.Read(hiAddr)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Step services at most one pending interrupt, or else decodes and executes
// exactly one instruction, and returns the number of cycles that took. It is
// a no-op returning (0, nil) once the CPU has Halted.
func (c *CPU) Step() (int, error) {
	if c.state == Halted {
		return 0, nil
	}

	if kind, pending := c.Interrupts.Get(); pending {
		if kind == interrupts.IRQ && c.P.InterruptDisable {
			// masked; leave it latched and fall through to normal execution
		} else {
			return c.serviceInterrupt(kind)
		}
	}

	opcode, err := c.Mem.Read(c.PC.Address())
	if err != nil {
		return 0, curated.Errorf("cpu: fetch opcode: %v", err)
	}
	c.PC.Increment()

	def := instructions.Lookup(opcode)
	if !def.IsValid() {
		logger.Logf(logger.Allow, "cpu", "halted on undocumented opcode %#02x at %s", opcode, c.PC)
		c.state = Halted
		return 0, nil
	}

	return c.execute(def)
}

// serviceInterrupt pushes PC and P (RESET pushes nothing and drops the stack
// pointer by three instead), sets the interrupt-disable flag, and loads PC
// from the line's vector. It charges a flat 7 cycles, matching a
// BRK's service cost, and is not itself a step of instruction execution.
func (c *CPU) serviceInterrupt(kind interrupts.Kind) (int, error) {
	c.Interrupts.Service(kind)

	if kind != interrupts.RESET {
		if err := c.push16(c.PC.Address()); err != nil {
			return 0, curated.Errorf("cpu: service %s: %v", kind, err)
		}

		if err := c.push8(c.P.PushValue(false)); err != nil {
			return 0, curated.Errorf("cpu: service %s: %v", kind, err)
		}
	}

	c.P.InterruptDisable = true

	var vector uint16
	switch kind {
	case interrupts.NMI:
		vector = cpubus.VectorNMI
	case interrupts.IRQ:
		vector = cpubus.VectorIRQ
	default:
		vector = cpubus.VectorRESET
	}

	addr, err := memRead16(c.Mem, vector)
	if err != nil {
		return 0, curated.Errorf("cpu: service %s: %v", kind, err)
	}

	if kind == interrupts.RESET {
		c.SP.Subtract(3)
	}

	c.PC.Load(addr)
	c.state = Running

	return interruptServiceCycles, nil
}
