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

package memory

import "github.com/hexnibble/nescore/hardware/memory/cpubus"

const (
	ramSize      = 0x0800
	ramMirrorEnd = 0x1FFF

	ppuRegStart  = 0x2000
	ppuRegEnd    = 0x3FFF
	ppuRegWindow = 0x0008

	apuIOStart = 0x4000
	apuIOEnd   = 0x401F

	cartStart = 0x4020
)

// Bus is the CPU-visible NES address space. It owns RAM directly and
// delegates everything from 0x4020 upward to a Mapper; PPU and APU registers
// below that are backed by minimal stand-ins, since neither subsystem is
// implemented here.
type Bus struct {
	ram    ram
	ppu    ppuRegisters
	apuio  apuIORegisters
	mapper Mapper
}

// NewBus builds a Bus with freshly zeroed RAM and the given mapper attached.
// A nil mapper is replaced with an openBusMapper that returns 0xFF for every
// cartridge-space read, matching real open-bus behaviour closely enough for
// the CPU core's own tests, which do not exercise cartridge space at all.
func NewBus(mapper Mapper) *Bus {
	if mapper == nil {
		mapper = openBusMapper{}
	}
	return &Bus{mapper: mapper}
}

// Mapper returns the bus's attached mapper, so callers (the conformance CLI,
// tests) can load PRG data into it after construction.
func (b *Bus) Mapper() Mapper {
	return b.mapper
}

var _ cpubus.Memory = (*Bus)(nil)

// Read implements cpubus.Memory.
func (b *Bus) Read(address uint16) (uint8, error) {
	switch {
	case address <= ramMirrorEnd:
		return b.ram[address%ramSize], nil
	case address >= ppuRegStart && address <= ppuRegEnd:
		return b.ppu.read(address % ppuRegWindow), nil
	case address >= apuIOStart && address <= apuIOEnd:
		return b.apuio.read(address), nil
	default:
		return b.mapper.Read(address), nil
	}
}

// Write implements cpubus.Memory.
func (b *Bus) Write(address uint16, data uint8) error {
	switch {
	case address <= ramMirrorEnd:
		b.ram[address%ramSize] = data
	case address >= ppuRegStart && address <= ppuRegEnd:
		b.ppu.write(address%ppuRegWindow, data)
	case address >= apuIOStart && address <= apuIOEnd:
		b.apuio.write(address, data)
	default:
		b.mapper.Write(address, data)
	}
	return nil
}

// Read16 reads a little-endian word starting at address, with the high byte
// fetched from address+1 using ordinary (non-wrapping) arithmetic.
func Read16(m cpubus.Memory, address uint16) (uint16, error) {
	lo, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Read16ZeroPage reads a little-endian word starting at address, but fetches
// the high byte from the same page as address, wrapping at the page
// boundary instead of carrying into the next page. This reproduces the
// indirect-JMP page-wrap bug and is also the correct behaviour for all
// zero-page indirect addressing modes.
func Read16ZeroPage(m cpubus.Memory, address uint16) (uint16, error) {
	lo, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	hiAddr := (address & 0xFF00) | ((address + 1) & 0x00FF)
	hi, err := m.Read(hiAddr)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

type ram [ramSize]uint8

// ppuRegisters stands in for the eight CPU-visible PPU registers. It has no
// pixel pipeline behind it; it exists only so that reads/writes in
// 0x2000-0x3FFF do not fall through to open bus, since real cartridges and
// conformance ROMs do poke at these addresses even when nothing downstream
// cares about the result.
type ppuRegisters struct {
	regs [8]uint8
}

func (p *ppuRegisters) read(offset uint16) uint8 {
	return p.regs[offset]
}

func (p *ppuRegisters) write(offset uint16, v uint8) {
	p.regs[offset] = v
}

// apuIORegisters stands in for the APU and controller-port register window
// (0x4000-0x401F). It is a plain byte store: a read returns the last value
// written to that address, with no APU, controller-port or open-bus
// behaviour behind it.
type apuIORegisters struct {
	regs [apuIOEnd - apuIOStart + 1]uint8
}

func (a *apuIORegisters) read(address uint16) uint8 {
	return a.regs[address-apuIOStart]
}

func (a *apuIORegisters) write(address uint16, v uint8) {
	a.regs[address-apuIOStart] = v
}
