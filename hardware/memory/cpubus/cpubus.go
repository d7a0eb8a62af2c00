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

// Package cpubus defines the interface the CPU core uses to reach the rest
// of the console: two primitives, Read and Write, that the concrete Bus type
// in the memory package implements.
package cpubus

// Memory is the surface the CPU core depends on. Implementations route a
// read or write to whichever region of the address space the address falls
// in - RAM, PPU registers, APU/IO registers, or cartridge space - mapping
// mirrored addresses to their primary location along the way. The CPU never
// assumes Read is free of side effects.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}
