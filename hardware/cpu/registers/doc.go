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

// Package registers implements the four register types of the Ricoh 2A03:
// the program counter, the stack pointer, the status register, and the
// 8-bit general-purpose register used for A, X and Y.
//
// Register defines the basic 8-bit operations used by the accumulator and
// index registers: load, add, subtract, the logical operations and the
// shift/rotate primitives, along with the zero/negative tests used to
// update the status register after almost every operation.
//
// StackPointer is an 8-bit register whose value is always interpreted as an
// offset into page one (0x0100-0x01FF) of the address space.
//
// StatusRegister is implemented as a set of named boolean fields rather than
// a raw byte, since most of the CPU's work with it is setting or testing one
// flag at a time; Value() packs it for a bare read (break bit clear),
// PushValue() packs it for PHP/BRK/interrupt pushes with the break bit chosen
// by the caller, and FromValue() unpacks a byte pulled by PLP/RTI.
package registers
