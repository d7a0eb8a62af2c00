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

// Package instructions defines the 256-entry opcode decode table: for every
// byte value, which of the 56 documented mnemonics it selects, which of the
// 13 addressing modes its operand uses, how many base cycles it costs, and
// whether an indexed addressing mode crossing a page boundary adds a cycle.
//
// Table is a literal, hand-authored in place of the CSV-driven generator
// this package would otherwise use, since neither the source CSV nor its
// generated output travelled with the retrieved reference material. Every
// entry not assigned a documented mnemonic defaults to ILLEGAL with mode
// INVALID, which is exactly the signal the CPU core needs to transition to
// its halted state.
//
// The effective-address computation for each addressing mode, including the
// two wraparound quirks (zero-page index wrap, and the indirect-JMP page-wrap
// bug) and the page-cross cycle penalty, lives in package cpu, since it needs
// the CPU's registers and bus; this package supplies SamePage for the
// page-cross test.
package instructions
