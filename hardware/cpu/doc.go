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

// Package cpu implements the Ricoh 2A03 execution engine: register file,
// interrupt service, opcode decode/dispatch, and the coarse, per-instruction
// cycle accounting the rest of the console synchronises against.
//
// CPU.Step() is the only entry point the console driver needs: it services
// at most one pending interrupt, or decodes and executes exactly one
// instruction, and returns the number of cycles that took. There is no
// cycle-exact sub-instruction timing; callers that need the PPU or APU to
// catch up mid-instruction are out of scope for this package.
//
// Undocumented opcodes are never emulated. Decoding one, or decoding a table
// entry with an invalid addressing mode, halts the CPU; State() becomes
// Halted and stays that way until PowerCycle or Reset is called.
package cpu
