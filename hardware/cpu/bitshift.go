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

// shiftLeft, shiftRight, rotateLeft and rotateRight implement ASL/LSR/ROL/ROR
// against a plain byte, for the memory-operand case. The accumulator case
// goes through the equivalent registers.Register methods instead, so both
// code paths exist and are exercised.

func shiftLeft(v uint8) (result uint8, carry bool) {
	carry = v&0x80 != 0
	result = v << 1
	return result, carry
}

func shiftRight(v uint8) (result uint8, carry bool) {
	carry = v&0x01 != 0
	result = v >> 1
	return result, carry
}

func rotateLeft(v uint8, carryIn bool) (result uint8, carryOut bool) {
	carryOut = v&0x80 != 0
	result = v << 1
	if carryIn {
		result |= 0x01
	}
	return result, carryOut
}

func rotateRight(v uint8, carryIn bool) (result uint8, carryOut bool) {
	carryOut = v&0x01 != 0
	result = v >> 1
	if carryIn {
		result |= 0x80
	}
	return result, carryOut
}
