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

package instructions

// SamePage reports whether a and b fall in the same 256-byte page. Used by
// the CPU core to decide whether an indexed addressing mode, or a taken
// branch, crosses a page boundary and so costs an extra cycle.
func SamePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}
