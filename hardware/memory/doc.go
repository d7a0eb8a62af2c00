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

// Package memory implements the CPU-visible NES memory map: internal RAM
// (mirrored every 0x0800 bytes), PPU and APU/IO register windows (backed here
// by minimal stand-ins, since the PPU and APU themselves are out of scope),
// and cartridge space delegated to a Mapper.
//
// Bus satisfies cpubus.Memory, the only interface the CPU core depends on.
// Address decoding is a switch over address ranges; a mirrored region is
// folded onto its primary location by taking the address modulo the region's
// size (0x0800 for RAM, 8 for the PPU registers).
package memory
