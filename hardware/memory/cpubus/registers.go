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

package cpubus

// NMI, RESET and IRQ are the three interrupt vectors, read little-endian
// from high memory when their corresponding line is serviced.
const (
	VectorNMI   = uint16(0xFFFA)
	VectorRESET = uint16(0xFFFC)
	VectorIRQ   = uint16(0xFFFE)
)

// Register names a CPU-visible PPU or APU/IO register by its canonical
// symbol, for disassembly and logging purposes.
type Register string

// Canonical PPU and APU/IO register symbols.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"
	OAMDMA    Register = "OAMDMA"
	SND_CHN   Register = "SND_CHN"
	JOY1      Register = "JOY1"
	JOY2      Register = "JOY2"
)

// PPURegisterSymbols indexes the eight CPU-visible PPU registers by their
// offset within the mirrored 0x2000-0x3FFF window.
var PPURegisterSymbols = map[uint16]Register{
	0: PPUCTRL,
	1: PPUMASK,
	2: PPUSTATUS,
	3: OAMADDR,
	4: OAMDATA,
	5: PPUSCROLL,
	6: PPUADDR,
	7: PPUDATA,
}

// APUIORegisterSymbols indexes the handful of named APU/IO registers by
// their absolute address in 0x4000-0x4017. Addresses not present here are
// unnamed APU channel registers.
var APUIORegisterSymbols = map[uint16]Register{
	0x4014: OAMDMA,
	0x4015: SND_CHN,
	0x4016: JOY1,
	0x4017: JOY2,
}
