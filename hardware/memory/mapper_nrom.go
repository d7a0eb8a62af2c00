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

import "github.com/hexnibble/nescore/curated"

const (
	prgRAMStart = 0x6000
	prgRAMEnd   = 0x7FFF
	prgROMStart = 0x8000

	prgBankSize16K = 0x4000
	prgBankSize32K = 0x8000
)

// NROM is mapper 0: a fixed, non-switching 16K or 32K PRG window at
// 0x8000-0xFFFF, optionally backed by battery/work RAM at 0x6000-0x7FFF. A
// 16K image is mirrored into both halves of the window, matching the
// behaviour real NROM-128 boards exhibit and that nestest.nes itself relies
// on for its reset vector to be visible at both 0xC000 and 0x8000-relative
// offsets.
type NROM struct {
	prg [prgBankSize32K]uint8
	ram [prgRAMEnd - prgRAMStart + 1]uint8
}

// NewNROM builds an NROM mapper from a raw PRG ROM dump. prg must be exactly
// 16384 or 32768 bytes.
func NewNROM(prg []byte) (*NROM, error) {
	n := &NROM{}

	switch len(prg) {
	case prgBankSize16K:
		copy(n.prg[:prgBankSize16K], prg)
		copy(n.prg[prgBankSize16K:], prg)
	case prgBankSize32K:
		copy(n.prg[:], prg)
	default:
		return nil, curated.Errorf("NROM: PRG ROM must be 16K or 32K, got %d bytes", len(prg))
	}

	return n, nil
}

// Read implements Mapper.
func (n *NROM) Read(address uint16) uint8 {
	switch {
	case address >= prgROMStart:
		return n.prg[address-prgROMStart]
	case address >= prgRAMStart && address <= prgRAMEnd:
		return n.ram[address-prgRAMStart]
	default:
		return 0xFF
	}
}

// Write implements Mapper. Writes to 0x6000-0x7FFF land in work RAM; writes
// anywhere else, including the PRG ROM window itself, are discarded, since
// NROM has no bank-select registers to write to.
func (n *NROM) Write(address uint16, data uint8) {
	if address >= prgRAMStart && address <= prgRAMEnd {
		n.ram[address-prgRAMStart] = data
	}
}
