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

// Mapper handles everything the bus delegates from 0x4020 upward: cartridge
// PRG ROM/RAM and, for real mappers, bank switching and IRQ generation. Bank
// switching and mapper IRQs are out of scope here; NROM is the only
// implementation provided.
type Mapper interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// openBusMapper answers every cartridge-space access with 0xFF, the
// conventional open-bus value, and discards writes. It is the default
// Mapper for a Bus built without cartridge data attached.
type openBusMapper struct{}

func (openBusMapper) Read(address uint16) uint8      { return 0xFF }
func (openBusMapper) Write(address uint16, data uint8) {}
