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

package memory_test

import (
	"testing"

	"github.com/hexnibble/nescore/hardware/memory"
	"github.com/hexnibble/nescore/test"
)

func TestNROM16KMirrors(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0xC0

	m, err := memory.NewNROM(prg)
	test.ExpectedSuccess(t, err)

	test.Equate(t, m.Read(0xFFFC), 0x00)
	test.Equate(t, m.Read(0xFFFD), 0xC0)
	test.Equate(t, m.Read(0xBFFC), 0x00)
	test.Equate(t, m.Read(0xBFFD), 0xC0)
}

func TestNROMWorkRAM(t *testing.T) {
	m, err := memory.NewNROM(make([]byte, 0x8000))
	test.ExpectedSuccess(t, err)

	m.Write(0x6000, 0x99)
	test.Equate(t, m.Read(0x6000), 0x99)
}

func TestNROMInvalidSize(t *testing.T) {
	_, err := memory.NewNROM(make([]byte, 100))
	test.ExpectedFailure(t, err)
}
