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

package trace_test

import (
	"strings"
	"testing"

	"github.com/hexnibble/nescore/hardware/cpu"
	"github.com/hexnibble/nescore/hardware/cpu/interrupts"
	"github.com/hexnibble/nescore/hardware/cpu/trace"
	"github.com/hexnibble/nescore/test"
)

type flatMemory [0x10000]uint8

func (m *flatMemory) Read(address uint16) (uint8, error) {
	return m[address], nil
}

func (m *flatMemory) Write(address uint16, data uint8) error {
	m[address] = data
	return nil
}

func TestLineFormatsAbsoluteJMP(t *testing.T) {
	mem := &flatMemory{}
	mem[0xFFFC] = 0x00
	mem[0xFFFD] = 0x80
	mem[0x8000] = 0x4C // JMP $1234
	mem[0x8001] = 0x34
	mem[0x8002] = 0x12

	c := cpu.NewCPU(mem, &interrupts.Latch{})
	_, err := c.PowerCycle()
	test.ExpectedSuccess(t, err)

	line, err := trace.Line(c, 7)
	test.ExpectedSuccess(t, err)

	if !strings.HasPrefix(line, "8000  4C 34 12  JMP $1234") {
		t.Errorf("unexpected trace line: %q", line)
	}
	if !strings.Contains(line, "CYC:7") {
		t.Errorf("expected cycle count in trace line: %q", line)
	}
	// Line must not have advanced PC.
	test.Equate(t, c.PC.Address(), 0x8000)
}

func TestLineFormatsImmediateAndIllegal(t *testing.T) {
	mem := &flatMemory{}
	mem[0xFFFC] = 0x00
	mem[0xFFFD] = 0x80
	mem[0x8000] = 0xA9 // LDA #$42
	mem[0x8001] = 0x42

	c := cpu.NewCPU(mem, &interrupts.Latch{})
	_, err := c.PowerCycle()
	test.ExpectedSuccess(t, err)

	line, err := trace.Line(c, 0)
	test.ExpectedSuccess(t, err)
	if !strings.Contains(line, "LDA #$42") {
		t.Errorf("unexpected trace line: %q", line)
	}

	mem[0x8000] = 0x02 // illegal
	line, err = trace.Line(c, 0)
	test.ExpectedSuccess(t, err)
	if !strings.Contains(line, "illegal") {
		t.Errorf("expected illegal marker in trace line: %q", line)
	}
}
