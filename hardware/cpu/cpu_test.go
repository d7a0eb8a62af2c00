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

package cpu_test

import (
	"testing"

	"github.com/hexnibble/nescore/hardware/cpu"
	"github.com/hexnibble/nescore/hardware/cpu/interrupts"
	"github.com/hexnibble/nescore/test"
)

// flatMemory is a full 64K byte array satisfying cpubus.Memory, used so
// these tests can place code and vectors at arbitrary addresses without
// going through the real NES memory map.
type flatMemory [0x10000]uint8

func (m *flatMemory) Read(address uint16) (uint8, error) {
	return m[address], nil
}

func (m *flatMemory) Write(address uint16, data uint8) error {
	m[address] = data
	return nil
}

func (m *flatMemory) loadAt(address uint16, bytes ...uint8) {
	for i, b := range bytes {
		m[address+uint16(i)] = b
	}
}

func (m *flatMemory) setResetVector(address uint16) {
	m[0xFFFC] = uint8(address)
	m[0xFFFD] = uint8(address >> 8)
}

func newTestCPU() (*cpu.CPU, *flatMemory) {
	mem := &flatMemory{}
	mem.setResetVector(0x8000)
	latch := &interrupts.Latch{}
	c := cpu.NewCPU(mem, latch)
	if _, err := c.PowerCycle(); err != nil {
		panic(err)
	}
	return c, mem
}

func TestPowerCycleRegisters(t *testing.T) {
	c, _ := newTestCPU()
	test.Equate(t, c.A.Value(), 0x00)
	test.Equate(t, c.X.Value(), 0x00)
	test.Equate(t, c.Y.Value(), 0x00)
	test.Equate(t, c.SP.Value(), 0xFD)
	test.Equate(t, c.PC.Address(), 0x8000)
	test.Equate(t, int(cpu.Running), int(c.State()))
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0xA9, 0x80) // LDA #$80
	cycles, err := c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 2)
	test.Equate(t, c.A.Value(), 0x80)
	test.Equate(t, c.P.Negative, true)
	test.Equate(t, c.P.Zero, false)
}

// S2: JMP (indirect) reproduces the page-wrap bug when the pointer sits at
// the end of a page.
func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	mem.loadAt(0x02FF, 0x34)
	mem.loadAt(0x0200, 0x12) // high byte fetched from 0x0200, not 0x0300
	mem.loadAt(0x0300, 0x99)

	_, err := c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, c.PC.Address(), 0x1234)
}

// S3: ADC overflow/carry per Ken Shirriff's table, 0x50+0x50 with carry clear.
func TestADCOverflow(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0xA9, 0x50, 0x69, 0x50) // LDA #$50 ; ADC #$50
	_, err := c.Step()
	test.ExpectedSuccess(t, err)
	_, err = c.Step()
	test.ExpectedSuccess(t, err)

	test.Equate(t, c.A.Value(), 0xA0)
	test.Equate(t, c.P.Overflow, true)
	test.Equate(t, c.P.Carry, false)
	test.Equate(t, c.P.Negative, true)
}

// S4: SBC borrow, 0x00 - 0x01 with carry set (no incoming borrow).
func TestSBCBorrow(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0xA9, 0x00, 0x38, 0xE9, 0x01) // LDA #$00 ; SEC ; SBC #$01
	for i := 0; i < 3; i++ {
		_, err := c.Step()
		test.ExpectedSuccess(t, err)
	}

	test.Equate(t, c.A.Value(), 0xFF)
	test.Equate(t, c.P.Carry, false) // borrow occurred
	test.Equate(t, c.P.Negative, true)
}

// S5: BEQ taken across a page boundary costs 3 extra cycles over the base 2:
// one for taking the branch and two for the page cross.
func TestBEQPageCrossCycles(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x80F0, 0xF0, 0x10) // BEQ +16, branch target crosses page
	c.PC.Load(0x80F0)
	c.P.Zero = true

	cycles, err := c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 5)
	test.Equate(t, c.PC.Address(), 0x8102)
}

// S6: a pending NMI preempts a masked IRQ.
func TestNMIPreemptsMaskedIRQ(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0xFFFA, 0x00, 0x90) // NMI vector -> 0x9000
	mem.loadAt(0xFFFE, 0x00, 0xA0) // IRQ vector -> 0xA000
	mem.loadAt(0x8000, 0xEA)       // NOP, in case neither fires

	c.P.InterruptDisable = true
	c.Interrupts.Request(interrupts.IRQ)
	c.Interrupts.Request(interrupts.NMI)

	cycles, err := c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 7)
	test.Equate(t, c.PC.Address(), 0x9000)
	test.Equate(t, c.Interrupts.Pending(interrupts.IRQ), true) // still latched
}

func TestMaskedIRQDoesNotPreemptNormalExecution(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0xEA) // NOP
	c.P.InterruptDisable = true
	c.Interrupts.Request(interrupts.IRQ)

	cycles, err := c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 2)
	test.Equate(t, c.PC.Address(), 0x8001)
}

func TestUnmaskedIRQServiced(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0xFFFE, 0x00, 0xA0)
	c.P.InterruptDisable = false
	c.Interrupts.Request(interrupts.IRQ)

	cycles, err := c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 7)
	test.Equate(t, c.PC.Address(), 0xA000)
	test.Equate(t, c.P.InterruptDisable, true)
}

func TestUndocumentedOpcodeHalts(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0x02) // undocumented

	cycles, err := c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 0)
	test.Equate(t, int(cpu.Halted), int(c.State()))

	cycles, err = c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 0)
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68) // LDA #$42; PHA; LDA #$00; PLA
	for i := 0; i < 4; i++ {
		_, err := c.Step()
		test.ExpectedSuccess(t, err)
	}
	test.Equate(t, c.A.Value(), 0x42)
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0x38, 0x08, 0x18, 0x28) // SEC; PHP; CLC; PLP
	for i := 0; i < 4; i++ {
		_, err := c.Step()
		test.ExpectedSuccess(t, err)
	}
	test.Equate(t, c.P.Carry, true)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	mem.loadAt(0x9000, 0x60)             // RTS

	_, err := c.Step() // JSR
	test.ExpectedSuccess(t, err)
	test.Equate(t, c.PC.Address(), 0x9000)

	_, err = c.Step() // RTS
	test.ExpectedSuccess(t, err)
	test.Equate(t, c.PC.Address(), 0x8003)
}

func TestBRKPushesBreakFlagAndVectorsToIRQ(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0xFFFE, 0x00, 0xB0) // IRQ/BRK vector -> 0xB000
	mem.loadAt(0x8000, 0x00, 0x00) // BRK, padding byte

	cycles, err := c.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 7)
	test.Equate(t, c.PC.Address(), 0xB000)
	test.Equate(t, c.P.InterruptDisable, true)
	test.Equate(t, mem[0x01FB]&0x10, 0x10) // pushed status byte has break set
}

func TestResetDropsStackAndDisablesInterrupts(t *testing.T) {
	c, mem := newTestCPU()
	mem.setResetVector(0xC000)
	sp := c.SP.Value()

	if _, err := c.Reset(); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, c.SP.Value(), sp-3)
	test.Equate(t, c.P.InterruptDisable, true)
	test.Equate(t, c.PC.Address(), 0xC000)
}

func TestCMPSetsCarryOnGreaterOrEqual(t *testing.T) {
	c, mem := newTestCPU()
	mem.loadAt(0x8000, 0xA9, 0x10, 0xC9, 0x10) // LDA #$10 ; CMP #$10
	_, err := c.Step()
	test.ExpectedSuccess(t, err)
	_, err = c.Step()
	test.ExpectedSuccess(t, err)

	test.Equate(t, c.P.Carry, true)
	test.Equate(t, c.P.Zero, true)
}
