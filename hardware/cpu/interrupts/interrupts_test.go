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

package interrupts_test

import (
	"testing"

	"github.com/hexnibble/nescore/hardware/cpu/interrupts"
	"github.com/hexnibble/nescore/test"
)

func TestLatchEmpty(t *testing.T) {
	var l interrupts.Latch
	_, ok := l.Get()
	test.Equate(t, ok, false)
}

func TestLatchPriority(t *testing.T) {
	var l interrupts.Latch
	l.Request(interrupts.IRQ)
	l.Request(interrupts.RESET)
	l.Request(interrupts.NMI)

	k, ok := l.Get()
	test.Equate(t, ok, true)
	test.Equate(t, k == interrupts.NMI, true)

	l.Service(interrupts.NMI)
	k, ok = l.Get()
	test.Equate(t, ok, true)
	test.Equate(t, k == interrupts.RESET, true)

	l.Service(interrupts.RESET)
	k, ok = l.Get()
	test.Equate(t, ok, true)
	test.Equate(t, k == interrupts.IRQ, true)

	l.Service(interrupts.IRQ)
	_, ok = l.Get()
	test.Equate(t, ok, false)
}

func TestLatchPendingDoesNotConsume(t *testing.T) {
	var l interrupts.Latch
	l.Request(interrupts.IRQ)
	test.Equate(t, l.Pending(interrupts.IRQ), true)
	_, ok := l.Get()
	test.Equate(t, ok, true)
	test.Equate(t, l.Pending(interrupts.IRQ), true)
}
