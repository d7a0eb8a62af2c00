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

package logger_test

import (
	"testing"

	"github.com/hexnibble/nescore/logger"
	"github.com/hexnibble/nescore/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.Equate(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "cpu", "unimplemented opcode")
	logger.Write(tw)
	test.Equate(t, tw.Compare("cpu: unimplemented opcode\n"), true)

	tw.Clear()
	logger.Logf(logger.Allow, "cpu", "halted at pc=%#04x", 0xC66E)
	logger.Write(tw)
	test.Equate(t, tw.Compare("cpu: unimplemented opcode\ncpu: halted at pc=0xc66e\n"), true)

	tw.Clear()
	logger.Tail(tw, 1)
	test.Equate(t, tw.Compare("cpu: halted at pc=0xc66e\n"), true)

	tw.Clear()
	logger.Tail(tw, 0)
	test.Equate(t, tw.Compare(""), true)

	logger.Clear()
}

func TestLoggerRepeats(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "cpu", "same message")
	logger.Log(logger.Allow, "cpu", "same message")
	logger.Log(logger.Allow, "cpu", "same message")
	logger.Write(tw)
	test.Equate(t, tw.Compare("cpu: same message (repeat x3)\n"), true)

	logger.Clear()
}
