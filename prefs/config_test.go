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

package prefs_test

import (
	"testing"

	"github.com/hexnibble/nescore/prefs"
	"github.com/hexnibble/nescore/test"
)

func TestNewConfigDefaults(t *testing.T) {
	c := prefs.NewConfig()
	test.Equate(t, c.NestestResetOverride.Get().(bool), false)
	test.Equate(t, c.HaltOnIllegalOpcode.Get().(bool), true)
	test.Equate(t, c.MetricsAddress.String(), "localhost:12600")
}

func TestConfigToggle(t *testing.T) {
	c := prefs.NewConfig()
	err := c.NestestResetOverride.Set(true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c.NestestResetOverride.Get().(bool), true)
}

func TestBoolSetFromString(t *testing.T) {
	var b prefs.Bool
	err := b.Set("true")
	test.ExpectedSuccess(t, err)
	test.Equate(t, b.Get().(bool), true)

	err = b.Set("nonsense")
	test.ExpectedSuccess(t, err)
	test.Equate(t, b.Get().(bool), false)
}

func TestIntSetFailsOnBadString(t *testing.T) {
	var i prefs.Int
	err := i.Set("not-a-number")
	test.ExpectedFailure(t, err)
}
