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

package prefs

// Config groups the handful of run-time toggles the conformance CLI exposes,
// each backed by the atomic-value preference primitives above so they can be
// read and written concurrently with a running CPU without extra locking.
type Config struct {
	// NestestResetOverride, when true, loads PC from 0xC000 instead of the
	// cartridge's reset vector - the convention nestest.nes expects when run
	// headless, since its own reset vector points at code that assumes a
	// real PPU is present.
	NestestResetOverride Bool

	// HaltOnIllegalOpcode mirrors the CPU core's own behaviour (it always
	// halts) but lets the CLI decide whether to treat that as a fatal error
	// or simply report it and stop stepping.
	HaltOnIllegalOpcode Bool

	// MetricsAddress is the address the optional metrics dashboard listens
	// on, when built with the "metrics" tag.
	MetricsAddress String
}

// NewConfig returns a Config with the documented defaults: no reset-vector
// override, illegal opcodes treated as fatal, and the metrics dashboard's
// default address.
func NewConfig() *Config {
	c := &Config{}
	c.HaltOnIllegalOpcode.Set(true)
	c.MetricsAddress.Set("localhost:12600")
	return c
}
