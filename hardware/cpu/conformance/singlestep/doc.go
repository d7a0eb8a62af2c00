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

// Package singlestep runs the CPU core against the community "SingleStepTests"
// per-opcode JSON fixture format: one file per opcode, each holding a list of
// {initial state, final state} cases. The fixtures are not vendored into this
// module; the test skips cleanly when its fixture directory is absent instead
// of failing the build.
package singlestep
