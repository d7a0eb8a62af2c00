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

// Package logger implements a single, process-wide diagnostic log. Entries
// are tagged lines added with Logf(); a bounded ring keeps the most recent
// entries and a Permission value gates whether a caller is allowed to add to
// it at all.
//
// The CPU core uses this instead of fmt.Println or log.Fatal for the two
// diagnostics it ever emits: decoding an unimplemented opcode and decoding an
// invalid addressing-mode table entry.
package logger
