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

//go:build !metrics
// +build !metrics

package metrics

import "io"

// Launch does nothing when the metrics build tag is absent - addr is unused.
func Launch(output io.Writer, addr string) {}

// Available returns false when the metrics build tag is absent, so callers
// know not to advertise a dashboard that was never started.
func Available() bool {
	return false
}
