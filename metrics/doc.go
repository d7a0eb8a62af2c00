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

// Package metrics is an optional dashboard for the nestest conformance CLI,
// built only when the "metrics" build tag is present; metrics_stub.go takes
// over with no-op equivalents otherwise, so cmd/nestest never needs to care
// which build it was compiled into.
//
// Launch starts an HTTP server, backed by "github.com/go-echarts/statsview",
// at the address given by prefs.Config.MetricsAddress (localhost:12600 by
// default). Once running, graphical goroutine/heap/GC statistics are
// viewable at:
//
//	<addr>/debug/statsview
//
// and standard Go pprof statistics at:
//
//	<addr>/debug/pprof/
package metrics
