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

//go:build metrics
// +build metrics

package metrics

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const urlPath = "/debug/statsview"

// Launch starts a goroutine serving a dashboard of goroutine/heap/GC stats
// for a running conformance session at addr (see prefs.Config.MetricsAddress)
// and reports the dashboard's URL to output. There is nothing here worth
// watching cycle-by-cycle - the CPU core runs single-threaded - but a long
// fixture or ROM run is still a long-running Go process, and this is the
// cheapest way to see whether it's making progress or stuck in GC.
func Launch(output io.Writer, addr string) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		statsview.New().Start()
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", addr, urlPath)
}

// Available reports whether a stats server can actually be launched in this
// build.
func Available() bool {
	return true
}
