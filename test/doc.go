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

// Package test contains helper functions to remove common boilerplate from
// the test suites in this module.
//
// ExpectedFailure and ExpectedSuccess test for failure and success under a
// handful of generic conditions (bool, error, nil). DemandEquality,
// DemandSuccess and DemandFailure do the same but call t.Fatalf instead of
// t.Errorf, for use when a later part of the test cannot proceed sensibly
// without the precondition holding.
//
// CompareWriter and CappedWriter implement io.Writer and are used to capture
// output (trace lines, log entries) for comparison against expected text.
package test
