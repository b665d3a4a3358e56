// This file is part of GopherPSX.
//
// GopherPSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPSX.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and stop the
// test immediately. Use a Demand*() function when the remainder of the test
// makes no sense if the condition does not hold, for example when a BIOS image
// could not be created.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is not obvious. An untyped nil is what a nil error becomes when
// passed as an interface{} value and so it must be treated as success.
//
// The optional tags argument is used to identify the failing case in
// table-driven tests. Tags are printed before the failure message.
package test
