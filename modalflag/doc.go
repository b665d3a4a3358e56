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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Arguments are first given with NewArgs() and then processed with Parse().
// Flags must be added between these two calls:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	_, _ = md.Parse()
//
// After Parse(), Mode() returns the selected sub-mode, or the first sub-mode
// in the list if none was specified. Sub-mode comparisons are case
// insensitive.
//
// Each mode can have its own flags by calling NewMode() and then Parse()
// again:
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0xbfc00000, "address of first instruction")
//		switch p, err := md.Parse(); p {
//		case modalflag.ParseHelp:
//			return
//		case modalflag.ParseError:
//			return err
//		}
//		disasm(md.GetArg(0), *origin)
//	}
//
// Non-flag arguments are returned by RemainingArgs() and GetArg().
package modalflag
