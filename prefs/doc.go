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

// Package prefs facilitates the storage of preferential values in the
// GopherPSX system. It is a key/value store with the value being of a type
// implemented by this package: Bool, String or Int.
//
// A value is added to a Disk instance with Add() and the Disk is written to
// and read from the preferences file with Save() and Load().
//
//	dsk, _ := prefs.NewDisk(path)
//	var halt prefs.Bool
//	dsk.Add("hardware.cpu.haltOnReserved", &halt)
//	dsk.Load()
//
// The preferences file is a plain text file. The first line is a warning not
// to edit the file and is followed by one entry per line:
//
//	hardware.cpu.haltOnReserved :: false
//
// Values can be given on the command line with the -prefs flag. The argument
// is a semicolon separated list of key::value pairs. Values on the command
// line take precedence over values in the preferences file but are never
// saved to it, unless the value is changed by some other means.
package prefs
