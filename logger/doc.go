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

// Package logger is the central log for the emulator. Entries are tagged with
// the name of the component that created them:
//
//	logger.Logf(logger.Allow, "cpu", "reserved instruction (%#08x)", ins)
//
// Consecutive identical entries are collapsed and the number of entries is
// bounded. Callers that may or may not be permitted to log, depending on the
// instance of the emulation they belong to, pass a Permission implementation
// instead of logger.Allow.
package logger
