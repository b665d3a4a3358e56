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

// Package disassembly coordinates the disassembly of R3000A machine code.
//
// For quick disassemblies of a BIOS image the FromROM() function can be used.
// Debuggers will probably find it more useful however, to disassemble from the
// memory of an already instantiated PSX with the FromMemory() function.
//
// The disassembly is linear. Every aligned word is decoded as though it is an
// instruction. Entries are promoted to EntryLevelExecuted by UpdateEntry()
// once the CPU has executed them.
package disassembly
