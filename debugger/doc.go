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

// Package debugger implements a reaonably comprehensive debugging tool.
// Features include:
//
//   - Stepping by instruction or running until a breakpoint is reached
//   - Inspection of the CPU, coprocessor and peripheral registers
//   - Inspection and modification of memory
//   - Disassembly of the BIOS, with executed instructions marked
//   - Lua scripting
//
// The debugger is started with the Start() function. Input and output is
// through an implementation of the terminal.Terminal interface. The
// plainterm package provides an implementation suitable for most uses.
//
// The HELP command lists the available commands and gives a short
// description of each.
package debugger
