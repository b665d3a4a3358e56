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

// Package instructions defines the instruction set of the R3000A. The
// Instruction type extracts the fixed bit fields of an instruction word and the
// Lookup() function returns the Definition of an instruction, which is used by
// the disassembler and by the CPU to classify flow control instructions.
//
// The CPU itself decodes instructions with switch statements on the opcode
// fields rather than through the definition table.
package instructions
