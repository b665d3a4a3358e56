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

package registers

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 32

// RA is the link register written by JAL, BLTZAL and BGEZAL.
const RA = 31

// Names are the conventional assembler names of the general purpose
// registers.
var Names = [NumRegisters]string{
	"r0", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// Name returns the conventional name of the register at index.
func Name(index uint32) string {
	return Names[index&(NumRegisters-1)]
}

// File is the general purpose register file. Register zero always reads as
// zero and writes to it are discarded.
type File struct {
	regs [NumRegisters]uint32
}

// Reset sets all registers to zero.
func (f *File) Reset() {
	clear(f.regs[:])
}

// Read returns the value of the register at index.
func (f *File) Read(index uint32) uint32 {
	return f.regs[index&(NumRegisters-1)]
}

// Write sets the value of the register at index. Writes to register zero are
// discarded.
func (f *File) Write(index uint32, value uint32) {
	index &= NumRegisters - 1
	if index == 0 {
		return
	}
	f.regs[index] = value
}

// String returns the register file as a table, four registers per line.
func (f *File) String() string {
	s := strings.Builder{}
	for i := range NumRegisters {
		s.WriteString(fmt.Sprintf("%-2s=%08x", Names[i], f.regs[i]))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	return strings.TrimSuffix(s.String(), "\n")
}
