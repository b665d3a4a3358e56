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

package instructions

// Instruction is a single 32-bit R3000A instruction word.
type Instruction uint32

// Opcode returns the primary opcode (bits 26 to 31).
func (ins Instruction) Opcode() uint32 {
	return uint32(ins) >> 26
}

// Rs returns the rs register field (bits 21 to 25). For coprocessor
// instructions the field selects the coprocessor operation.
func (ins Instruction) Rs() uint32 {
	return (uint32(ins) >> 21) & 0x1f
}

// Rt returns the rt register field (bits 16 to 20). For REGIMM instructions
// the field selects the branch condition.
func (ins Instruction) Rt() uint32 {
	return (uint32(ins) >> 16) & 0x1f
}

// Rd returns the rd register field (bits 11 to 15).
func (ins Instruction) Rd() uint32 {
	return (uint32(ins) >> 11) & 0x1f
}

// Shamt returns the shift amount (bits 6 to 10).
func (ins Instruction) Shamt() uint32 {
	return (uint32(ins) >> 6) & 0x1f
}

// Funct returns the secondary opcode (bits 0 to 5) used by SPECIAL and
// coprocessor instructions.
func (ins Instruction) Funct() uint32 {
	return uint32(ins) & 0x3f
}

// Imm returns the 16-bit immediate value, zero extended.
func (ins Instruction) Imm() uint32 {
	return uint32(ins) & 0xffff
}

// ImmSE returns the 16-bit immediate value, sign extended.
func (ins Instruction) ImmSE() uint32 {
	return uint32(int32(int16(uint16(ins))))
}

// Target returns the 26-bit jump target.
func (ins Instruction) Target() uint32 {
	return uint32(ins) & 0x3ffffff
}

// Code returns the 20-bit code field of the SYSCALL and BREAK instructions.
func (ins Instruction) Code() uint32 {
	return (uint32(ins) >> 6) & 0xfffff
}

// IsNop returns true if the instruction is the canonical no-operation (SLL
// r0, r0, 0).
func (ins Instruction) IsNop() bool {
	return ins == 0
}
