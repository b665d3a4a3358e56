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

// Primary opcodes.
const (
	SPECIAL = 0x00
	REGIMM  = 0x01
	J       = 0x02
	JAL     = 0x03
	BEQ     = 0x04
	BNE     = 0x05
	BLEZ    = 0x06
	BGTZ    = 0x07
	ADDI    = 0x08
	ADDIU   = 0x09
	SLTI    = 0x0a
	SLTIU   = 0x0b
	ANDI    = 0x0c
	ORI     = 0x0d
	XORI    = 0x0e
	LUI     = 0x0f
	COP0    = 0x10
	COP1    = 0x11
	COP2    = 0x12
	COP3    = 0x13
	LB      = 0x20
	LH      = 0x21
	LWL     = 0x22
	LW      = 0x23
	LBU     = 0x24
	LHU     = 0x25
	LWR     = 0x26
	SB      = 0x28
	SH      = 0x29
	SWL     = 0x2a
	SW      = 0x2b
	SWR     = 0x2e
	LWC0    = 0x30
	LWC1    = 0x31
	LWC2    = 0x32
	LWC3    = 0x33
	SWC0    = 0x38
	SWC1    = 0x39
	SWC2    = 0x3a
	SWC3    = 0x3b
)

// Secondary opcodes for the SPECIAL group, found in the funct field.
const (
	FnSLL     = 0x00
	FnSRL     = 0x02
	FnSRA     = 0x03
	FnSLLV    = 0x04
	FnSRLV    = 0x06
	FnSRAV    = 0x07
	FnJR      = 0x08
	FnJALR    = 0x09
	FnSYSCALL = 0x0c
	FnBREAK   = 0x0d
	FnMFHI    = 0x10
	FnMTHI    = 0x11
	FnMFLO    = 0x12
	FnMTLO    = 0x13
	FnMULT    = 0x18
	FnMULTU   = 0x19
	FnDIV     = 0x1a
	FnDIVU    = 0x1b
	FnADD     = 0x20
	FnADDU    = 0x21
	FnSUB     = 0x22
	FnSUBU    = 0x23
	FnAND     = 0x24
	FnOR      = 0x25
	FnXOR     = 0x26
	FnNOR     = 0x27
	FnSLT     = 0x2a
	FnSLTU    = 0x2b
)

// Coprocessor operations, found in the rs field of a coprocessor instruction.
const (
	CopMF = 0x00
	CopCF = 0x02
	CopMT = 0x04
	CopCT = 0x06
	CopBC = 0x08

	// any rs value with this bit set is a coprocessor specific operation. the
	// operation is then found in the funct field
	CopCO = 0x10
)

// FnRFE is the only coprocessor specific operation of COP0.
const FnRFE = 0x10

// RegimmBranch interprets the rt field of a REGIMM instruction. The R3000A
// decodes every value of rt: bit 0 selects BGEZ over BLTZ, and the branch
// links when bits 1 to 4 equal 0b1000.
func RegimmBranch(ins Instruction) (gez bool, link bool) {
	gez = (uint32(ins)>>16)&1 == 1
	link = (uint32(ins)>>17)&0xf == 8
	return gez, link
}
