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

// Category groups instructions by their effect on the CPU.
type Category int

// List of valid instruction categories.
const (
	ALU Category = iota
	Shift
	MultDiv
	Branch
	Jump
	Load
	Store
	Coprocessor
	Exception
)

func (c Category) String() string {
	switch c {
	case ALU:
		return "alu"
	case Shift:
		return "shift"
	case MultDiv:
		return "mult/div"
	case Branch:
		return "branch"
	case Jump:
		return "jump"
	case Load:
		return "load"
	case Store:
		return "store"
	case Coprocessor:
		return "coprocessor"
	case Exception:
		return "exception"
	}
	return "unknown"
}

// Operands describes how the operands of an instruction are formatted by the
// disassembler.
type Operands int

// List of operand formats.
const (
	OpsNone Operands = iota
	OpsRdRsRt
	OpsRdRtShamt
	OpsRdRtRs
	OpsRs
	OpsRdRs
	OpsRsRt
	OpsRd
	OpsRtRsImmSigned
	OpsRtRsImmUnsigned
	OpsRtImm
	OpsRsRtBranch
	OpsRsBranch
	OpsJump
	OpsMemory
	OpsCopMove
	OpsCode
)

// Definition of an instruction.
type Definition struct {
	Mnemonic string
	Operands Operands
	Category Category
}

// IsFlowControl returns true if the instruction introduces a branch delay
// slot.
func (defn Definition) IsFlowControl() bool {
	return defn.Category == Branch || defn.Category == Jump
}

var primary = map[uint32]Definition{
	J:     {"j", OpsJump, Jump},
	JAL:   {"jal", OpsJump, Jump},
	BEQ:   {"beq", OpsRsRtBranch, Branch},
	BNE:   {"bne", OpsRsRtBranch, Branch},
	BLEZ:  {"blez", OpsRsBranch, Branch},
	BGTZ:  {"bgtz", OpsRsBranch, Branch},
	ADDI:  {"addi", OpsRtRsImmSigned, ALU},
	ADDIU: {"addiu", OpsRtRsImmSigned, ALU},
	SLTI:  {"slti", OpsRtRsImmSigned, ALU},
	SLTIU: {"sltiu", OpsRtRsImmSigned, ALU},
	ANDI:  {"andi", OpsRtRsImmUnsigned, ALU},
	ORI:   {"ori", OpsRtRsImmUnsigned, ALU},
	XORI:  {"xori", OpsRtRsImmUnsigned, ALU},
	LUI:   {"lui", OpsRtImm, ALU},
	LB:    {"lb", OpsMemory, Load},
	LH:    {"lh", OpsMemory, Load},
	LWL:   {"lwl", OpsMemory, Load},
	LW:    {"lw", OpsMemory, Load},
	LBU:   {"lbu", OpsMemory, Load},
	LHU:   {"lhu", OpsMemory, Load},
	LWR:   {"lwr", OpsMemory, Load},
	SB:    {"sb", OpsMemory, Store},
	SH:    {"sh", OpsMemory, Store},
	SWL:   {"swl", OpsMemory, Store},
	SW:    {"sw", OpsMemory, Store},
	SWR:   {"swr", OpsMemory, Store},
	LWC2:  {"lwc2", OpsMemory, Coprocessor},
	SWC2:  {"swc2", OpsMemory, Coprocessor},
}

var special = map[uint32]Definition{
	FnSLL:     {"sll", OpsRdRtShamt, Shift},
	FnSRL:     {"srl", OpsRdRtShamt, Shift},
	FnSRA:     {"sra", OpsRdRtShamt, Shift},
	FnSLLV:    {"sllv", OpsRdRtRs, Shift},
	FnSRLV:    {"srlv", OpsRdRtRs, Shift},
	FnSRAV:    {"srav", OpsRdRtRs, Shift},
	FnJR:      {"jr", OpsRs, Jump},
	FnJALR:    {"jalr", OpsRdRs, Jump},
	FnSYSCALL: {"syscall", OpsCode, Exception},
	FnBREAK:   {"break", OpsCode, Exception},
	FnMFHI:    {"mfhi", OpsRd, MultDiv},
	FnMTHI:    {"mthi", OpsRs, MultDiv},
	FnMFLO:    {"mflo", OpsRd, MultDiv},
	FnMTLO:    {"mtlo", OpsRs, MultDiv},
	FnMULT:    {"mult", OpsRsRt, MultDiv},
	FnMULTU:   {"multu", OpsRsRt, MultDiv},
	FnDIV:     {"div", OpsRsRt, MultDiv},
	FnDIVU:    {"divu", OpsRsRt, MultDiv},
	FnADD:     {"add", OpsRdRsRt, ALU},
	FnADDU:    {"addu", OpsRdRsRt, ALU},
	FnSUB:     {"sub", OpsRdRsRt, ALU},
	FnSUBU:    {"subu", OpsRdRsRt, ALU},
	FnAND:     {"and", OpsRdRsRt, ALU},
	FnOR:      {"or", OpsRdRsRt, ALU},
	FnXOR:     {"xor", OpsRdRsRt, ALU},
	FnNOR:     {"nor", OpsRdRsRt, ALU},
	FnSLT:     {"slt", OpsRdRsRt, ALU},
	FnSLTU:    {"sltu", OpsRdRsRt, ALU},
}

// Lookup returns the definition of the instruction. The second return value
// is false if the instruction is reserved or not implemented by the CPU.
func Lookup(ins Instruction) (Definition, bool) {
	switch ins.Opcode() {
	case SPECIAL:
		defn, ok := special[ins.Funct()]
		return defn, ok

	case REGIMM:
		gez, link := RegimmBranch(ins)
		switch {
		case gez && link:
			return Definition{"bgezal", OpsRsBranch, Branch}, true
		case gez:
			return Definition{"bgez", OpsRsBranch, Branch}, true
		case link:
			return Definition{"bltzal", OpsRsBranch, Branch}, true
		}
		return Definition{"bltz", OpsRsBranch, Branch}, true

	case COP0:
		switch ins.Rs() {
		case CopMF:
			return Definition{"mfc0", OpsCopMove, Coprocessor}, true
		case CopMT:
			return Definition{"mtc0", OpsCopMove, Coprocessor}, true
		}
		if ins.Rs()&CopCO == CopCO && ins.Funct() == FnRFE {
			return Definition{"rfe", OpsNone, Coprocessor}, true
		}
		return Definition{}, false

	case COP1, COP3, LWC0, LWC1, LWC3, SWC0, SWC1, SWC3:
		// recognised but the coprocessor does not exist
		return Definition{"cop", OpsNone, Coprocessor}, true
	}

	defn, ok := primary[ins.Opcode()]
	return defn, ok
}
