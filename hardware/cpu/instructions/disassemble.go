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

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/registers"
)

// BranchTarget returns the destination of a taken branch at address pc.
func BranchTarget(ins Instruction, pc uint32) uint32 {
	return pc + 4 + ins.ImmSE()<<2
}

// JumpTarget returns the destination of J and JAL at address pc. The jump
// stays in the 256MB segment of the delay slot.
func JumpTarget(ins Instruction, pc uint32) uint32 {
	return ((pc + 4) & 0xf0000000) | (ins.Target() << 2)
}

func signedHex(v uint32) string {
	if int32(v) < 0 {
		return fmt.Sprintf("-%#x", -int32(v))
	}
	return fmt.Sprintf("%#x", v)
}

// Disassemble returns the assembler text of the instruction found at address
// pc. The address is needed to resolve branch and jump targets.
func Disassemble(ins Instruction, pc uint32) string {
	if ins.IsNop() {
		return "nop"
	}

	defn, ok := Lookup(ins)
	if !ok {
		return fmt.Sprintf(".word %#08x", uint32(ins))
	}

	rs := registers.Name(ins.Rs())
	rt := registers.Name(ins.Rt())
	rd := registers.Name(ins.Rd())

	var ops string
	switch defn.Operands {
	case OpsNone:
		if defn.Mnemonic == "cop" {
			return fmt.Sprintf("cop%d %#07x", ins.Opcode()&0x3, uint32(ins)&0x3ffffff)
		}
	case OpsRdRsRt:
		ops = fmt.Sprintf("%s, %s, %s", rd, rs, rt)
	case OpsRdRtShamt:
		ops = fmt.Sprintf("%s, %s, %d", rd, rt, ins.Shamt())
	case OpsRdRtRs:
		ops = fmt.Sprintf("%s, %s, %s", rd, rt, rs)
	case OpsRs:
		ops = rs
	case OpsRdRs:
		ops = fmt.Sprintf("%s, %s", rd, rs)
	case OpsRsRt:
		ops = fmt.Sprintf("%s, %s", rs, rt)
	case OpsRd:
		ops = rd
	case OpsRtRsImmSigned:
		ops = fmt.Sprintf("%s, %s, %s", rt, rs, signedHex(ins.ImmSE()))
	case OpsRtRsImmUnsigned:
		ops = fmt.Sprintf("%s, %s, %#x", rt, rs, ins.Imm())
	case OpsRtImm:
		ops = fmt.Sprintf("%s, %#x", rt, ins.Imm())
	case OpsRsRtBranch:
		ops = fmt.Sprintf("%s, %s, %#08x", rs, rt, BranchTarget(ins, pc))
	case OpsRsBranch:
		ops = fmt.Sprintf("%s, %#08x", rs, BranchTarget(ins, pc))
	case OpsJump:
		ops = fmt.Sprintf("%#08x", JumpTarget(ins, pc))
	case OpsMemory:
		if defn.Category == Coprocessor {
			rt = fmt.Sprintf("$%d", ins.Rt())
		}
		ops = fmt.Sprintf("%s, %s(%s)", rt, signedHex(ins.ImmSE()), rs)
	case OpsCopMove:
		ops = fmt.Sprintf("%s, %s", rt, cop0.Name(ins.Rd()))
	case OpsCode:
		if ins.Code() != 0 {
			ops = fmt.Sprintf("%#x", ins.Code())
		}
	}

	if ops == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%-7s %s", defn.Mnemonic, ops)
}
