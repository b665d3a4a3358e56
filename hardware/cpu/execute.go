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

package cpu

import (
	"math"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/registers"
)

// Execute a single instruction. The program counter pipeline should already
// have been advanced (see ExecuteInstruction()) so that PC is the address of
// the instruction following this one.
func (mc *CPU) Execute(ins instructions.Instruction) error {
	switch ins.Opcode() {
	case instructions.SPECIAL:
		return mc.special(ins)

	case instructions.REGIMM:
		gez, link := instructions.RegimmBranch(ins)
		taken := int32(mc.Reg.Read(ins.Rs())) < 0
		if gez {
			taken = !taken
		}
		if link {
			mc.Reg.Write(registers.RA, mc.PC+4)
		}
		mc.branchIf(taken, ins)

	case instructions.J:
		mc.jump(mc.PC&0xf0000000 | ins.Target()<<2)

	case instructions.JAL:
		mc.Reg.Write(registers.RA, mc.PC+4)
		mc.jump(mc.PC&0xf0000000 | ins.Target()<<2)

	case instructions.BEQ:
		mc.branchIf(mc.Reg.Read(ins.Rs()) == mc.Reg.Read(ins.Rt()), ins)

	case instructions.BNE:
		mc.branchIf(mc.Reg.Read(ins.Rs()) != mc.Reg.Read(ins.Rt()), ins)

	case instructions.BLEZ:
		mc.branchIf(int32(mc.Reg.Read(ins.Rs())) <= 0, ins)

	case instructions.BGTZ:
		mc.branchIf(int32(mc.Reg.Read(ins.Rs())) > 0, ins)

	case instructions.ADDI:
		a := int32(mc.Reg.Read(ins.Rs()))
		b := int32(ins.ImmSE())
		if addOverflows(a, b) {
			mc.Raise(cop0.Overflow)
			break
		}
		mc.Reg.Write(ins.Rt(), uint32(a+b))

	case instructions.ADDIU:
		mc.Reg.Write(ins.Rt(), mc.Reg.Read(ins.Rs())+ins.ImmSE())

	case instructions.SLTI:
		mc.Reg.Write(ins.Rt(), boolToWord(int32(mc.Reg.Read(ins.Rs())) < int32(ins.ImmSE())))

	case instructions.SLTIU:
		mc.Reg.Write(ins.Rt(), boolToWord(mc.Reg.Read(ins.Rs()) < ins.ImmSE()))

	case instructions.ANDI:
		mc.Reg.Write(ins.Rt(), mc.Reg.Read(ins.Rs())&ins.Imm())

	case instructions.ORI:
		mc.Reg.Write(ins.Rt(), mc.Reg.Read(ins.Rs())|ins.Imm())

	case instructions.XORI:
		mc.Reg.Write(ins.Rt(), mc.Reg.Read(ins.Rs())^ins.Imm())

	case instructions.LUI:
		mc.Reg.Write(ins.Rt(), ins.Imm()<<16)

	case instructions.COP0:
		return mc.coprocessor0(ins)

	case instructions.COP1, instructions.COP3,
		instructions.LWC0, instructions.LWC1, instructions.LWC3,
		instructions.SWC0, instructions.SWC1, instructions.SWC3:
		mc.Raise(cop0.CoprocessorUnusable)

	case instructions.LB, instructions.LH, instructions.LW,
		instructions.LBU, instructions.LHU,
		instructions.LWL, instructions.LWR:
		return mc.load(ins)

	case instructions.SB, instructions.SH, instructions.SW,
		instructions.SWL, instructions.SWR:
		return mc.store(ins)

	default:
		// includes the GTE instructions (COP2, LWC2 and SWC2)
		return mc.reserved(ins)
	}

	return nil
}

// special executes the instructions in the SPECIAL group.
func (mc *CPU) special(ins instructions.Instruction) error {
	rs := mc.Reg.Read(ins.Rs())
	rt := mc.Reg.Read(ins.Rt())

	switch ins.Funct() {
	case instructions.FnSLL:
		mc.Reg.Write(ins.Rd(), rt<<ins.Shamt())

	case instructions.FnSRL:
		mc.Reg.Write(ins.Rd(), rt>>ins.Shamt())

	case instructions.FnSRA:
		mc.Reg.Write(ins.Rd(), uint32(int32(rt)>>ins.Shamt()))

	case instructions.FnSLLV:
		mc.Reg.Write(ins.Rd(), rt<<(rs&0x1f))

	case instructions.FnSRLV:
		mc.Reg.Write(ins.Rd(), rt>>(rs&0x1f))

	case instructions.FnSRAV:
		mc.Reg.Write(ins.Rd(), uint32(int32(rt)>>(rs&0x1f)))

	case instructions.FnJR:
		mc.jump(rs)

	case instructions.FnJALR:
		// rs has already been read so the link can be written to the same
		// register
		mc.Reg.Write(ins.Rd(), mc.PC+4)
		mc.jump(rs)

	case instructions.FnSYSCALL:
		mc.Raise(cop0.Syscall)

	case instructions.FnBREAK:
		mc.Raise(cop0.Break)

	case instructions.FnMFHI:
		mc.Reg.Write(ins.Rd(), mc.HI)

	case instructions.FnMTHI:
		mc.HI = rs

	case instructions.FnMFLO:
		mc.Reg.Write(ins.Rd(), mc.LO)

	case instructions.FnMTLO:
		mc.LO = rs

	case instructions.FnMULT:
		p := uint64(int64(int32(rs)) * int64(int32(rt)))
		mc.HI = uint32(p >> 32)
		mc.LO = uint32(p)

	case instructions.FnMULTU:
		p := uint64(rs) * uint64(rt)
		mc.HI = uint32(p >> 32)
		mc.LO = uint32(p)

	case instructions.FnDIV:
		n := int32(rs)
		d := int32(rt)
		switch {
		case d == 0:
			mc.HI = rs

			// the test is of the register index and not the value in the
			// register. the index is never negative so LO is always -1
			if int32(ins.Rs()) >= 0 {
				mc.LO = 0xffffffff
			} else {
				mc.LO = 1
			}
		case n == math.MinInt32 && d == -1:
			mc.LO = uint32(n)
			mc.HI = 0
		default:
			mc.LO = uint32(n / d)
			mc.HI = uint32(n % d)
		}

	case instructions.FnDIVU:
		if rt == 0 {
			mc.HI = rs
			mc.LO = 0xffffffff
		} else {
			mc.LO = rs / rt
			mc.HI = rs % rt
		}

	case instructions.FnADD:
		if addOverflows(int32(rs), int32(rt)) {
			mc.Raise(cop0.Overflow)
			break
		}
		mc.Reg.Write(ins.Rd(), rs+rt)

	case instructions.FnADDU:
		mc.Reg.Write(ins.Rd(), rs+rt)

	case instructions.FnSUB:
		if subOverflows(int32(rs), int32(rt)) {
			mc.Raise(cop0.Overflow)
			break
		}
		mc.Reg.Write(ins.Rd(), rs-rt)

	case instructions.FnSUBU:
		mc.Reg.Write(ins.Rd(), rs-rt)

	case instructions.FnAND:
		mc.Reg.Write(ins.Rd(), rs&rt)

	case instructions.FnOR:
		mc.Reg.Write(ins.Rd(), rs|rt)

	case instructions.FnXOR:
		mc.Reg.Write(ins.Rd(), rs^rt)

	case instructions.FnNOR:
		mc.Reg.Write(ins.Rd(), ^(rs | rt))

	case instructions.FnSLT:
		mc.Reg.Write(ins.Rd(), boolToWord(int32(rs) < int32(rt)))

	case instructions.FnSLTU:
		mc.Reg.Write(ins.Rd(), boolToWord(rs < rt))

	default:
		return mc.reserved(ins)
	}

	return nil
}

// coprocessor0 executes the coprocessor 0 instructions.
func (mc *CPU) coprocessor0(ins instructions.Instruction) error {
	switch ins.Rs() {
	case instructions.CopMF:
		mc.Reg.Write(ins.Rt(), mc.Cop0.Read(ins.Rd()))
		return nil
	case instructions.CopMT:
		mc.Cop0.Write(ins.Rd(), mc.Reg.Read(ins.Rt()))
		return nil
	}

	if ins.Rs()&instructions.CopCO == instructions.CopCO && ins.Funct() == instructions.FnRFE {
		mc.Cop0.PopMode()
		return nil
	}

	return mc.reserved(ins)
}

// branchIf sets the destination of a conditional branch. The instruction
// following the branch is in the delay slot whether or not the branch is
// taken.
func (mc *CPU) branchIf(taken bool, ins instructions.Instruction) {
	mc.branch = true
	if taken {
		mc.NextPC = mc.PC + ins.ImmSE()<<2
	}
}

// jump to the address after the delay slot.
func (mc *CPU) jump(address uint32) {
	mc.branch = true
	mc.NextPC = address
}

// addOverflows returns true if a+b cannot be represented as an int32.
func addOverflows(a, b int32) bool {
	if a >= 0 {
		return b > math.MaxInt32-a
	}
	return b < math.MinInt32-a
}

// subOverflows returns true if a-b cannot be represented as an int32.
func subOverflows(a, b int32) bool {
	if b >= 0 {
		return a < math.MinInt32+b
	}
	return a > math.MaxInt32+b
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
