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
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
)

// load executes the load instructions. The destination register is not
// written if the load raises an exception.
func (mc *CPU) load(ins instructions.Instruction) error {
	address := mc.Reg.Read(ins.Rs()) + ins.ImmSE()

	var v uint32

	switch ins.Opcode() {
	case instructions.LB:
		b, err := mc.mem.Load8(address)
		if err != nil {
			return err
		}
		v = uint32(int8(b))

	case instructions.LBU:
		b, err := mc.mem.Load8(address)
		if err != nil {
			return err
		}
		v = uint32(b)

	case instructions.LH:
		h, err := mc.mem.Load16(address)
		if err != nil {
			return err
		}
		v = uint32(int16(h))

	case instructions.LHU:
		h, err := mc.mem.Load16(address)
		if err != nil {
			return err
		}
		v = uint32(h)

	case instructions.LW:
		w, err := mc.mem.Load32(address)
		if err != nil {
			return err
		}
		v = w

	case instructions.LWL, instructions.LWR:
		w, err := mc.mem.Load32(address &^ 3)
		if err != nil {
			return err
		}
		if ins.Opcode() == instructions.LWL {
			v = mergeLeft(mc.Reg.Read(ins.Rt()), w, address&3)
		} else {
			v = mergeRight(mc.Reg.Read(ins.Rt()), w, address&3)
		}
	}

	if !mc.exception {
		mc.Reg.Write(ins.Rt(), v)
	}

	return nil
}

// store executes the store instructions.
func (mc *CPU) store(ins instructions.Instruction) error {
	address := mc.Reg.Read(ins.Rs()) + ins.ImmSE()
	rt := mc.Reg.Read(ins.Rt())

	switch ins.Opcode() {
	case instructions.SB:
		return mc.mem.Store8(address, uint8(rt))

	case instructions.SH:
		return mc.mem.Store16(address, uint16(rt))

	case instructions.SW:
		return mc.mem.Store32(address, rt)

	case instructions.SWL, instructions.SWR:
		aligned := address &^ 3
		w, err := mc.peek32(aligned)
		if err != nil {
			return err
		}
		if ins.Opcode() == instructions.SWL {
			w = storeLeft(w, rt, address&3)
		} else {
			w = storeRight(w, rt, address&3)
		}
		return mc.mem.Store32(aligned, w)
	}

	return nil
}

// the unaligned load and store instructions work on the word containing the
// address. the tables below are indexed by the low two bits of the address.
//
// lwl loads the bytes from the address down to the start of the word into the
// most significant bytes of the register. lwr loads the bytes from the address
// up to the end of the word into the least significant bytes. a pair of lwl and
// lwr instructions with addresses three bytes apart load an unaligned word.
// swl and swr are the store equivalents.

// mergeLeft returns the result of lwl.
func mergeLeft(reg uint32, mem uint32, offset uint32) uint32 {
	switch offset {
	case 0:
		return reg&0x00ffffff | mem<<24
	case 1:
		return reg&0x0000ffff | mem<<16
	case 2:
		return reg&0x000000ff | mem<<8
	}
	return mem
}

// mergeRight returns the result of lwr.
func mergeRight(reg uint32, mem uint32, offset uint32) uint32 {
	switch offset {
	case 1:
		return reg&0xff000000 | mem>>8
	case 2:
		return reg&0xffff0000 | mem>>16
	case 3:
		return reg&0xffffff00 | mem>>24
	}
	return mem
}

// storeLeft returns the word written by swl.
func storeLeft(mem uint32, reg uint32, offset uint32) uint32 {
	switch offset {
	case 0:
		return mem&0xffffff00 | reg>>24
	case 1:
		return mem&0xffff0000 | reg>>16
	case 2:
		return mem&0xff000000 | reg>>8
	}
	return reg
}

// storeRight returns the word written by swr.
func storeRight(mem uint32, reg uint32, offset uint32) uint32 {
	switch offset {
	case 1:
		return mem&0x000000ff | reg<<8
	case 2:
		return mem&0x0000ffff | reg<<16
	case 3:
		return mem&0x00ffffff | reg<<24
	}
	return reg
}
