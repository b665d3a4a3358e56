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
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
)

// Result records what happened during the most recent call to
// ExecuteInstruction().
type Result struct {
	// the address the instruction was fetched from
	Address uint32

	// the instruction word. zero if the instruction could not be fetched
	Instruction instructions.Instruction

	// the instruction was fetched. an instruction is not fetched if the
	// program counter is misaligned
	Fetched bool

	// the instruction was in a branch delay slot
	InDelaySlot bool

	// the exception raised by the instruction, if any
	Exception      cop0.Cause
	ExceptionTaken bool
}

func (r Result) String() string {
	if !r.Fetched {
		return fmt.Sprintf("%08x  (not fetched)", r.Address)
	}
	s := fmt.Sprintf("%08x  %08x  %s", r.Address, uint32(r.Instruction), instructions.Disassemble(r.Instruction, r.Address))
	if r.ExceptionTaken {
		s = fmt.Sprintf("%s  [%s]", s, r.Exception)
	}
	return s
}
