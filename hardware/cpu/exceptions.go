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
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/logger"
)

// UnimplementedInstruction is returned by ExecuteInstruction() when the
// instruction is not implemented by the CPU and the HaltOnReserved preference
// is set.
const UnimplementedInstruction = "cpu: unimplemented instruction (%08x) at %#08x"

// delaySlot returns true if the instruction being executed is in a branch
// delay slot.
func (mc *CPU) delaySlot() bool {
	if mc.prefs.DelaySlotHeuristic.Get().(bool) {
		return mc.PC != mc.CurrentPC+4
	}
	return mc.inDelaySlot
}

// Raise an exception. The current mode is pushed onto the mode stack of the
// status register and execution continues at the exception vector.
func (mc *CPU) Raise(cause cop0.Cause) {
	vector := memorymap.ExceptionVectorRAM
	if mc.Cop0.BootExceptionVectors() {
		vector = memorymap.ExceptionVectorROM
	}

	mc.Cop0.PushMode()

	code := uint32(cause) << 2
	epc := mc.CurrentPC
	if mc.delaySlot() {
		// the exception return address is the branch instruction so that the
		// branch is taken again on return
		code |= cop0.CauseBranchDelay
		epc -= 4
	}
	mc.Cop0.SetCause(code)
	mc.Cop0.SetEPC(epc)

	mc.PC = vector
	mc.NextPC = vector + 4

	// the first instruction of the exception handler is never in a delay slot
	mc.branch = false

	mc.exception = true
	mc.LastResult.Exception = cause
	mc.LastResult.ExceptionTaken = true
}

// RaiseAddressError records the address that caused the exception before
// raising it. Implements the memory.Controller interface.
func (mc *CPU) RaiseAddressError(cause cop0.Cause, address uint32) {
	mc.Cop0.SetBadVAddr(address)
	mc.Raise(cause)
}

// reserved is called for every instruction the CPU does not implement.
func (mc *CPU) reserved(ins instructions.Instruction) error {
	if mc.prefs.HaltOnReserved.Get().(bool) {
		return curated.Errorf(UnimplementedInstruction, uint32(ins), mc.CurrentPC)
	}
	logger.Logf(mc.prefs, "cpu", "reserved instruction %08x at %#08x", uint32(ins), mc.CurrentPC)
	mc.Raise(cop0.ReservedInstruction)
	return nil
}
