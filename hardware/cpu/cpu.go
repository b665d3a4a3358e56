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
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/registers"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
)

// CPU implements the R3000A found in the PlayStation.
type CPU struct {
	prefs *preferences.Preferences
	mem   bus.Device

	// the program counter pipeline. PC is the address of the next instruction
	// to be fetched and NextPC is the address of the one after that. a branch
	// or jump changes NextPC, which is how the branch delay slot comes about.
	//
	// CurrentPC is the address of the instruction being executed
	PC        uint32
	NextPC    uint32
	CurrentPC uint32

	Reg registers.File
	HI  uint32
	LO  uint32

	Cop0 *cop0.Bank

	// the result of the most recent call to ExecuteInstruction()
	LastResult Result

	// the number of instructions executed since the last reset
	Instructions uint64

	// the instruction being executed is in a branch delay slot
	inDelaySlot bool

	// the instruction being executed is a branch or jump and so the next
	// instruction is in the delay slot
	branch bool

	// an exception has been raised by the instruction being executed. a load
	// that raises an exception does not write to its destination register
	exception bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// will be in an undefined state until Reset() is called.
func NewCPU(prefs *preferences.Preferences, mem bus.Device) *CPU {
	return &CPU{
		prefs: prefs,
		mem:   mem,
		Cop0:  cop0.NewBank(),
	}
}

// Plumb CPU into new memory bus.
func (mc *CPU) Plumb(mem bus.Device) {
	mc.mem = mem
}

// Reset puts the CPU into the state it is in at power on. Execution will
// begin at the start of the BIOS.
func (mc *CPU) Reset() {
	mc.PC = memorymap.ResetVector
	mc.NextPC = mc.PC + 4
	mc.CurrentPC = mc.PC
	mc.Reg.Reset()
	mc.HI = 0
	mc.LO = 0
	mc.Cop0.Reset()
	mc.LastResult = Result{}
	mc.Instructions = 0
	mc.inDelaySlot = false
	mc.branch = false
	mc.exception = false
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%08x NextPC=%08x HI=%08x LO=%08x\n", mc.PC, mc.NextPC, mc.HI, mc.LO))
	s.WriteString(mc.Reg.String())
	return s.String()
}

// CacheIsolated returns true if the isolate cache bit of the status register
// is set. Implements the memory.Controller interface.
func (mc *CPU) CacheIsolated() bool {
	return mc.Cop0.CacheIsolated()
}

// peek32 reads the word for the partial stores. the bytes not being stored
// are written back unchanged so the read must not trigger device side-effects.
func (mc *CPU) peek32(address uint32) (uint32, error) {
	if p, ok := mc.mem.(bus.Peeker); ok {
		return p.Peek32(address)
	}
	return mc.mem.Load32(address)
}

// InDelaySlot returns true if the instruction most recently executed was in a
// branch delay slot.
func (mc *CPU) InDelaySlot() bool {
	return mc.inDelaySlot
}

// advance the program counter pipeline. the instruction at pc is about to be
// executed.
func (mc *CPU) advance(pc uint32) {
	mc.CurrentPC = pc
	mc.PC = mc.NextPC
	mc.NextPC = mc.PC + 4
}

// ExecuteInstruction fetches and executes the next instruction.
//
// The returned error is a host-level error. An unmapped address, for example,
// or an unimplemented instruction if the HaltOnReserved preference is set.
// Faults that the program running on the emulated CPU should see are raised as
// exceptions and do not cause an error to be returned.
func (mc *CPU) ExecuteInstruction() error {
	pc := mc.PC

	var ins instructions.Instruction
	if pc&3 == 0 {
		v, err := mc.mem.Load32(pc)
		if err != nil {
			return err
		}
		ins = instructions.Instruction(v)
	}

	// the fetch was successful so the pipeline can advance
	mc.inDelaySlot = mc.branch
	mc.branch = false
	mc.exception = false
	mc.advance(pc)

	mc.LastResult = Result{
		Address:     pc,
		Instruction: ins,
		Fetched:     pc&3 == 0,
		InDelaySlot: mc.inDelaySlot,
	}

	mc.Instructions++

	if !mc.LastResult.Fetched {
		mc.RaiseAddressError(cop0.AddressErrorLoad, pc)
		return nil
	}

	return mc.Execute(ins)
}
