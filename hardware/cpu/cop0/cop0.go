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

package cop0

import (
	"fmt"
	"strings"
)

// NumRegisters is the size of the register bank. Only the low six bits of a
// register index are significant.
const NumRegisters = 64

// Register indexes with a meaning to the R3000A. The remaining indexes exist
// in the bank but nothing in the CPU gives them a meaning.
const (
	BPC      = 3
	BDA      = 5
	JUMPDEST = 6
	DCIC     = 7
	BadVAddr = 8
	BDAM     = 9
	BPCM     = 11
	SR       = 12
	CauseReg = 13
	EPC      = 14
	PRId     = 15
)

// Names of the coprocessor registers. Used by the disassembler and debugger.
var Names = [...]string{
	"Index", "Random", "EntryLo0", "EntryLo1",
	"Context", "PageMask", "Wired", "+Checkme",
	"BadVAddr", "Count", "EntryHi", "Compare",
	"Status", "Cause", "ExceptPC", "PRevID",
	"Config", "LLAddr", "WatchLo", "WatchHi",
	"XContext", "*RES*", "*RES*", "*RES*",
	"*RES*", "*RES*", "PErr", "CacheErr",
	"TagLo", "TagHi", "ErrorEPC", "*RES*",
}

// Name returns the name of the register at index.
func Name(index uint32) string {
	if int(index) < len(Names) {
		return Names[index]
	}
	return fmt.Sprintf("cop0r%d", index&(NumRegisters-1))
}

// Bits of the status register.
const (
	// the interrupt enable/kernel mode stack occupies the low six bits
	modeStackMask = 0x3f

	// writes to memory are directed at the cache rather than RAM
	StatusIsolateCache = 1 << 16

	// exception vectors are in ROM rather than RAM
	StatusBootExceptionVectors = 1 << 22
)

// CauseBranchDelay is set in the cause register when the exception happened
// to an instruction in a branch delay slot.
const CauseBranchDelay = 1 << 31

// value reported by the PRId register. the same value as the R3000A found in
// the retail console.
const processorID = 0x00000002

// Bank is the coprocessor 0 register bank. Registers can be accessed by index
// with Read() and Write() or by name with the accessor functions. Both views
// refer to the same storage.
type Bank struct {
	regs [NumRegisters]uint32
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank() *Bank {
	bnk := &Bank{}
	bnk.Reset()
	return bnk
}

// Reset clears all registers. The status register is zero after a reset.
func (bnk *Bank) Reset() {
	clear(bnk.regs[:])
	bnk.regs[PRId] = processorID
}

func (bnk *Bank) String() string {
	s := strings.Builder{}
	for _, r := range []uint32{SR, CauseReg, EPC, BadVAddr} {
		s.WriteString(fmt.Sprintf("%s=%08x ", Name(r), bnk.regs[r]))
	}
	return strings.TrimSpace(s.String())
}

// Read register by index.
func (bnk *Bank) Read(index uint32) uint32 {
	return bnk.regs[index&(NumRegisters-1)]
}

// Write register by index.
func (bnk *Bank) Write(index uint32, value uint32) {
	bnk.regs[index&(NumRegisters-1)] = value
}

// SR returns the status register.
func (bnk *Bank) SR() uint32 {
	return bnk.regs[SR]
}

// SetSR sets the status register.
func (bnk *Bank) SetSR(value uint32) {
	bnk.regs[SR] = value
}

// Cause returns the cause register.
func (bnk *Bank) Cause() uint32 {
	return bnk.regs[CauseReg]
}

// SetCause sets the cause register.
func (bnk *Bank) SetCause(value uint32) {
	bnk.regs[CauseReg] = value
}

// ExceptionCode returns the exception code part of the cause register.
func (bnk *Bank) ExceptionCode() Cause {
	return Cause((bnk.regs[CauseReg] >> 2) & 0x1f)
}

// EPC returns the exception program counter.
func (bnk *Bank) EPC() uint32 {
	return bnk.regs[EPC]
}

// SetEPC sets the exception program counter.
func (bnk *Bank) SetEPC(value uint32) {
	bnk.regs[EPC] = value
}

// BadVAddr returns the address that caused the most recent address error.
func (bnk *Bank) BadVAddr() uint32 {
	return bnk.regs[BadVAddr]
}

// SetBadVAddr sets the bad virtual address register.
func (bnk *Bank) SetBadVAddr(value uint32) {
	bnk.regs[BadVAddr] = value
}

// PRId returns the processor identification register.
func (bnk *Bank) PRId() uint32 {
	return bnk.regs[PRId]
}

// CacheIsolated returns true if the isolate cache bit of the status register is
// set.
func (bnk *Bank) CacheIsolated() bool {
	return bnk.regs[SR]&StatusIsolateCache == StatusIsolateCache
}

// BootExceptionVectors returns true if the BEV bit of the status register is
// set.
func (bnk *Bank) BootExceptionVectors() bool {
	return bnk.regs[SR]&StatusBootExceptionVectors == StatusBootExceptionVectors
}

// PushMode shifts the interrupt enable/kernel mode stack in the low six bits of
// the status register two places to the left. The oldest pair is discarded and
// the new current pair is zero (kernel mode, interrupts disabled). Bits above
// the stack are unchanged.
func (bnk *Bank) PushMode() {
	sr := bnk.regs[SR]
	mode := (sr << 2) & modeStackMask
	bnk.regs[SR] = (sr &^ modeStackMask) | mode
}

// PopMode shifts the mode stack two places to the right. The oldest pair
// becomes zero. Bits above the stack are unchanged.
func (bnk *Bank) PopMode() {
	sr := bnk.regs[SR]
	mode := sr & modeStackMask
	bnk.regs[SR] = (sr &^ modeStackMask) | (mode >> 2)
}
