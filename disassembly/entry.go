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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every word is a valid
// instruction. Executed entries have been reached by the CPU.
const (
	EntryLevelUnmapped EntryLevel = iota
	EntryLevelDecoded
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelUnmapped:
		return "unmapped"
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelExecuted:
		return "executed"
	}
	return ""
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	Address     uint32
	Instruction instructions.Instruction

	// the definition is not valid for words that do not decode to an
	// instruction. Operator will be ".word" in that case
	Defn  instructions.Definition
	Valid bool

	Operator string
	Operand  string

	// the most recent execution of the entry, if Level is EntryLevelExecuted
	Result cpu.Result
}

func newEntry(address uint32, ins instructions.Instruction, level EntryLevel) *Entry {
	e := &Entry{
		Level:       level,
		Address:     address,
		Instruction: ins,
	}
	e.Defn, e.Valid = instructions.Lookup(ins)
	e.Operator, e.Operand, _ = strings.Cut(instructions.Disassemble(ins, address), " ")
	e.Operand = strings.TrimSpace(e.Operand)
	return e
}

func (e *Entry) String() string {
	if e.Level == EntryLevelUnmapped {
		return fmt.Sprintf("%08x  ????????", e.Address)
	}
	return fmt.Sprintf("%08x  %-7s %s", e.Address, e.Operator, e.Operand)
}

// Bytecode returns the instruction word formatted as hex.
func (e *Entry) Bytecode() string {
	if e.Level == EntryLevelUnmapped {
		return "????????"
	}
	return fmt.Sprintf("%08x", uint32(e.Instruction))
}
