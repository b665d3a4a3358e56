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

package debugger

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/terminal"
	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/registers"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
	"github.com/k0kubun/pp/v3"
)

// cpuState is a copy of the CPU state suitable for pretty printing and
// visualisation. the CPU type itself refers to the memory bus and
// everything attached to it.
type cpuState struct {
	PC           uint32
	NextPC       uint32
	CurrentPC    uint32
	HI           uint32
	LO           uint32
	GPR          []string
	Cop0         []string
	InDelaySlot  bool
	Instructions uint64
	LastResult   cpu.Result
}

func (dbg *Debugger) cpuState() *cpuState {
	mc := dbg.psx.CPU
	st := &cpuState{
		PC:           mc.PC,
		NextPC:       mc.NextPC,
		CurrentPC:    mc.CurrentPC,
		HI:           mc.HI,
		LO:           mc.LO,
		InDelaySlot:  mc.InDelaySlot(),
		Instructions: mc.Instructions,
		LastResult:   mc.LastResult,
	}
	for i := range uint32(registers.NumRegisters) {
		st.GPR = append(st.GPR, fmt.Sprintf("%s=%08x", registers.Name(i), mc.Reg.Read(i)))
	}
	for _, i := range []uint32{cop0.BadVAddr, cop0.SR, cop0.CauseReg, cop0.EPC, cop0.PRId} {
		st.Cop0 = append(st.Cop0, fmt.Sprintf("%s=%08x", cop0.Name(i), mc.Cop0.Read(i)))
	}
	return st
}

// dump pretty prints the CPU state to the terminal.
func (dbg *Debugger) dump() error {
	printer := pp.New()
	printer.SetColoringEnabled(dbg.term.IsInteractive())
	_, err := printer.Fprintln(termWriter{dbg: dbg, style: terminal.StyleFeedback}, dbg.cpuState())
	return err
}

// the structure rendered by the MEMVIZ command.
type memvizState struct {
	CPU   *cpuState
	Areas []memory.AreaInfo
}

// memviz writes a graphviz rendering of the CPU state and the memory map to
// the named file.
func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, &memvizState{
		CPU:   dbg.cpuState(),
		Areas: dbg.psx.Mem.Areas(),
	})

	dbg.printLine(terminal.StyleFeedback, "memviz written to %s", filename)
	return nil
}
