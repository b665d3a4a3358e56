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
	"slices"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/terminal"
)

// breakpoints halt the RUN command when the program counter reaches a
// specific address.
type breakpoints struct {
	dbg    *Debugger
	breaks []uint32
}

func newBreakpoints(dbg *Debugger) *breakpoints {
	bp := &breakpoints{dbg: dbg}
	bp.clear()
	return bp
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = make([]uint32, 0, 10)
}

// add a new breakpoint. it is an error to add the same address twice.
func (bp *breakpoints) add(address uint32) error {
	if slices.Contains(bp.breaks, address) {
		return curated.Errorf("breakpoint already exists (%#08x)", address)
	}
	bp.breaks = append(bp.breaks, address)
	return nil
}

// drop the breakpoint at the specified address.
func (bp *breakpoints) drop(address uint32) error {
	i := slices.Index(bp.breaks, address)
	if i == -1 {
		return curated.Errorf("breakpoint is not defined (%#08x)", address)
	}
	bp.breaks = slices.Delete(bp.breaks, i, i+1)
	return nil
}

// check returns true if there is a breakpoint at the address.
func (bp *breakpoints) check(address uint32) bool {
	return slices.Contains(bp.breaks, address)
}

// list currently defined breakpoints.
func (bp *breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}
	bp.dbg.printLine(terminal.StyleFeedback, "breakpoints:")
	for i, b := range bp.breaks {
		bp.dbg.printLine(terminal.StyleFeedback, "%s", fmt.Sprintf("% 2d: %08x", i, b))
	}
}
