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
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/govern"
	"github.com/jetsetilly/gopherpsx/debugger/terminal"
	"github.com/jetsetilly/gopherpsx/disassembly"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	psx  *hardware.PSX
	term terminal.Terminal

	// the current state of the emulation. the debugger is either paused and
	// waiting for input or running the emulation
	state govern.State

	breakpoints *breakpoints

	// disassembly of the BIOS. updated as instructions are executed
	dsm *disassembly.Disassembly

	// interrupt signals from the operating system. used to stop the RUN
	// command
	sig chan os.Signal

	// set by the QUIT command
	quit bool

	// the number of scripts currently running. used to prevent scripts from
	// running themselves recursively
	scriptDepth int
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The PSX should already have a BIOS attached.
func NewDebugger(psx *hardware.PSX, term terminal.Terminal) (*Debugger, error) {
	if psx == nil {
		return nil, curated.Errorf("debugger: no PSX to debug")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		psx:   psx,
		term:  term,
		state: govern.Initialising,
		sig:   make(chan os.Signal, 1),
	}

	dbg.breakpoints = newBreakpoints(dbg)
	psx.Mode = govern.ModeDebugger

	if psx.BIOS.HasLoaded() {
		dbg.dsm = disassembly.FromROM(psx.BIOS.Data, memorymap.ResetVector)
	}

	return dbg, nil
}

// Start the main debugger sequence. The initScript, if not empty, is run
// before the first prompt is shown.
func (dbg *Debugger) Start(initScript string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.sig, os.Interrupt)
	defer signal.Stop(dbg.sig)

	dbg.state = govern.Paused
	logger.Logf(dbg.psx.Prefs, "debugger", "started with BIOS %s", dbg.psx.BIOS.ShortName())

	if initScript != "" {
		err = dbg.runScript(initScript)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return dbg.inputLoop()
}

// inputLoop reads and processes commands until the QUIT command or the end
// of input.
func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF {
				break // for loop
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.printLine(terminal.StyleEcho, "%s", input)

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	dbg.state = govern.Ending

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Type:         terminal.PromptTypeCPUStep,
		Content:      fmt.Sprintf("%08x", dbg.psx.CPU.PC),
		Instructions: dbg.psx.CPU.Instructions,
	}
}

// State returns the current emulation state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// step the emulation one instruction and update the disassembly.
func (dbg *Debugger) step() error {
	res, err := dbg.psx.Step()
	if dbg.dsm != nil {
		dbg.dsm.UpdateEntry(res)
	}
	return err
}
