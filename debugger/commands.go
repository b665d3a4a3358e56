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
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/commandline"
	"github.com/jetsetilly/gopherpsx/debugger/govern"
	"github.com/jetsetilly/gopherpsx/debugger/terminal"
	"github.com/jetsetilly/gopherpsx/disassembly"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/jetsetilly/gopherpsx/paths"
)

// debugger keywords.
const (
	KeywordHelp        = "HELP"
	KeywordStep        = "STEP"
	KeywordRun         = "RUN"
	KeywordBreak       = "BREAK"
	KeywordClear       = "CLEAR"
	KeywordRegs        = "REGS"
	KeywordCop0        = "COP0"
	KeywordPeek        = "PEEK"
	KeywordPoke        = "POKE"
	KeywordDisasm      = "DISASM"
	KeywordGrep        = "GREP"
	KeywordMap         = "MAP"
	KeywordPeripherals = "PERIPHERALS"
	KeywordReset       = "RESET"
	KeywordLog         = "LOG"
	KeywordDump        = "DUMP"
	KeywordMemviz      = "MEMVIZ"
	KeywordScript      = "SCRIPT"
	KeywordQuit        = "QUIT"
)

// Help contains the help text for the debugger's top level commands.
var Help = map[string]string{
	KeywordHelp:        "Lists commands and provides help for individual commands",
	KeywordStep:        "Step forward the specified number of instructions (default 1). An empty command is the same as STEP",
	KeywordRun:         "Run until a breakpoint is reached, the user interrupts, or the optional number of instructions have been executed",
	KeywordBreak:       "Halt the RUN command when the program counter reaches the address. With no address the breakpoints are listed",
	KeywordClear:       "Clear the breakpoint at the address. With no address all breakpoints are cleared",
	KeywordRegs:        "Display the CPU registers",
	KeywordCop0:        "Display the system control coprocessor registers",
	KeywordPeek:        "Inspect the specified number of bytes of memory (default 16) starting at the address",
	KeywordPoke:        "Write a byte of memory at the address",
	KeywordDisasm:      "Disassemble the specified number of instructions (default 10) at the address (default PC)",
	KeywordGrep:        "Search the BIOS disassembly",
	KeywordMap:         "Display the memory map",
	KeywordPeripherals: "Display the state of the interrupt controller, DMA, timers, GPU and SPU",
	KeywordReset:       "Reset the emulation to its initial state",
	KeywordLog:         "Print the central log. With a number only the most recent entries are printed",
	KeywordDump:        "Pretty print the internal state of the CPU",
	KeywordMemviz:      "Write a graphviz rendering of the CPU state to the named file. A filename is chosen if one is not given",
	KeywordScript:      "Run the named Lua script",
	KeywordQuit:        "Exits the emulator",
}

// the number of bytes per line of PEEK output.
const peekWidth = 16

// parseCommand scans user input for valid commands and acts upon it. An empty
// input is the same as the STEP command.
func (dbg *Debugger) parseCommand(userInput string) error {
	tokens := commandline.TokeniseInput(userInput)

	command, ok := tokens.Get()
	if !ok {
		command = KeywordStep
	}

	switch command {
	default:
		return curated.Errorf("%s is not a debugging command", command)

	case KeywordHelp:
		keyword, ok := tokens.Get()
		if ok {
			keyword = strings.ToUpper(keyword)
			txt, ok := Help[keyword]
			if !ok {
				dbg.printLine(terminal.StyleHelp, "no help for %s", keyword)
			} else {
				dbg.printLine(terminal.StyleHelp, "%s", txt)
			}
			return nil
		}
		keywords := make([]string, 0, len(Help))
		for k := range Help {
			keywords = append(keywords, k)
		}
		slices.Sort(keywords)
		dbg.printLine(terminal.StyleHelp, "%s", strings.Join(keywords, " "))

	case KeywordStep:
		n, err := tokens.GetOptionalNumber(1)
		if err != nil {
			return err
		}
		for range n {
			err = dbg.step()
			dbg.printLine(terminal.StyleCPUStep, "%s", dbg.psx.CPU.LastResult)
			if err != nil {
				return err
			}
		}

	case KeywordRun:
		n, err := tokens.GetOptionalNumber(0)
		if err != nil {
			return err
		}
		return dbg.run(uint64(n))

	case KeywordBreak:
		if tokens.IsEnd() {
			dbg.breakpoints.list()
			return nil
		}
		address, err := tokens.GetNumber()
		if err != nil {
			return err
		}
		err = dbg.breakpoints.add(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %08x", address)

	case KeywordClear:
		if tokens.IsEnd() {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		address, err := tokens.GetNumber()
		if err != nil {
			return err
		}
		return dbg.breakpoints.drop(address)

	case KeywordRegs:
		dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimRight(dbg.psx.CPU.String(), "\n"))

	case KeywordCop0:
		dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimRight(dbg.psx.CPU.Cop0.String(), "\n"))

	case KeywordPeek:
		address, err := tokens.GetNumber()
		if err != nil {
			return err
		}
		n, err := tokens.GetOptionalNumber(peekWidth)
		if err != nil {
			return err
		}
		dbg.peek(address, n)

	case KeywordPoke:
		address, err := tokens.GetNumber()
		if err != nil {
			return err
		}
		value, err := tokens.GetNumber()
		if err != nil {
			return err
		}
		if value > 0xff {
			return curated.Errorf("poke value is not a byte (%#x)", value)
		}
		return dbg.psx.Mem.Poke(address, uint8(value))

	case KeywordDisasm:
		address, err := tokens.GetOptionalNumber(dbg.psx.CPU.PC)
		if err != nil {
			return err
		}
		n, err := tokens.GetOptionalNumber(10)
		if err != nil {
			return err
		}
		return dbg.disasm(address, n)

	case KeywordGrep:
		if dbg.dsm == nil {
			return curated.Errorf("no disassembly")
		}
		search := tokens.Remainder()
		if search == "" {
			return curated.Errorf(commandline.MissingToken)
		}
		n, err := dbg.dsm.Grep(termWriter{dbg: dbg, style: terminal.StyleFeedback}, disassembly.GrepAll, search, false)
		if err != nil {
			return err
		}
		if n == 0 {
			dbg.printLine(terminal.StyleFeedback, "%s not found", search)
		}
		return nil

	case KeywordMap:
		for _, a := range dbg.psx.Mem.Areas() {
			dbg.printLine(terminal.StyleFeedback, "%s", a)
		}

	case KeywordPeripherals:
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.psx.Interrupts)
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.psx.DMA)
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.psx.Timers)
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.psx.GPU)
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.psx.SPU)

	case KeywordReset:
		dbg.psx.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case KeywordLog:
		w := termWriter{dbg: dbg, style: terminal.StyleLog}
		if tokens.IsEnd() {
			logger.Write(w)
			return nil
		}
		n, err := tokens.GetNumber()
		if err != nil {
			return err
		}
		logger.Tail(w, int(n))

	case KeywordDump:
		return dbg.dump()

	case KeywordMemviz:
		filename, ok := tokens.Get()
		if !ok {
			filename = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", dbg.psx.BIOS.ShortName()))
		}
		return dbg.memviz(filename)

	case KeywordScript:
		filename, ok := tokens.Get()
		if !ok {
			return curated.Errorf(commandline.MissingToken)
		}
		return dbg.runScript(filename)

	case KeywordQuit:
		dbg.quit = true
	}

	return tokens.Done()
}

// run the emulation until a breakpoint is reached, the user interrupts, or
// count instructions have been executed. A count of zero means there is no
// limit.
func (dbg *Debugger) run(count uint64) error {
	dbg.state = govern.Running
	defer func() {
		dbg.state = govern.Paused
	}()

	// discard any interrupt that arrived while waiting for input
	select {
	case <-dbg.sig:
	default:
	}

	target := dbg.psx.CPU.Instructions + count

	var reason string
	var performanceFilter int

	err := dbg.psx.Run(func() (govern.State, error) {
		if dbg.dsm != nil {
			dbg.dsm.UpdateEntry(dbg.psx.CPU.LastResult)
		}

		if dbg.breakpoints.check(dbg.psx.CPU.PC) {
			reason = fmt.Sprintf("break at %08x", dbg.psx.CPU.PC)
			return govern.Ending, nil
		}

		if count > 0 && dbg.psx.CPU.Instructions >= target {
			reason = fmt.Sprintf("%d instructions executed", count)
			return govern.Ending, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-dbg.sig:
				reason = "interrupted"
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})

	if err != nil {
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.psx.CPU.LastResult)
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "%s", reason)
	return nil
}

// peek prints n bytes of memory beginning at address. Unmapped bytes are
// shown as --.
func (dbg *Debugger) peek(address uint32, n uint32) {
	s := strings.Builder{}
	for i := range n {
		a := address + i
		if i%peekWidth == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimSpace(s.String()))
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%08x ", a))
		}
		v, err := dbg.psx.Mem.Peek(a)
		if err != nil {
			s.WriteString(" --")
		} else {
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
	}
	if s.Len() > 0 {
		dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimSpace(s.String()))
	}
}

// disasm prints n instructions beginning at address. The BIOS disassembly is
// used if it covers the address, otherwise memory is disassembled as it is
// now.
func (dbg *Debugger) disasm(address uint32, n uint32) error {
	if n == 0 {
		return nil
	}

	w := termWriter{dbg: dbg, style: terminal.StyleFeedback}
	attr := disassembly.WriteAttr{ByteCode: true, Executed: true}

	if dbg.dsm != nil {
		if _, ok := dbg.dsm.GetEntryByAddress(address); ok {
			return dbg.dsm.WriteRange(w, attr, address, address+(n-1)*4)
		}
	}

	dsm, err := disassembly.FromMemory(dbg.psx.Mem, address, int(n))
	if err != nil {
		return err
	}
	return dsm.Write(w, attr)
}

// termWriter sends everything written to it to the terminal, one line at a
// time.
type termWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (tw termWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tw.dbg.printLine(tw.style, "%s", l)
	}
	return len(p), nil
}
