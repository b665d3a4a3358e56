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
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherpsx/biosloader"
	"github.com/jetsetilly/gopherpsx/debugger/govern"
	"github.com/jetsetilly/gopherpsx/debugger/terminal"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/test"
)

// the program placed at the start of the BIOS
var program = []uint32{
	0x3c081f80, // lui   t0, 0x1f80
	0x34090005, // ori   t1, r0, 0x5
	0x25290001, // addiu t1, t1, 0x1
	0x1000fffe, // b     -2
	0x00000000, // nop
}

// mockTerm is a terminal with canned input. output is collected for
// inspection.
type mockTerm struct {
	input  []string
	output []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(_ terminal.Prompt) (string, error) {
	if len(trm.input) == 0 {
		return "", io.EOF
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleEcho {
		return
	}
	trm.output = append(trm.output, s)
}

func (trm *mockTerm) last() string {
	if len(trm.output) == 0 {
		return ""
	}
	return trm.output[len(trm.output)-1]
}

func (trm *mockTerm) contains(s string) bool {
	for _, o := range trm.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

func newDebugger(t *testing.T) (*Debugger, *mockTerm) {
	t.Helper()

	data := make([]byte, 524288)
	for i, w := range program {
		binary.LittleEndian.PutUint32(data[i*4:], w)
	}
	pth := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o600))

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	psx, err := hardware.NewPSX(prefs)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, psx.AttachBIOS(biosloader.NewLoader(pth)))

	trm := &mockTerm{}
	dbg, err := NewDebugger(psx, trm)
	test.DemandSuccess(t, err)

	return dbg, trm
}

func TestNewDebugger(t *testing.T) {
	_, err := NewDebugger(nil, &mockTerm{})
	test.ExpectFailure(t, err)
}

func TestStep(t *testing.T) {
	dbg, trm := newDebugger(t)

	test.ExpectSuccess(t, dbg.parseCommand("step 2"))
	test.ExpectEquality(t, dbg.psx.CPU.PC, uint32(0xbfc00008))
	test.ExpectEquality(t, dbg.psx.CPU.Reg.Read(9), uint32(5))
	test.ExpectEquality(t, len(trm.output), 2)

	// empty input is the same as STEP
	test.ExpectSuccess(t, dbg.parseCommand(""))
	test.ExpectEquality(t, dbg.psx.CPU.Reg.Read(9), uint32(6))
	test.ExpectEquality(t, dbg.psx.CPU.Instructions, uint64(3))

	test.ExpectFailure(t, dbg.parseCommand("step foo"))
	test.ExpectFailure(t, dbg.parseCommand("step 1 2"))
	test.ExpectFailure(t, dbg.parseCommand("jump"))
}

func TestBreakpoints(t *testing.T) {
	dbg, trm := newDebugger(t)

	test.ExpectSuccess(t, dbg.parseCommand("break $bfc00010"))
	test.ExpectFailure(t, dbg.parseCommand("break 0xbfc00010"))
	test.ExpectSuccess(t, dbg.parseCommand("break"))
	test.ExpectEquality(t, trm.last(), " 0: bfc00010")

	// the delay slot of the branch is reached after four instructions
	test.ExpectSuccess(t, dbg.parseCommand("run"))
	test.ExpectEquality(t, dbg.psx.CPU.PC, uint32(0xbfc00010))
	test.ExpectEquality(t, dbg.psx.CPU.Instructions, uint64(4))
	test.ExpectEquality(t, trm.last(), "break at bfc00010")
	test.ExpectEquality(t, dbg.State(), govern.Paused)

	// running again goes around the loop once
	test.ExpectSuccess(t, dbg.parseCommand("run"))
	test.ExpectEquality(t, dbg.psx.CPU.Instructions, uint64(7))
	test.ExpectEquality(t, dbg.psx.CPU.Reg.Read(9), uint32(7))

	test.ExpectSuccess(t, dbg.parseCommand("clear $bfc00010"))
	test.ExpectFailure(t, dbg.parseCommand("clear $bfc00010"))
	test.ExpectSuccess(t, dbg.parseCommand("break"))
	test.ExpectEquality(t, trm.last(), "no breakpoints")

	test.ExpectSuccess(t, dbg.parseCommand("run 10"))
	test.ExpectEquality(t, dbg.psx.CPU.Instructions, uint64(17))
	test.ExpectEquality(t, trm.last(), "10 instructions executed")
}

func TestPeekPoke(t *testing.T) {
	dbg, trm := newDebugger(t)

	test.ExpectSuccess(t, dbg.parseCommand("peek $bfc00000 4"))
	test.ExpectEquality(t, trm.last(), "bfc00000  80 1f 08 3c")

	test.ExpectSuccess(t, dbg.parseCommand("poke $80000000 $ab"))
	test.ExpectSuccess(t, dbg.parseCommand("peek 0x80000000 1"))
	test.ExpectEquality(t, trm.last(), "80000000  ab")
	test.ExpectFailure(t, dbg.parseCommand("poke $80000000 256"))

	// two lines of output
	trm.output = trm.output[:0]
	test.ExpectSuccess(t, dbg.parseCommand("peek 0x80000000 20"))
	test.ExpectEquality(t, len(trm.output), 2)
	test.ExpectEquality(t, strings.HasPrefix(trm.last(), "80000010 "), true)

	// unmapped memory
	test.ExpectSuccess(t, dbg.parseCommand("peek 0x1f900000 2"))
	test.ExpectEquality(t, trm.last(), "1f900000  -- --")
	test.ExpectFailure(t, dbg.parseCommand("poke 0x1f900000 1"))

	// peeking a timer mode register does not clear the reached flags
	dbg.psx.Timers.Timer[0].Mode = 0x0c00
	test.ExpectSuccess(t, dbg.parseCommand("peek $1f801104 4"))
	test.ExpectEquality(t, trm.last(), "1f801104  00 0c 00 00")
	test.ExpectEquality(t, dbg.psx.Timers.Timer[0].Mode, uint16(0x0c00))
}

func TestDisasm(t *testing.T) {
	dbg, trm := newDebugger(t)

	test.ExpectSuccess(t, dbg.parseCommand("step"))
	test.ExpectSuccess(t, dbg.parseCommand("disasm $bfc00000 2"))
	test.ExpectEquality(t, len(trm.output), 3)
	test.ExpectEquality(t, strings.HasPrefix(trm.output[1], "* bfc00000"), true)
	test.ExpectEquality(t, strings.Contains(trm.output[1], "lui"), true)
	test.ExpectEquality(t, strings.HasPrefix(trm.output[2], "  bfc00004"), true)

	// outside of the BIOS
	trm.output = trm.output[:0]
	test.ExpectSuccess(t, dbg.parseCommand("disasm $80000000 4"))
	test.ExpectEquality(t, len(trm.output), 4)
	test.ExpectFailure(t, dbg.parseCommand("disasm $1f900000 4"))

	test.ExpectSuccess(t, dbg.parseCommand("grep addiu"))
	test.ExpectEquality(t, trm.contains("bfc00008"), true)
}

func TestInformation(t *testing.T) {
	dbg, trm := newDebugger(t)

	for _, cmd := range []string{"regs", "cop0", "map", "peripherals", "log 5", "help", "help step", "dump"} {
		trm.output = trm.output[:0]
		test.ExpectSuccess(t, dbg.parseCommand(cmd), cmd)
		test.ExpectInequality(t, len(trm.output), 0, cmd)
	}

	test.ExpectSuccess(t, dbg.parseCommand("help step"))
	test.ExpectEquality(t, trm.last(), Help[KeywordStep])
}

func TestReset(t *testing.T) {
	dbg, _ := newDebugger(t)
	test.ExpectSuccess(t, dbg.parseCommand("step 3"))
	test.ExpectSuccess(t, dbg.parseCommand("reset"))
	test.ExpectEquality(t, dbg.psx.CPU.PC, uint32(0xbfc00000))
	test.ExpectEquality(t, dbg.psx.CPU.Instructions, uint64(0))
}

func TestMemviz(t *testing.T) {
	dbg, _ := newDebugger(t)
	pth := filepath.Join(t.TempDir(), "cpu.dot")
	test.ExpectSuccess(t, dbg.parseCommand("memviz "+pth))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(data), "digraph"), true)

	test.ExpectFailure(t, dbg.parseCommand("memviz "+filepath.Join(t.TempDir(), "missing", "cpu.dot")))
}

func TestScript(t *testing.T) {
	dbg, trm := newDebugger(t)

	script := `
step(2)
assert(reg("t1") == 5)
assert(pc() == 0xbfc00008)
setreg(10, 0x1234)
assert(reg(10) == 0x1234)
poke(0x80000010, 0x7f)
assert(peek(0x80000010) == 0x7f)
command("break 0xbfc00010")
print("done", step())
`
	pth := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(pth, []byte(script), 0o600))

	test.ExpectSuccess(t, dbg.parseCommand("script "+pth))
	test.ExpectEquality(t, trm.last(), "done\t3")
	test.ExpectEquality(t, dbg.breakpoints.check(0xbfc00010), true)

	// errors in the script are returned
	bad := filepath.Join(t.TempDir(), "bad.lua")
	test.DemandSuccess(t, os.WriteFile(bad, []byte("peek(0x1f900000)"), 0o600))
	test.ExpectFailure(t, dbg.parseCommand("script "+bad))
	test.ExpectFailure(t, dbg.parseCommand("script "+filepath.Join(t.TempDir(), "missing.lua")))

	// a script that runs itself is stopped eventually
	recursive := filepath.Join(t.TempDir(), "recursive.lua")
	test.DemandSuccess(t, os.WriteFile(recursive, []byte(`command("script `+recursive+`")`), 0o600))
	test.ExpectFailure(t, dbg.parseCommand("script "+recursive))
}

func TestStart(t *testing.T) {
	dbg, trm := newDebugger(t)
	trm.input = []string{"step", "bad command", "quit", "step"}

	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, dbg.psx.CPU.Instructions, uint64(1))
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	test.ExpectEquality(t, len(trm.input), 1)
	test.ExpectEquality(t, trm.contains("BAD is not a debugging command"), true)
}
