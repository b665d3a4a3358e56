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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherpsx/debugger/terminal"
	"github.com/jetsetilly/gopherpsx/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestReadLines(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\nregs\nquit"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectEquality(t, pt.IsInteractive(), false)

	for _, expected := range []string{"step", "regs", "quit"} {
		s, err := pt.TermRead(terminal.Prompt{})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	_, err := pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	// non-interactive terminals do not print the prompt
	test.ExpectEquality(t, out.String(), "")
}

func TestPrintLine(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)
	test.DemandSuccess(t, pt.Initialise())

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, out.String(), "hello\n* bad\n")

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, out.String(), "* bad\n")
}
