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

// Package plainterm implements the Terminal interface for the gopherpsx
// debugger. Line editing and history are provided by golang.org/x/term when
// the input is a real terminal. Otherwise input is read one line at a time
// with no editing at all.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherpsx/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface.
type PlainTerminal struct {
	input    io.Reader
	output   io.Writer
	silenced bool

	// the file descriptor of the real terminal and the state it was in
	// before Initialise() put it into raw mode
	fd       int
	oldState *term.State

	// line editing for real terminals
	edit *term.Terminal

	// line reading for everything else
	lines *bufio.Reader
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. The terminal is not ready for use until Initialise() has
// been called.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  input,
		output: output,
		fd:     -1,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if f, ok := pt.input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		st, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("plainterm: %w", err)
		}
		pt.fd = fd
		pt.oldState = st
		pt.edit = term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{pt.input, pt.output}, "")
		return nil
	}

	pt.lines = bufio.NewReader(pt.input)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
	if pt.oldState != nil {
		_ = term.Restore(pt.fd, pt.oldState)
		pt.oldState = nil
	}
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.edit != nil
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	// term.Terminal translates newlines for the raw mode terminal
	if pt.edit != nil {
		pt.edit.Write([]byte(s + "\n"))
		return
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if pt.edit != nil {
		pt.edit.SetPrompt(prompt.String())
		return pt.edit.ReadLine()
	}

	if pt.lines == nil {
		return "", io.EOF
	}

	s, err := pt.lines.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}
