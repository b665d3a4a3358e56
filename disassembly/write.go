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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Level    bool

	// executed entries are prefixed with a marker
	Executed bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	if len(dsm.entries) == 0 {
		return nil
	}
	return dsm.WriteRange(output, attr, dsm.origin, dsm.origin+uint32(len(dsm.entries)-1)*4)
}

// WriteRange writes the disassembly of the addresses between from and to
// inclusive.
func (dsm *Disassembly) WriteRange(output io.Writer, attr WriteAttr, from uint32, to uint32) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for a := from &^ 3; a <= to; a += 4 {
		e, ok := dsm.entry(a)
		if !ok {
			continue
		}
		if _, err := io.WriteString(output, dsm.line(attr, e)); err != nil {
			return err
		}

		// guard against wrap around
		if a+4 < a {
			break
		}
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	_, err := io.WriteString(output, dsm.line(attr, e))
	return err
}

func (dsm *Disassembly) line(attr WriteAttr, e *Entry) string {
	s := strings.Builder{}

	if attr.Executed {
		if e.Level == EntryLevelExecuted {
			s.WriteString("* ")
		} else {
			s.WriteString("  ")
		}
	}

	s.WriteString(fmt.Sprintf("%08x  ", e.Address))

	if attr.ByteCode {
		s.WriteString(e.Bytecode())
		s.WriteString("  ")
	}

	if e.Level == EntryLevelUnmapped {
		s.WriteString("unmapped")
	} else if e.Operand == "" {
		s.WriteString(e.Operator)
	} else {
		s.WriteString(fmt.Sprintf("%-7s %s", e.Operator, e.Operand))
	}

	if attr.Level {
		s.WriteString(fmt.Sprintf(" [%s]", e.Level))
	}

	s.WriteString("\n")
	return s.String()
}
