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

package memcontrol

import (
	"strings"

	"github.com/jetsetilly/gopherpsx/logger"
)

// offsets of registers in the expansion 2 area, relative to the start of the
// area.
const (
	offsetDUARTStatusA = 0x21
	offsetDUARTTxA     = 0x23
	offsetPOST         = 0x41

	// DUART status with the transmitter ready and empty
	duartTxReady = 0x0c
)

// Expansion2 is the expansion 2 area. On development hardware this is where
// the POST display and the DUART used for TTY output are found. POST values
// and completed lines of TTY output are logged.
type Expansion2 struct {
	perm logger.Permission

	// most recent value written to the POST register
	POST uint8

	line strings.Builder

	// every completed line of TTY output
	TTY []string
}

// NewExpansion2 is the preferred method of initialisation for the Expansion2
// type.
func NewExpansion2(perm logger.Permission) *Expansion2 {
	return &Expansion2{perm: perm}
}

// Reset clears the POST value and any TTY output.
func (exp *Expansion2) Reset() {
	exp.POST = 0
	exp.line.Reset()
	exp.TTY = exp.TTY[:0]
}

func (exp *Expansion2) String() string {
	return strings.Join(exp.TTY, "\n")
}

func (exp *Expansion2) tty(b uint8) {
	switch b {
	case '\r':
	case '\n':
		exp.TTY = append(exp.TTY, exp.line.String())
		logger.Log(exp.perm, "tty", exp.line.String())
		exp.line.Reset()
	default:
		exp.line.WriteByte(b)
	}
}

// Load8 implements the bus.Device interface.
func (exp *Expansion2) Load8(address uint32) (uint8, error) {
	if address&0x1fff == offsetDUARTStatusA {
		return duartTxReady, nil
	}
	return 0, nil
}

// Load16 implements the bus.Device interface.
func (exp *Expansion2) Load16(address uint32) (uint16, error) {
	return 0, nil
}

// Load32 implements the bus.Device interface.
func (exp *Expansion2) Load32(address uint32) (uint32, error) {
	return 0, nil
}

// Store8 implements the bus.Device interface.
func (exp *Expansion2) Store8(address uint32, value uint8) error {
	switch address & 0x1fff {
	case offsetPOST:
		exp.POST = value
		logger.Logf(exp.perm, "post", "%02x", value)
	case offsetDUARTTxA:
		exp.tty(value)
	}
	return nil
}

// Store16 implements the bus.Device interface.
func (exp *Expansion2) Store16(address uint32, value uint16) error {
	return nil
}

// Store32 implements the bus.Device interface.
func (exp *Expansion2) Store32(address uint32, value uint32) error {
	return nil
}
