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

package timers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
)

// NumTimers is the number of timers in the console.
const NumTimers = 3

// offsets of registers from the start of each timer's block.
const (
	offsetCounter = 0x0
	offsetMode    = 0x4
	offsetTarget  = 0x8
)

// bits in the mode register.
const (
	ModeResetOnTarget = 0x0008
	ModeIRQOnTarget   = 0x0010
	ModeIRQOnMax      = 0x0020
	ModeIRQRepeat     = 0x0040
	ModeIRQToggle     = 0x0080
	ModeIRQNotActive  = 0x0400
	ModeReachedTarget = 0x0800
	ModeReachedMax    = 0x1000

	// bits that can be written by the CPU
	modeWritable = 0x03ff
)

// Timer is a single counter.
type Timer struct {
	Counter uint16
	Mode    uint16
	Target  uint16

	// the timer has raised an interrupt since the mode was last written. a
	// one-shot timer will not raise another
	fired bool
}

func (tmr Timer) String() string {
	return fmt.Sprintf("counter=%04x mode=%04x target=%04x", tmr.Counter, tmr.Mode, tmr.Target)
}

// Interrupter is the part of the interrupt controller used by the timers.
type Interrupter interface {
	Request(interrupts.IRQ)
}

// Timers is the root timers type.
type Timers struct {
	Timer [NumTimers]Timer

	irq Interrupter
}

// NewTimers is the preferred method of initialisation for the Timers type. The
// irq argument can be nil.
func NewTimers(irq Interrupter) *Timers {
	tmrs := &Timers{irq: irq}
	tmrs.Reset()
	return tmrs
}

// Reset all timers.
func (tmrs *Timers) Reset() {
	for i := range tmrs.Timer {
		tmrs.Timer[i] = Timer{Mode: ModeIRQNotActive}
	}
}

func (tmrs *Timers) String() string {
	s := strings.Builder{}
	for i, tmr := range tmrs.Timer {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%d: %s", i, tmr))
	}
	return s.String()
}

// Tick advances every timer by one.
//
// The clock source selected by the mode register is not emulated. Every timer
// counts at the same rate.
func (tmrs *Timers) Tick() {
	for i := range tmrs.Timer {
		tmr := &tmrs.Timer[i]

		tmr.Counter++

		var irq bool
		if tmr.Counter == tmr.Target {
			tmr.Mode |= ModeReachedTarget
			irq = tmr.Mode&ModeIRQOnTarget == ModeIRQOnTarget
			if tmr.Mode&ModeResetOnTarget == ModeResetOnTarget {
				tmr.Counter = 0
			}
		}
		if tmr.Counter == 0xffff {
			tmr.Mode |= ModeReachedMax
			irq = irq || tmr.Mode&ModeIRQOnMax == ModeIRQOnMax
		}

		if irq && (!tmr.fired || tmr.Mode&ModeIRQRepeat == ModeIRQRepeat) {
			tmr.fired = true
			if tmr.Mode&ModeIRQToggle == ModeIRQToggle {
				tmr.Mode ^= ModeIRQNotActive
			} else {
				tmr.Mode &^= ModeIRQNotActive
			}
			if tmr.Mode&ModeIRQNotActive == 0 && tmrs.irq != nil {
				tmrs.irq.Request(interrupts.Timer0 + interrupts.IRQ(i))
			}
		}
	}
}

// returns the timer and the register offset for an address. the timer is nil
// if the address is not a timer register
func (tmrs *Timers) decode(address uint32) (*Timer, uint32) {
	n := (address >> 4) & 0xf
	if n >= NumTimers {
		return nil, 0
	}
	return &tmrs.Timer[n], address & 0xc
}

func (tmrs *Timers) peek(address uint32) uint32 {
	tmr, offset := tmrs.decode(address)
	if tmr == nil {
		return 0
	}
	switch offset {
	case offsetCounter:
		return uint32(tmr.Counter)
	case offsetMode:
		return uint32(tmr.Mode)
	case offsetTarget:
		return uint32(tmr.Target)
	}
	return 0
}

func (tmrs *Timers) load(address uint32) uint32 {
	v := tmrs.peek(address)

	// reading the mode register clears the reached flags
	if tmr, offset := tmrs.decode(address); tmr != nil && offset == offsetMode {
		tmr.Mode &^= ModeReachedTarget | ModeReachedMax
	}

	return v
}

// Peek32 implements the bus.Peeker interface. Unlike Load32() the reached flags
// in the mode register are not cleared.
func (tmrs *Timers) Peek32(address uint32) (uint32, error) {
	return tmrs.peek(address), nil
}

func (tmrs *Timers) store(address uint32, value uint16) {
	tmr, offset := tmrs.decode(address)
	if tmr == nil {
		return
	}
	switch offset {
	case offsetCounter:
		tmr.Counter = value
	case offsetMode:
		// writing the mode register resets the counter
		tmr.Mode = value&modeWritable | ModeIRQNotActive | tmr.Mode&(ModeReachedTarget|ModeReachedMax)
		tmr.Counter = 0
		tmr.fired = false
	case offsetTarget:
		tmr.Target = value
	}
}

// timer registers are 16 bits wide, zero extended to 32 bits. byte accesses
// are treated as accesses to the low half of the register.

// Load8 implements the bus.Device interface.
func (tmrs *Timers) Load8(address uint32) (uint8, error) {
	return uint8(tmrs.load(address)), nil
}

// Load16 implements the bus.Device interface.
func (tmrs *Timers) Load16(address uint32) (uint16, error) {
	return uint16(tmrs.load(address)), nil
}

// Load32 implements the bus.Device interface.
func (tmrs *Timers) Load32(address uint32) (uint32, error) {
	return tmrs.load(address), nil
}

// Store8 implements the bus.Device interface.
func (tmrs *Timers) Store8(address uint32, value uint8) error {
	tmrs.store(address, uint16(value))
	return nil
}

// Store16 implements the bus.Device interface.
func (tmrs *Timers) Store16(address uint32, value uint16) error {
	tmrs.store(address, value)
	return nil
}

// Store32 implements the bus.Device interface.
func (tmrs *Timers) Store32(address uint32, value uint32) error {
	tmrs.store(address, uint16(value))
	return nil
}
