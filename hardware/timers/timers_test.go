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

package timers_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/timers"
	"github.com/jetsetilly/gopherpsx/test"
)

const origin = 0x1f801100

type requests []interrupts.IRQ

func (r *requests) Request(irq interrupts.IRQ) {
	*r = append(*r, irq)
}

func TestRegisters(t *testing.T) {
	tmrs := timers.NewTimers(nil)

	test.ExpectSuccess(t, tmrs.Store32(origin+0x18, 0x1234))
	v, err := tmrs.Load32(origin + 0x18)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x1234))
	test.ExpectEquality(t, tmrs.Timer[1].Target, uint16(0x1234))

	// writing the mode register resets the counter
	test.ExpectSuccess(t, tmrs.Store16(origin+0x24, 0x0000))
	tmrs.Tick()
	tmrs.Tick()
	test.ExpectEquality(t, tmrs.Timer[2].Counter, uint16(2))
	test.ExpectSuccess(t, tmrs.Store16(origin+0x24, 0x0000))
	test.ExpectEquality(t, tmrs.Timer[2].Counter, uint16(0))
	test.ExpectEquality(t, tmrs.Timer[2].Mode, uint16(timers.ModeIRQNotActive))

	// there is no fourth timer
	test.ExpectSuccess(t, tmrs.Store32(origin+0x30, 0xffff))
	v, _ = tmrs.Load32(origin + 0x30)
	test.ExpectEquality(t, v, uint32(0))
}

func TestTarget(t *testing.T) {
	var irq requests
	tmrs := timers.NewTimers(&irq)

	test.ExpectSuccess(t, tmrs.Store16(origin+0x08, 3))
	test.ExpectSuccess(t, tmrs.Store16(origin+0x04, timers.ModeResetOnTarget|timers.ModeIRQOnTarget))

	tmrs.Tick()
	tmrs.Tick()
	test.ExpectEquality(t, len(irq), 0)
	tmrs.Tick()
	test.ExpectEquality(t, tmrs.Timer[0].Counter, uint16(0))
	test.DemandEquality(t, len(irq), 1)
	test.ExpectEquality(t, irq[0], interrupts.Timer0)

	// reached flag is cleared by reading the mode register
	v, _ := tmrs.Load16(origin + 0x04)
	test.ExpectEquality(t, v&timers.ModeReachedTarget, uint16(timers.ModeReachedTarget))
	v, _ = tmrs.Load16(origin + 0x04)
	test.ExpectEquality(t, v&timers.ModeReachedTarget, uint16(0))

	// one-shot mode. no more interrupts
	for range 6 {
		tmrs.Tick()
	}
	test.ExpectEquality(t, len(irq), 1)
}

func TestRepeat(t *testing.T) {
	var irq requests
	tmrs := timers.NewTimers(&irq)

	test.ExpectSuccess(t, tmrs.Store16(origin+0x18, 2))
	test.ExpectSuccess(t, tmrs.Store16(origin+0x14, timers.ModeResetOnTarget|timers.ModeIRQOnTarget|timers.ModeIRQRepeat))

	for range 6 {
		tmrs.Tick()
	}
	test.ExpectEquality(t, len(irq), 3)
	for _, i := range irq {
		test.ExpectEquality(t, i, interrupts.Timer1)
	}
}

func TestPeek(t *testing.T) {
	tmrs := timers.NewTimers(nil)
	tmrs.Timer[0].Mode |= timers.ModeReachedTarget

	var _ bus.Peeker = tmrs

	// peeking the mode register leaves the reached flags alone
	v, err := tmrs.Peek32(origin + 0x04)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(timers.ModeIRQNotActive|timers.ModeReachedTarget))
	test.ExpectEquality(t, tmrs.Timer[0].Mode, uint16(timers.ModeIRQNotActive|timers.ModeReachedTarget))

	// loading it clears them
	v, err = tmrs.Load32(origin + 0x04)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(timers.ModeIRQNotActive|timers.ModeReachedTarget))
	test.ExpectEquality(t, tmrs.Timer[0].Mode, uint16(timers.ModeIRQNotActive))

	v, _ = tmrs.Peek32(origin + 0x30)
	test.ExpectEquality(t, v, uint32(0))
}
