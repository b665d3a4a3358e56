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

package interrupts

import (
	"fmt"
	"strings"
)

// IRQ identifies an interrupt source. The value is the bit in the I_STAT and
// I_MASK registers.
type IRQ int

// List of valid IRQ values.
const (
	VBlank IRQ = iota
	GPU
	CDROM
	DMA
	Timer0
	Timer1
	Timer2
	Pad
	SIO
	SPU
	Lightpen
)

func (irq IRQ) String() string {
	switch irq {
	case VBlank:
		return "VBLANK"
	case GPU:
		return "GPU"
	case CDROM:
		return "CDROM"
	case DMA:
		return "DMA"
	case Timer0:
		return "TMR0"
	case Timer1:
		return "TMR1"
	case Timer2:
		return "TMR2"
	case Pad:
		return "PAD"
	case SIO:
		return "SIO"
	case SPU:
		return "SPU"
	case Lightpen:
		return "LIGHTPEN"
	}
	return "undefined"
}

// only the low eleven bits of I_STAT and I_MASK are used
const irqMask = 0x07ff

// offsets of the registers from the start of the interrupt control area.
const (
	offsetStat = 0x0
	offsetMask = 0x4
)

// Controller is the interrupt controller.
type Controller struct {
	// I_STAT. a bit is set when the interrupt is requested. the CPU
	// acknowledges the interrupt by writing a zero to the bit
	Stat uint32

	// I_MASK. an interrupt is only passed to the CPU if the corresponding
	// bit in the mask is set
	Mask uint32
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

// Reset clears all requests and the mask.
func (ic *Controller) Reset() {
	ic.Stat = 0
	ic.Mask = 0
}

func (ic *Controller) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("I_STAT=%04x I_MASK=%04x", ic.Stat, ic.Mask))
	for irq := VBlank; irq <= Lightpen; irq++ {
		if ic.Stat&(1<<irq) != 0 {
			s.WriteString(" ")
			s.WriteString(irq.String())
		}
	}
	return s.String()
}

// Request an interrupt.
func (ic *Controller) Request(irq IRQ) {
	ic.Stat |= 1 << irq
}

// Pending returns true if a requested interrupt is not masked.
func (ic *Controller) Pending() bool {
	return ic.Stat&ic.Mask != 0
}

func (ic *Controller) load(address uint32) uint32 {
	switch address & 0x7 &^ 0x3 {
	case offsetStat:
		return ic.Stat
	case offsetMask:
		return ic.Mask
	}
	return 0
}

func (ic *Controller) store(address uint32, value uint32) {
	switch address & 0x7 &^ 0x3 {
	case offsetStat:
		// writing a zero acknowledges the interrupt. writing a one has no
		// effect
		ic.Stat &= value & irqMask
	case offsetMask:
		ic.Mask = value & irqMask
	}
}

// the registers are 32 bits but only the low half is used. narrow accesses
// work on the part of the register that is addressed.

// Load8 implements the bus.Device interface.
func (ic *Controller) Load8(address uint32) (uint8, error) {
	return uint8(ic.load(address) >> ((address & 3) * 8)), nil
}

// Load16 implements the bus.Device interface.
func (ic *Controller) Load16(address uint32) (uint16, error) {
	return uint16(ic.load(address) >> ((address & 2) * 8)), nil
}

// Load32 implements the bus.Device interface.
func (ic *Controller) Load32(address uint32) (uint32, error) {
	return ic.load(address), nil
}

// narrow stores leave the unaddressed bits of the register unchanged. for
// I_STAT that means the unaddressed bits are written as ones.
func (ic *Controller) storeNarrow(address uint32, value uint32, mask uint32) {
	shift := (address & 3) * 8
	mask <<= shift
	value <<= shift
	switch address & 0x7 &^ 0x3 {
	case offsetStat:
		ic.store(address, value&mask|^mask)
	case offsetMask:
		ic.store(address, value&mask|ic.Mask&^mask)
	}
}

// Store8 implements the bus.Device interface.
func (ic *Controller) Store8(address uint32, value uint8) error {
	ic.storeNarrow(address, uint32(value), 0xff)
	return nil
}

// Store16 implements the bus.Device interface.
func (ic *Controller) Store16(address uint32, value uint16) error {
	ic.storeNarrow(address&^1, uint32(value), 0xffff)
	return nil
}

// Store32 implements the bus.Device interface.
func (ic *Controller) Store32(address uint32, value uint32) error {
	ic.store(address, value)
	return nil
}
