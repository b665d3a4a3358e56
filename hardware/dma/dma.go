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

package dma

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/logger"
)

// Channel identifies one of the seven DMA channels.
type Channel int

// List of valid Channel values.
const (
	MDECIn Channel = iota
	MDECOut
	GPU
	CDROM
	SPU
	PIO
	OTC
	NumChannels
)

func (ch Channel) String() string {
	switch ch {
	case MDECIn:
		return "MDECin"
	case MDECOut:
		return "MDECout"
	case GPU:
		return "GPU"
	case CDROM:
		return "CDROM"
	case SPU:
		return "SPU"
	case PIO:
		return "PIO"
	case OTC:
		return "OTC"
	}
	return "undefined"
}

// offsets of registers from the start of the DMA area. each channel has
// three registers in a block of 16 bytes
const (
	offsetMADR = 0x0
	offsetBCR  = 0x4
	offsetCHCR = 0x8

	offsetDPCR = 0x70
	offsetDICR = 0x74
)

// value of DPCR on reset
const resetDPCR = 0x07654321

// bits in the CHCR register that start a transfer
const (
	chcrBusy    = 0x01000000
	chcrTrigger = 0x10000000
)

// bits in the DICR register
const (
	dicrWritable    = 0x00ff803f
	dicrForce       = 0x00008000
	dicrMasterMask  = 0x00800000
	dicrEnableShift = 16
	dicrFlagShift   = 24
	dicrFlags       = 0x7f000000
	dicrMasterFlag  = 0x80000000
)

// Interrupter is the part of the interrupt controller used by the DMA
// controller.
type Interrupter interface {
	Request(interrupts.IRQ)
}

// DMA is the DMA controller. Register values are stored and read back but no
// data is transferred. Starting a channel completes the "transfer"
// immediately.
type DMA struct {
	bus.Registers

	perm logger.Permission
	irq  Interrupter
}

// NewDMA is the preferred method of initialisation for the DMA type. The irq
// argument can be nil.
func NewDMA(perm logger.Permission, irq Interrupter) *DMA {
	dma := &DMA{
		Registers: bus.NewRegisters(0x80),
		perm:      perm,
		irq:       irq,
	}
	dma.Reset()
	return dma
}

// Reset all registers to their power on value.
func (dma *DMA) Reset() {
	dma.Registers.Reset()
	dma.SetRegister(offsetDPCR, resetDPCR)
}

func (dma *DMA) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("DPCR=%08x DICR=%08x", dma.Register(offsetDPCR), dma.Register(offsetDICR)))
	for ch := MDECIn; ch < NumChannels; ch++ {
		base := uint32(ch) << 4
		s.WriteString(fmt.Sprintf("\n%-8s MADR=%08x BCR=%08x CHCR=%08x", ch,
			dma.Register(base+offsetMADR),
			dma.Register(base+offsetBCR),
			dma.Register(base+offsetCHCR)))
	}
	return s.String()
}

// Control returns the value of the DPCR register.
func (dma *DMA) Control() uint32 {
	return dma.Register(offsetDPCR)
}

// Interrupt returns the value of the DICR register.
func (dma *DMA) Interrupt() uint32 {
	return dma.Register(offsetDICR)
}

// set master flag from the state of the other DICR bits. an interrupt is
// requested if the master flag has changed from zero to one
func (dma *DMA) updateMaster(prev uint32, dicr uint32) {
	prev &= dicrMasterFlag
	dicr &^= dicrMasterFlag
	enabled := (dicr >> dicrEnableShift) & 0x7f
	flags := (dicr >> dicrFlagShift) & 0x7f
	if dicr&dicrForce != 0 || (dicr&dicrMasterMask != 0 && enabled&flags != 0) {
		dicr |= dicrMasterFlag
	}
	dma.SetRegister(offsetDICR, dicr)

	if prev == 0 && dicr&dicrMasterFlag != 0 && dma.irq != nil {
		dma.irq.Request(interrupts.DMA)
	}
}

// complete the transfer on a channel
func (dma *DMA) complete(ch Channel) {
	base := uint32(ch) << 4
	chcr := dma.Register(base + offsetCHCR)
	logger.Logf(dma.perm, "dma", "%s transfer not performed (MADR=%08x BCR=%08x CHCR=%08x)", ch,
		dma.Register(base+offsetMADR), dma.Register(base+offsetBCR), chcr)
	dma.SetRegister(base+offsetCHCR, chcr&^(chcrBusy|chcrTrigger))

	dicr := dma.Register(offsetDICR)
	if dicr&(1<<(dicrEnableShift+uint32(ch))) != 0 {
		dicr |= 1 << (dicrFlagShift + uint32(ch))
	}
	dma.updateMaster(dma.Register(offsetDICR), dicr)
}

// called after every store to the register that contains address. the mask
// argument indicates which bits of the register were addressed
func (dma *DMA) written(address uint32, prevDICR uint32, mask uint32) {
	offset := address & 0x7c
	switch {
	case offset == offsetDICR:
		v := dma.Register(offsetDICR)
		// flags are acknowledged by writing a one
		flags := prevDICR & dicrFlags &^ (v & dicrFlags & mask)
		dma.updateMaster(prevDICR, v&dicrWritable|flags)
	case offset < offsetDPCR && offset&0xf == offsetCHCR:
		if dma.Register(offset)&(chcrBusy|chcrTrigger) != 0 {
			dma.complete(Channel(offset >> 4))
		}
	}
}

// Store8 implements the bus.Device interface.
func (dma *DMA) Store8(address uint32, value uint8) error {
	prev := dma.Register(offsetDICR)
	_ = dma.Registers.Store8(address, value)
	dma.written(address, prev, 0xff<<((address&3)*8))
	return nil
}

// Store16 implements the bus.Device interface.
func (dma *DMA) Store16(address uint32, value uint16) error {
	prev := dma.Register(offsetDICR)
	_ = dma.Registers.Store16(address, value)
	dma.written(address, prev, 0xffff<<((address&2)*8))
	return nil
}

// Store32 implements the bus.Device interface.
func (dma *DMA) Store32(address uint32, value uint32) error {
	prev := dma.Register(offsetDICR)
	_ = dma.Registers.Store32(address, value)
	dma.written(address, prev, 0xffffffff)
	return nil
}
