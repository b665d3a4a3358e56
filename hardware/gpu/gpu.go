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

package gpu

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/logger"
)

// addresses of the GPU ports, relative to the start of the GPU area.
const (
	portGP0 = 0x0
	portGP1 = 0x4
)

// DrawState is the drawing environment set by the GP0 0xe1 to 0xe6 commands
// that is not part of the GPUSTAT register.
type DrawState struct {
	RectFlipX bool
	RectFlipY bool

	TexWindowMaskX   uint8
	TexWindowMaskY   uint8
	TexWindowOffsetX uint8
	TexWindowOffsetY uint8

	AreaLeft   uint16
	AreaTop    uint16
	AreaRight  uint16
	AreaBottom uint16

	// 11-bit signed values
	OffsetX uint16
	OffsetY uint16
}

func (d DrawState) String() string {
	return fmt.Sprintf("area=(%d,%d)-(%d,%d) offset=(%d,%d)",
		d.AreaLeft, d.AreaTop, d.AreaRight, d.AreaBottom,
		signExtend11(d.OffsetX), signExtend11(d.OffsetY))
}

func signExtend11(v uint16) int {
	return int(int16(v<<5) >> 5)
}

// DisplayState is the display environment set by the GP1 commands.
type DisplayState struct {
	StartX  uint16
	StartY  uint16
	RangeX1 uint16
	RangeX2 uint16
	RangeY1 uint16
	RangeY2 uint16
}

func (d DisplayState) String() string {
	return fmt.Sprintf("start=(%d,%d) h=%d-%d v=%d-%d",
		d.StartX, d.StartY, d.RangeX1, d.RangeX2, d.RangeY1, d.RangeY2)
}

// Interrupter is the part of the interrupt controller used by the GPU.
type Interrupter interface {
	Request(interrupts.IRQ)
}

// GPU is the graphics processor. Commands are decoded and the state they
// change is kept but nothing is drawn.
type GPU struct {
	perm logger.Permission
	irq  Interrupter

	Status  Status
	Draw    DrawState
	Display DisplayState

	// the GP0 packet being received and the most recently completed packet
	Pending Packet
	Last    Packet

	// number of GP0 packets completed and the number of image data words
	// received
	Packets   int
	DataWords int
}

// NewGPU is the preferred method of initialisation for the GPU type. The irq
// argument can be nil.
func NewGPU(perm logger.Permission, irq Interrupter) *GPU {
	gpu := &GPU{
		perm: perm,
		irq:  irq,
	}
	gpu.Reset()
	return gpu
}

// Reset puts the GPU into the state it would be in after a GP1 0x00 command.
// The interlace field and odd/even line bits are not affected.
func (gpu *GPU) Reset() {
	gpu.Status = Status{
		Interlace:      gpu.Status.Interlace,
		OddEven:        gpu.Status.OddEven,
		ReadyCmd:       true,
		ReadyVRAM:      true,
		ReadyDMA:       true,
		DisplayDisable: true,
	}
	gpu.Draw = DrawState{}
	gpu.Display = DisplayState{
		RangeX1: 0x200,
		RangeX2: 0xc00,
		RangeY1: 0x10,
		RangeY2: 0x100,
	}
	gpu.Pending = Packet{}
}

func (gpu *GPU) String() string {
	return fmt.Sprintf("%s\n%s\n%s", gpu.Status, gpu.Draw, gpu.Display)
}

// Load32 implements the bus.Device interface.
func (gpu *GPU) Load32(address uint32) (uint32, error) {
	switch address & 0x7 {
	case portGP1:
		// the odd/even bit is flipped on every read. the BIOS waits for it
		// to change
		gpu.Status.OddEven = !gpu.Status.OddEven
		return gpu.Status.Value(), nil
	case portGP0:
		// GPUREAD
		return 0, nil
	}
	return 0, nil
}

// Peek32 implements the bus.Peeker interface. The odd/even bit is not flipped.
func (gpu *GPU) Peek32(address uint32) (uint32, error) {
	if address&0x7 == portGP1 {
		return gpu.Status.Value(), nil
	}
	return 0, nil
}

// Store32 implements the bus.Device interface.
func (gpu *GPU) Store32(address uint32, value uint32) error {
	switch address & 0x7 {
	case portGP0:
		gpu.GP0(value)
	case portGP1:
		gpu.GP1(value)
	}
	return nil
}

// the GPU ports only respond to 32-bit accesses.

// Load8 implements the bus.Device interface.
func (gpu *GPU) Load8(address uint32) (uint8, error) {
	return 0, nil
}

// Load16 implements the bus.Device interface.
func (gpu *GPU) Load16(address uint32) (uint16, error) {
	return 0, nil
}

// Store8 implements the bus.Device interface.
func (gpu *GPU) Store8(address uint32, value uint8) error {
	logger.Logf(gpu.perm, "gpu", "ignored 8-bit write to %08x", address)
	return nil
}

// Store16 implements the bus.Device interface.
func (gpu *GPU) Store16(address uint32, value uint16) error {
	logger.Logf(gpu.perm, "gpu", "ignored 16-bit write to %08x", address)
	return nil
}
