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

package spu

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
)

// the size of the SPU register area
const size = 0x400

// offsets of registers from the start of the SPU area.
const (
	offsetSPUCNT  = 0x1aa
	offsetSPUSTAT = 0x1ae
)

// SPU is the sound processor. Only the registers are implemented. Writes are
// stored and read back, except for SPUSTAT which reflects the mode bits of
// SPUCNT.
type SPU struct {
	bus.Registers
}

// NewSPU is the preferred method of initialisation for the SPU type.
func NewSPU() *SPU {
	return &SPU{
		Registers: bus.NewRegisters(size),
	}
}

func (spu *SPU) String() string {
	return fmt.Sprintf("SPUCNT=%04x SPUSTAT=%04x", spu.Control(), spu.Status())
}

// Control returns the value of the SPUCNT register.
func (spu *SPU) Control() uint16 {
	v, _ := spu.Registers.Load16(offsetSPUCNT)
	return v
}

// Status returns the value of the SPUSTAT register.
func (spu *SPU) Status() uint16 {
	v, _ := spu.Registers.Load16(offsetSPUSTAT)
	return v
}

// SPUSTAT is read only. it is updated after every write
func (spu *SPU) sync() {
	_ = spu.Registers.Store16(offsetSPUSTAT, spu.Control()&0x3f)
}

// Store8 implements the bus.Device interface.
func (spu *SPU) Store8(address uint32, value uint8) error {
	_ = spu.Registers.Store8(address, value)
	spu.sync()
	return nil
}

// Store16 implements the bus.Device interface.
func (spu *SPU) Store16(address uint32, value uint16) error {
	_ = spu.Registers.Store16(address, value)
	spu.sync()
	return nil
}

// Store32 implements the bus.Device interface.
func (spu *SPU) Store32(address uint32, value uint32) error {
	_ = spu.Registers.Store32(address, value)
	spu.sync()
	return nil
}
