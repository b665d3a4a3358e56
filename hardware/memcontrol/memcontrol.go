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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
)

// names of the registers in the memory control area, in address order.
var memControlNames = []string{
	"EXP1 base",
	"EXP2 base",
	"EXP1 delay",
	"EXP3 delay",
	"BIOS delay",
	"SPU delay",
	"CDROM delay",
	"EXP2 delay",
	"COM delay",
}

// MemControl is the memory control register block. The registers configure
// the base addresses and access timings of the expansion regions and other
// devices. The values are stored and read back but have no effect on the
// memory map.
type MemControl struct {
	bus.Registers
}

// NewMemControl is the preferred method of initialisation for the MemControl
// type.
func NewMemControl() *MemControl {
	return &MemControl{
		Registers: bus.NewRegisters(0x40),
	}
}

func (mc *MemControl) String() string {
	s := strings.Builder{}
	for i, n := range memControlNames {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%-12s %08x", n, mc.Register(uint32(i*4))))
	}
	return s.String()
}

// Register32 is a device with a single 32-bit register. It is used for the RAM
// size and the cache control registers.
type Register32 struct {
	bus.Registers
	name string
}

// NewRAMSize returns the RAM size register.
func NewRAMSize() *Register32 {
	return &Register32{
		Registers: bus.NewRegisters(4),
		name:      "RAM_SIZE",
	}
}

// NewCacheControl returns the cache control register.
func NewCacheControl() *Register32 {
	return &Register32{
		Registers: bus.NewRegisters(4),
		name:      "CACHE_CONTROL",
	}
}

// Value returns the current value of the register.
func (r *Register32) Value() uint32 {
	return r.Register(0)
}

func (r *Register32) String() string {
	return fmt.Sprintf("%s=%08x", r.name, r.Value())
}
