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

package memory

import (
	"encoding/binary"

	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
)

// RAM is the 2MB of main memory.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		data: make([]uint8, memorymap.SizeRAM),
	}
}

// Reset sets every byte of RAM to zero.
func (ram *RAM) Reset() {
	clear(ram.data)
}

// the mask is applied to the CPU address, which may be in any of the three
// mirrors of the RAM
const ramMask = memorymap.SizeRAM - 1

// Load8 implements the bus.Device interface.
func (ram *RAM) Load8(address uint32) (uint8, error) {
	return ram.data[address&ramMask], nil
}

// Load16 implements the bus.Device interface.
func (ram *RAM) Load16(address uint32) (uint16, error) {
	return binary.LittleEndian.Uint16(ram.data[address&ramMask:]), nil
}

// Load32 implements the bus.Device interface.
func (ram *RAM) Load32(address uint32) (uint32, error) {
	return binary.LittleEndian.Uint32(ram.data[address&ramMask:]), nil
}

// Store8 implements the bus.Device interface.
func (ram *RAM) Store8(address uint32, value uint8) error {
	ram.data[address&ramMask] = value
	return nil
}

// Store16 implements the bus.Device interface.
func (ram *RAM) Store16(address uint32, value uint16) error {
	binary.LittleEndian.PutUint16(ram.data[address&ramMask:], value)
	return nil
}

// Store32 implements the bus.Device interface.
func (ram *RAM) Store32(address uint32, value uint32) error {
	binary.LittleEndian.PutUint32(ram.data[address&ramMask:], value)
	return nil
}
