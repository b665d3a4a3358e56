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

// Scratchpad is the 1KB of fast memory that on the real hardware is part of
// the data cache.
type Scratchpad struct {
	data []uint8
}

// NewScratchpad is the preferred method of initialisation for the Scratchpad
// type.
func NewScratchpad() *Scratchpad {
	return &Scratchpad{
		data: make([]uint8, memorymap.SizeScratchpad),
	}
}

// Reset sets every byte of the scratchpad to zero.
func (sp *Scratchpad) Reset() {
	clear(sp.data)
}

const scratchpadMask = memorymap.SizeScratchpad - 1

// Load8 implements the bus.Device interface.
func (sp *Scratchpad) Load8(address uint32) (uint8, error) {
	return sp.data[address&scratchpadMask], nil
}

// Load16 implements the bus.Device interface.
func (sp *Scratchpad) Load16(address uint32) (uint16, error) {
	return binary.LittleEndian.Uint16(sp.data[address&scratchpadMask:]), nil
}

// Load32 implements the bus.Device interface.
func (sp *Scratchpad) Load32(address uint32) (uint32, error) {
	return binary.LittleEndian.Uint32(sp.data[address&scratchpadMask:]), nil
}

// Store8 implements the bus.Device interface.
func (sp *Scratchpad) Store8(address uint32, value uint8) error {
	sp.data[address&scratchpadMask] = value
	return nil
}

// Store16 implements the bus.Device interface.
func (sp *Scratchpad) Store16(address uint32, value uint16) error {
	binary.LittleEndian.PutUint16(sp.data[address&scratchpadMask:], value)
	return nil
}

// Store32 implements the bus.Device interface.
func (sp *Scratchpad) Store32(address uint32, value uint32) error {
	binary.LittleEndian.PutUint32(sp.data[address&scratchpadMask:], value)
	return nil
}
