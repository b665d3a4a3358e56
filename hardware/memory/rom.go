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
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/logger"
)

// ROM is the 512KB BIOS.
type ROM struct {
	data []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The
// content of the ROM is zero until Load() is called.
func NewROM() *ROM {
	return &ROM{
		data: make([]uint8, memorymap.SizeBIOS),
	}
}

const romMask = memorymap.SizeBIOS - 1

// Load the BIOS image into the ROM. The image must be exactly the size of the
// ROM.
func (rom *ROM) Load(data []uint8) error {
	if len(data) != len(rom.data) {
		return fmt.Errorf("memory: bios image is %d bytes, should be %d", len(data), len(rom.data))
	}
	copy(rom.data, data)
	return nil
}

// Patch changes a byte of the ROM. Used by the debugger.
func (rom *ROM) Patch(address uint32, value uint8) {
	rom.data[address&romMask] = value
}

// Load8 implements the bus.Device interface.
func (rom *ROM) Load8(address uint32) (uint8, error) {
	return rom.data[address&romMask], nil
}

// Load16 implements the bus.Device interface.
func (rom *ROM) Load16(address uint32) (uint16, error) {
	return binary.LittleEndian.Uint16(rom.data[address&romMask:]), nil
}

// Load32 implements the bus.Device interface.
func (rom *ROM) Load32(address uint32) (uint32, error) {
	return binary.LittleEndian.Uint32(rom.data[address&romMask:]), nil
}

// writes to the ROM have no effect
func (rom *ROM) ignored(address uint32, value uint32) error {
	logger.Logf(logger.Allow, "memory", "write to bios ignored: %#08x = %#x", address, value)
	return nil
}

// Store8 implements the bus.Device interface.
func (rom *ROM) Store8(address uint32, value uint8) error {
	return rom.ignored(address, uint32(value))
}

// Store16 implements the bus.Device interface.
func (rom *ROM) Store16(address uint32, value uint16) error {
	return rom.ignored(address, uint32(value))
}

// Store32 implements the bus.Device interface.
func (rom *ROM) Store32(address uint32, value uint32) error {
	return rom.ignored(address, value)
}
