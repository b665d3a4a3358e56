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

package bus

import "encoding/binary"

// Registers is a helper for devices that are a small block of 32-bit
// registers which read back what was written. The address of an access is
// masked to the size of the block. Narrow accesses read and write the
// appropriate part of the register.
//
// Devices that need side-effects on register access can embed Registers and
// override the functions they need.
type Registers struct {
	data []uint8
	mask uint32
}

// NewRegisters creates a block of registers of size bytes. The size must be a
// power of two.
func NewRegisters(size uint32) Registers {
	return Registers{
		data: make([]uint8, size),
		mask: size - 1,
	}
}

// Reset sets all registers to zero.
func (r *Registers) Reset() {
	clear(r.data)
}

// Load8 implements the Device interface.
func (r *Registers) Load8(address uint32) (uint8, error) {
	return r.data[address&r.mask], nil
}

// Load16 implements the Device interface.
func (r *Registers) Load16(address uint32) (uint16, error) {
	return binary.LittleEndian.Uint16(r.data[address&r.mask&^1:]), nil
}

// Load32 implements the Device interface.
func (r *Registers) Load32(address uint32) (uint32, error) {
	return binary.LittleEndian.Uint32(r.data[address&r.mask&^3:]), nil
}

// Store8 implements the Device interface.
func (r *Registers) Store8(address uint32, value uint8) error {
	r.data[address&r.mask] = value
	return nil
}

// Store16 implements the Device interface.
func (r *Registers) Store16(address uint32, value uint16) error {
	binary.LittleEndian.PutUint16(r.data[address&r.mask&^1:], value)
	return nil
}

// Store32 implements the Device interface.
func (r *Registers) Store32(address uint32, value uint32) error {
	binary.LittleEndian.PutUint32(r.data[address&r.mask&^3:], value)
	return nil
}

// Register returns the 32-bit register at offset.
func (r *Registers) Register(offset uint32) uint32 {
	return binary.LittleEndian.Uint32(r.data[offset&r.mask&^3:])
}

// SetRegister sets the 32-bit register at offset.
func (r *Registers) SetRegister(offset uint32, value uint32) {
	binary.LittleEndian.PutUint32(r.data[offset&r.mask&^3:], value)
}
