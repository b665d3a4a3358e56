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

// Device is implemented by everything the CPU can address through the memory
// bus. The address passed to a device is the address used by the CPU. The
// device is responsible for masking it to its local size.
//
// Errors returned by a Device are host-level errors. Faults the guest program
// should see are raised as exceptions by the memory bus.
type Device interface {
	Load8(address uint32) (uint8, error)
	Load16(address uint32) (uint16, error)
	Load32(address uint32) (uint32, error)
	Store8(address uint32, value uint8) error
	Store16(address uint32, value uint16) error
	Store32(address uint32, value uint32) error
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. Peek and Poke never raise guest exceptions
// and ignore the isolate cache bit.
type DebuggerBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}

// Peeker is implemented by devices where a load has side-effects. Peek32
// returns the word containing the address as Load32() would, but without the
// side-effects. Devices that do not implement Peeker are read with Load32().
type Peeker interface {
	Peek32(address uint32) (uint32, error)
}

// Stub satisfies the Device interface for areas that have no emulation. Loads
// return the Fill value, truncated to the width of the access, and stores are
// ignored.
type Stub struct {
	Fill uint32
}

// Load8 implements the Device interface.
func (s Stub) Load8(_ uint32) (uint8, error) {
	return uint8(s.Fill), nil
}

// Load16 implements the Device interface.
func (s Stub) Load16(_ uint32) (uint16, error) {
	return uint16(s.Fill), nil
}

// Load32 implements the Device interface.
func (s Stub) Load32(_ uint32) (uint32, error) {
	return s.Fill, nil
}

// Store8 implements the Device interface.
func (s Stub) Store8(_ uint32, _ uint8) error {
	return nil
}

// Store16 implements the Device interface.
func (s Stub) Store16(_ uint32, _ uint16) error {
	return nil
}

// Store32 implements the Device interface.
func (s Stub) Store32(_ uint32, _ uint32) error {
	return nil
}
