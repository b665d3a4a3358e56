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

// Package memory implements the memory bus of the PlayStation. The Bus type
// resolves the addresses used by the CPU to the devices attached to the bus.
//
// The bus owns the three areas that are plain memory: the RAM, the BIOS ROM and
// the scratchpad. The other areas are served by devices from other packages and
// are attached with the Peripherals type when the bus is created. Areas with no
// device attached are served by a bus.Stub.
//
// Addresses are resolved by stripping the segment (see the memorymap package)
// and looking up the physical address in an interval tree built when the bus
// is created. The device receives the address as used by the CPU and masks it
// to its own size.
//
// Halfword and word accesses must be aligned. A misaligned access is raised as
// an address error exception through the Controller plumbed into the bus with
// Plumb(). The access itself returns zero and has no other effect.
//
// An address that does not resolve to any area is a host-level error and is
// returned as an UnmappedAddress error. This is different to the real hardware,
// which would raise a bus error exception.
//
// Stores to RAM are discarded while the controller reports that the cache is
// isolated. The BIOS uses cache isolation to clear the instruction cache, which
// is not emulated.
package memory
