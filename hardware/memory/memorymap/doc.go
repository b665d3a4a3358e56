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

// Package memorymap describes the physical memory map of the PlayStation.
//
// Addresses used by the CPU are virtual. The top three bits select one of four
// segments: KUSEG (0x00000000), KSEG0 (0x80000000, cached), KSEG1
// (0xa0000000, uncached) and KSEG2 (0xc0000000). Without an MMU, KSEG0 and
// KSEG1 are simply windows onto the first 512MB of KUSEG and so the RAM and BIOS
// appear three times in the address space. The Physical() function removes the
// segment so that the three mirrors resolve to the same physical address.
//
// The Extents list gives the origin and memtop of every area. The list is used
// by the memory package to build the bus dispatch table.
package memorymap
