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

package memorymap

// Segment is one of the four segments of the MIPS address space.
type Segment int

// List of valid Segment values.
const (
	KUSEG Segment = iota
	KSEG0
	KSEG1
	KSEG2
)

func (s Segment) String() string {
	switch s {
	case KUSEG:
		return "KUSEG"
	case KSEG0:
		return "KSEG0"
	case KSEG1:
		return "KSEG1"
	case KSEG2:
		return "KSEG2"
	}
	return "undefined"
}

// SegmentOf returns the segment the address is in.
func SegmentOf(address uint32) Segment {
	switch address >> 29 {
	case 4:
		return KSEG0
	case 5:
		return KSEG1
	case 6, 7:
		return KSEG2
	}
	return KUSEG
}

// segment masks indexed by the top three bits of an address. KSEG0 and KSEG1
// are windows onto the first 512MB of the physical address space. KUSEG and
// KSEG2 are passed through unchanged.
var segmentMasks = [8]uint32{
	0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	0x7fffffff,
	0x1fffffff,
	0xffffffff, 0xffffffff,
}

// Physical strips the segment from an address. The RAM and BIOS mirrors in
// KUSEG, KSEG0 and KSEG1 all resolve to the same physical address.
func Physical(address uint32) uint32 {
	return address & segmentMasks[address>>29]
}
