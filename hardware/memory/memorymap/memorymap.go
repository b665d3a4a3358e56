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

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Expansion1:
		return "Expansion 1"
	case Scratchpad:
		return "Scratchpad"
	case MemControl:
		return "Memory Control"
	case PeripheralIO:
		return "Peripheral I/O"
	case RAMSize:
		return "RAM Size"
	case Interrupts:
		return "Interrupts"
	case DMA:
		return "DMA"
	case Timers:
		return "Timers"
	case CDROM:
		return "CD-ROM"
	case GPU:
		return "GPU"
	case MDEC:
		return "MDEC"
	case SPU:
		return "SPU"
	case Expansion2:
		return "Expansion 2"
	case Expansion3:
		return "Expansion 3"
	case BIOS:
		return "BIOS"
	case CacheControl:
		return "Cache Control"
	}

	return "undefined"
}

// List of valid Area values.
const (
	Undefined Area = iota
	RAM
	Expansion1
	Scratchpad
	MemControl
	PeripheralIO
	RAMSize
	Interrupts
	DMA
	Timers
	CDROM
	GPU
	MDEC
	SPU
	Expansion2
	Expansion3
	BIOS
	CacheControl
)

// The origin and memory top of each area, as physical addresses. The memory top
// is the last address in the area.
const (
	OriginRAM          = uint32(0x00000000)
	MemtopRAM          = uint32(0x001fffff)
	OriginExpansion1   = uint32(0x1f000000)
	MemtopExpansion1   = uint32(0x1f07ffff)
	OriginScratchpad   = uint32(0x1f800000)
	MemtopScratchpad   = uint32(0x1f8003ff)
	OriginMemControl   = uint32(0x1f801000)
	MemtopMemControl   = uint32(0x1f801023)
	OriginPeripheralIO = uint32(0x1f801040)
	MemtopPeripheralIO = uint32(0x1f80105f)
	OriginRAMSize      = uint32(0x1f801060)
	MemtopRAMSize      = uint32(0x1f801063)
	OriginInterrupts   = uint32(0x1f801070)
	MemtopInterrupts   = uint32(0x1f801077)
	OriginDMA          = uint32(0x1f801080)
	MemtopDMA          = uint32(0x1f8010ff)
	OriginTimers       = uint32(0x1f801100)
	MemtopTimers       = uint32(0x1f80112f)
	OriginCDROM        = uint32(0x1f801800)
	MemtopCDROM        = uint32(0x1f801803)
	OriginGPU          = uint32(0x1f801810)
	MemtopGPU          = uint32(0x1f801817)
	OriginMDEC         = uint32(0x1f801820)
	MemtopMDEC         = uint32(0x1f801827)
	OriginSPU          = uint32(0x1f801c00)
	MemtopSPU          = uint32(0x1f801fff)
	OriginExpansion2   = uint32(0x1f802000)
	MemtopExpansion2   = uint32(0x1f803fff)
	OriginExpansion3   = uint32(0x1fa00000)
	MemtopExpansion3   = uint32(0x1fbfffff)
	OriginBIOS         = uint32(0x1fc00000)
	MemtopBIOS         = uint32(0x1fc7ffff)
	OriginCacheControl = uint32(0xfffe0130)
	MemtopCacheControl = uint32(0xfffe0133)
)

// Size of the memory backed areas.
const (
	SizeRAM        = MemtopRAM - OriginRAM + 1
	SizeScratchpad = MemtopScratchpad - OriginScratchpad + 1
	SizeBIOS       = MemtopBIOS - OriginBIOS + 1
)

// ResetVector is the address of the first instruction executed after a reset.
// It is the start of the BIOS as seen through KSEG1.
const ResetVector = uint32(0xbfc00000)

// Exception vectors. The vector used depends on the BEV bit of the status
// register.
const (
	ExceptionVectorRAM = uint32(0x80000080)
	ExceptionVectorROM = uint32(0xbfc00180)
)

// Extent describes the range of physical addresses occupied by an area.
type Extent struct {
	Area   Area
	Origin uint32
	Memtop uint32
}

// Extents lists every area in order of origin.
var Extents = []Extent{
	{RAM, OriginRAM, MemtopRAM},
	{Expansion1, OriginExpansion1, MemtopExpansion1},
	{Scratchpad, OriginScratchpad, MemtopScratchpad},
	{MemControl, OriginMemControl, MemtopMemControl},
	{PeripheralIO, OriginPeripheralIO, MemtopPeripheralIO},
	{RAMSize, OriginRAMSize, MemtopRAMSize},
	{Interrupts, OriginInterrupts, MemtopInterrupts},
	{DMA, OriginDMA, MemtopDMA},
	{Timers, OriginTimers, MemtopTimers},
	{CDROM, OriginCDROM, MemtopCDROM},
	{GPU, OriginGPU, MemtopGPU},
	{MDEC, OriginMDEC, MemtopMDEC},
	{SPU, OriginSPU, MemtopSPU},
	{Expansion2, OriginExpansion2, MemtopExpansion2},
	{Expansion3, OriginExpansion3, MemtopExpansion3},
	{BIOS, OriginBIOS, MemtopBIOS},
	{CacheControl, OriginCacheControl, MemtopCacheControl},
}
