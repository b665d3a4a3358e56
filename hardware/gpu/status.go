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

package gpu

import (
	"fmt"
	"strings"
)

// Status is the GPUSTAT register, broken down into its fields. The fields are
// arranged in the order they appear in the register, from bit zero upwards.
type Status struct {
	TexPageX         uint8 // 4 bits. in units of 64 pixels
	TexPageY         uint8 // 1 bit. in units of 256 lines
	SemiTransparency uint8 // 2 bits
	TexPageColors    uint8 // 2 bits
	Dither           bool
	DrawDisplayArea  bool
	SetMaskBit       bool
	DrawPixels       bool
	Interlace        bool
	ReverseFlag      bool
	TexDisable       bool
	HorzRes2         bool
	HorzRes1         uint8 // 2 bits
	VertRes          bool
	VideoMode        bool // false = NTSC; true = PAL
	ColorDepth       bool // false = 15 bits; true = 24 bits
	VertInterlace    bool
	DisplayDisable   bool
	IRQ              bool
	DMARequest       bool
	ReadyCmd         bool
	ReadyVRAM        bool
	ReadyDMA         bool
	DMADirection     uint8 // 2 bits
	OddEven          bool
}

func bit(b bool, shift uint) uint32 {
	if b {
		return 1 << shift
	}
	return 0
}

// Value returns the fields packed into the 32-bit GPUSTAT register.
func (st Status) Value() uint32 {
	return uint32(st.TexPageX&0xf) |
		uint32(st.TexPageY&0x1)<<4 |
		uint32(st.SemiTransparency&0x3)<<5 |
		uint32(st.TexPageColors&0x3)<<7 |
		bit(st.Dither, 9) |
		bit(st.DrawDisplayArea, 10) |
		bit(st.SetMaskBit, 11) |
		bit(st.DrawPixels, 12) |
		bit(st.Interlace, 13) |
		bit(st.ReverseFlag, 14) |
		bit(st.TexDisable, 15) |
		bit(st.HorzRes2, 16) |
		uint32(st.HorzRes1&0x3)<<17 |
		bit(st.VertRes, 19) |
		bit(st.VideoMode, 20) |
		bit(st.ColorDepth, 21) |
		bit(st.VertInterlace, 22) |
		bit(st.DisplayDisable, 23) |
		bit(st.IRQ, 24) |
		bit(st.DMARequest, 25) |
		bit(st.ReadyCmd, 26) |
		bit(st.ReadyVRAM, 27) |
		bit(st.ReadyDMA, 28) |
		uint32(st.DMADirection&0x3)<<29 |
		bit(st.OddEven, 31)
}

// HorizontalResolution returns the width of the display in pixels.
func (st Status) HorizontalResolution() int {
	if st.HorzRes2 {
		return 368
	}
	return [4]int{256, 320, 512, 640}[st.HorzRes1&0x3]
}

// VerticalResolution returns the height of the display in lines.
func (st Status) VerticalResolution() int {
	if st.VertRes && st.VertInterlace {
		return 480
	}
	return 240
}

func (st Status) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("GPUSTAT=%08x %dx%d", st.Value(), st.HorizontalResolution(), st.VerticalResolution()))
	if st.VideoMode {
		s.WriteString(" PAL")
	} else {
		s.WriteString(" NTSC")
	}
	if st.ColorDepth {
		s.WriteString(" 24bit")
	} else {
		s.WriteString(" 15bit")
	}
	if st.DisplayDisable {
		s.WriteString(" disabled")
	}
	if st.IRQ {
		s.WriteString(" irq")
	}
	return s.String()
}
