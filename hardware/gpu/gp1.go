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

import "github.com/jetsetilly/gopherpsx/logger"

// GP1 handles a word written to the GP1 port.
func (gpu *GPU) GP1(word uint32) {
	switch word >> 24 {
	case 0x00:
		gpu.Reset()
	case 0x01:
		gpu.Pending = Packet{}
	case 0x02:
		gpu.Status.IRQ = false
	case 0x03:
		gpu.Status.DisplayDisable = word&0x1 == 0x1
	case 0x04:
		gpu.Status.DMADirection = uint8(word & 0x3)
	case 0x05:
		gpu.Display.StartX = uint16(word & 0x3ff)
		gpu.Display.StartY = uint16((word >> 10) & 0x3ff)
	case 0x06:
		gpu.Display.RangeX1 = uint16(word & 0xfff)
		gpu.Display.RangeX2 = uint16((word >> 12) & 0xfff)
	case 0x07:
		gpu.Display.RangeY1 = uint16(word & 0xfff)
		gpu.Display.RangeY2 = uint16((word >> 12) & 0xfff)
	case 0x08:
		gpu.Status.HorzRes1 = uint8(word & 0x3)
		gpu.Status.VertRes = (word>>2)&0x1 == 0x1
		gpu.Status.VideoMode = (word>>3)&0x1 == 0x1
		gpu.Status.ColorDepth = (word>>4)&0x1 == 0x1
		gpu.Status.VertInterlace = (word>>5)&0x1 == 0x1
		gpu.Status.HorzRes2 = (word>>6)&0x1 == 0x1
		gpu.Status.ReverseFlag = (word>>7)&0x1 == 0x1
	default:
		logger.Logf(gpu.perm, "gpu", "GP1: unknown command %08x", word)
	}
}
