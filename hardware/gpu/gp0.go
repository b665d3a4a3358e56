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
	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/logger"
)

// polyline packets are terminated by a word that matches this pattern
const (
	polylineTermMask = 0xf000f000
	polylineTerm     = 0x50005000
)

// the number of words in a GP0 packet, including the command word. the
// number is zero if the command is unknown. polyline and image load packets
// are variable length and the number returned is the length of the fixed
// part of the packet
func packetLength(op uint8) int {
	switch {
	case op == 0x00 || op == 0x01:
		return 1
	case op == 0x02:
		return 3
	case op == 0x1f:
		return 1
	case op >= 0x20 && op <= 0x3f:
		verts := 3
		if op&0x08 == 0x08 {
			verts = 4
		}
		textured := 0
		if op&0x04 == 0x04 {
			textured = 1
		}
		n := 1 + verts*(1+textured)
		if op&0x10 == 0x10 {
			n += verts - 1
		}
		return n
	case op >= 0x40 && op <= 0x5f:
		n := 3
		if op&0x10 == 0x10 {
			n++
		}
		return n
	case op >= 0x60 && op <= 0x7f:
		n := 2
		if op&0x04 == 0x04 {
			n++
		}
		if op&0x18 == 0 {
			n++
		}
		return n
	case op >= 0x80 && op <= 0x9f:
		return 4
	case op >= 0xa0 && op <= 0xbf:
		return 3
	case op >= 0xc0 && op <= 0xdf:
		return 3
	case op >= 0xe1 && op <= 0xe6:
		return 1
	}
	return 0
}

func isPolyline(op uint8) bool {
	return op >= 0x40 && op <= 0x5f && op&0x08 == 0x08
}

func isImageLoad(op uint8) bool {
	return op >= 0xa0 && op <= 0xbf
}

// Packet is a GP0 command and its parameters.
type Packet struct {
	Words []uint32

	// number of words still expected for the packet
	remaining int

	// for image loads, the number of data words still expected once the
	// fixed part of the packet has been received
	data int
}

// Opcode returns the command byte of the packet.
func (p Packet) Opcode() uint8 {
	if len(p.Words) == 0 {
		return 0
	}
	return uint8(p.Words[0] >> 24)
}

// Complete returns true if the packet is not waiting for any more words.
func (p Packet) Complete() bool {
	return len(p.Words) > 0 && p.remaining == 0 && p.data == 0
}

// GP0 handles a word written to the GP0 port.
func (gpu *GPU) GP0(word uint32) {
	if gpu.Pending.remaining == 0 && gpu.Pending.data == 0 {
		gpu.startPacket(word)
	} else {
		gpu.continuePacket(word)
	}

	if gpu.Pending.Complete() {
		gpu.execute(gpu.Pending)
		gpu.Last = gpu.Pending
		gpu.Pending = Packet{}
	}
}

func (gpu *GPU) startPacket(word uint32) {
	op := uint8(word >> 24)
	n := packetLength(op)
	if n == 0 {
		logger.Logf(gpu.perm, "gpu", "GP0: unknown command %08x", word)
		return
	}
	gpu.Pending = Packet{
		Words:     append(make([]uint32, 0, n), word),
		remaining: n - 1,
	}
}

func (gpu *GPU) continuePacket(word uint32) {
	p := &gpu.Pending
	op := p.Opcode()

	if p.remaining > 0 {
		p.Words = append(p.Words, word)
		p.remaining--

		// the terminator of a polyline can replace any word after the first
		// two vertices
		if isPolyline(op) && len(p.Words) > packetLength(op) && word&polylineTermMask == polylineTerm {
			p.remaining = 0
			return
		}

		if p.remaining == 0 {
			switch {
			case isImageLoad(op):
				size := p.Words[2]
				p.data = int(((size&0xffff)*(size>>16) + 1) / 2)
			case isPolyline(op):
				p.remaining = 1
			}
		}
		return
	}

	// image data is counted but not kept
	p.data--
	gpu.DataWords++
}

func (gpu *GPU) execute(p Packet) {
	op := p.Opcode()
	cmd := p.Words[0]

	switch {
	case op == 0x1f:
		gpu.Status.IRQ = true
		if gpu.irq != nil {
			gpu.irq.Request(interrupts.GPU)
		}
	case op == 0xe1:
		gpu.Status.TexPageX = uint8(cmd & 0xf)
		gpu.Status.TexPageY = uint8((cmd >> 4) & 0x1)
		gpu.Status.SemiTransparency = uint8((cmd >> 5) & 0x3)
		gpu.Status.TexPageColors = uint8((cmd >> 7) & 0x3)
		gpu.Status.Dither = (cmd>>9)&0x1 == 0x1
		gpu.Status.DrawDisplayArea = (cmd>>10)&0x1 == 0x1
		gpu.Status.TexDisable = (cmd>>11)&0x1 == 0x1
		gpu.Draw.RectFlipX = (cmd>>12)&0x1 == 0x1
		gpu.Draw.RectFlipY = (cmd>>13)&0x1 == 0x1
	case op == 0xe2:
		gpu.Draw.TexWindowMaskX = uint8(cmd & 0x1f)
		gpu.Draw.TexWindowMaskY = uint8((cmd >> 5) & 0x1f)
		gpu.Draw.TexWindowOffsetX = uint8((cmd >> 10) & 0x1f)
		gpu.Draw.TexWindowOffsetY = uint8((cmd >> 15) & 0x1f)
	case op == 0xe3:
		gpu.Draw.AreaLeft = uint16(cmd & 0x3ff)
		gpu.Draw.AreaTop = uint16((cmd >> 10) & 0x3ff)
	case op == 0xe4:
		gpu.Draw.AreaRight = uint16(cmd & 0x3ff)
		gpu.Draw.AreaBottom = uint16((cmd >> 10) & 0x3ff)
	case op == 0xe5:
		gpu.Draw.OffsetX = uint16(cmd & 0x7ff)
		gpu.Draw.OffsetY = uint16((cmd >> 11) & 0x7ff)
	case op == 0xe6:
		gpu.Status.SetMaskBit = cmd&0x1 == 0x1
		gpu.Status.DrawPixels = (cmd>>1)&0x1 == 0x1
	}

	gpu.Packets++
}
