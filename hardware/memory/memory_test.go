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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/test"
)

type mockController struct {
	isolated bool
	cause    cop0.Cause
	address  uint32
	raised   int
}

func (c *mockController) RaiseAddressError(cause cop0.Cause, address uint32) {
	c.cause = cause
	c.address = address
	c.raised++
}

func (c *mockController) CacheIsolated() bool {
	return c.isolated
}

func newBus(t *testing.T) (*memory.Bus, *mockController) {
	t.Helper()
	mem, err := memory.NewBus(memory.Peripherals{})
	test.DemandSuccess(t, err)
	ctrl := &mockController{}
	mem.Plumb(ctrl)
	return mem, ctrl
}

func TestRAMMirrors(t *testing.T) {
	mem, _ := newBus(t)

	test.ExpectSuccess(t, mem.Store32(0x00000100, 0xdeadbeef))

	for _, address := range []uint32{0x00000100, 0x80000100, 0xa0000100} {
		v, err := mem.Load32(address)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, 0xdeadbeef, address)
	}

	test.ExpectSuccess(t, mem.Store32(0xa0000200, 0x01020304))
	v, _ := mem.Load32(0x00000200)
	test.ExpectEquality(t, v, 0x01020304)

	// little endian
	b, _ := mem.Load8(0x80000200)
	test.ExpectEquality(t, b, 0x04)
	h, _ := mem.Load16(0x80000202)
	test.ExpectEquality(t, h, 0x0102)
}

func TestMisaligned(t *testing.T) {
	mem, ctrl := newBus(t)

	test.ExpectSuccess(t, mem.Store32(0x00000000, 0xffffffff))

	v, err := mem.Load16(0x00000001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, ctrl.cause, cop0.AddressErrorLoad)
	test.ExpectEquality(t, ctrl.address, 0x00000001)

	w, err := mem.Load32(0x00000002)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, ctrl.raised, 2)

	test.ExpectSuccess(t, mem.Store32(0x00000006, 0))
	test.ExpectEquality(t, ctrl.cause, cop0.AddressErrorStore)
	test.ExpectEquality(t, ctrl.address, 0x00000006)

	test.ExpectSuccess(t, mem.Store16(0x00000003, 0))
	test.ExpectEquality(t, ctrl.raised, 4)

	// nothing was written by the misaligned stores
	w, _ = mem.Load32(0x00000000)
	test.ExpectEquality(t, w, 0xffffffff)
	w, _ = mem.Load32(0x00000004)
	test.ExpectEquality(t, w, 0)

	// byte accesses are never misaligned
	_, err = mem.Load8(0x00000003)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ctrl.raised, 4)
}

func TestCacheIsolation(t *testing.T) {
	mem, ctrl := newBus(t)

	test.ExpectSuccess(t, mem.Store32(0x80001000, 0x11111111))
	ctrl.isolated = true
	test.ExpectSuccess(t, mem.Store32(0x80001000, 0x22222222))
	test.ExpectSuccess(t, mem.Store8(0x80001000, 0x33))

	v, err := mem.Load32(0x80001000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x11111111)

	// isolation only applies to RAM
	test.ExpectSuccess(t, mem.Store32(0x1f800000, 0x44444444))
	v, _ = mem.Load32(0x1f800000)
	test.ExpectEquality(t, v, 0x44444444)

	ctrl.isolated = false
	test.ExpectSuccess(t, mem.Store32(0x80001000, 0x22222222))
	v, _ = mem.Load32(0x80001000)
	test.ExpectEquality(t, v, 0x22222222)
}

func TestUnmapped(t *testing.T) {
	mem, _ := newBus(t)

	for _, address := range []uint32{0x00200000, 0x1f900000, 0xc0000000, 0x1f801024} {
		_, err := mem.Load32(address)
		test.ExpectFailure(t, err, address)
		test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress), address)
	}

	err := mem.Store8(0x1fd00000, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))
}

func TestScratchpad(t *testing.T) {
	mem, _ := newBus(t)

	test.ExpectSuccess(t, mem.Store32(0x1f800010, 0xcafef00d))
	v, err := mem.Load32(0x9f800010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xcafef00d)

	// not visible through KSEG1
	_, err = mem.Load32(0xbf800010)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))
}

func TestBIOS(t *testing.T) {
	mem, _ := newBus(t)

	image := make([]uint8, memorymap.SizeBIOS)
	image[0] = 0x13
	image[1] = 0x00
	image[2] = 0x08
	image[3] = 0x3c
	image[len(image)-1] = 0xaa
	test.DemandSuccess(t, mem.BIOS.Load(image))

	for _, address := range []uint32{0x1fc00000, 0x9fc00000, memorymap.ResetVector} {
		v, err := mem.Load32(address)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, 0x3c080013, address)
	}

	b, _ := mem.Load8(0xbfc7ffff)
	test.ExpectEquality(t, b, 0xaa)

	// stores to the bios are ignored
	test.ExpectSuccess(t, mem.Store32(memorymap.ResetVector, 0))
	v, _ := mem.Load32(memorymap.ResetVector)
	test.ExpectEquality(t, v, 0x3c080013)

	// wrong size image
	test.ExpectFailure(t, mem.BIOS.Load(image[:1024]))
}

func TestExpansion1(t *testing.T) {
	mem, _ := newBus(t)
	v, err := mem.Load8(0x1f000084)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)
}

func TestPeekPoke(t *testing.T) {
	mem, ctrl := newBus(t)

	ctrl.isolated = true
	test.ExpectSuccess(t, mem.Poke(0x80000010, 0x42))
	v, err := mem.Peek(0x00000010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)

	test.ExpectSuccess(t, mem.Poke(memorymap.ResetVector+1, 0x99))
	v, _ = mem.Peek(0x1fc00001)
	test.ExpectEquality(t, v, 0x99)

	_, err = mem.Peek(0x1f900000)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))
}

func TestAreas(t *testing.T) {
	mem, _ := newBus(t)
	areas := mem.Areas()
	test.ExpectEquality(t, len(areas), len(memorymap.Extents))
	test.ExpectEquality(t, areas[0].Area, memorymap.RAM)
	test.ExpectEquality(t, areas[1].Device, "stub")

	a, err := mem.AreaOf(0xbf801814)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, memorymap.GPU)

	// the last word of one area and the first word of the next
	a, _ = mem.AreaOf(0x1f8010fc)
	test.ExpectEquality(t, a, memorymap.DMA)
	a, _ = mem.AreaOf(0x1f801100)
	test.ExpectEquality(t, a, memorymap.Timers)
}

func TestReset(t *testing.T) {
	mem, _ := newBus(t)
	test.ExpectSuccess(t, mem.Store32(0x100, 1))
	test.ExpectSuccess(t, mem.Store32(0x1f800000, 1))
	mem.Reset()
	v, _ := mem.Load32(0x100)
	test.ExpectEquality(t, v, 0)
	v, _ = mem.Load32(0x1f800000)
	test.ExpectEquality(t, v, 0)
}

// sideEffects is a device where every load is counted.
type sideEffects struct {
	bus.Stub
	loads int
}

func (d *sideEffects) Load8(address uint32) (uint8, error) {
	d.loads++
	return d.Stub.Load8(address)
}

func (d *sideEffects) Load16(address uint32) (uint16, error) {
	d.loads++
	return d.Stub.Load16(address)
}

func (d *sideEffects) Load32(address uint32) (uint32, error) {
	d.loads++
	return d.Stub.Load32(address)
}

func (d *sideEffects) Peek32(address uint32) (uint32, error) {
	return d.Fill, nil
}

func TestPeekSideEffects(t *testing.T) {
	dev := &sideEffects{Stub: bus.Stub{Fill: 0x44332211}}
	mem, err := memory.NewBus(memory.Peripherals{Timers: dev})
	test.DemandSuccess(t, err)

	for i := range uint32(4) {
		v, err := mem.Peek(0x1f801100 + i)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(0x11*(i+1)))
	}

	w, err := mem.Peek32(0x1f801102)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x44332211))
	test.ExpectEquality(t, dev.loads, 0)

	w, err = mem.Load32(0x1f801100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x44332211))
	test.ExpectEquality(t, dev.loads, 1)

	// devices without side-effects are peeked with an ordinary load
	test.ExpectSuccess(t, mem.Store32(0x80000020, 0xa1b2c3d4))
	v, err := mem.Peek(0x00000022)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xb2))

	_, err = mem.Peek32(0x1f900000)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))
}
