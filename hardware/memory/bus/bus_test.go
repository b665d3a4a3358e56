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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestStub(t *testing.T) {
	var dev bus.Device = bus.Stub{Fill: 0xffffffff}

	v8, err := dev.Load8(0x1f000000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v8, 0xff)

	v16, _ := dev.Load16(0x1f000000)
	test.ExpectEquality(t, v16, 0xffff)

	test.ExpectSuccess(t, dev.Store32(0x1f000000, 0))
	v32, _ := dev.Load32(0x1f000000)
	test.ExpectEquality(t, v32, 0xffffffff)
}

func TestRegisters(t *testing.T) {
	r := bus.NewRegisters(16)
	var dev bus.Device = &r

	test.ExpectSuccess(t, dev.Store32(0x1f801074, 0x12345678))
	v32, _ := dev.Load32(0x1f801074)
	test.ExpectEquality(t, v32, 0x12345678)

	// narrow accesses are little endian
	v16, _ := dev.Load16(0x1f801076)
	test.ExpectEquality(t, v16, 0x1234)
	v8, _ := dev.Load8(0x1f801074)
	test.ExpectEquality(t, v8, 0x78)

	test.ExpectSuccess(t, dev.Store8(0x1f801075, 0xaa))
	test.ExpectEquality(t, r.Register(4), 0x1234aa78)

	r.Reset()
	test.ExpectEquality(t, r.Register(4), 0)
}
