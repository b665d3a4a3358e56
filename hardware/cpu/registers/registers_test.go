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

package registers_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/registers"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestRegisterZero(t *testing.T) {
	var f registers.File
	for _, v := range []uint32{0, 1, 0x80000000, 0xffffffff} {
		f.Write(0, v)
		test.ExpectEquality(t, f.Read(0), 0)
	}
}

func TestReadWrite(t *testing.T) {
	var f registers.File
	for i := uint32(1); i < registers.NumRegisters; i++ {
		f.Write(i, i*0x01010101)
	}
	for i := uint32(1); i < registers.NumRegisters; i++ {
		test.ExpectEquality(t, f.Read(i), i*0x01010101)
	}

	f.Reset()
	test.ExpectEquality(t, f.Read(registers.RA), 0)
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, registers.Name(29), "sp")
	test.ExpectEquality(t, registers.Name(registers.RA), "ra")

	var f registers.File
	f.Write(31, 0xbfc00000)
	test.ExpectSuccess(t, strings.Contains(f.String(), "ra=bfc00000"))
}
