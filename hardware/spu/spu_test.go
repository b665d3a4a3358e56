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

package spu_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/spu"
	"github.com/jetsetilly/gopherpsx/test"
)

const origin = 0x1f801c00

func TestStatus(t *testing.T) {
	s := spu.NewSPU()

	// main volume
	test.ExpectSuccess(t, s.Store16(origin+0x180, 0x3fff))
	v, err := s.Load16(origin + 0x180)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x3fff))

	// SPUSTAT follows the low bits of SPUCNT
	test.ExpectSuccess(t, s.Store16(origin+0x1aa, 0xc0ff))
	test.ExpectEquality(t, s.Control(), uint16(0xc0ff))
	v, _ = s.Load16(origin + 0x1ae)
	test.ExpectEquality(t, v, uint16(0x003f))

	// SPUSTAT can not be written
	test.ExpectSuccess(t, s.Store16(origin+0x1ae, 0xffff))
	test.ExpectEquality(t, s.Status(), uint16(0x003f))

	test.ExpectEquality(t, s.String(), "SPUCNT=c0ff SPUSTAT=003f")

	s.Reset()
	test.ExpectEquality(t, s.Control(), uint16(0))
}
