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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/commandline"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestTokeniser(t *testing.T) {
	tk := commandline.TokeniseInput("  peek   $bfc00000 16  ")
	test.ExpectEquality(t, tk.String(), "peek   $bfc00000 16")
	test.ExpectEquality(t, tk.Remaining(), 3)

	cmd, ok := tk.Get()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, cmd, "PEEK")

	s, ok := tk.Peek()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "0xbfc00000")

	addr, err := tk.GetNumber()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint32(0xbfc00000))

	n, err := tk.GetOptionalNumber(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint32(16))

	test.ExpectEquality(t, tk.IsEnd(), true)
	test.ExpectSuccess(t, tk.Done())

	n, err = tk.GetOptionalNumber(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint32(1))

	_, err = tk.GetNumber()
	test.ExpectEquality(t, curated.Is(err, commandline.MissingToken), true)

	tk.Unget()
	tk.Unget()
	test.ExpectEquality(t, tk.Remainder(), "0xbfc00000 16")

	tk.Reset()
	test.ExpectEquality(t, tk.Remaining(), 3)
}

func TestTokeniserErrors(t *testing.T) {
	tk := commandline.TokeniseInput("poke foo")
	_, _ = tk.Get()
	_, err := tk.GetNumber()
	test.ExpectEquality(t, curated.Is(err, commandline.NotANumber), true)

	tk = commandline.TokeniseInput("clear 1 2")
	_, _ = tk.Get()
	err = tk.Done()
	test.ExpectEquality(t, curated.Is(err, commandline.TooManyTokens), true)

	tk = commandline.TokeniseInput("")
	test.ExpectEquality(t, tk.IsEnd(), true)
	_, ok := tk.Get()
	test.ExpectEquality(t, ok, false)
}
