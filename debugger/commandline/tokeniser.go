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

package commandline

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
)

// Sentinal error patterns.
const (
	NotANumber    = "commandline: not a number (%s)"
	MissingToken  = "commandline: missing argument"
	TooManyTokens = "commandline: too many arguments (%s)"
)

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// IsEnd returns true if we're at the end of the token list.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the remaining tokens as a string.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of reminaing tokens in the token list.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list, and a success boolean. If the end
// of the token list has been reached, the function returns false.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list without advancing.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// GetNumber returns the next token as a 32-bit number. Hex numbers have
// already been normalised to the 0x prefix by TokeniseInput().
func (tk *Tokens) GetNumber() (uint32, error) {
	s, ok := tk.Get()
	if !ok {
		return 0, curated.Errorf(MissingToken)
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf(NotANumber, s)
	}
	return uint32(v), nil
}

// GetOptionalNumber is the same as GetNumber() except that the default value
// is returned if there are no more tokens.
func (tk *Tokens) GetOptionalNumber(def uint32) (uint32, error) {
	if tk.IsEnd() {
		return def, nil
	}
	return tk.GetNumber()
}

// Done returns an error if there are tokens that have not been consumed.
func (tk Tokens) Done() error {
	if !tk.IsEnd() {
		return curated.Errorf(TooManyTokens, tk.Remainder())
	}
	return nil
}

// TokeniseInput creates and returns a new Tokens instance. The first token,
// the command, is normalised to upper case.
func TokeniseInput(input string) *Tokens {
	tk := new(Tokens)

	// remove leading/trailing space
	input = strings.TrimSpace(input)

	// divide user input into tokens. removes excess white space
	tk.tokens = strings.Fields(input)

	// take a note of the raw input
	tk.input = input

	// normalise variations in syntax
	for i := range tk.tokens {
		// normalise hex notation
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = "0x" + tk.tokens[i][1:]
		}
	}

	if len(tk.tokens) > 0 {
		tk.tokens[0] = strings.ToUpper(tk.tokens[0])
	}

	return tk
}
