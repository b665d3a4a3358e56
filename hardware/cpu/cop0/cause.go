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

package cop0

import "fmt"

// Cause is the exception code stored in bits 2 to 6 of the cause register.
type Cause uint32

// List of exception causes raised by the CPU.
const (
	Interrupt           Cause = 0x00
	AddressErrorLoad    Cause = 0x04
	AddressErrorStore   Cause = 0x05
	BusErrorInstruction Cause = 0x06
	BusErrorData        Cause = 0x07
	Syscall             Cause = 0x08
	Break               Cause = 0x09
	ReservedInstruction Cause = 0x0a
	CoprocessorUnusable Cause = 0x0b
	Overflow            Cause = 0x0c
)

func (c Cause) String() string {
	switch c {
	case Interrupt:
		return "interrupt"
	case AddressErrorLoad:
		return "address error (load)"
	case AddressErrorStore:
		return "address error (store)"
	case BusErrorInstruction:
		return "bus error (instruction)"
	case BusErrorData:
		return "bus error (data)"
	case Syscall:
		return "syscall"
	case Break:
		return "break"
	case ReservedInstruction:
		return "reserved instruction"
	case CoprocessorUnusable:
		return "coprocessor unusable"
	case Overflow:
		return "arithmetic overflow"
	}
	return fmt.Sprintf("unknown cause (%#02x)", uint32(c))
}
