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

// Package cop0 implements the system control coprocessor of the R3000A.
//
// The coprocessor is a bank of 32-bit registers. Guest software addresses the
// registers by number (with the MFC0 and MTC0 instructions) while the
// emulation addresses them by name (for example, when entering an exception).
// The Bank type keeps a single array of registers and the named accessor
// functions compute the correct index, so both views always agree.
//
// The low six bits of the status register are a three entry stack of
// interrupt enable/kernel mode pairs. PushMode() is used on exception entry and
// PopMode() by the RFE instruction.
package cop0
