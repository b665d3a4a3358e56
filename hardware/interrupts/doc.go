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

// Package interrupts implements the interrupt controller. Peripherals call
// Request() to raise an interrupt and the CPU acknowledges it by writing to
// the I_STAT register.
//
// The controller does not itself signal the CPU. Pending() reports whether
// an unmasked interrupt is waiting and it is up to the caller to act on it.
package interrupts
