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

// Package bus defines the contract between the memory bus and the devices
// attached to it.
//
// Every device implements the six operations of the Device interface. A device
// with nothing to emulate can be represented by the Stub type. Devices that are
// a simple block of read/write registers can embed the Registers type.
//
// The DebuggerBus interface is implemented by the memory bus for the benefit of
// the debugger and the disassembler.
package bus
