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

// Package cpu emulates the MIPS R3000A CPU found in the PlayStation.
//
// The CPU is created with NewCPU() and must be Reset() before use. Each call to
// ExecuteInstruction() fetches, decodes and executes a single instruction.
// There is no cycle counting and the load delay slot of the real hardware is
// not emulated. The branch delay slot is emulated by way of the program
// counter pipeline: a branch or jump changes NextPC and so the instruction
// following the branch is executed before the branch destination.
//
// Memory is accessed through the bus.Device interface. The CPU implements the
// memory.Controller interface so that the memory bus can raise address error
// exceptions and observe the isolate cache bit of the status register.
//
// Exceptions are raised with Raise(). Whether the instruction raising the
// exception is in a branch delay slot is decided by remembering that the
// previous instruction was a branch or jump. The DelaySlotHeuristic preference
// changes this to a comparison of the program counter and the address of the
// current instruction, which gives a different result when a branch is not
// taken or is taken to the instruction after the delay slot.
//
// Instructions that the CPU does not implement, including the instructions for
// the geometry transformation engine (coprocessor 2), raise a reserved
// instruction exception. If the HaltOnReserved preference is set then the
// instruction causes ExecuteInstruction() to return an
// UnimplementedInstruction error instead.
package cpu
