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

// Package performance measures the speed of the emulation.
//
// Check() runs a PSX for a fixed duration and reports the number of
// instructions executed per second, and how that compares to the clock of
// the real hardware. Profiling information can be written at the same time.
//
// RunProfiler() wraps any function with the profiles selected by a Profile
// value and can be used on its own.
package performance
