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

// Package gpu implements the command interface of the graphics processor.
//
// Words written to the GP0 port are collected into packets. The length of a
// packet is decided by its command byte: polygon, line, rectangle, VRAM copy
// and image load commands are all counted correctly so that the command
// stream stays in step. Drawing commands are not rendered. The draw mode
// commands (0xe1 to 0xe6) update the GPU state, which is visible through the
// GPUSTAT register.
//
// Words written to the GP1 port are display control commands. Commands 0x00
// to 0x08 are implemented.
//
// Unknown commands are logged and otherwise ignored.
package gpu
