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

// Package dma implements the registers of the DMA controller.
//
// The register block is the control (DPCR) and interrupt (DICR) registers plus
// the MADR, BCR and CHCR registers of each of the seven channels. Values are
// stored and read back. Setting the start bits of a CHCR register completes
// the transfer immediately, without copying any data, and updates DICR as if
// a real transfer had finished. The missing transfer is logged.
package dma
