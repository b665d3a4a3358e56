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

package disassembly

import (
	"encoding/binary"
	"sync"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
)

// Peeker is the memory interface needed to disassemble from memory. The
// memory.Bus type satisfies this interface.
type Peeker interface {
	Peek(address uint32) (uint8, error)
}

// Disassembly is a linear disassembly of a region of memory. Every aligned
// word in the region has an entry.
type Disassembly struct {
	origin  uint32
	entries []*Entry

	// critical sectioning
	crit sync.Mutex
}

// FromROM disassembles a BIOS image. The origin is the address of the first
// byte of the image.
func FromROM(data []byte, origin uint32) *Disassembly {
	dsm := &Disassembly{
		origin:  origin &^ 3,
		entries: make([]*Entry, len(data)/4),
	}
	for i := range dsm.entries {
		ins := instructions.Instruction(binary.LittleEndian.Uint32(data[i*4:]))
		dsm.entries[i] = newEntry(dsm.origin+uint32(i*4), ins, EntryLevelDecoded)
	}
	return dsm
}

// FromMemory disassembles count words of memory beginning at origin. Words
// that can not be read are marked as unmapped. An error is only returned if
// none of the region could be read.
func FromMemory(mem Peeker, origin uint32, count int) (*Disassembly, error) {
	dsm := &Disassembly{
		origin:  origin &^ 3,
		entries: make([]*Entry, count),
	}

	var mapped bool
	for i := range dsm.entries {
		address := dsm.origin + uint32(i*4)
		ins, err := peek32(mem, address)
		if err != nil {
			dsm.entries[i] = &Entry{Level: EntryLevelUnmapped, Address: address}
			continue
		}
		mapped = true
		dsm.entries[i] = newEntry(address, ins, EntryLevelDecoded)
	}

	if count > 0 && !mapped {
		return nil, curated.Errorf("disassembly: no memory at %#08x", origin)
	}

	return dsm, nil
}

func peek32(mem Peeker, address uint32) (instructions.Instruction, error) {
	var b [4]uint8
	for i := range b {
		var err error
		b[i], err = mem.Peek(address + uint32(i))
		if err != nil {
			return 0, err
		}
	}
	return instructions.Instruction(binary.LittleEndian.Uint32(b[:])), nil
}

// Origin returns the address of the first entry.
func (dsm *Disassembly) Origin() uint32 {
	return dsm.origin
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

// GetEntryByAddress returns the disassembly entry at the specified address.
func (dsm *Disassembly) GetEntryByAddress(address uint32) (*Entry, bool) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return dsm.entry(address)
}

func (dsm *Disassembly) entry(address uint32) (*Entry, bool) {
	if address < dsm.origin {
		return nil, false
	}
	idx := (address - dsm.origin) / 4
	if idx >= uint32(len(dsm.entries)) {
		return nil, false
	}
	return dsm.entries[idx], true
}

// UpdateEntry with the most recent cpu.Result. Results for addresses outside
// of the disassembly are ignored. The entry is decoded again if the
// instruction has changed since the disassembly was made.
func (dsm *Disassembly) UpdateEntry(result cpu.Result) {
	if !result.Fetched {
		return
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	e, ok := dsm.entry(result.Address)
	if !ok {
		return
	}

	if e.Level == EntryLevelUnmapped || e.Instruction != result.Instruction {
		e = newEntry(e.Address, result.Instruction, EntryLevelExecuted)
		dsm.entries[(e.Address-dsm.origin)/4] = e
	}

	e.Level = EntryLevelExecuted
	e.Result = result
}

// Counts returns the number of entries at each level.
func (dsm *Disassembly) Counts() map[EntryLevel]int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	counts := make(map[EntryLevel]int)
	for _, e := range dsm.entries {
		counts[e.Level]++
	}
	return counts
}
