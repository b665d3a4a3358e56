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

package memory

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/rdleal/intervalst/interval"
)

// UnmappedAddress is returned when an address does not resolve to any area of
// the memory map.
const UnmappedAddress = "memory: unmapped address (%#08x)"

// Controller is the part of the CPU the memory bus needs. It is the target of
// address error exceptions and the source of the isolate cache state.
type Controller interface {
	RaiseAddressError(cause cop0.Cause, address uint32)
	CacheIsolated() bool
}

// Peripherals are the devices attached to the bus that are emulated by other
// packages. Any nil field is replaced by a bus.Stub.
type Peripherals struct {
	MemControl   bus.Device
	PeripheralIO bus.Device
	RAMSize      bus.Device
	Interrupts   bus.Device
	DMA          bus.Device
	Timers       bus.Device
	CDROM        bus.Device
	GPU          bus.Device
	MDEC         bus.Device
	SPU          bus.Device
	Expansion2   bus.Device
	CacheControl bus.Device
}

// mapping of an area of the memory map to the device that serves it.
type mapping struct {
	memorymap.Extent
	device bus.Device
}

// Bus is the memory bus of the console. All memory accesses made by the CPU
// go through the bus, which resolves the address to a device.
type Bus struct {
	RAM        *RAM
	BIOS       *ROM
	Scratchpad *Scratchpad

	// dispatch table. built once by NewBus() and never changed
	tree     *interval.SearchTree[mapping, uint32]
	mappings []mapping

	ctrl Controller
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(peripherals Peripherals) (*Bus, error) {
	b := &Bus{
		RAM:        NewRAM(),
		BIOS:       NewROM(),
		Scratchpad: NewScratchpad(),
		tree:       interval.NewSearchTree[mapping](cmp.Compare[uint32]),
	}

	stub := func(d bus.Device) bus.Device {
		if d == nil {
			return bus.Stub{}
		}
		return d
	}

	devices := map[memorymap.Area]bus.Device{
		memorymap.RAM:          b.RAM,
		memorymap.Expansion1:   bus.Stub{Fill: 0xffffffff},
		memorymap.Scratchpad:   b.Scratchpad,
		memorymap.MemControl:   stub(peripherals.MemControl),
		memorymap.PeripheralIO: stub(peripherals.PeripheralIO),
		memorymap.RAMSize:      stub(peripherals.RAMSize),
		memorymap.Interrupts:   stub(peripherals.Interrupts),
		memorymap.DMA:          stub(peripherals.DMA),
		memorymap.Timers:       stub(peripherals.Timers),
		memorymap.CDROM:        stub(peripherals.CDROM),
		memorymap.GPU:          stub(peripherals.GPU),
		memorymap.MDEC:         stub(peripherals.MDEC),
		memorymap.SPU:          stub(peripherals.SPU),
		memorymap.Expansion2:   stub(peripherals.Expansion2),
		memorymap.Expansion3:   bus.Stub{},
		memorymap.BIOS:         b.BIOS,
		memorymap.CacheControl: stub(peripherals.CacheControl),
	}

	for _, e := range memorymap.Extents {
		m := mapping{Extent: e, device: devices[e.Area]}
		err := b.tree.Insert(e.Origin, e.Memtop, m)
		if err != nil {
			return nil, curated.Errorf("memory: %v: %v", e.Area, err)
		}
		b.mappings = append(b.mappings, m)
	}

	return b, nil
}

// Plumb the controller into the bus. Address errors cannot be raised and the
// isolate cache bit is ignored until a controller has been plumbed.
func (b *Bus) Plumb(ctrl Controller) {
	b.ctrl = ctrl
}

// Reset clears the RAM and the scratchpad. The BIOS image is retained.
func (b *Bus) Reset() {
	b.RAM.Reset()
	b.Scratchpad.Reset()
}

func (b *Bus) String() string {
	s := strings.Builder{}
	for _, a := range b.Areas() {
		s.WriteString(a.String())
		s.WriteString("\n")
	}
	return s.String()
}

// resolve address to the mapping that serves it.
func (b *Bus) resolve(address uint32) (mapping, error) {
	phys := memorymap.Physical(address)

	// every area in the memory map is word aligned so the query can be the
	// word containing the address
	m, ok := b.tree.AnyIntersection(phys&^3, phys|3)
	if !ok || phys < m.Origin || phys > m.Memtop {
		return mapping{}, curated.Errorf(UnmappedAddress, address)
	}

	// the scratchpad is not visible through the uncached segment
	if m.Area == memorymap.Scratchpad && memorymap.SegmentOf(address) == memorymap.KSEG1 {
		return mapping{}, curated.Errorf(UnmappedAddress, address)
	}

	return m, nil
}

// aligned returns false and raises an address error if the address is not a
// multiple of width.
func (b *Bus) aligned(address uint32, width uint32, cause cop0.Cause) bool {
	if address&(width-1) == 0 {
		return true
	}
	if b.ctrl != nil {
		b.ctrl.RaiseAddressError(cause, address)
	} else {
		logger.Logf(logger.Allow, "memory", "%s at %#08x with no controller", cause, address)
	}
	return false
}

// isolated returns true if the store should be discarded.
func (b *Bus) isolated(m mapping) bool {
	return m.Area == memorymap.RAM && b.ctrl != nil && b.ctrl.CacheIsolated()
}

// Load8 reads a byte from the address.
func (b *Bus) Load8(address uint32) (uint8, error) {
	m, err := b.resolve(address)
	if err != nil {
		return 0, err
	}
	return m.device.Load8(address)
}

// Load16 reads a halfword from the address. An address that is not halfword
// aligned raises an address error and the value returned is zero.
func (b *Bus) Load16(address uint32) (uint16, error) {
	if !b.aligned(address, 2, cop0.AddressErrorLoad) {
		return 0, nil
	}
	m, err := b.resolve(address)
	if err != nil {
		return 0, err
	}
	return m.device.Load16(address)
}

// Load32 reads a word from the address. An address that is not word aligned
// raises an address error and the value returned is zero.
func (b *Bus) Load32(address uint32) (uint32, error) {
	if !b.aligned(address, 4, cop0.AddressErrorLoad) {
		return 0, nil
	}
	m, err := b.resolve(address)
	if err != nil {
		return 0, err
	}
	return m.device.Load32(address)
}

// Store8 writes a byte to the address.
func (b *Bus) Store8(address uint32, value uint8) error {
	m, err := b.resolve(address)
	if err != nil {
		return err
	}
	if b.isolated(m) {
		return nil
	}
	return m.device.Store8(address, value)
}

// Store16 writes a halfword to the address. An address that is not halfword
// aligned raises an address error and nothing is written.
func (b *Bus) Store16(address uint32, value uint16) error {
	if !b.aligned(address, 2, cop0.AddressErrorStore) {
		return nil
	}
	m, err := b.resolve(address)
	if err != nil {
		return err
	}
	if b.isolated(m) {
		return nil
	}
	return m.device.Store16(address, value)
}

// Store32 writes a word to the address. An address that is not word aligned
// raises an address error and nothing is written.
func (b *Bus) Store32(address uint32, value uint32) error {
	if !b.aligned(address, 4, cop0.AddressErrorStore) {
		return nil
	}
	m, err := b.resolve(address)
	if err != nil {
		return err
	}
	if b.isolated(m) {
		return nil
	}
	return m.device.Store32(address, value)
}

// Peek implements the bus.DebuggerBus interface. The byte is taken from the
// word containing the address, which is read without device side-effects.
func (b *Bus) Peek(address uint32) (uint8, error) {
	w, err := b.Peek32(address)
	if err != nil {
		return 0, err
	}
	return uint8(w >> ((address & 3) * 8)), nil
}

// Peek32 implements the bus.Peeker interface. The address is word aligned
// before use. No address errors are raised and the isolate cache bit is
// ignored.
func (b *Bus) Peek32(address uint32) (uint32, error) {
	address &^= 3
	m, err := b.resolve(address)
	if err != nil {
		return 0, err
	}
	if p, ok := m.device.(bus.Peeker); ok {
		return p.Peek32(address)
	}
	return m.device.Load32(address)
}

// Poke implements the bus.DebuggerBus interface. Unlike Store8() the BIOS can
// be written to with Poke() and the isolate cache bit is ignored.
func (b *Bus) Poke(address uint32, value uint8) error {
	m, err := b.resolve(address)
	if err != nil {
		return err
	}
	if m.Area == memorymap.BIOS {
		b.BIOS.Patch(address, value)
		return nil
	}
	return m.device.Store8(address, value)
}

// AreaInfo describes an area of the memory map and the device serving it.
type AreaInfo struct {
	memorymap.Extent
	Device string
}

func (a AreaInfo) String() string {
	return fmt.Sprintf("%08x -> %08x\t%-14s %s", a.Origin, a.Memtop, a.Area, a.Device)
}

// Areas lists the areas of the memory map in order of origin.
func (b *Bus) Areas() []AreaInfo {
	a := make([]AreaInfo, 0, len(b.mappings))
	for _, m := range b.mappings {
		dev := fmt.Sprintf("%T", m.device)
		if _, ok := m.device.(bus.Stub); ok {
			dev = "stub"
		}
		a = append(a, AreaInfo{Extent: m.Extent, Device: dev})
	}
	return a
}

// AreaOf returns the area of the memory map that the address resolves to.
func (b *Bus) AreaOf(address uint32) (memorymap.Area, error) {
	m, err := b.resolve(address)
	if err != nil {
		return memorymap.Undefined, err
	}
	return m.Area, nil
}
