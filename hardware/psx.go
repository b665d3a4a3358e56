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

package hardware

import (
	"github.com/jetsetilly/gopherpsx/biosloader"
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/govern"
	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/dma"
	"github.com/jetsetilly/gopherpsx/hardware/gpu"
	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memcontrol"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/hardware/spu"
	"github.com/jetsetilly/gopherpsx/hardware/timers"
	"github.com/jetsetilly/gopherpsx/logger"
)

// the hardware interrupt line from the interrupt controller is connected to
// this bit of the cause register
const causeIP2 = 0x0400

// PSX struct is the main container for the emulated components of the PSX.
type PSX struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Bus

	Interrupts   *interrupts.Controller
	DMA          *dma.DMA
	GPU          *gpu.GPU
	Timers       *timers.Timers
	SPU          *spu.SPU
	MemControl   *memcontrol.MemControl
	RAMSize      *memcontrol.Register32
	CacheControl *memcontrol.Register32
	Expansion2   *memcontrol.Expansion2

	// the most recently attached BIOS
	BIOS biosloader.Loader

	// how the emulation is being used. set by the debugger, the performance
	// checker, etc.
	Mode govern.Mode
}

// NewPSX creates a new PSX and everything associated with the hardware. It is
// used for all aspects of emulation: debugging sessions, and regular running.
//
// The prefs argument can be nil, in which case the preferences are loaded
// from the default preferences file.
func NewPSX(prefs *preferences.Preferences) (*PSX, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("psx: %v", err)
		}
	}

	psx := &PSX{
		Prefs:        prefs,
		Interrupts:   interrupts.NewController(),
		SPU:          spu.NewSPU(),
		MemControl:   memcontrol.NewMemControl(),
		RAMSize:      memcontrol.NewRAMSize(),
		CacheControl: memcontrol.NewCacheControl(),
		Expansion2:   memcontrol.NewExpansion2(prefs),
	}

	psx.DMA = dma.NewDMA(prefs, psx.Interrupts)
	psx.GPU = gpu.NewGPU(prefs, psx.Interrupts)
	psx.Timers = timers.NewTimers(psx.Interrupts)

	psx.Mem, err = memory.NewBus(memory.Peripherals{
		MemControl:   psx.MemControl,
		RAMSize:      psx.RAMSize,
		Interrupts:   psx.Interrupts,
		DMA:          psx.DMA,
		Timers:       psx.Timers,
		GPU:          psx.GPU,
		SPU:          psx.SPU,
		Expansion2:   psx.Expansion2,
		CacheControl: psx.CacheControl,
	})
	if err != nil {
		return nil, curated.Errorf("psx: %v", err)
	}

	psx.CPU = cpu.NewCPU(prefs, psx.Mem)
	psx.Mem.Plumb(psx.CPU)

	psx.Reset()

	return psx, nil
}

// AttachBIOS loads a BIOS image into the PSX and resets it. The loader will
// be loaded if it has not been already.
func (psx *PSX) AttachBIOS(bl biosloader.Loader) error {
	err := bl.Load()
	if err != nil {
		return curated.Errorf("psx: %v", err)
	}

	err = psx.Mem.BIOS.Load(bl.Data)
	if err != nil {
		return curated.Errorf("psx: %v", err)
	}

	psx.BIOS = bl
	logger.Logf(psx.Prefs, "psx", "attached BIOS %s", bl)

	psx.Reset()

	return nil
}

// Reset emulates the power being switched off and on again. The BIOS remains
// attached.
func (psx *PSX) Reset() {
	psx.Mem.Reset()
	psx.Interrupts.Reset()
	psx.DMA.Reset()
	psx.GPU.Reset()
	psx.Timers.Reset()
	psx.SPU.Reset()
	psx.MemControl.Reset()
	psx.RAMSize.Reset()
	psx.CacheControl.Reset()
	psx.Expansion2.Reset()
	psx.CPU.Reset()
}

// Step the emulation one CPU instruction. The other components of the PSX are
// advanced after the instruction has been executed.
func (psx *PSX) Step() (cpu.Result, error) {
	err := psx.CPU.ExecuteInstruction()
	if err != nil {
		return psx.CPU.LastResult, curated.Errorf("psx: %v", err)
	}

	if psx.Mode == govern.ModeDebugger && psx.CPU.LastResult.ExceptionTaken {
		logger.Logf(psx.Prefs, "psx", "%s exception at %08x", psx.CPU.LastResult.Exception, psx.CPU.LastResult.Address)
	}

	psx.Timers.Tick()

	// interrupts are not taken by the CPU but the state of the interrupt line
	// is visible in the cause register
	cause := psx.CPU.Cop0.Cause()
	if psx.Interrupts.Pending() {
		cause |= causeIP2
	} else {
		cause &^= causeIP2
	}
	psx.CPU.Cop0.SetCause(cause)

	return psx.CPU.LastResult, nil
}
