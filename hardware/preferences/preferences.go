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

package preferences

import (
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/paths"
	"github.com/jetsetilly/gopherpsx/prefs"
)

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// an instruction that the CPU does not implement stops the emulation with
	// an error rather than raising a reserved instruction exception
	HaltOnReserved prefs.Bool

	// the CPU decides whether an instruction is in a branch delay slot by
	// looking at the program counter, rather than by remembering that the
	// previous instruction was a branch. the heuristic gets it wrong when a
	// branch is taken to the instruction immediately after the delay slot
	DelaySlotHeuristic prefs.Bool

	// the path of the BIOS image to use if one is not given on the command line
	BIOS prefs.String

	// hardware components are allowed to add entries to the log
	Logging prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file in the resource
// directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but uses the named
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.haltOnReserved", &p.HaltOnReserved)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.delaySlotHeuristic", &p.DelaySlotHeuristic)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.bios.path", &p.BIOS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.logging", &p.Logging)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.HaltOnReserved.Set(false)
	p.DelaySlotHeuristic.Set(false)
	p.BIOS.Set("")
	p.Logging.Set(true)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Logging.Get().(bool)
}
