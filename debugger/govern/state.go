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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states. The emulation begins in the
// EmulatorStart state and never returns to it.
const (
	EmulatorStart State = iota

	// the BIOS is being attached or the PSX reset
	Initialising

	// the debugger is waiting for input
	Paused

	// not used by the Run() functions in the hardware package
	Stepping

	// the CPU is executing instructions
	Running

	// the emulation, or the current run of the emulation, should stop
	Ending
)

var stateNames = [...]string{"EmulatorStart", "Initialising", "Paused", "Stepping", "Running", "Ending"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}
