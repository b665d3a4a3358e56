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

// Mode indicates how the emulation is being used. Some work, for example
// logging the exceptions taken by the CPU, is only worth doing in the
// debugger.
type Mode int

// List of defined modes.
const (
	ModeNone Mode = iota
	ModeDebugger
	ModeRun
	ModePerformance
)

func (m Mode) String() string {
	switch m {
	case ModeDebugger:
		return "Debugger"
	case ModeRun:
		return "Run"
	case ModePerformance:
		return "Performance"
	}
	return ""
}
