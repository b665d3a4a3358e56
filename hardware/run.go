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
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/govern"
)

// While the continueCheck() function only runs at the end of a CPU instruction
// it can still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every instruction and the emulation continues for
// as long as it returns govern.Running or govern.Paused.
func (psx *PSX) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			_, err := psx.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("psx: unsupported emulation state (%d) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForInstructionCount sets emulator running for the specified number of
// instructions. Useful for performance and regression tests.
func (psx *PSX) RunForInstructionCount(count uint64, continueCheck func(count uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(count uint64) (govern.State, error) { return govern.Running, nil }
	}

	target := psx.CPU.Instructions + count

	state := govern.Running
	for psx.CPU.Instructions < target && state != govern.Ending {
		_, err := psx.Step()
		if err != nil {
			return err
		}

		state, err = continueCheck(psx.CPU.Instructions)
		if err != nil {
			return err
		}
	}

	return nil
}
