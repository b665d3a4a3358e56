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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/govern"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/paths"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the clock rate of the R3000A in the PSX
const clockRate = 33868800

// Result of a performance check.
type Result struct {
	Instructions uint64
	Duration     time.Duration
}

// IPS returns the number of instructions executed per second.
func (r Result) IPS() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds()
}

// Accuracy returns the number of instructions executed per second as a
// percentage of the clock rate of the real CPU. A real CPU executes at most
// one instruction per clock.
func (r Result) Accuracy() float64 {
	return 100 * r.IPS() / clockRate
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f MIPS (%d instructions in %.2f seconds) %.1f%%",
		r.IPS()/1000000, r.Instructions, r.Duration.Seconds(), r.Accuracy())
}

// Check the performance of the emulator. The PSX should already have a BIOS
// attached.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, psx *hardware.PSX, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	psx.Mode = govern.ModePerformance

	var startInstructions uint64
	var startTime time.Time

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		// a short leadtime allows the emulation to settle down before
		// measurement begins
		time.AfterFunc(dur/10, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions
		performanceBrake := 0

		return psx.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return govern.Ending, timedOut
					}
					startInstructions = psx.CPU.Instructions
					startTime = time.Now()
				default:
				}
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, paths.UniqueFilename("performance", psx.BIOS.ShortName()), runner)
	if err != nil && !errors.Is(err, timedOut) {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	r := Result{
		Instructions: psx.CPU.Instructions - startInstructions,
		Duration:     time.Since(startTime),
	}

	if output != nil {
		io.WriteString(output, r.String())
		io.WriteString(output, "\n")
	}

	return r, nil
}
