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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherpsx/biosloader"
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger"
	"github.com/jetsetilly/gopherpsx/debugger/govern"
	"github.com/jetsetilly/gopherpsx/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherpsx/disassembly"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/jetsetilly/gopherpsx/modalflag"
	"github.com/jetsetilly/gopherpsx/performance"
	"github.com/jetsetilly/gopherpsx/prefs"
	"github.com/jetsetilly/gopherpsx/statsview"
)

// exit values.
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. The return value is
// the exit value for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	prefsFile := md.AddString("prefsfile", "", "use the named preferences file instead of the default")
	prefsOverride := md.AddString("prefs", "", "preference overrides for this session. for example: hardware.cpu.haltOnReserved::true; hardware.logging::false")
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	// overrides are consumed as the preferences are loaded
	prefs.PushCommandLineStack(*prefsOverride)

	var hwPrefs *preferences.Preferences
	if *prefsFile == "" {
		hwPrefs, err = preferences.NewPreferences()
	} else {
		hwPrefs, err = preferences.NewPreferencesFromFile(*prefsFile)
	}
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(output, "* unused preferences: %s\n", unused)
	}
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, hwPrefs)
	case "DEBUG":
		err = debug(md, hwPrefs)
	case "DISASM":
		err = disasm(md, hwPrefs)
	case "PERFORMANCE":
		err = perform(md, hwPrefs)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

// biosLoader returns a loader for the BIOS named on the command line. If no
// BIOS has been named then the BIOS in the preferences is used.
func biosLoader(md *modalflag.Modes, prefs *preferences.Preferences) (biosloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		pth := prefs.BIOS.Get().(string)
		if pth == "" {
			return biosloader.Loader{}, curated.Errorf("BIOS image required for %s mode", md)
		}
		return biosloader.NewLoader(pth), nil
	case 1:
		return biosloader.NewLoader(md.GetArg(0)), nil
	}
	return biosloader.Loader{}, curated.Errorf("too many arguments for %s mode", md)
}

func newPSX(md *modalflag.Modes, prefs *preferences.Preferences) (*hardware.PSX, error) {
	bl, err := biosLoader(md, prefs)
	if err != nil {
		return nil, err
	}

	psx, err := hardware.NewPSX(prefs)
	if err != nil {
		return nil, err
	}

	err = psx.AttachBIOS(bl)
	if err != nil {
		return nil, err
	}

	return psx, nil
}

func run(md *modalflag.Modes, prefs *preferences.Preferences) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	count := md.AddUint64("instructions", 0, "stop after the number of instructions (0 means no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	psx, err := newPSX(md, prefs)
	if err != nil {
		return err
	}

	psx.Mode = govern.ModeRun

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	target := psx.CPU.Instructions + *count
	performanceBrake := 0

	err = psx.Run(func() (govern.State, error) {
		if *count > 0 && psx.CPU.Instructions >= target {
			return govern.Ending, nil
		}

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})

	fmt.Fprintf(md.Output, "%d instructions executed. next instruction at %08x\n", psx.CPU.Instructions, psx.CPU.PC)

	return err
}

func debug(md *modalflag.Modes, prefs *preferences.Preferences) error {
	md.NewMode()

	script := md.AddString("script", "", "Lua script to run on startup")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	psx, err := newPSX(md, prefs)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(psx, plainterm.NewPlainTerminal(os.Stdin, md.Output))
	if err != nil {
		return err
	}

	return dbg.Start(*script)
}

func disasm(md *modalflag.Modes, prefs *preferences.Preferences) error {
	md.NewMode()

	origin := md.AddAddress("origin", memorymap.ResetVector, "address of first instruction")
	length := md.AddInt("length", 0, "number of instructions (0 means the entire BIOS)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	bl, err := biosLoader(md, prefs)
	if err != nil {
		return err
	}

	err = bl.Load()
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
	}

	dsm := disassembly.FromROM(bl.Data, memorymap.ResetVector)
	if *length <= 0 && *origin == memorymap.ResetVector {
		return dsm.Write(md.Output, attr)
	}

	if _, ok := dsm.GetEntryByAddress(*origin); !ok {
		return curated.Errorf("origin is outside of the BIOS (%#08x)", *origin)
	}

	to := dsm.Origin() + uint32(dsm.Len()-1)*4
	if *length > 0 {
		to = *origin + uint32(*length-1)*4
	}

	return dsm.WriteRange(md.Output, attr, *origin, to)
}

func perform(md *modalflag.Modes, prefs *preferences.Preferences) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a short lead time before measurement)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	psx, err := newPSX(md, prefs)
	if err != nil {
		return err
	}

	// performance.Check() prints the result
	_, err = performance.Check(md.Output, prf, psx, *duration)
	return err
}
