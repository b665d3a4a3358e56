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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/prefs"
	"github.com/jetsetilly/gopherpsx/test"
)

func readFile(t *testing.T, fn string) string {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(data)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var s prefs.String
	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectSuccess(t, dsk.Add("test.string", &s))
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	test.ExpectFailure(t, dsk.Add("test.int", &i))

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, s.Set("bios/scph1001.bin"))
	test.ExpectSuccess(t, i.Set("10"))
	test.ExpectSuccess(t, dsk.Save())

	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\n"+
		"test.bool :: true\n"+
		"test.int :: 10\n"+
		"test.string :: bios/scph1001.bin\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectEquality(t, i.Get().(int), 0)

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, s.String(), "bios/scph1001.bin")
	test.ExpectEquality(t, i.Get().(int), 10)
}

func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dskA, _ := prefs.NewDisk(fn)
	var a prefs.Int
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set(1))
	test.ExpectSuccess(t, dskA.Save())

	dskB, _ := prefs.NewDisk(fn)
	var b prefs.Int
	test.ExpectSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set(2))
	test.ExpectSuccess(t, dskB.Save())

	// entries saved by the first disk are preserved by the second
	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\n"+
		"a :: 1\n"+
		"b :: 2\n")
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, _ := prefs.NewDisk(fn)
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("hardware.cpu.haltOnReserved", &b))

	prefs.PushCommandLineStack("hardware.cpu.haltOnReserved::true; unknown::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	err := dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, b.Get().(bool), true)

	// the unused entry is returned when the stack is popped
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestHooks(t *testing.T) {
	var s prefs.String
	var seen string
	s.SetHookPost(func(v prefs.Value) error {
		seen = v.(string)
		return nil
	})
	s.SetMaxLen(4)
	test.ExpectSuccess(t, s.Set("abcdefgh"))
	test.ExpectEquality(t, s.String(), "abcd")
	test.ExpectEquality(t, seen, "abcd")
}
