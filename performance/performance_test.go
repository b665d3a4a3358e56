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

package performance_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherpsx/biosloader"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/performance"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestResult(t *testing.T) {
	r := performance.Result{Instructions: 33868800, Duration: 2 * time.Second}
	test.ExpectEquality(t, r.IPS(), 16934400.0)
	test.ExpectEquality(t, r.Accuracy(), 50.0)
	test.ExpectEquality(t, r.String(), "16.93 MIPS (33868800 instructions in 2.00 seconds) 50.0%")

	test.ExpectEquality(t, performance.Result{}.IPS(), 0.0)
}

func TestCheck(t *testing.T) {
	// BIOS is a tight loop
	data := make([]byte, 524288)
	binary.LittleEndian.PutUint32(data, 0x1000ffff)
	pth := filepath.Join(t.TempDir(), "loop.bin")
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o600))

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	psx, err := hardware.NewPSX(prefs)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, psx.AttachBIOS(biosloader.NewLoader(pth)))

	w := &strings.Builder{}
	r, err := performance.Check(w, performance.ProfileNone, psx, "100ms")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Instructions > 0, true)
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "%\n"), true)

	_, err = performance.Check(w, performance.ProfileNone, psx, "not a duration")
	test.ExpectFailure(t, err)
}
