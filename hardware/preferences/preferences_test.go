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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	// defaults
	test.ExpectEquality(t, p.HaltOnReserved.Get().(bool), false)
	test.ExpectEquality(t, p.DelaySlotHeuristic.Get().(bool), false)
	test.ExpectEquality(t, p.AllowLogging(), true)

	test.ExpectSuccess(t, p.HaltOnReserved.Set(true))
	test.ExpectSuccess(t, p.BIOS.Set("scph1001.bin"))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.HaltOnReserved.Get().(bool), true)
	test.ExpectEquality(t, q.BIOS.String(), "scph1001.bin")

	// preferences are a logging permission
	var perm logger.Permission = q
	test.ExpectSuccess(t, q.Logging.Set(false))
	test.ExpectEquality(t, perm.AllowLogging(), false)
}
