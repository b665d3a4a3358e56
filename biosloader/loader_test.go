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

package biosloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherpsx/biosloader"
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/test"
)

func writeImage(t *testing.T, size int) (string, []byte) {
	t.Helper()
	data := make([]byte, size)
	for i := range data {
		data[i] = uint8(i)
	}
	if size > 0x104 {
		// 1995-12-04
		data[0x100] = 0x04
		data[0x101] = 0x12
		data[0x102] = 0x95
		data[0x103] = 0x19
	}
	pth := filepath.Join(t.TempDir(), "scph1001.bin")
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o600))
	return pth, data
}

func TestLoad(t *testing.T) {
	pth, data := writeImage(t, 524288)

	bl := biosloader.NewLoader(pth)
	test.ExpectEquality(t, bl.HasLoaded(), false)
	test.ExpectEquality(t, bl.ShortName(), "scph1001")

	test.DemandSuccess(t, bl.Load())
	test.ExpectEquality(t, bl.HasLoaded(), true)
	test.ExpectEquality(t, len(bl.Data), 524288)
	test.ExpectEquality(t, bl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectEquality(t, bl.Date(), "1995-12-04")
	test.ExpectEquality(t, bl.String(), fmt.Sprintf("scph1001 (1995-12-04) %s", bl.Hash))
}

func TestHash(t *testing.T) {
	pth, data := writeImage(t, 524288)

	bl := biosloader.NewLoader(pth)
	bl.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	test.ExpectSuccess(t, bl.Load())

	bl = biosloader.NewLoader(pth)
	bl.Hash = "0000000000000000000000000000000000000000"
	err := bl.Load()
	test.ExpectEquality(t, curated.Is(err, biosloader.UnexpectedHash), true)
	test.ExpectEquality(t, bl.HasLoaded(), false)
}

func TestWrongSize(t *testing.T) {
	for _, size := range []int{0, 1024, 524287, 524289, 1048576} {
		pth, _ := writeImage(t, size)
		bl := biosloader.NewLoader(pth)
		err := bl.Load()
		test.ExpectEquality(t, curated.Is(err, biosloader.WrongSize), true, size)
		test.ExpectEquality(t, bl.HasLoaded(), false)
	}
}

func TestMissingFile(t *testing.T) {
	bl := biosloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, bl.Load())
}

func TestDate(t *testing.T) {
	var bl biosloader.Loader
	test.ExpectEquality(t, bl.Date(), "")

	// not BCD
	bl.Data = make([]byte, 524288)
	bl.Data[0x100] = 0x0a
	test.ExpectEquality(t, bl.Date(), "")
}

func TestFileURL(t *testing.T) {
	pth, data := writeImage(t, 524288)

	bl := biosloader.NewLoader("file://" + filepath.ToSlash(pth))
	test.ExpectEquality(t, bl.ShortName(), "scph1001")
	test.DemandSuccess(t, bl.Load())
	test.ExpectEquality(t, bl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	bl = biosloader.NewLoader("file://" + filepath.ToSlash(filepath.Join(t.TempDir(), "missing.bin")))
	test.ExpectFailure(t, bl.Load())
}

func TestHTTP(t *testing.T) {
	pth, data := writeImage(t, 524288)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scph1001.bin" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, pth)
	}))
	defer srv.Close()

	bl := biosloader.NewLoader(srv.URL + "/scph1001.bin")
	test.DemandSuccess(t, bl.Load())
	test.ExpectEquality(t, bl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	// the body of an error response is not mistaken for a short image
	bl = biosloader.NewLoader(srv.URL + "/missing.bin")
	err := bl.Load()
	test.ExpectEquality(t, curated.Is(err, biosloader.HTTPStatus), true)
	test.ExpectEquality(t, curated.Is(err, biosloader.WrongSize), false)
	test.ExpectEquality(t, bl.HasLoaded(), false)
}

func TestUnsupportedScheme(t *testing.T) {
	bl := biosloader.NewLoader("ftp://example.com/scph1001.bin")
	test.ExpectFailure(t, bl.Load())
}
