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

package biosloader

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
)

// offset of the build date in the BIOS image
const dateOffset = 0x100

// Sentinal errors.
const (
	WrongSize      = "biosloader: image is not %d bytes"
	UnexpectedHash = "biosloader: unexpected hash value"
	HTTPStatus     = "biosloader: HTTP request failed (%s)"
)

// Loader is used to specify the BIOS image to attach to the PSX.
type Loader struct {
	// filename of the BIOS to load.
	Filename string

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (bl Loader) ShortName() string {
	shortName := filepath.Base(bl.Filename)
	return strings.TrimSuffix(shortName, filepath.Ext(bl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (bl Loader) HasLoaded() bool {
	return len(bl.Data) > 0
}

// Date returns the build date found in the image. The date is stored as a
// BCD word in the form YYYYMMDD. The empty string is returned if the image
// has not been loaded or if the word is not BCD.
func (bl Loader) Date() string {
	if len(bl.Data) < dateOffset+4 {
		return ""
	}

	d := binary.LittleEndian.Uint32(bl.Data[dateOffset:])
	for v := d; v != 0; v >>= 4 {
		if v&0xf > 9 {
			return ""
		}
	}

	return fmt.Sprintf("%04x-%02x-%02x", d>>16, (d>>8)&0xff, d&0xff)
}

func (bl Loader) String() string {
	if !bl.HasLoaded() {
		return bl.ShortName()
	}
	if date := bl.Date(); date != "" {
		return fmt.Sprintf("%s (%s) %s", bl.ShortName(), date, bl.Hash)
	}
	return fmt.Sprintf("%s %s", bl.ShortName(), bl.Hash)
}

// Load the BIOS data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
//
// The image must be exactly the size of the BIOS area of the memory map.
func (bl *Loader) Load() error {
	if len(bl.Data) > 0 {
		return nil
	}

	scheme := ""

	u, err := url.Parse(bl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var r io.ReadCloser

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(bl.Filename)
		if err != nil {
			return curated.Errorf("biosloader: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return curated.Errorf(HTTPStatus, resp.Status)
		}
		r = resp.Body

	case "file":
		r, err = os.Open(filepath.FromSlash(u.Path))
		if err != nil {
			return curated.Errorf("biosloader: %v", err)
		}

	case "":
		r, err = os.Open(bl.Filename)
		if err != nil {
			return curated.Errorf("biosloader: %v", err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			r, err = os.Open(bl.Filename)
			if err != nil {
				return curated.Errorf("biosloader: %v", err)
			}
			break
		}
		return curated.Errorf("biosloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	defer r.Close()

	data, err := readImage(r)
	if err != nil {
		return err
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if bl.Hash != "" && bl.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}

	bl.Hash = hash
	bl.Data = data

	return nil
}

// read exactly one BIOS image from r. it is an error for there to be more
// data after the image
func readImage(r io.Reader) ([]byte, error) {
	data := make([]byte, memorymap.SizeBIOS)

	_, err := io.ReadFull(r, data)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, curated.Errorf(WrongSize, memorymap.SizeBIOS)
		}
		return nil, curated.Errorf("biosloader: %v", err)
	}

	var extra [1]byte
	n, err := r.Read(extra[:])
	if n > 0 {
		return nil, curated.Errorf(WrongSize, memorymap.SizeBIOS)
	}
	if err != nil && err != io.EOF {
		return nil, curated.Errorf("biosloader: %v", err)
	}

	return data, nil
}
