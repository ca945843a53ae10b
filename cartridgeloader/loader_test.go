// This file is part of Gophervic.
//
// Gophervic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophervic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophervic.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophervic/cartridgeloader"
	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/test"
)

var image = []byte{0x01, 0x10, 0x0b, 0x10, 0x0a, 0x00, 0x9e}

func TestKind(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.KindFromFilename("blitz.prg"), cartridgeloader.Program)
	test.ExpectEquality(t, cartridgeloader.KindFromFilename("GAMES/BLITZ.PRG"), cartridgeloader.Program)
	test.ExpectEquality(t, cartridgeloader.KindFromFilename("omega race.crt"), cartridgeloader.Cartridge)
	test.ExpectEquality(t, cartridgeloader.KindFromFilename("readme.txt"), cartridgeloader.Unknown)
	test.ExpectEquality(t, cartridgeloader.KindFromFilename("noextension"), cartridgeloader.Unknown)
	test.ExpectEquality(t, cartridgeloader.Cartridge.String(), "cartridge")

	for i, ext := range cartridgeloader.FileExtensions {
		if ext == "" {
			continue
		}
		test.ExpectEquality(t, cartridgeloader.KindFromFilename("image"+ext), cartridgeloader.Kind(i))
	}
}

func TestShortName(t *testing.T) {
	ld := cartridgeloader.NewLoader("games/blitz.prg")
	test.ExpectEquality(t, ld.ShortName(), "blitz")
	test.ExpectEquality(t, ld.Kind, cartridgeloader.Program)
	test.ExpectEquality(t, ld.HasLoaded(), false)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "blitz.prg")
	test.DemandSuccess(t, os.WriteFile(fn, image, 0o600))

	ld := cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, len(ld.Data), len(image))
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(image)))

	// a second load does not reread the file
	test.DemandSuccess(t, os.Remove(fn))
	test.ExpectSuccess(t, ld.Load())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	ld := cartridgeloader.NewLoader(filepath.Join(dir, "missing.prg"))
	err := ld.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.NotFound), true)

	fn := filepath.Join(dir, "empty.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{}, 0o600))
	ld = cartridgeloader.NewLoader(fn)
	err = ld.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.EmptyImage), true)
	test.ExpectEquality(t, ld.HasLoaded(), false)

	fn = filepath.Join(dir, "blitz.prg")
	test.DemandSuccess(t, os.WriteFile(fn, image, 0o600))
	ld = cartridgeloader.NewLoader(fn)
	ld.Hash = "0000"
	err = ld.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnexpectedHash), true)

	ld = cartridgeloader.NewLoader("ftp://example.com/blitz.prg")
	err = ld.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnsupportedScheme), true)
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blitz.prg":
			_, _ = w.Write(image)
		case "/empty.prg":
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ld := cartridgeloader.NewLoader(srv.URL + "/blitz.prg")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), len(image))
	test.ExpectEquality(t, ld.Kind, cartridgeloader.Program)

	ld = cartridgeloader.NewLoader(srv.URL + "/missing.prg")
	test.ExpectEquality(t, curated.Is(ld.Load(), cartridgeloader.NotFound), true)

	ld = cartridgeloader.NewLoader(srv.URL + "/empty.prg")
	test.ExpectEquality(t, curated.Is(ld.Load(), cartridgeloader.EmptyImage), true)
}
