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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/logger"
)

// Sentinel errors returned by Load().
const (
	NotFound          = "cartridgeloader: not found (%s)"
	EmptyImage        = "cartridgeloader: empty image (%s)"
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "cartridgeloader: unexpected hash value (%s)"
	LoadFailed        = "cartridgeloader: %v"
)

// Loader is used to specify the image to be attached to the machine.
type Loader struct {
	// filename of the image to load. can be a URL
	Filename string

	// how the data should be attached to the machine
	Kind Kind

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Kind:     KindFromFilename(filename),
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the data. The Filename field can be a path to a local file or an
// http(s) URL.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		// a single letter scheme is a windows drive letter
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		data, err = ld.fetch()
	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(NotFound, ld.Filename)
		}
	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}
	if err != nil {
		if curated.IsAny(err) {
			return err
		}
		return curated.Errorf(LoadFailed, err)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyImage, ld.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, ld.Filename)
	}

	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s (%d bytes)", ld.Filename, len(data))

	return nil
}

func (ld *Loader) fetch() ([]byte, error) {
	resp, err := http.Get(ld.Filename)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, curated.Errorf(NotFound, ld.Filename)
	default:
		return nil, curated.Errorf(LoadFailed, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
