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

//go:build !(linux || darwin)

package terminal

import (
	"os"

	"github.com/jetsetilly/gophervic/curated"
)

// Terminal is not supported on this platform.
type Terminal struct{}

// NewTerminal always returns an error on this platform.
func NewTerminal(input *os.File) (*Terminal, error) {
	return nil, curated.Errorf(NotTerminal, "unsupported platform")
}

func (term *Terminal) CanonicalMode() error { return nil }
func (term *Terminal) CBreakMode() error    { return nil }

func (term *Terminal) Read(p []byte) (int, error) {
	return 0, curated.Errorf(NotTerminal, "unsupported platform")
}
