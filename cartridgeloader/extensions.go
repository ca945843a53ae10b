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
	"path"
	"strings"
)

// Kind indicates how the loaded data should be attached to the machine.
type Kind int

// List of valid Kind values.
const (
	Unknown Kind = iota

	// a program image. the first two bytes are the load address
	Program

	// a cartridge image. the first two bytes are the destination address
	// in the same manner as a program image
	Cartridge
)

func (k Kind) String() string {
	switch k {
	case Program:
		return "program"
	case Cartridge:
		return "cartridge"
	}
	return "unknown"
}

// FileExtensions is the list of file extensions that are recognised by
// KindFromFilename(). The index of the extension is the Kind it implies.
var FileExtensions = [...]string{
	Program:   ".PRG",
	Cartridge: ".CRT",
}

// KindFromFilename returns the Kind implied by the filename extension. The
// comparison is not case sensitive.
func KindFromFilename(filename string) Kind {
	ext := strings.ToUpper(path.Ext(filename))
	if ext == "" {
		return Unknown
	}
	for k, e := range FileExtensions {
		if e == ext {
			return Kind(k)
		}
	}
	return Unknown
}
