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

//go:build linux || darwin

package terminal

import (
	"os"

	"github.com/jetsetilly/gophervic/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the host terminal used for input.
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is not changed until CBreakMode() is called.
func NewTerminal(input *os.File) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf(NoInput)
	}

	fi, err := input.Stat()
	if err != nil {
		return nil, curated.Errorf(NotTerminal, err)
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		return nil, curated.Errorf(NotTerminal, input.Name())
	}

	term := &Terminal{input: input}

	if err := termios.Tcgetattr(input.Fd(), &term.canAttr); err != nil {
		return nil, curated.Errorf(NotTerminal, err)
	}

	term.cbreakAttr = term.canAttr
	termios.Cfmakecbreak(&term.cbreakAttr)

	return term, nil
}

// CanonicalMode puts the terminal back into the mode it was in when
// NewTerminal() was called.
func (term *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(term.input.Fd(), termios.TCSANOW, &term.canAttr)
}

// CBreakMode puts the terminal into cbreak mode. Characters are available to
// Read() as soon as they are typed and are not echoed.
func (term *Terminal) CBreakMode() error {
	return termios.Tcsetattr(term.input.Fd(), termios.TCSANOW, &term.cbreakAttr)
}

// Read implements the io.Reader interface.
func (term *Terminal) Read(p []byte) (int, error) {
	return term.input.Read(p)
}
