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

// Package terminal feeds the host terminal to the emulated keyboard. The
// Terminal type switches the terminal between canonical and cbreak modes
// (using "github.com/pkg/term/termios") and Feed() forwards the characters
// read from the terminal to the machine as input events.
//
// A terminal provides characters rather than key presses and releases so the
// characters are typed on the emulated keyboard by the character injector.
package terminal
