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

// Package input holds the state of the VIC-20 keyboard and joystick as seen by
// the VIA chips.
//
// The keyboard is an 8x8 matrix of switches. The Matrix type records which
// switches are closed and answers scan requests from the VIA: given the lines
// driven low on one side of the matrix, which lines are pulled low on the
// other side.
//
// Host keys are translated to matrix cells with a Keymap. The keymap is
// supplied by the host because the layout of host keyboards varies. Likewise
// the CharMap used by the Injector to type strings is supplied by the host.
//
// The Injector types a string into the keyboard matrix one character at a
// time. Only one string can be pending at a time. A call to Type() while a
// string is still being typed replaces the remainder of the previous string.
//
// The Joystick records the state of the single digital joystick. It can be
// driven directly or emulated with the cursor keys or with pointer motion.
//
// Input events can be pushed onto a queue from any goroutine with
// PushEvent(). The queue is drained by HandlePushed(), which must be called
// from the emulation goroutine. Host keys that are not in the keymap are
// logged and otherwise ignored.
package input
