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

package input

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophervic/curated"
)

// Sentinel error returned by ParseJoyEmulation().
const (
	UnknownJoyEmulation = "input: unknown joystick emulation (%s)"
)

// Direction is one of the switches in the joystick.
type Direction int

// List of valid Direction values.
const (
	Up Direction = iota
	Down
	Left
	Right
	Fire

	NumDirections
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Fire:
		return "fire"
	}
	return "undefined"
}

// The joystick switches are wired to VIA1 port A and VIA2 port B. A closed
// switch reads as zero.
const (
	JoyUpBit    = uint8(0x04) // VIA1 PA2
	JoyDownBit  = uint8(0x08) // VIA1 PA3
	JoyLeftBit  = uint8(0x10) // VIA1 PA4
	JoyFireBit  = uint8(0x20) // VIA1 PA5
	JoyRightBit = uint8(0x80) // VIA2 PB7

	JoyVIA1Mask = JoyUpBit | JoyDownBit | JoyLeftBit | JoyFireBit
	JoyVIA2Mask = JoyRightBit
)

// JoyEmulation selects how the joystick is driven by the host.
type JoyEmulation int

// List of valid JoyEmulation values.
const (
	// the joystick is only driven by calls to Joystick.Set()
	JoyEmulationNone JoyEmulation = iota

	// the cursor keys in the CursorMap drive the joystick
	JoyEmulationCursor

	// pointer motion drives the joystick
	JoyEmulationPointer
)

func (e JoyEmulation) String() string {
	switch e {
	case JoyEmulationNone:
		return "none"
	case JoyEmulationCursor:
		return "cursor"
	case JoyEmulationPointer:
		return "pointer"
	}
	return "undefined"
}

// ParseJoyEmulation converts the string to a JoyEmulation value.
func ParseJoyEmulation(s string) (JoyEmulation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return JoyEmulationNone, nil
	case "cursor":
		return JoyEmulationCursor, nil
	case "pointer", "mouse":
		return JoyEmulationPointer, nil
	}
	return JoyEmulationNone, curated.Errorf(UnknownJoyEmulation, s)
}

// CursorMap translates host keys to joystick directions when the emulation
// mode is JoyEmulationCursor.
type CursorMap map[Key]Direction

// Joystick is the single digital joystick of the VIC-20.
type Joystick struct {
	state [NumDirections]bool

	Emulation JoyEmulation
	Cursor    CursorMap

	// the amount of pointer motion in one call to PointerMotion() required
	// to close a direction switch
	Threshold int
}

func (joy *Joystick) String() string {
	s := strings.Builder{}
	for d := Up; d < NumDirections; d++ {
		if joy.state[d] {
			s.WriteString(fmt.Sprintf("%s ", d))
		}
	}
	return strings.TrimSpace(s.String())
}

// Reset releases every switch. The emulation mode is unchanged.
func (joy *Joystick) Reset() {
	joy.state = [NumDirections]bool{}
}

// Set the state of a switch.
func (joy *Joystick) Set(d Direction, down bool) {
	if d < 0 || d >= NumDirections {
		return
	}
	joy.state[d] = down
}

// Get the state of a switch.
func (joy *Joystick) Get(d Direction) bool {
	if d < 0 || d >= NumDirections {
		return false
	}
	return joy.state[d]
}

// CursorKey handles a host key when the emulation mode is JoyEmulationCursor.
// Returns true if the key was consumed by the joystick.
func (joy *Joystick) CursorKey(key Key, down bool) bool {
	if joy.Emulation != JoyEmulationCursor {
		return false
	}
	d, ok := joy.Cursor[key]
	if !ok {
		return false
	}
	joy.Set(d, down)
	return true
}

// PointerMotion handles pointer motion when the emulation mode is
// JoyEmulationPointer. Motion beyond the threshold in either axis closes the
// switch for that direction and motion within the threshold releases both
// switches for the axis.
func (joy *Joystick) PointerMotion(dx int, dy int) {
	if joy.Emulation != JoyEmulationPointer {
		return
	}
	joy.state[Left] = dx < -joy.Threshold
	joy.state[Right] = dx > joy.Threshold
	joy.state[Up] = dy < -joy.Threshold
	joy.state[Down] = dy > joy.Threshold
}

// PointerButton handles the pointer button when the emulation mode is
// JoyEmulationPointer.
func (joy *Joystick) PointerButton(down bool) {
	if joy.Emulation != JoyEmulationPointer {
		return
	}
	joy.state[Fire] = down
}

// VIA1Bits returns the joystick bits for VIA1 port A. Only the bits in
// JoyVIA1Mask are meaningful.
func (joy *Joystick) VIA1Bits() uint8 {
	v := JoyVIA1Mask
	if joy.state[Up] {
		v &^= JoyUpBit
	}
	if joy.state[Down] {
		v &^= JoyDownBit
	}
	if joy.state[Left] {
		v &^= JoyLeftBit
	}
	if joy.state[Fire] {
		v &^= JoyFireBit
	}
	return v
}

// VIA2Bits returns the joystick bits for VIA2 port B. Only the bits in
// JoyVIA2Mask are meaningful.
func (joy *Joystick) VIA2Bits() uint8 {
	if joy.state[Right] {
		return 0x00
	}
	return JoyRightBit
}
