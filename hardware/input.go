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

package hardware

import (
	"github.com/jetsetilly/gophervic/hardware/input"
)

// The functions in this file change the input state immediately and must be
// called from the emulation goroutine. Other goroutines should use
// PushEvent().

// Type queues the string to be typed on the emulated keyboard. Any string
// still being typed is replaced.
func (m *Machine) Type(s string) {
	m.Input.Injector.Type(s)
}

// SetKeyboard presses or releases a host key.
func (m *Machine) SetKeyboard(key input.Key, down bool) error {
	return m.Input.SetKey(key, down)
}

// ResetKeyboard releases every key and stops any typing in progress.
func (m *Machine) ResetKeyboard() {
	m.Input.ResetKeyboard()
}

// SetJoy sets the state of a joystick switch.
func (m *Machine) SetJoy(d input.Direction, down bool) {
	m.Input.Joystick.Set(d, down)
}

// ResetJoy releases every joystick switch.
func (m *Machine) ResetJoy() {
	m.Input.ResetJoystick()
}

// SetJoyEmulation changes how host input is translated to joystick input. The
// preferences are updated to match.
func (m *Machine) SetJoyEmulation(e input.JoyEmulation) error {
	return m.Prefs.JoyEmulation.Set(e.String())
}

// PushEvent queues an input event. It will be handled during the next call to
// Step(). Safe to call from any goroutine.
func (m *Machine) PushEvent(ev input.InputEvent) error {
	return m.Input.PushEvent(ev)
}
