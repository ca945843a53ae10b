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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/hardware/input"
	"github.com/jetsetilly/gophervic/test"
)

var shift = input.Cell{Row: 3, Column: 1}

var keymap = input.Keymap{
	"A":       {Row: 2, Column: 1},
	"S":       {Row: 5, Column: 1},
	"SHIFT":   shift,
	"RESTORE": input.Restore,
	"UP":      {Row: 7, Column: 3},
}

var charMap = input.CharMap{
	'a': {{Row: 2, Column: 1}},
	's': {{Row: 5, Column: 1}},
	'A': {shift, {Row: 2, Column: 1}},
}

func TestMatrixScan(t *testing.T) {
	var mx input.Matrix
	mx.Set(input.Cell{Row: 2, Column: 1}, true)
	mx.Set(input.Cell{Row: 5, Column: 6}, true)

	// nothing driven
	test.ExpectEquality(t, mx.ScanRows(0xff), 0xff)

	// column 1 driven
	test.ExpectEquality(t, mx.ScanRows(0xfd), 0xfb)

	// all columns driven
	test.ExpectEquality(t, mx.ScanRows(0x00), 0xdb)

	// reverse direction
	test.ExpectEquality(t, mx.ScanColumns(0xdf), 0xbf)
	test.ExpectEquality(t, mx.ScanColumns(0x00), 0xbd)

	// cells outside the matrix are ignored
	mx.Set(input.Cell{Row: 8, Column: 0}, true)
	test.ExpectFailure(t, mx.Pressed(input.Cell{Row: 8, Column: 0}))

	test.ExpectSuccess(t, mx.Any())
	mx.Reset()
	test.ExpectFailure(t, mx.Any())
	test.ExpectEquality(t, mx.ScanRows(0x00), 0xff)
}

func TestKeymap(t *testing.T) {
	inp := input.NewInput(keymap, charMap, 10)
	test.ExpectSuccess(t, inp.SetKey("A", true))
	test.ExpectSuccess(t, inp.Matrix.Pressed(input.Cell{Row: 2, Column: 1}))

	test.ExpectSuccess(t, inp.SetKey("RESTORE", true))
	test.ExpectSuccess(t, inp.Restore())

	err := inp.SetKey("F13", true)
	test.ExpectSuccess(t, curated.Is(err, input.UnmappedKey))

	inp.ResetKeyboard()
	test.ExpectFailure(t, inp.Matrix.Any())
	test.ExpectFailure(t, inp.Restore())
}

func TestInjector(t *testing.T) {
	inp := input.NewInput(keymap, charMap, 10)
	a := input.Cell{Row: 2, Column: 1}
	s := input.Cell{Row: 5, Column: 1}

	// unmapped characters are skipped
	inp.Injector.Type("a?A")
	test.ExpectSuccess(t, inp.Injector.Active())

	inp.Step(1)
	test.ExpectSuccess(t, inp.Matrix.Pressed(a))
	test.ExpectEquality(t, inp.Injector.Pending(), "?A")

	// held for the hold period
	inp.Step(9)
	test.ExpectSuccess(t, inp.Matrix.Pressed(a))
	inp.Step(1)
	test.ExpectFailure(t, inp.Matrix.Pressed(a))

	// released for the hold period then the next character
	inp.Step(9)
	test.ExpectFailure(t, inp.Matrix.Any())
	inp.Step(1)
	test.ExpectSuccess(t, inp.Matrix.Pressed(a))
	test.ExpectSuccess(t, inp.Matrix.Pressed(shift))
	test.ExpectEquality(t, inp.Injector.Pending(), "")

	inp.Step(10)
	test.ExpectFailure(t, inp.Matrix.Any())
	test.ExpectFailure(t, inp.Injector.Active())

	// a new string replaces the remainder of an old one
	inp.Injector.Type("aaaa")
	inp.Step(10)
	inp.Injector.Type("s")
	inp.Step(10)
	inp.Step(10)
	test.ExpectSuccess(t, inp.Matrix.Pressed(s))
	inp.Step(10)
	inp.Step(10)
	test.ExpectFailure(t, inp.Injector.Active())
	test.ExpectFailure(t, inp.Matrix.Any())
}

func TestJoystickBits(t *testing.T) {
	var joy input.Joystick
	test.ExpectEquality(t, joy.VIA1Bits(), input.JoyVIA1Mask)
	test.ExpectEquality(t, joy.VIA2Bits(), input.JoyVIA2Mask)

	joy.Set(input.Up, true)
	joy.Set(input.Fire, true)
	test.ExpectEquality(t, joy.VIA1Bits(), input.JoyDownBit|input.JoyLeftBit)

	joy.Set(input.Right, true)
	test.ExpectEquality(t, joy.VIA2Bits(), 0x00)
	test.ExpectEquality(t, joy.String(), "up right fire")

	joy.Reset()
	test.ExpectEquality(t, joy.VIA1Bits(), input.JoyVIA1Mask)
	test.ExpectEquality(t, joy.VIA2Bits(), input.JoyRightBit)
}

func TestJoystickEmulation(t *testing.T) {
	inp := input.NewInput(keymap, charMap, 10)

	// cursor keys go to the keyboard when emulation is off
	test.ExpectSuccess(t, inp.SetKey("UP", true))
	test.ExpectFailure(t, inp.Joystick.Get(input.Up))
	test.ExpectSuccess(t, inp.Matrix.Pressed(input.Cell{Row: 7, Column: 3}))
	inp.ResetKeyboard()

	inp.Joystick.Emulation = input.JoyEmulationCursor
	inp.Joystick.Cursor = input.CursorMap{"UP": input.Up}
	test.ExpectSuccess(t, inp.SetKey("UP", true))
	test.ExpectSuccess(t, inp.Joystick.Get(input.Up))
	test.ExpectFailure(t, inp.Matrix.Any())

	// pointer motion is ignored unless the mode is selected
	inp.Joystick.PointerMotion(100, 0)
	test.ExpectFailure(t, inp.Joystick.Get(input.Right))

	inp.Joystick.Emulation = input.JoyEmulationPointer
	inp.Joystick.Threshold = 8
	inp.Joystick.PointerMotion(9, -20)
	test.ExpectSuccess(t, inp.Joystick.Get(input.Right))
	test.ExpectSuccess(t, inp.Joystick.Get(input.Up))
	test.ExpectFailure(t, inp.Joystick.Get(input.Left))
	inp.Joystick.PointerMotion(8, 0)
	test.ExpectFailure(t, inp.Joystick.Get(input.Right))
	test.ExpectFailure(t, inp.Joystick.Get(input.Up))

	inp.Joystick.PointerButton(true)
	test.ExpectSuccess(t, inp.Joystick.Get(input.Fire))

	inp.ResetJoystick()
	test.ExpectFailure(t, inp.Joystick.Get(input.Fire))
}

func TestParseJoyEmulation(t *testing.T) {
	e, err := input.ParseJoyEmulation("Cursor")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, e, input.JoyEmulationCursor)

	_, err = input.ParseJoyEmulation("paddle")
	test.ExpectSuccess(t, curated.Is(err, input.UnknownJoyEmulation))
}

func TestPushedEvents(t *testing.T) {
	inp := input.NewInput(keymap, charMap, 10)

	done := make(chan error)
	go func() {
		done <- inp.PushEvent(input.InputEvent{Event: input.KeyDown, Data: input.Key("S")})
	}()
	test.ExpectSuccess(t, <-done)

	test.ExpectSuccess(t, inp.PushEvent(input.InputEvent{Event: input.JoyDown, Data: input.Left}))
	test.ExpectSuccess(t, inp.PushEvent(input.InputEvent{Event: input.TypeString, Data: "a"}))

	// nothing happens until the queue is drained
	test.ExpectFailure(t, inp.Matrix.Any())
	test.ExpectSuccess(t, inp.HandlePushed())
	test.ExpectSuccess(t, inp.Matrix.Pressed(input.Cell{Row: 5, Column: 1}))
	test.ExpectSuccess(t, inp.Joystick.Get(input.Left))
	test.ExpectEquality(t, inp.Injector.Pending(), "a")

	// bad data is reported once the queue has been drained
	test.ExpectSuccess(t, inp.PushEvent(input.InputEvent{Event: input.KeyDown, Data: 10}))
	test.ExpectSuccess(t, inp.PushEvent(input.InputEvent{Event: input.JoyUp, Data: input.Left}))
	err := inp.HandlePushed()
	test.ExpectSuccess(t, curated.Is(err, input.BadEventData))
	test.ExpectFailure(t, inp.Joystick.Get(input.Left))

	// keys not in the keymap are ignored
	test.ExpectSuccess(t, inp.PushEvent(input.InputEvent{Event: input.KeyDown, Data: input.Key("F12")}))
	test.ExpectSuccess(t, inp.PushEvent(input.InputEvent{Event: input.KeyUp, Data: input.Key("S")}))
	test.ExpectSuccess(t, inp.HandlePushed())
	test.ExpectFailure(t, inp.Matrix.Pressed(input.Cell{Row: 5, Column: 1}))
	test.ExpectSuccess(t, inp.HandleInputEvent(input.InputEvent{Event: input.KeyDown, Data: input.Key("F12")}))

	// the queue has a limit
	for i := 0; i < 64; i++ {
		test.DemandSuccess(t, inp.PushEvent(input.InputEvent{Event: input.KeyUp, Data: input.Key("S")}))
	}
	err = inp.PushEvent(input.InputEvent{Event: input.KeyUp, Data: input.Key("S")})
	test.ExpectSuccess(t, curated.Is(err, input.QueueFull))

	inp.Reset()
	test.ExpectSuccess(t, inp.HandlePushed())
	test.ExpectFailure(t, inp.Matrix.Any())
}
