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
	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/logger"
)

// Sentinel errors returned by the Input type.
const (
	UnhandledEvent = "input: unhandled event (%v)"
	UnmappedKey    = "input: key not in keymap (%v)"
	QueueFull      = "input: pushed event queue is full: input dropped"
	BadEventData   = "input: bad data for event %v (%T)"
)

// Event identifies the type of an InputEvent.
type Event int

// List of valid Event values.
const (
	// data is Key
	KeyDown Event = iota
	KeyUp

	// data is Direction
	JoyDown
	JoyUp

	// data is [2]int{dx, dy}
	PointerMotion

	// data is bool
	PointerButton

	// data is string
	TypeString
)

func (e Event) String() string {
	switch e {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case JoyDown:
		return "JoyDown"
	case JoyUp:
		return "JoyUp"
	case PointerMotion:
		return "PointerMotion"
	case PointerButton:
		return "PointerButton"
	case TypeString:
		return "TypeString"
	}
	return "undefined"
}

// InputEvent is an event and the data for that event.
type InputEvent struct {
	Event Event
	Data  any
}

// Input is the complete input state of the machine.
type Input struct {
	Matrix   Matrix
	Joystick Joystick
	Injector *Injector
	Keymap   Keymap

	// state of the RESTORE key
	restore bool

	// events pushed onto the input queue
	pushed chan InputEvent
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(keymap Keymap, charMap CharMap, hold int) *Input {
	inp := &Input{
		Keymap: keymap,
		pushed: make(chan InputEvent, 64),
	}
	inp.Injector = NewInjector(&inp.Matrix, charMap, hold)
	return inp
}

// Restore returns true if the RESTORE key is down.
func (inp *Input) Restore() bool {
	return inp.restore
}

// SetRestore sets the state of the RESTORE key.
func (inp *Input) SetRestore(down bool) {
	inp.restore = down
}

// ResetKeyboard releases every key, including the RESTORE key, and forgets any
// string being typed.
func (inp *Input) ResetKeyboard() {
	inp.Injector.Reset()
	inp.Matrix.Reset()
	inp.restore = false
}

// ResetJoystick releases every joystick switch.
func (inp *Input) ResetJoystick() {
	inp.Joystick.Reset()
}

// Reset the keyboard and the joystick. Events waiting in the queue are
// discarded.
func (inp *Input) Reset() {
	inp.ResetKeyboard()
	inp.ResetJoystick()
	for {
		select {
		case <-inp.pushed:
		default:
			return
		}
	}
}

// SetKey handles a host key. The key is offered to the joystick first if
// cursor key emulation is active.
func (inp *Input) SetKey(key Key, down bool) error {
	if inp.Joystick.CursorKey(key, down) {
		return nil
	}
	cell, ok := inp.Keymap[key]
	if !ok {
		return curated.Errorf(UnmappedKey, key)
	}
	if cell == Restore {
		inp.restore = down
		return nil
	}
	inp.Matrix.Set(cell, down)
	return nil
}

// Step advances the injector by the number of cycles.
func (inp *Input) Step(cycles int) {
	inp.Injector.Step(cycles)
}

// HandleInputEvent applies the event immediately. Must only be called from
// the emulation goroutine.
func (inp *Input) HandleInputEvent(ev InputEvent) error {
	switch ev.Event {
	case KeyDown, KeyUp:
		key, ok := ev.Data.(Key)
		if !ok {
			return curated.Errorf(BadEventData, ev.Event, ev.Data)
		}
		err := inp.SetKey(key, ev.Event == KeyDown)
		if curated.Is(err, UnmappedKey) {
			// host keyboards have keys that the VIC-20 does not
			logger.Log(logger.Allow, "input", err)
			return nil
		}
		return err

	case JoyDown, JoyUp:
		d, ok := ev.Data.(Direction)
		if !ok {
			return curated.Errorf(BadEventData, ev.Event, ev.Data)
		}
		inp.Joystick.Set(d, ev.Event == JoyDown)

	case PointerMotion:
		m, ok := ev.Data.([2]int)
		if !ok {
			return curated.Errorf(BadEventData, ev.Event, ev.Data)
		}
		inp.Joystick.PointerMotion(m[0], m[1])

	case PointerButton:
		b, ok := ev.Data.(bool)
		if !ok {
			return curated.Errorf(BadEventData, ev.Event, ev.Data)
		}
		inp.Joystick.PointerButton(b)

	case TypeString:
		s, ok := ev.Data.(string)
		if !ok {
			return curated.Errorf(BadEventData, ev.Event, ev.Data)
		}
		inp.Injector.Type(s)

	default:
		return curated.Errorf(UnhandledEvent, ev.Event)
	}

	return nil
}

// PushEvent queues the event for handling by HandlePushed(). Safe to call from
// any goroutine.
func (inp *Input) PushEvent(ev InputEvent) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull)
	}
	return nil
}

// HandlePushed applies every event waiting in the queue. An event that
// cannot be handled is logged and does not prevent the remaining events from
// being applied. The first such error is returned once the queue is empty.
func (inp *Input) HandlePushed() error {
	var first error
	for {
		select {
		case ev := <-inp.pushed:
			if err := inp.HandleInputEvent(ev); err != nil {
				logger.Log(logger.Allow, "input", err)
				if first == nil {
					first = err
				}
			}
		default:
			return first
		}
	}
}
