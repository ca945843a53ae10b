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
	"github.com/jetsetilly/gophervic/hardware/interrupts"
	"github.com/jetsetilly/gophervic/hardware/limiter"
	"github.com/jetsetilly/gophervic/hardware/memory"
	"github.com/jetsetilly/gophervic/hardware/memory/bus"
	"github.com/jetsetilly/gophervic/hardware/preferences"
	"github.com/jetsetilly/gophervic/hardware/via"
	"github.com/jetsetilly/gophervic/logger"
	"github.com/jetsetilly/gophervic/prefs"
	"github.com/jetsetilly/gophervic/statsview"
)

// CPU is the interface to the 6502 used by the Machine. The CPU is expected to
// access memory through the memory.Bus it was created with.
type CPU interface {
	// Step executes a single instruction (or services a pending interrupt)
	// and returns the number of cycles consumed
	Step() (int, error)

	Reset() error
	SetPC(address uint16)

	// the IRQ line is a level. NMI() is called once for every edge of the
	// NMI line
	SetIRQ(asserted bool)
	NMI()
}

// VideoStepper is an optional interface for the video chip. If the video chip
// passed to NewMachine() implements it, Step() is called with the number of
// cycles consumed by every CPU instruction.
type VideoStepper interface {
	Step(cycles int)
}

// Machine is the emulated VIC-20. It wires the VIAs, memory and input together
// and drives the CPU and video collaborators.
type Machine struct {
	Prefs *preferences.Preferences

	CPU   CPU
	Mem   *memory.Bus
	Video bus.VideoChip

	// VIA1 is the NMI source and VIA2 is the IRQ source
	VIA1 *via.VIA
	VIA2 *via.VIA

	Interrupts *interrupts.Aggregator
	Limiter    *limiter.Limiter
	Input      *input.Input

	// running count of CPU cycles. the count wraps around
	Cycles uint32

	// cycle count at the most recent call to the limiter
	lastSync     uint32
	syncInterval uint32

	videoStepper VideoStepper
}

// NewMachine is the preferred method of initialisation for the Machine type.
//
// The CPU must access memory through the memory.Bus in the Mem field. Because
// the CPU is created before the machine, the usual pattern is to create the
// CPU with a forwarding bus or to use SetCPU() once the Machine exists.
//
// The video chip can be nil. If the preferences argument is nil a new
// instance of preferences.Preferences is created.
func NewMachine(cpu CPU, video bus.VideoChip, p *preferences.Preferences) (*Machine, error) {
	if p == nil {
		var err error
		p, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	m := &Machine{
		Prefs: p,
		Video: video,
		Input: input.NewInput(input.Keymap{}, input.CharMap{}, p.TypeHold.Get().(int)),
	}

	m.VIA1 = via.NewVIA("via1", via1Ports{inp: m.Input})
	m.VIA2 = via.NewVIA("via2", via2Ports{inp: m.Input})
	m.Mem = memory.NewBus(m.VIA1, m.VIA2, video)
	m.Mem.SetExpansion(p.ExpansionOption())
	m.Limiter = limiter.NewLimiter(p.ClockRate(), nil)
	m.Limiter.Active = p.LimiterActive.Get().(bool)
	m.Limiter.SetSpeed(p.Speed.Get().(float64))
	m.syncInterval = uint32(p.SyncInterval.Get().(int))
	m.Input.Joystick.Emulation = p.JoyEmulationMode()
	m.Input.Joystick.Threshold = p.PointerThreshold.Get().(int)

	m.SetCPU(cpu)
	if vs, ok := video.(VideoStepper); ok {
		m.videoStepper = vs
	}

	m.setPreferenceHooks()

	if p.StatsView.Get().(bool) {
		statsview.Launch(p.StatsViewAddr.Get().(string))
	}

	return m, nil
}

// SetCPU attaches the CPU to the machine. Any existing CPU is forgotten.
func (m *Machine) SetCPU(cpu CPU) {
	m.CPU = cpu
	m.Interrupts = interrupts.NewAggregator(m.VIA1, m.VIA2, cpu)
}

// SetKeymap changes how host keys are translated to the keyboard matrix. The
// cursor map is used when the joystick emulation mode is cursor keys and can
// be nil.
func (m *Machine) SetKeymap(keymap input.Keymap, cursor input.CursorMap) {
	m.Input.Keymap = keymap
	m.Input.Joystick.Cursor = cursor
}

// SetCharMap changes how characters given to Type() are translated to the
// keyboard matrix.
func (m *Machine) SetCharMap(charMap input.CharMap) {
	m.Input.Injector.SetCharMap(charMap)
}

// changes to the preferences are applied to the machine immediately. the
// preferences should only be changed from the emulation goroutine.
func (m *Machine) setPreferenceHooks() {
	m.Prefs.Spec.SetHookPost(func(v prefs.Value) error {
		m.Limiter.SetClockRate(m.Prefs.ClockRate())
		return nil
	})
	m.Prefs.Expansion.SetHookPost(func(v prefs.Value) error {
		m.Mem.SetExpansion(m.Prefs.ExpansionOption())
		return nil
	})
	m.Prefs.LimiterActive.SetHookPost(func(v prefs.Value) error {
		m.Limiter.Active = v.(bool)
		return nil
	})
	m.Prefs.SyncInterval.SetHookPost(func(v prefs.Value) error {
		m.syncInterval = uint32(v.(int))
		return nil
	})
	m.Prefs.Speed.SetHookPost(func(v prefs.Value) error {
		m.Limiter.SetSpeed(v.(float64))
		return nil
	})
	m.Prefs.TypeHold.SetHookPost(func(v prefs.Value) error {
		m.Input.Injector.SetHold(v.(int))
		return nil
	})
	m.Prefs.JoyEmulation.SetHookPost(func(v prefs.Value) error {
		m.Input.Joystick.Emulation = m.Prefs.JoyEmulationMode()
		m.Input.Joystick.Reset()
		return nil
	})
	m.Prefs.PointerThreshold.SetHookPost(func(v prefs.Value) error {
		m.Input.Joystick.Threshold = v.(int)
		return nil
	})
	m.Prefs.StatsView.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			statsview.Launch(m.Prefs.StatsViewAddr.Get().(string))
		}
		return nil
	})
}

// Reset the machine. Both VIAs and the fitted RAM are reset along with the
// input state. The CPU is reset last so that it fetches the reset vector from
// a machine in its power-on state.
//
// Cartridges and expansion RAM are unaffected.
func (m *Machine) Reset() error {
	m.VIA1.Reset()
	m.VIA2.Reset()
	m.Mem.Clear()
	m.Input.Reset()
	m.Interrupts.Reset()
	m.Limiter.Reset()
	m.lastSync = m.Cycles

	logger.Log(logger.Allow, "machine", "reset")

	if m.CPU == nil {
		return nil
	}
	return m.CPU.Reset()
}
