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

// Package preferences holds the configurable values of the emulated machine.
// Default values can be overridden with the prefs command line stack before
// NewPreferences() is called.
package preferences

import (
	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/hardware/input"
	"github.com/jetsetilly/gophervic/hardware/limiter"
	"github.com/jetsetilly/gophervic/hardware/memory/banks"
	"github.com/jetsetilly/gophervic/prefs"
	"github.com/jetsetilly/gophervic/statsview"
)

// Sentinel errors returned when a preference is out of range.
const (
	NotPositive = "preferences: value must be greater than zero (%d)"
	SpeedRange  = "preferences: speed must be between %.1f and %.1f (%v)"
)

// Range of values accepted by the limiter speed preference.
const (
	MinSpeed = 0.1
	MaxSpeed = 10.0
)

// Keys used for each value in the preferences group.
const (
	KeySpec             = "machine.spec"
	KeyExpansion        = "machine.expansion"
	KeyLimiterActive    = "limiter.active"
	KeySyncInterval     = "limiter.syncinterval"
	KeySpeed            = "limiter.speed"
	KeyTypeHold         = "input.typehold"
	KeyJoyEmulation     = "input.joyemu"
	KeyPointerThreshold = "input.pointerthreshold"
	KeyStatsView        = "debug.statsview"
	KeyStatsViewAddr    = "debug.statsviewaddr"
)

// Preferences for the machine.
type Preferences struct {
	group *prefs.Group

	// television specification. PAL or NTSC
	Spec *prefs.String

	// expansion option name. see banks.ExpansionOptions()
	Expansion *prefs.String

	// whether the emulation is limited to the speed of the real machine
	LimiterActive *prefs.Bool

	// number of CPU cycles between calls to the limiter
	SyncInterval *prefs.Int

	// speed of the emulation as a multiple of the speed of the real machine
	Speed *prefs.Float

	// number of CPU cycles a key is held down or released for when typing a
	// string
	TypeHold *prefs.Int

	// joystick emulation mode. none, cursor or pointer
	JoyEmulation *prefs.String

	// pointer motion required to move the emulated joystick
	PointerThreshold *prefs.Int

	// launch the runtime statistics server. the server cannot be stopped
	// once it has been launched
	StatsView     *prefs.Bool
	StatsViewAddr *prefs.String
}

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group:            prefs.NewGroup(),
		Spec:             prefs.NewString("PAL"),
		Expansion:        prefs.NewString(banks.Unexpanded.String()),
		LimiterActive:    prefs.NewBool(true),
		SyncInterval:     prefs.NewInt(20000),
		Speed:            prefs.NewFloat(1.0),
		TypeHold:         prefs.NewInt(20000),
		JoyEmulation:     prefs.NewString(input.JoyEmulationNone.String()),
		PointerThreshold: prefs.NewInt(8),
		StatsView:        prefs.NewBool(false),
		StatsViewAddr:    prefs.NewString(statsview.DefaultAddress),
	}

	p.Spec.SetHookPre(func(v prefs.Value) error {
		_, err := limiter.ClockRate(v.(string))
		return err
	})
	p.Expansion.SetHookPre(func(v prefs.Value) error {
		_, err := banks.ParseExpansionOption(v.(string))
		return err
	})
	p.JoyEmulation.SetHookPre(func(v prefs.Value) error {
		_, err := input.ParseJoyEmulation(v.(string))
		return err
	})
	p.SyncInterval.SetHookPre(positive)
	p.TypeHold.SetHookPre(positive)
	p.Speed.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < MinSpeed || f > MaxSpeed {
			return curated.Errorf(SpeedRange, MinSpeed, MaxSpeed, v)
		}
		return nil
	})
	p.PointerThreshold.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(NotPositive, v)
		}
		return nil
	})

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{KeySpec, p.Spec},
		{KeyExpansion, p.Expansion},
		{KeyLimiterActive, p.LimiterActive},
		{KeySyncInterval, p.SyncInterval},
		{KeySpeed, p.Speed},
		{KeyTypeHold, p.TypeHold},
		{KeyJoyEmulation, p.JoyEmulation},
		{KeyPointerThreshold, p.PointerThreshold},
		{KeyStatsView, p.StatsView},
		{KeyStatsViewAddr, p.StatsViewAddr},
	} {
		if err := p.group.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.group.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

func positive(v prefs.Value) error {
	if v.(int) <= 0 {
		return curated.Errorf(NotPositive, v)
	}
	return nil
}

// Set the preference with the key to the value.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}

// Reset all preferences to their default values.
func (p *Preferences) Reset() error {
	return p.group.Reset()
}

// ClockRate returns the nominal CPU clock rate for the current television
// specification.
func (p *Preferences) ClockRate() float64 {
	hz, err := limiter.ClockRate(p.Spec.Get().(string))
	if err != nil {
		return limiter.ClockPAL
	}
	return hz
}

// ExpansionOption returns the current expansion option.
func (p *Preferences) ExpansionOption() banks.ExpansionOption {
	opt, _ := banks.ParseExpansionOption(p.Expansion.Get().(string))
	return opt
}

// JoyEmulationMode returns the current joystick emulation mode.
func (p *Preferences) JoyEmulationMode() input.JoyEmulation {
	e, _ := input.ParseJoyEmulation(p.JoyEmulation.Get().(string))
	return e
}
