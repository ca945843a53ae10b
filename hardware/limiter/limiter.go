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

package limiter

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gophervic/curated"
)

// Sentinel error returned by ClockRate().
const (
	UnknownSpec = "limiter: unknown television specification (%s)"
)

// Nominal CPU clock rates in Hz.
const (
	ClockPAL  = 1108405.0
	ClockNTSC = 1022727.0
)

// ClockRate returns the nominal CPU clock rate for the television
// specification. Valid specifications are PAL and NTSC.
func ClockRate(spec string) (float64, error) {
	switch strings.ToUpper(strings.TrimSpace(spec)) {
	case "PAL":
		return ClockPAL, nil
	case "NTSC":
		return ClockNTSC, nil
	}
	return 0, curated.Errorf(UnknownSpec, spec)
}

// the longest the limiter will ever suspend the caller for in a single call
// to Sync()
const maxWait = time.Second

// Clock is the source of wall clock time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Limiter paces the emulation against the wall clock.
type Limiter struct {
	// whether to suspend the caller when the emulation is ahead
	Active bool

	// nudge the limiter so that it doesn't wait for the specified number of
	// sync points
	Nudge atomic.Int32

	// the measured clock rate of the emulation over the most recent sync
	// period, in Hz
	Measured atomic.Value // float64

	clock Clock
	hz    float64

	// multiplier applied to hz when pacing. 1.0 is the speed of the real
	// machine
	speed float64

	// time and cycle count at the previous sync point
	synced     bool
	lastTime   time.Time
	lastCycles uint32

	// total time spent suspended
	waited time.Duration
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// If clock is nil the system clock is used.
func NewLimiter(hz float64, clock Clock) *Limiter {
	if clock == nil {
		clock = systemClock{}
	}
	lmtr := &Limiter{
		Active: true,
		clock:  clock,
		hz:     hz,
		speed:  1.0,
	}
	lmtr.Measured.Store(float64(0))
	return lmtr
}

// SetClockRate changes the nominal clock rate. The next call to Sync() will
// start a new sync period.
func (lmtr *Limiter) SetClockRate(hz float64) {
	lmtr.hz = hz
	lmtr.synced = false
}

// ClockRate returns the nominal clock rate.
func (lmtr *Limiter) ClockRate() float64 {
	return lmtr.hz
}

// SetSpeed changes the speed of the emulation relative to the nominal clock
// rate. A value of 2.0 runs the emulation at twice the speed of the real
// machine. Values of zero or less are ignored.
func (lmtr *Limiter) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	lmtr.speed = speed
	lmtr.synced = false
}

// Speed returns the value most recently given to SetSpeed().
func (lmtr *Limiter) Speed() float64 {
	return lmtr.speed
}

// Reset forgets the previous sync point. The next call to Sync() will start a
// new sync period without waiting.
func (lmtr *Limiter) Reset() {
	lmtr.synced = false
	lmtr.waited = 0
}

// Waited returns the total amount of time the limiter has suspended the
// caller since the last reset.
func (lmtr *Limiter) Waited() time.Duration {
	return lmtr.waited
}

// Sync is called periodically with the running cycle count of the CPU. The
// cycle count can wrap around.
func (lmtr *Limiter) Sync(cycles uint32) {
	now := lmtr.clock.Now()

	if !lmtr.synced || lmtr.hz <= 0 {
		lmtr.synced = true
		lmtr.lastTime = now
		lmtr.lastCycles = cycles
		return
	}

	// unsigned subtraction is correct even if the counter has wrapped since
	// the previous sync point
	delta := cycles - lmtr.lastCycles
	lmtr.lastCycles = cycles

	expected := time.Duration(float64(delta) * float64(time.Second) / (lmtr.hz * lmtr.speed))
	elapsed := now.Sub(lmtr.lastTime)

	nudge := lmtr.Nudge.Load()
	if nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
	} else if lmtr.Active && expected > elapsed {
		wait := min(expected-elapsed, maxWait)
		lmtr.clock.Sleep(wait)
		lmtr.waited += wait
		now = lmtr.clock.Now()
		elapsed = now.Sub(lmtr.lastTime)
	}

	if elapsed > 0 {
		lmtr.Measured.Store(float64(delta) / elapsed.Seconds())
	}

	lmtr.lastTime = now
}
