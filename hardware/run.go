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
	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/hardware/govern"
)

// Sentinel errors returned by Run().
const (
	UnsupportedState = "machine: unsupported emulation state (%v) in Run() function"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running. The speed of the emulation is governed by
// the limiter.
//
// The continueCheck function is called after every instruction and decides
// whether the loop should continue. Run returns when the state is Ending or
// Initialising. A nil continueCheck runs the machine until an error occurs.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if _, err := m.Step(); err != nil {
				return err
			}
		case govern.Paused:
			// input is still handled while paused so that the queue does not
			// fill up
			_ = m.Input.HandlePushed()
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the machine until at least the number of cycles have been
// executed. The limiter is consulted as normal.
func (m *Machine) RunForCycles(cycles int, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	for cycles > 0 {
		n, err := m.Step()
		if err != nil {
			return err
		}
		cycles -= n

		state, err := continueCheck()
		if err != nil {
			return err
		}
		if state == govern.Ending || state == govern.Initialising {
			return nil
		}
	}

	return nil
}
