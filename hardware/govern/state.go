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

// Package govern defines the states that control the flow of the emulation
// loop in hardware.Machine.Run().
package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Paused causes the run loop to spin without stepping the CPU. The pacing of
// the paused loop is the responsibility of the continue check function.
//
// Initialising and Ending both cause the run loop to return. Initialising
// indicates that the caller intends to change the machine (for example, to
// insert a new cartridge) and then resume.
const (
	Initialising State = iota
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}
