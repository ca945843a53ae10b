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
	"github.com/jetsetilly/gophervic/hardware/interrupts"
	"github.com/jetsetilly/gophervic/hardware/memory"
	"github.com/jetsetilly/gophervic/hardware/via"
)

// State stores the parts of the machine that can be snapshotted. The CPU and
// video chip are collaborators and are not included.
type State struct {
	Mem    *memory.Bus
	VIA1   *via.VIA
	VIA2   *via.VIA
	Cycles uint32
}

// Snapshot creates a copy of the State.
func (s *State) Snapshot() *State {
	return &State{
		Mem:    s.Mem.Snapshot(),
		VIA1:   s.VIA1.Snapshot(),
		VIA2:   s.VIA2.Snapshot(),
		Cycles: s.Cycles,
	}
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	return &State{
		Mem:    m.Mem.Snapshot(),
		VIA1:   m.VIA1.Snapshot(),
		VIA2:   m.VIA2.Snapshot(),
		Cycles: m.Cycles,
	}
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing so that the stored
	// state is not changed by the running machine
	state = state.Snapshot()

	m.VIA1 = state.VIA1
	m.VIA2 = state.VIA2
	m.VIA1.Plumb(via1Ports{inp: m.Input})
	m.VIA2.Plumb(via2Ports{inp: m.Input})

	m.Mem = state.Mem
	m.Mem.VIA1 = m.VIA1
	m.Mem.VIA2 = m.VIA2
	m.Mem.Video = m.Video

	// an NMI that was active when the state was taken has already been seen
	// by the CPU
	m.Interrupts = interrupts.NewAggregator(m.VIA1, m.VIA2, m.CPU)
	m.Interrupts.Seed(m.VIA1.Interrupt(), m.VIA2.Interrupt())
	m.Cycles = state.Cycles
	m.lastSync = m.Cycles
	m.Limiter.Reset()

	// keys held down when the state was taken are released
	m.Input.Reset()
}
