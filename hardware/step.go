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
	"github.com/jetsetilly/gophervic/hardware/via"
)

// Sentinel errors returned by the hardware package.
const (
	NoCPU = "machine: no CPU attached"
)

// Step the machine by one CPU instruction. Returns the number of cycles
// consumed by the instruction.
//
// The order of operation for every step is:
//
//	the CPU executes an instruction, accessing the VIAs through the bus
//	both VIAs are advanced by the cycles consumed and the CPU interrupt
//	lines are updated
//	the video chip is advanced (if it implements VideoStepper)
//	the limiter is consulted if a sync point has been reached
//	input events from other goroutines are handled and the character
//	injector is advanced
//
// Interrupts raised during the step are seen by the CPU at the start of the
// next step.
func (m *Machine) Step() (int, error) {
	if m.CPU == nil {
		return 0, curated.Errorf(NoCPU)
	}

	cycles, err := m.CPU.Step()
	if err != nil {
		return cycles, err
	}

	m.tick(cycles)

	if m.Cycles-m.lastSync >= m.syncInterval {
		m.lastSync = m.Cycles
		m.Limiter.Sync(m.Cycles)
	}

	// bad events have been logged by HandlePushed() and are not fatal to
	// the emulation
	_ = m.Input.HandlePushed()
	m.Input.Step(cycles)

	return cycles, nil
}

// tick advances everything other than the CPU by the number of cycles.
func (m *Machine) tick(cycles int) {
	// RESTORE key is wired to CA1 of VIA1. the line is held high when the
	// key is up
	m.VIA1.SetControlLine(via.CA1, !m.Input.Restore())

	m.Interrupts.Tick(cycles)

	if m.videoStepper != nil {
		m.videoStepper.Step(cycles)
	}

	m.Cycles += uint32(cycles)
}
