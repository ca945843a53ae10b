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

// Package hardware is the base package for the VIC-20 emulation. The Machine
// type connects the VIAs, the memory bus and the input state and drives the
// CPU and video chip collaborators.
//
// The CPU is supplied by the host and must access memory through the
// memory.Bus in the Machine's Mem field. Because the bus is created by
// NewMachine(), the CPU is usually attached afterwards with SetCPU():
//
//	m, err := hardware.NewMachine(nil, nil, nil)
//	if err != nil {
//		return err
//	}
//	m.SetCPU(newCPU(m.Mem))
//	err = m.Reset()
//
// The machine can then be stepped one instruction at a time with Step() or
// run with Run(). Run() takes a function that is called after every
// instruction and returns the next govern.State.
//
// VIA1 is connected to the NMI line of the CPU and VIA2 to the IRQ line. The
// RESTORE key is connected to CA1 of VIA1. The keyboard matrix is connected
// to both ports of VIA2. The joystick is spread over port A of VIA1 and bit 7
// of port B of VIA2.
package hardware
