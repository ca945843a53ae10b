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

// Package via emulates the 6522 Versatile Interface Adapter. The VIC-20 has
// two of them. The first is wired to the NMI line of the CPU, the restore key
// and most of the joystick. The second is wired to the IRQ line, the keyboard
// matrix and the remaining joystick direction.
//
// The active parts of the VIA are:
//
//	Timer 1 (16 bit counter and 16 bit latch; one-shot or free running)
//	Timer 2 (16 bit counter and 8 bit latch; one-shot)
//	Port A and Port B (each bit individually an input or an output)
//	Control lines CA1, CA2, CB1 and CB2
//	Interrupt flag and interrupt enable registers
//
// The shift register is not emulated. Writes to it are stored and can be read
// back but have no other effect.
//
// Register access is through the ReadRegister() and WriteRegister()
// functions. Side effects of register access are exactly those of the real
// chip as far as the rest of the emulation requires: for example, reading
// the low byte of the Timer 1 counter clears the Timer 1 interrupt flag.
//
// What happens on the other side of the ports is outside the scope of the
// package. Instead an implementation of the Ports interface is notified when
// a port is written to and when a port is about to be read. The Ports
// implementation can then update the input bits of the port with the
// SetPortA() and SetPortB() functions.
//
// The chip is advanced with the Tick() function, which is given the number of
// cycles that have elapsed since the previous call.
package via
