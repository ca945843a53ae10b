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
	"github.com/jetsetilly/gophervic/hardware/via"
	"github.com/jetsetilly/gophervic/logger"
)

// mergeInput combines the output bits of a port register with the input bits
// supplied by the attached hardware.
func mergeInput(reg uint8, ddr uint8, in uint8) uint8 {
	return (reg & ddr) | (in &^ ddr)
}

// driven returns the port lines being pulled low by the VIA. A line is driven
// if it is an output and the output register has a zero in that bit. Other
// lines are returned as a one.
func driven(reg uint8, ddr uint8) uint8 {
	return ^(^reg & ddr)
}

// via1Ports connects the joystick switches and the RESTORE key to VIA1. The
// serial bus and the user port are not emulated and read high.
type via1Ports struct {
	inp *input.Input
}

func (p via1Ports) PortOutput(v *via.VIA, port via.Port) {
	logControlLine(v, port)
}

func (p via1Ports) PortInput(v *via.VIA, port via.Port) {
	switch port {
	case via.PortA:
		in := (0xff &^ input.JoyVIA1Mask) | p.inp.Joystick.VIA1Bits()
		v.SetPortA(mergeInput(v.PortA(), v.DDRA(), in))
	case via.PortB:
		v.SetPortB(mergeInput(v.PortB(), v.DDRB(), 0xff))
	}
}

// via2Ports connects the keyboard matrix and the joystick right switch to
// VIA2. Port B is normally the column output and port A the row input but
// the KERNAL reverses the directions when it is looking for a key press so
// both directions are supported.
type via2Ports struct {
	inp *input.Input
}

func (p via2Ports) PortOutput(v *via.VIA, port via.Port) {
	logControlLine(v, port)
}

func (p via2Ports) PortInput(v *via.VIA, port via.Port) {
	switch port {
	case via.PortA:
		rows := p.inp.Matrix.ScanRows(driven(v.PortB(), v.DDRB()))
		v.SetPortA(mergeInput(v.PortA(), v.DDRA(), rows))
	case via.PortB:
		columns := p.inp.Matrix.ScanColumns(driven(v.PortA(), v.DDRA()))
		columns &= (0xff &^ input.JoyVIA2Mask) | p.inp.Joystick.VIA2Bits()
		v.SetPortB(mergeInput(v.PortB(), v.DDRB(), columns))
	}
}

func logControlLine(v *via.VIA, port via.Port) {
	switch port {
	case via.PortCA2:
		logger.Logf(logger.Allow, v.Label(), "%s output %v", port, v.ControlLine(via.CA2))
	case via.PortCB2:
		logger.Logf(logger.Allow, v.Label(), "%s output %v", port, v.ControlLine(via.CB2))
	}
}
