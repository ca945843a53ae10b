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

package via

// Line identifies one of the four control lines of the VIA.
type Line int

// List of valid Line values.
const (
	CA1 Line = iota
	CA2
	CB1
	CB2
)

func (l Line) String() string {
	switch l {
	case CA1:
		return "CA1"
	case CA2:
		return "CA2"
	case CB1:
		return "CB1"
	case CB2:
		return "CB2"
	}
	return "undefined"
}

// SetControlLine sets the level of a control line as driven by the hardware
// attached to the VIA. Edges on CA1 are detected on the next call to Tick().
//
// CB1 is stored but edges on it do not raise an interrupt. Nothing on the
// VIC-20 needs it.
func (via *VIA) SetControlLine(line Line, level bool) {
	switch line {
	case CA1:
		via.ca1 = level
	case CA2:
		via.ca2Prev = via.ca2
		via.ca2 = level
	case CB1:
		via.cb1Prev = via.cb1
		via.cb1 = level
	case CB2:
		via.cb2Prev = via.cb2
		via.cb2 = level
	}
}

// ControlLine returns the current level of a control line. For CA2 and CB2
// this will be the level most recently driven by a write to the PCR, if the
// PCR is in one of the manual output modes.
func (via *VIA) ControlLine(line Line) bool {
	switch line {
	case CA1:
		return via.ca1
	case CA2:
		return via.ca2
	case CB1:
		return via.cb1
	case CB2:
		return via.cb2
	}
	return false
}
