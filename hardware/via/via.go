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

import (
	"fmt"
	"strings"
)

// Port identifies one of the outputs of the VIA that the Ports interface is
// notified about.
type Port int

// List of valid Port values.
const (
	PortA Port = iota
	PortB
	PortCA2
	PortCB2
)

func (p Port) String() string {
	switch p {
	case PortA:
		return "PA"
	case PortB:
		return "PB"
	case PortCA2:
		return "CA2"
	case PortCB2:
		return "CB2"
	}
	panic("unknown VIA port")
}

// Ports is implemented by whatever is attached to the ports of the VIA. The
// functions are called synchronously during register access and must not call
// ReadRegister() or WriteRegister() of the same VIA.
type Ports interface {
	// PortOutput is called when an output of the VIA has changed. For PortA
	// and PortB the output register has been written to. For PortCA2 and
	// PortCB2 the line has been driven by a write to the PCR.
	PortOutput(via *VIA, port Port)

	// PortInput is called just before PortA or PortB is read by the CPU. The
	// implementation should update the input bits of the port with
	// SetPortA() or SetPortB().
	PortInput(via *VIA, port Port)
}

// the Ports implementation used if none is specified.
type unconnected struct{}

func (unconnected) PortOutput(*VIA, Port) {}
func (unconnected) PortInput(*VIA, Port)  {}

// VIA implements the 6522 Versatile Interface Adapter.
type VIA struct {
	label string
	ports Ports

	// raw storage for all sixteen registers. registers with bespoke handling
	// (timers, IFR and IER) have their state in the fields below
	regs [NumRegisters]uint8

	// timer 1 counter can go negative between ticks. it is brought back into
	// the 16 bit range when it expires
	t1Counter int
	t1Latch   uint16
	t1Fired   bool

	t2Counter int
	t2Latch   uint8
	t2Fired   bool

	ifr uint8
	ier uint8

	// current and previously sampled levels of the control lines
	ca1, ca1Prev bool
	ca2, ca2Prev bool
	cb1, cb1Prev bool
	cb2, cb2Prev bool
}

// NewVIA is the preferred method of initialisation for the VIA type. The
// label is used to identify the chip in String() and in log entries. The
// ports argument can be nil.
func NewVIA(label string, ports Ports) *VIA {
	if ports == nil {
		ports = unconnected{}
	}
	via := &VIA{
		label: label,
		ports: ports,
	}
	via.Reset()
	return via
}

// Reset the VIA to its power-on state. The Ports implementation is not
// notified.
func (via *VIA) Reset() {
	via.regs = [NumRegisters]uint8{}
	via.t1Counter = 0
	via.t1Latch = 0
	via.t1Fired = false
	via.t2Counter = 0
	via.t2Latch = 0
	via.t2Fired = false
	via.ifr = 0
	via.ier = 0
	via.ca1, via.ca1Prev = false, false
	via.ca2, via.ca2Prev = false, false
	via.cb1, via.cb1Prev = false, false
	via.cb2, via.cb2Prev = false, false
}

// Snapshot creates a copy of the VIA in its current state.
func (via *VIA) Snapshot() *VIA {
	n := *via
	return &n
}

// Plumb a new Ports implementation into the VIA.
func (via *VIA) Plumb(ports Ports) {
	if ports == nil {
		ports = unconnected{}
	}
	via.ports = ports
}

// Label returns the label given to NewVIA().
func (via *VIA) Label() string {
	return via.label
}

func (via *VIA) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: ", via.label))
	s.WriteString(fmt.Sprintf("T1=%04x latch=%04x ", uint16(via.t1Counter), via.t1Latch))
	s.WriteString(fmt.Sprintf("T2=%04x latch=%02x ", uint16(via.t2Counter), via.t2Latch))
	s.WriteString(fmt.Sprintf("IFR=%02x IER=%02x ", via.readIFR(), via.ier|IntControl))
	s.WriteString(fmt.Sprintf("ACR=%02x PCR=%02x", via.regs[ACR], via.regs[PCR]))
	return s.String()
}

// readIFR returns the IFR value as seen by the CPU.
func (via *VIA) readIFR() uint8 {
	if via.ifr&via.ier&intSources != 0 {
		return via.ifr | IntControl
	}
	return via.ifr
}

// WriteRegister is called when the CPU writes to the VIA. The register
// argument should be in the range 0 to 15. Values outside that range are
// masked.
func (via *VIA) WriteRegister(reg Register, value uint8) {
	reg &= 0x0f

	switch reg {
	case T1CL:
		via.regs[reg] = value
		via.t1Latch = (via.t1Latch & 0xff00) | uint16(value)

	case T1CH:
		// writing the high byte of the counter also writes the high byte of
		// the latch. the low byte of the latch is copied into the counter
		via.regs[reg] = value
		via.t1Latch = (via.t1Latch & 0x00ff) | (uint16(value) << 8)
		via.t1Counter = int(via.t1Latch)
		via.ifr &^= IntT1
		via.t1Fired = false

	case T1LL:
		via.regs[reg] = value
		via.t1Latch = (via.t1Latch & 0xff00) | uint16(value)

	case T1LH:
		via.regs[reg] = value
		via.t1Latch = (via.t1Latch & 0x00ff) | (uint16(value) << 8)
		via.ifr &^= IntT1

	case T2CL:
		via.regs[reg] = value
		via.t2Latch = value

	case T2CH:
		via.regs[reg] = value
		via.t2Counter = int(uint16(value)<<8 | uint16(via.t2Latch))
		via.ifr &^= IntT2
		via.t2Fired = false

	case PCR:
		via.regs[reg] = value
		switch (value >> pcrCA2Shift) & 0b111 {
		case modeManualLow:
			via.ca2 = false
			via.ports.PortOutput(via, PortCA2)
		case modeManualHigh:
			via.ca2 = true
			via.ports.PortOutput(via, PortCA2)
		}
		switch (value >> pcrCB2Shift) & 0b111 {
		case modeManualLow:
			via.cb2 = false
			via.ports.PortOutput(via, PortCB2)
		case modeManualHigh:
			via.cb2 = true
			via.ports.PortOutput(via, PortCB2)
		}

	case IFR:
		// writing a one to a flag bit clears it
		via.ifr &^= value & intSources

	case IER:
		if value&IntControl == IntControl {
			via.ier |= value & intSources
		} else {
			via.ier &^= value & intSources
		}

	case ORA:
		via.writeOutput(ORA, DDRA, value)
		via.ports.PortOutput(via, PortA)
		via.ifr &^= IntCA1 | IntCA2

	case ORANH:
		via.writeOutput(ORA, DDRA, value)
		via.ports.PortOutput(via, PortA)

	case ORB:
		via.writeOutput(ORB, DDRB, value)
		via.ports.PortOutput(via, PortB)
		via.ifr &^= IntCB1 | IntCB2

	default:
		// DDRA, DDRB, ACR and SR
		via.regs[reg] = value
	}
}

// writeOutput stores value in the output register. only the bits driven by
// the VIA (a one in the data direction register) take the new value.
func (via *VIA) writeOutput(reg Register, ddr Register, value uint8) {
	via.regs[reg] = (value & via.regs[ddr]) | (via.regs[reg] &^ via.regs[ddr])
}

// ReadRegister is called when the CPU reads from the VIA. The register
// argument should be in the range 0 to 15. Values outside that range are
// masked.
func (via *VIA) ReadRegister(reg Register) uint8 {
	reg &= 0x0f

	switch reg {
	case T1CL:
		via.ifr &^= IntT1
		return uint8(via.t1Counter)

	case T1CH:
		return uint8(via.t1Counter >> 8)

	case T1LL:
		return uint8(via.t1Latch)

	case T1LH:
		return uint8(via.t1Latch >> 8)

	case T2CL:
		via.ifr &^= IntT2
		return uint8(via.t2Counter)

	case T2CH:
		return uint8(via.t2Counter >> 8)

	case IFR:
		return via.readIFR()

	case IER:
		return via.ier | IntControl

	case ORA:
		via.ifr &^= IntCA1 | IntCA2
		via.ports.PortInput(via, PortA)
		return via.regs[ORA]

	case ORANH:
		via.ports.PortInput(via, PortA)
		return via.regs[ORA]

	case ORB:
		via.ifr &^= IntCB1 | IntCB2
		via.ports.PortInput(via, PortB)
		return via.regs[ORB]
	}

	return via.regs[reg]
}

// Peek returns the value of the register as the CPU would see it but without
// any side effects. The Ports implementation is not consulted.
func (via *VIA) Peek(reg Register) uint8 {
	reg &= 0x0f

	switch reg {
	case T1CL:
		return uint8(via.t1Counter)
	case T1CH:
		return uint8(via.t1Counter >> 8)
	case T1LL:
		return uint8(via.t1Latch)
	case T1LH:
		return uint8(via.t1Latch >> 8)
	case T2CL:
		return uint8(via.t2Counter)
	case T2CH:
		return uint8(via.t2Counter >> 8)
	case IFR:
		return via.readIFR()
	case IER:
		return via.ier | IntControl
	case ORANH:
		return via.regs[ORA]
	}

	return via.regs[reg]
}

// PortA returns the current value of the port A register. Bits that are
// outputs (see DDRA()) have the value most recently written by the CPU.
func (via *VIA) PortA() uint8 {
	return via.regs[ORA]
}

// PortB returns the current value of the port B register.
func (via *VIA) PortB() uint8 {
	return via.regs[ORB]
}

// DDRA returns the port A data direction register. A one bit is an output.
func (via *VIA) DDRA() uint8 {
	return via.regs[DDRA]
}

// DDRB returns the port B data direction register. A one bit is an output.
func (via *VIA) DDRB() uint8 {
	return via.regs[DDRB]
}

// SetPortA stores the value in the port A register without side effects.
// Intended for use by implementations of Ports.PortInput().
func (via *VIA) SetPortA(value uint8) {
	via.regs[ORA] = value
}

// SetPortB stores the value in the port B register without side effects.
func (via *VIA) SetPortB(value uint8) {
	via.regs[ORB] = value
}

// Interrupt returns true if any enabled interrupt flag is set.
func (via *VIA) Interrupt() bool {
	return via.ifr&via.ier&intSources != 0
}
