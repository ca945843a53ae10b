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

// Register specifies the index of a VIA register. There are sixteen of them,
// selected by the low four bits of the address.
type Register int

// List of valid Register values.
const (
	ORB   Register = iota // output/input register B
	ORA                   // output/input register A (with handshake)
	DDRB                  // data direction register B
	DDRA                  // data direction register A
	T1CL                  // timer 1 counter low
	T1CH                  // timer 1 counter high
	T1LL                  // timer 1 latch low
	T1LH                  // timer 1 latch high
	T2CL                  // timer 2 counter low
	T2CH                  // timer 2 counter high
	SR                    // shift register
	ACR                   // auxiliary control register
	PCR                   // peripheral control register
	IFR                   // interrupt flag register
	IER                   // interrupt enable register
	ORANH                 // output/input register A (no handshake)

	NumRegisters
)

var registerNames = [NumRegisters]string{
	"ORB", "ORA", "DDRB", "DDRA",
	"T1CL", "T1CH", "T1LL", "T1LH",
	"T2CL", "T2CH", "SR", "ACR",
	"PCR", "IFR", "IER", "ORANH",
}

func (r Register) String() string {
	if r < 0 || r >= NumRegisters {
		return "undefined"
	}
	return registerNames[r]
}

// Interrupt flag bits. The same bits are used in the IFR and the IER.
const (
	IntCA2 uint8 = 0x01
	IntCA1 uint8 = 0x02
	IntSR  uint8 = 0x04
	IntCB2 uint8 = 0x08
	IntCB1 uint8 = 0x10
	IntT2  uint8 = 0x20
	IntT1  uint8 = 0x40

	// when reading the IFR bit 7 is set if any enabled flag is set. when
	// writing the IER bit 7 selects whether the other bits are set or cleared
	IntControl uint8 = 0x80

	// mask of the seven real interrupt sources
	intSources uint8 = 0x7f
)

// Bits in the auxiliary control register (ACR) that the emulation uses.
const (
	// timer 1 reloads from the latch and fires continuously
	ACRFreeRun uint8 = 0x40

	// timer 2 counts pulses on PB6 rather than system cycles
	ACRCountPulses uint8 = 0x20
)

// The peripheral control register (PCR) holds the configuration of the
// control lines. Bit 0 selects the active edge of CA1 and bits 1-3 select the
// mode of CA2. Bits 4 to 7 are the same for CB1 and CB2.
const (
	PCRCA1PositiveEdge uint8 = 0x01
	PCRCB1PositiveEdge uint8 = 0x10

	// shift of the three bit CA2 and CB2 mode fields
	pcrCA2Shift = 1
	pcrCB2Shift = 5

	// CA2 and CB2 mode field values that drive the line directly
	modeManualLow  uint8 = 0b110
	modeManualHigh uint8 = 0b111
)
