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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Unmapped:
		return "Unmapped"
	case BaseRAM:
		return "Base RAM"
	case RAM123:
		return "RAM1-3"
	case MainRAM:
		return "Main RAM"
	case BLK1:
		return "BLK1"
	case BLK2:
		return "BLK2"
	case BLK3:
		return "BLK3"
	case CharROM:
		return "Character ROM"
	case VIC:
		return "VIC"
	case VIA1:
		return "VIA1"
	case VIA2:
		return "VIA2"
	case ColourRAM:
		return "Colour RAM"
	case IO:
		return "I/O"
	case BLK5:
		return "BLK5"
	case BASIC:
		return "BASIC"
	case KERNAL:
		return "KERNAL"
	}

	return "undefined"
}

// List of valid Area values.
const (
	Unmapped Area = iota
	BaseRAM
	RAM123
	MainRAM
	BLK1
	BLK2
	BLK3
	CharROM
	VIC
	VIA1
	VIA2
	ColourRAM
	IO
	BLK5
	BASIC
	KERNAL

	NumAreas
)

// The origin and memtop of every area. The VIA areas share a range and are
// distinguished by address bits 4 and 5.
const (
	OriginBaseRAM   = uint16(0x0000)
	MemtopBaseRAM   = uint16(0x03ff)
	OriginRAM123    = uint16(0x0400)
	MemtopRAM123    = uint16(0x0fff)
	OriginMainRAM   = uint16(0x1000)
	MemtopMainRAM   = uint16(0x1fff)
	OriginBLK1      = uint16(0x2000)
	MemtopBLK1      = uint16(0x3fff)
	OriginBLK2      = uint16(0x4000)
	MemtopBLK2      = uint16(0x5fff)
	OriginBLK3      = uint16(0x6000)
	MemtopBLK3      = uint16(0x7fff)
	OriginCharROM   = uint16(0x8000)
	MemtopCharROM   = uint16(0x8fff)
	OriginVIC       = uint16(0x9000)
	MemtopVIC       = uint16(0x90ff)
	OriginVIA       = uint16(0x9100)
	MemtopVIA       = uint16(0x93ff)
	OriginColourRAM = uint16(0x9400)
	MemtopColourRAM = uint16(0x97ff)
	OriginIO        = uint16(0x9800)
	MemtopIO        = uint16(0x9fff)
	OriginBLK5      = uint16(0xa000)
	MemtopBLK5      = uint16(0xbfff)
	OriginBASIC     = uint16(0xc000)
	MemtopBASIC     = uint16(0xdfff)
	OriginKERNAL    = uint16(0xe000)
	MemtopKERNAL    = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// OpenBus is the value returned by a read of an address that nothing
// responds to.
const OpenBus = uint8(0xff)

// Register selection in the chip areas.
const (
	MaskChipRegister = uint16(0x000f)
	SelectVIA1       = uint16(0x0010)
	SelectVIA2       = uint16(0x0020)
)

// Origin returns the first address of the area. The VIA areas both return
// the origin of the shared range. Unmapped returns zero.
func (a Area) Origin() uint16 {
	switch a {
	case BaseRAM:
		return OriginBaseRAM
	case RAM123:
		return OriginRAM123
	case MainRAM:
		return OriginMainRAM
	case BLK1:
		return OriginBLK1
	case BLK2:
		return OriginBLK2
	case BLK3:
		return OriginBLK3
	case CharROM:
		return OriginCharROM
	case VIC:
		return OriginVIC
	case VIA1, VIA2:
		return OriginVIA
	case ColourRAM:
		return OriginColourRAM
	case IO:
		return OriginIO
	case BLK5:
		return OriginBLK5
	case BASIC:
		return OriginBASIC
	case KERNAL:
		return OriginKERNAL
	}
	return 0
}

// Memtop returns the last address of the area.
func (a Area) Memtop() uint16 {
	switch a {
	case BaseRAM:
		return MemtopBaseRAM
	case RAM123:
		return MemtopRAM123
	case MainRAM:
		return MemtopMainRAM
	case BLK1:
		return MemtopBLK1
	case BLK2:
		return MemtopBLK2
	case BLK3:
		return MemtopBLK3
	case CharROM:
		return MemtopCharROM
	case VIC:
		return MemtopVIC
	case VIA1, VIA2:
		return MemtopVIA
	case ColourRAM:
		return MemtopColourRAM
	case IO:
		return MemtopIO
	case BLK5:
		return MemtopBLK5
	case BASIC:
		return MemtopBASIC
	case KERNAL:
		return MemtopKERNAL
	}
	return 0
}

// Size returns the number of bytes covered by the area.
func (a Area) Size() int {
	if a == Unmapped {
		return 0
	}
	return int(a.Memtop()-a.Origin()) + 1
}

// MapAddress translates the address to the area it belongs to. The returned
// address is relative to the origin of the area except for the chip areas
// where it is the register number.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	switch {
	case address <= MemtopBaseRAM:
		return address, BaseRAM
	case address <= MemtopRAM123:
		return address - OriginRAM123, RAM123
	case address <= MemtopMainRAM:
		return address - OriginMainRAM, MainRAM
	case address <= MemtopBLK1:
		return address - OriginBLK1, BLK1
	case address <= MemtopBLK2:
		return address - OriginBLK2, BLK2
	case address <= MemtopBLK3:
		return address - OriginBLK3, BLK3
	case address <= MemtopCharROM:
		return address - OriginCharROM, CharROM
	case address <= MemtopVIC:
		return address & MaskChipRegister, VIC
	case address <= MemtopVIA:
		// VIA1 takes priority if both select bits are set
		if address&SelectVIA1 == SelectVIA1 {
			return address & MaskChipRegister, VIA1
		}
		if address&SelectVIA2 == SelectVIA2 {
			return address & MaskChipRegister, VIA2
		}
		return address - OriginVIA, Unmapped
	case address <= MemtopColourRAM:
		return address - OriginColourRAM, ColourRAM
	case address <= MemtopIO:
		return address - OriginIO, IO
	case address <= MemtopBLK5:
		return address - OriginBLK5, BLK5
	case address <= MemtopBASIC:
		return address - OriginBASIC, BASIC
	}

	return address - OriginKERNAL, KERNAL
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
