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

package memory

import (
	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/hardware/memory/banks"
	"github.com/jetsetilly/gophervic/hardware/memory/bus"
	"github.com/jetsetilly/gophervic/hardware/memory/memorymap"
	"github.com/jetsetilly/gophervic/hardware/via"
	"github.com/jetsetilly/gophervic/logger"
)

// Sentinel errors returned by the memory package.
const (
	InvalidROMArea = "memory: %v is not a system ROM area"
)

// Bus is the memory of the VIC-20 as seen from the CPU. Every address is
// resolved to exactly one owner by memorymap.MapAddress() and the access is
// delegated to that owner.
type Bus struct {
	BaseRAM   *RAM
	MainRAM   *RAM
	ColourRAM *RAM

	CharROM *ROM
	BASIC   *ROM
	KERNAL  *ROM

	// expansion RAM and cartridge ROM
	Banks *banks.Table

	VIA1 *via.VIA
	VIA2 *via.VIA

	// the video chip can be nil in which case the video registers read as
	// open bus
	Video bus.VideoChip
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(via1 *via.VIA, via2 *via.VIA, video bus.VideoChip) *Bus {
	return &Bus{
		BaseRAM:   newRAM(memorymap.BaseRAM),
		MainRAM:   newRAM(memorymap.MainRAM),
		ColourRAM: newColourRAM(),
		CharROM:   newROM(memorymap.CharROM),
		BASIC:     newROM(memorymap.BASIC),
		KERNAL:    newROM(memorymap.KERNAL),
		Banks:     banks.NewTable(),
		VIA1:      via1,
		VIA2:      via2,
		Video:     video,
	}
}

// Snapshot creates a copy of the memory state. The chips are not part of the
// snapshot and the copy refers to the same chip instances as the original.
func (mem *Bus) Snapshot() *Bus {
	n := *mem
	n.BaseRAM = mem.BaseRAM.Snapshot()
	n.MainRAM = mem.MainRAM.Snapshot()
	n.ColourRAM = mem.ColourRAM.Snapshot()
	n.Banks = mem.Banks.Snapshot()
	return &n
}

// Clear the permanently fitted RAM. Expansion RAM and cartridges are
// unaffected.
func (mem *Bus) Clear() {
	mem.BaseRAM.Clear()
	mem.MainRAM.Clear()
	mem.ColourRAM.Clear()
}

// InstallROM copies the data into one of the system ROM areas. Data longer
// than the area is truncated.
func (mem *Bus) InstallROM(area memorymap.Area, data []uint8) error {
	var rom *ROM
	switch area {
	case memorymap.CharROM:
		rom = mem.CharROM
	case memorymap.BASIC:
		rom = mem.BASIC
	case memorymap.KERNAL:
		rom = mem.KERNAL
	default:
		return curated.Errorf(InvalidROMArea, area)
	}
	rom.install(data)
	logger.Logf(logger.Allow, "memory", "installed %s ROM (%d bytes)", area, len(data))
	return nil
}

// SetExpansion changes the expansion RAM fitted to the machine.
func (mem *Bus) SetExpansion(opt banks.ExpansionOption) {
	mem.Banks.SetExpansion(opt)
	logger.Logf(logger.Allow, "memory", "expansion: %s", opt)
}

// Expansion returns the current expansion option.
func (mem *Bus) Expansion() banks.ExpansionOption {
	return mem.Banks.Expansion()
}

// Read implements the bus.CPUBus interface.
func (mem *Bus) Read(address uint16) uint8 {
	return mem.read(address, false)
}

// Peek implements the bus.DebuggerBus interface. Reading the VIA registers
// through Peek() has no side effects.
func (mem *Bus) Peek(address uint16) uint8 {
	return mem.read(address, true)
}

func (mem *Bus) read(address uint16, peek bool) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.BaseRAM:
		return mem.BaseRAM.Read(ma)
	case memorymap.MainRAM:
		return mem.MainRAM.Read(ma)
	case memorymap.ColourRAM:
		return mem.ColourRAM.Read(ma)
	case memorymap.RAM123, memorymap.BLK1, memorymap.BLK2, memorymap.BLK3, memorymap.BLK5:
		w, _ := banks.WindowFromArea(area)
		if v, ok := mem.Banks.Read(w, ma); ok {
			return v
		}
	case memorymap.CharROM:
		if v, ok := mem.CharROM.Read(ma); ok {
			return v
		}
	case memorymap.BASIC:
		if v, ok := mem.BASIC.Read(ma); ok {
			return v
		}
	case memorymap.KERNAL:
		if v, ok := mem.KERNAL.Read(ma); ok {
			return v
		}
	case memorymap.VIC:
		if mem.Video != nil {
			return mem.Video.ReadRegister(int(ma))
		}
	case memorymap.VIA1:
		if peek {
			return mem.VIA1.Peek(via.Register(ma))
		}
		return mem.VIA1.ReadRegister(via.Register(ma))
	case memorymap.VIA2:
		if peek {
			return mem.VIA2.Peek(via.Register(ma))
		}
		return mem.VIA2.ReadRegister(via.Register(ma))
	}

	return memorymap.OpenBus
}

// Write implements the bus.CPUBus interface. Writes to ROM and to addresses
// that nothing responds to are ignored.
func (mem *Bus) Write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.BaseRAM:
		mem.BaseRAM.Write(ma, data)
	case memorymap.MainRAM:
		mem.MainRAM.Write(ma, data)
	case memorymap.ColourRAM:
		mem.ColourRAM.Write(ma, data)
	case memorymap.RAM123, memorymap.BLK1, memorymap.BLK2, memorymap.BLK3, memorymap.BLK5:
		w, _ := banks.WindowFromArea(area)
		mem.Banks.Write(w, ma, data)
	case memorymap.VIC:
		if mem.Video != nil {
			mem.Video.WriteRegister(int(ma), data)
		}
	case memorymap.VIA1:
		mem.VIA1.WriteRegister(via.Register(ma), data)
	case memorymap.VIA2:
		mem.VIA2.WriteRegister(via.Register(ma), data)
	}
}

// Poke implements the bus.DebuggerBus interface. Unlike Write() a poke will
// alter the contents of cartridge ROM. Pokes to the chip areas and to the
// system ROMs are ignored.
func (mem *Bus) Poke(address uint16, value uint8) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM123, memorymap.BLK1, memorymap.BLK2, memorymap.BLK3, memorymap.BLK5:
		w, _ := banks.WindowFromArea(area)
		mem.Banks.Poke(w, ma, value)
	case memorymap.BaseRAM, memorymap.MainRAM, memorymap.ColourRAM:
		mem.Write(address, value)
	}
}
