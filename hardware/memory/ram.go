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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophervic/hardware/memory/memorymap"
)

// RAM is one of the permanently fitted blocks of RAM. Addresses passed to
// the RAM functions are relative to the origin of the area.
type RAM struct {
	area   memorymap.Area
	memory []uint8

	// colour RAM cells are only four bits wide. the upper four bits read as
	// ones
	nibbles bool
}

func newRAM(area memorymap.Area) *RAM {
	return &RAM{
		area:   area,
		memory: make([]uint8, area.Size()),
	}
}

func newColourRAM() *RAM {
	ram := newRAM(memorymap.ColourRAM)
	ram.nibbles = true
	return ram
}

// Snapshot creates a copy of the RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.memory = make([]uint8, len(ram.memory))
	copy(n.memory, ram.memory)
	return &n
}

// Label returns the name of the RAM area.
func (ram *RAM) Label() string {
	return ram.area.String()
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(ram.memory)/16; y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", (int(ram.area.Origin())>>4)+y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.Read(uint16(y*16+x))))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Clear sets every cell of the RAM to zero.
func (ram *RAM) Clear() {
	clear(ram.memory)
}

// Read the value at offset.
func (ram *RAM) Read(offset uint16) uint8 {
	v := ram.memory[int(offset)%len(ram.memory)]
	if ram.nibbles {
		return v | 0xf0
	}
	return v
}

// Write the value at offset.
func (ram *RAM) Write(offset uint16, data uint8) {
	if ram.nibbles {
		data &= 0x0f
	}
	ram.memory[int(offset)%len(ram.memory)] = data
}

// ROM is one of the system ROMs. The ROM is empty until an image is
// installed, in which case it reads as open bus.
type ROM struct {
	area   memorymap.Area
	memory []uint8
}

func newROM(area memorymap.Area) *ROM {
	return &ROM{area: area}
}

// Label returns the name of the ROM area.
func (rom *ROM) Label() string {
	return rom.area.String()
}

// Installed returns true if an image has been installed.
func (rom *ROM) Installed() bool {
	return rom.memory != nil
}

func (rom *ROM) install(data []uint8) {
	rom.memory = make([]uint8, rom.area.Size())
	copy(rom.memory, data)
}

// Read the value at offset. Returns false if no image has been installed.
func (rom *ROM) Read(offset uint16) (uint8, bool) {
	if rom.memory == nil {
		return 0, false
	}
	return rom.memory[int(offset)%len(rom.memory)], true
}
