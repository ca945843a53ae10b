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
	"github.com/jetsetilly/gophervic/logger"
)

// Sentinel error returned by LoadProgram().
const (
	InvalidProgram = "memory: program image too short (%d bytes)"
)

// Zero page locations updated by LoadProgram() when a BASIC program is
// loaded. Each location holds a little-endian address.
const (
	BASICStartOfVariables = uint16(0x2d)
	BASICStartOfArrays    = uint16(0x2f)
	BASICEndOfArrays      = uint16(0x31)
	KERNALEndOfLoad       = uint16(0xae)
)

// LoadProgram copies a program image into memory. The first two bytes of the
// image are the little-endian load address and the remainder are copied
// through the CPU write path starting at that address.
//
// The returned end address is the address after the last byte written. If
// the load address is the start of BASIC for the current expansion option,
// the BASIC pointers in zero page are set to the end address so that the
// program can be RUN.
//
// An image shorter than three bytes is an error and memory is not altered.
func (mem *Bus) LoadProgram(image []uint8) (uint16, uint16, error) {
	if len(image) < 3 {
		return 0, 0, curated.Errorf(InvalidProgram, len(image))
	}

	start := uint16(image[0]) | uint16(image[1])<<8
	end := start
	for _, v := range image[2:] {
		mem.Write(end, v)
		end++
	}

	mem.writeWord(KERNALEndOfLoad, end)
	if start == mem.Expansion().BASICStart() {
		mem.writeWord(BASICStartOfVariables, end)
		mem.writeWord(BASICStartOfArrays, end)
		mem.writeWord(BASICEndOfArrays, end)
	}

	logger.Logf(logger.Allow, "memory", "program loaded: %#04x to %#04x", start, end-1)

	return start, end, nil
}

func (mem *Bus) writeWord(address uint16, value uint16) {
	mem.Write(address, uint8(value))
	mem.Write(address+1, uint8(value>>8))
}

// ReadWord returns the little-endian word at the address. The memory is
// accessed with Peek() so there are no side effects.
func (mem *Bus) ReadWord(address uint16) uint16 {
	return uint16(mem.Peek(address)) | uint16(mem.Peek(address+1))<<8
}
