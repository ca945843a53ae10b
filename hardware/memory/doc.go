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

// Package memory implements the memory bus of the VIC-20. Every address seen
// by the CPU is resolved by memorymap.MapAddress() to a single owner:
//
//	$0000 - $03ff    base RAM
//	$0400 - $0fff    RAM1-3 expansion window
//	$1000 - $1fff    main RAM
//	$2000 - $7fff    BLK1 to BLK3 expansion/cartridge windows
//	$8000 - $8fff    character ROM
//	$9000 - $90ff    video chip registers
//	$9100 - $93ff    VIA1 and VIA2 registers
//	$9400 - $97ff    colour RAM (four bits wide)
//	$9800 - $9fff    I/O expansion (unmapped)
//	$a000 - $bfff    BLK5 expansion/cartridge window
//	$c000 - $dfff    BASIC ROM
//	$e000 - $ffff    KERNAL ROM
//
// Unmapped addresses read as memorymap.OpenBus and writes to them are
// ignored. The expansion windows are managed by the banks package. A
// cartridge in a window takes precedence over expansion RAM in the same
// window.
//
// The Read() and Write() functions are the CPU's view of memory and have the
// same side effects as the real hardware. Peek() and Poke() are intended for
// debuggers and do not affect the state of the VIAs.
package memory
