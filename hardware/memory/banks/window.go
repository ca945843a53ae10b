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

package banks

import (
	"github.com/jetsetilly/gophervic/hardware/memory/memorymap"
)

// Window identifies one of the optional areas of memory.
type Window int

// List of valid Window values. The names are those used in Commodore
// documentation.
const (
	RAM123 Window = iota
	BLK1
	BLK2
	BLK3
	BLK5

	NumWindows
)

func (w Window) String() string {
	return w.Area().String()
}

// Area returns the memorymap.Area covered by the window.
func (w Window) Area() memorymap.Area {
	switch w {
	case RAM123:
		return memorymap.RAM123
	case BLK1:
		return memorymap.BLK1
	case BLK2:
		return memorymap.BLK2
	case BLK3:
		return memorymap.BLK3
	case BLK5:
		return memorymap.BLK5
	}
	return memorymap.Unmapped
}

// Origin returns the first address of the window.
func (w Window) Origin() uint16 {
	return w.Area().Origin()
}

// Size returns the number of bytes in the window.
func (w Window) Size() int {
	return w.Area().Size()
}

// CartridgeWindow returns true if the window can be populated with cartridge
// ROM. The RAM1-3 window can only hold RAM.
func (w Window) CartridgeWindow() bool {
	return w >= BLK1 && w < NumWindows
}

// WindowFromArea returns the Window that covers the memorymap.Area. Returns
// false if the area is not one of the optional areas.
func WindowFromArea(area memorymap.Area) (Window, bool) {
	for w := RAM123; w < NumWindows; w++ {
		if w.Area() == area {
			return w, true
		}
	}
	return NumWindows, false
}

// WindowFromOrigin returns the Window that starts at the address. Returns
// false if no window starts at that address.
func WindowFromOrigin(origin uint16) (Window, bool) {
	for w := RAM123; w < NumWindows; w++ {
		if w.Origin() == origin {
			return w, true
		}
	}
	return NumWindows, false
}
