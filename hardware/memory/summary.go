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
	"github.com/jetsetilly/gophervic/hardware/memory/banks"
	"github.com/jetsetilly/gophervic/hardware/memory/memorymap"
)

// Summary returns a multiline string listing the owner of every range of
// addresses given the current bank configuration.
func (mem *Bus) Summary() string {
	return memorymap.SummaryFunc(func(address uint16) string {
		_, area := memorymap.MapAddress(address)

		switch area {
		case memorymap.RAM123, memorymap.BLK1, memorymap.BLK2, memorymap.BLK3, memorymap.BLK5:
			w, _ := banks.WindowFromArea(area)
			return mem.Banks.Owner(w)
		case memorymap.CharROM:
			return romOwner(mem.CharROM)
		case memorymap.BASIC:
			return romOwner(mem.BASIC)
		case memorymap.KERNAL:
			return romOwner(mem.KERNAL)
		case memorymap.VIC:
			if mem.Video == nil {
				return memorymap.Unmapped.String()
			}
		case memorymap.IO:
			return memorymap.Unmapped.String()
		}

		return area.String()
	})
}

func romOwner(rom *ROM) string {
	if rom.Installed() {
		return rom.Label()
	}
	return memorymap.Unmapped.String()
}
