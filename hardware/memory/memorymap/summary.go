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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in
// memory. Useful for reference.
func Summary() string {
	return SummaryFunc(func(address uint16) string {
		_, area := MapAddress(address)
		return area.String()
	})
}

// SummaryFunc is like Summary() but the label of each address is supplied by
// the label function. A new line is started whenever the label changes.
func SummaryFunc(label func(address uint16) string) string {
	s := strings.Builder{}

	sa := uint16(0)
	current := label(sa)

	// for every address in the range 1 to Memtop...
	for a := uint32(1); a <= uint32(Memtop); a++ {
		// ...get the label of that address.
		l := label(uint16(a))

		// if the label has changed print out the summary line...
		if l != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, uint16(a-1), current))

			// ...update current label and start address of the range
			current = l
			sa = uint16(a)
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, Memtop, current))

	return s.String()
}
