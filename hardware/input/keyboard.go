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

package input

import (
	"fmt"
	"strings"
)

// Cell is the position of a key in the keyboard matrix. The row is the bit in
// port A of VIA2 and the column is the bit in port B of VIA2.
type Cell struct {
	Row    int
	Column int
}

func (c Cell) String() string {
	return fmt.Sprintf("r%dc%d", c.Row, c.Column)
}

// Restore is the special Cell value used in a Keymap for the RESTORE key. The
// RESTORE key is not part of the matrix.
var Restore = Cell{Row: -1, Column: -1}

func (c Cell) valid() bool {
	return c.Row >= 0 && c.Row < 8 && c.Column >= 0 && c.Column < 8
}

// Key is the name of a host key, as reported by the host.
type Key string

// Keymap translates host keys to cells in the keyboard matrix.
type Keymap map[Key]Cell

// Matrix is the keyboard matrix.
type Matrix struct {
	// indexed by row and then column. true is a closed switch
	keys [8][8]bool
}

// Reset opens every switch in the matrix.
func (mx *Matrix) Reset() {
	mx.keys = [8][8]bool{}
}

// Set the state of the switch at the cell. Cells outside the matrix are
// ignored.
func (mx *Matrix) Set(cell Cell, down bool) {
	if !cell.valid() {
		return
	}
	mx.keys[cell.Row][cell.Column] = down
}

// Pressed returns true if the switch at the cell is closed.
func (mx *Matrix) Pressed(cell Cell) bool {
	if !cell.valid() {
		return false
	}
	return mx.keys[cell.Row][cell.Column]
}

// Any returns true if any switch is closed.
func (mx *Matrix) Any() bool {
	for r := range mx.keys {
		for c := range mx.keys[r] {
			if mx.keys[r][c] {
				return true
			}
		}
	}
	return false
}

// ScanRows returns the state of the row lines given the state of the column
// lines. A column is driven if its bit is zero. A row line is pulled to zero
// if a closed switch connects it to a driven column.
func (mx *Matrix) ScanRows(columns uint8) uint8 {
	rows := uint8(0xff)
	for c := 0; c < 8; c++ {
		if columns&(1<<c) != 0 {
			continue
		}
		for r := 0; r < 8; r++ {
			if mx.keys[r][c] {
				rows &^= 1 << r
			}
		}
	}
	return rows
}

// ScanColumns is the reverse of ScanRows().
func (mx *Matrix) ScanColumns(rows uint8) uint8 {
	columns := uint8(0xff)
	for r := 0; r < 8; r++ {
		if rows&(1<<r) != 0 {
			continue
		}
		for c := 0; c < 8; c++ {
			if mx.keys[r][c] {
				columns &^= 1 << c
			}
		}
	}
	return columns
}

func (mx *Matrix) String() string {
	s := strings.Builder{}
	for r := range mx.keys {
		for c := range mx.keys[r] {
			if mx.keys[r][c] {
				s.WriteRune('*')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
