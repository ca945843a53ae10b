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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophervic/curated"
)

// Sentinel error returned by Table.LoadCartridge().
const (
	NotCartridgeWindow = "banks: %v cannot hold a cartridge"
)

// Table records which windows are populated and holds the memory for them.
// A nil slice means the window is not populated.
type Table struct {
	expansion ExpansionOption
	ram       [NumWindows][]uint8
	cartridge [NumWindows][]uint8
}

// NewTable is the preferred method of initialisation for the Table type. The
// table starts with no expansion RAM and no cartridge.
func NewTable() *Table {
	return &Table{}
}

// Snapshot creates a copy of the Table in its current state.
func (tab *Table) Snapshot() *Table {
	n := &Table{expansion: tab.expansion}
	for w := range tab.ram {
		if tab.ram[w] != nil {
			n.ram[w] = make([]uint8, len(tab.ram[w]))
			copy(n.ram[w], tab.ram[w])
		}
		if tab.cartridge[w] != nil {
			n.cartridge[w] = make([]uint8, len(tab.cartridge[w]))
			copy(n.cartridge[w], tab.cartridge[w])
		}
	}
	return n
}

func (tab *Table) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("expansion: %s", tab.expansion))
	for w := RAM123; w < NumWindows; w++ {
		switch {
		case tab.cartridge[w] != nil:
			s.WriteString(fmt.Sprintf(" %s=ROM", w))
		case tab.ram[w] != nil:
			s.WriteString(fmt.Sprintf(" %s=RAM", w))
		}
	}
	return s.String()
}

// SetExpansion populates exactly the windows selected by the expansion
// option with RAM. Windows that remain populated keep their contents. Newly
// populated windows are zeroed. Windows that are no longer populated lose
// their contents.
func (tab *Table) SetExpansion(opt ExpansionOption) {
	tab.expansion = opt
	for w := RAM123; w < NumWindows; w++ {
		if opt.Includes(w) {
			if tab.ram[w] == nil {
				tab.ram[w] = make([]uint8, w.Size())
			}
		} else {
			tab.ram[w] = nil
		}
	}
}

// Expansion returns the current expansion option.
func (tab *Table) Expansion() ExpansionOption {
	return tab.expansion
}

// RAM returns true if the window is populated with expansion RAM. The RAM may
// be masked by a cartridge.
func (tab *Table) RAM(w Window) bool {
	return tab.ram[w] != nil
}

// Cartridge returns true if a cartridge is loaded into the window.
func (tab *Table) Cartridge(w Window) bool {
	return tab.cartridge[w] != nil
}

// LoadCartridge copies the data into the cartridge ROM for the window. Data
// longer than the window is truncated. Any part of the window not covered by
// the data reads as zero.
func (tab *Table) LoadCartridge(w Window, data []uint8) error {
	if !w.CartridgeWindow() {
		return curated.Errorf(NotCartridgeWindow, w)
	}
	rom := make([]uint8, w.Size())
	copy(rom, data)
	tab.cartridge[w] = rom
	return nil
}

// RemoveCartridges unloads every cartridge window. Any expansion RAM masked
// by a cartridge becomes visible again.
func (tab *Table) RemoveCartridges() {
	for w := range tab.cartridge {
		tab.cartridge[w] = nil
	}
}

// Read the value at offset in the window. Cartridge ROM takes precedence over
// RAM. Returns false if the window is not populated.
func (tab *Table) Read(w Window, offset uint16) (uint8, bool) {
	if rom := tab.cartridge[w]; rom != nil {
		return rom[int(offset)%len(rom)], true
	}
	if ram := tab.ram[w]; ram != nil {
		return ram[int(offset)%len(ram)], true
	}
	return 0, false
}

// Write the value at offset in the window. Writes to cartridge ROM are
// ignored. Returns false if the window is not populated.
func (tab *Table) Write(w Window, offset uint16, value uint8) bool {
	if tab.cartridge[w] != nil {
		return true
	}
	if ram := tab.ram[w]; ram != nil {
		ram[int(offset)%len(ram)] = value
		return true
	}
	return false
}

// Poke is like Write() except that cartridge ROM is also written to.
func (tab *Table) Poke(w Window, offset uint16, value uint8) bool {
	if rom := tab.cartridge[w]; rom != nil {
		rom[int(offset)%len(rom)] = value
		return true
	}
	return tab.Write(w, offset, value)
}

// Owner returns a short description of what is responding in the window.
func (tab *Table) Owner(w Window) string {
	switch {
	case tab.cartridge[w] != nil:
		return fmt.Sprintf("%s cartridge", w)
	case tab.ram[w] != nil:
		return fmt.Sprintf("%s RAM", w)
	}
	return "Unmapped"
}
