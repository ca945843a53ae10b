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

package hardware

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophervic/hardware/memory/banks"
	"github.com/jetsetilly/gophervic/hardware/via"
)

// the structure passed to memviz. the live types refer back to the machine
// through the VIA port wiring so a simplified copy is built instead
type structure struct {
	Expansion string
	Windows   []window
	VIA1      chip
	VIA2      chip
	Cycles    uint32
	IRQ       bool
	NMI       bool
}

type window struct {
	Name  string
	Owner string
}

type chip struct {
	Label     string
	Registers [via.NumRegisters]uint8
}

func chipStructure(v *via.VIA) chip {
	c := chip{Label: v.Label()}
	for r := range c.Registers {
		c.Registers[r] = v.Peek(via.Register(r))
	}
	return c
}

// Visualise writes a graphviz description of the machine to the writer.
func (m *Machine) Visualise(w io.Writer) {
	s := &structure{
		Expansion: m.Mem.Expansion().String(),
		VIA1:      chipStructure(m.VIA1),
		VIA2:      chipStructure(m.VIA2),
		Cycles:    m.Cycles,
		IRQ:       m.Interrupts.IRQ(),
		NMI:       m.Interrupts.NMI(),
	}
	for b := banks.RAM123; b < banks.NumWindows; b++ {
		s.Windows = append(s.Windows, window{
			Name:  b.String(),
			Owner: m.Mem.Banks.Owner(b),
		})
	}
	memviz.Map(w, s)
}
