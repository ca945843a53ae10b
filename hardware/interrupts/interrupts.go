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

// Package interrupts connects the interrupt outputs of the VIA chips to the
// interrupt inputs of the CPU.
//
// The two CPU inputs behave differently. IRQ is level sensitive and is
// asserted for as long as the source chip has an enabled interrupt flag set.
// NMI is edge sensitive and the CPU is only signalled when the source chip
// changes from having no enabled flag set to having one. The source must
// return to the inactive state before the NMI can be signalled again.
package interrupts

// Source is implemented by anything that can raise an interrupt. Tick()
// advances the source by the number of cycles given and returns whether the
// interrupt output is active.
type Source interface {
	Tick(cycles int) bool
}

// Lines is the interrupt interface of the CPU.
type Lines interface {
	// SetIRQ sets the level of the maskable interrupt line.
	SetIRQ(asserted bool)

	// NMI signals a non-maskable interrupt. It is called once for every
	// transition of the source into the active state.
	NMI()
}

// Aggregator ticks the interrupt sources and drives the CPU interrupt lines
// accordingly.
type Aggregator struct {
	nmiSource Source
	irqSource Source
	cpu       Lines

	// state of the sources after the most recent Tick()
	nmi bool
	irq bool

	// number of NMI edges signalled since the last reset
	nmiCount int
}

// NewAggregator is the preferred method of initialisation for the Aggregator
// type.
func NewAggregator(nmiSource Source, irqSource Source, cpu Lines) *Aggregator {
	return &Aggregator{
		nmiSource: nmiSource,
		irqSource: irqSource,
		cpu:       cpu,
	}
}

// Reset forgets the previous state of the sources. The CPU is not signalled.
func (agg *Aggregator) Reset() {
	agg.nmi = false
	agg.irq = false
	agg.nmiCount = 0
}

// Seed sets the state of the sources as if they had been sampled by a Tick().
// The CPU is not signalled. Used when the sources have been replaced by
// sources that are already part way through an interrupt. An NMI source that
// is seeded as active will not signal the CPU until it has become inactive.
func (agg *Aggregator) Seed(nmi bool, irq bool) {
	agg.nmi = nmi
	agg.irq = irq
}

// Tick advances both sources by the number of cycles and updates the CPU
// interrupt lines.
func (agg *Aggregator) Tick(cycles int) {
	nmi := agg.nmiSource.Tick(cycles)
	irq := agg.irqSource.Tick(cycles)

	if nmi && !agg.nmi {
		agg.nmiCount++
		agg.cpu.NMI()
	}
	agg.nmi = nmi

	agg.irq = irq
	agg.cpu.SetIRQ(irq)
}

// NMI returns the state of the NMI source after the most recent Tick().
func (agg *Aggregator) NMI() bool {
	return agg.nmi
}

// IRQ returns the state of the IRQ line after the most recent Tick().
func (agg *Aggregator) IRQ() bool {
	return agg.irq
}

// NMICount returns the number of NMI edges signalled since the last reset.
func (agg *Aggregator) NMICount() int {
	return agg.nmiCount
}
