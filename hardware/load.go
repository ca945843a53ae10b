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
	"github.com/jetsetilly/gophervic/cartridgeloader"
	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/hardware/memory"
	"github.com/jetsetilly/gophervic/hardware/memory/banks"
	"github.com/jetsetilly/gophervic/hardware/memory/memorymap"
	"github.com/jetsetilly/gophervic/logger"
)

// Sentinel errors returned by the loading functions.
const (
	UnsupportedImage = "machine: unsupported image (%s)"
)

// ResetSettleCycles is the number of cycles the machine is run for after a
// reset that has been requested by LoadProgram(). This gives the KERNAL time
// to initialise memory and the BASIC pointers before the program is copied
// into place.
const ResetSettleCycles = 2000000

// runCommand is typed after a program has been loaded if requested.
const runCommand = "RUN\r"

// LoadProgram copies a program image into memory. The first two bytes of the
// image are the load address. If reset is true the machine is reset and run
// until the KERNAL is ready before the program is copied. If run is true the
// RUN command is typed once the program has been copied.
//
// An image that is too short is an error and the machine is not reset.
func (m *Machine) LoadProgram(image []uint8, reset bool, run bool) error {
	if len(image) < 3 {
		return curated.Errorf(memory.InvalidProgram, len(image))
	}

	if reset {
		if err := m.Reset(); err != nil {
			return err
		}
		if err := m.settle(ResetSettleCycles); err != nil {
			return err
		}
	}

	if _, _, err := m.Mem.LoadProgram(image); err != nil {
		return err
	}

	if run {
		m.Input.Injector.Type(runCommand)
	}

	return nil
}

// settle runs the machine without the limiter and without handling input.
func (m *Machine) settle(cycles int) error {
	if m.CPU == nil {
		return curated.Errorf(NoCPU)
	}
	for cycles > 0 {
		n, err := m.CPU.Step()
		if err != nil {
			return err
		}
		if n <= 0 {
			n = 1
		}
		m.tick(n)
		cycles -= n
	}
	m.Limiter.Reset()
	m.lastSync = m.Cycles
	return nil
}

// LoadCartridge copies the data into the cartridge window starting at the
// destination address.
//
// If reset is true the machine is reset after the cartridge has been
// inserted. If autoExec is true execution continues at the entry point of the
// cartridge. For the BLK5 window the entry point is the cold start vector in
// the first two bytes of the cartridge. For other windows it is the
// destination address.
func (m *Machine) LoadCartridge(data []uint8, destination uint16, reset bool, autoExec bool) error {
	if err := m.Mem.LoadCartridge(data, destination); err != nil {
		return err
	}

	if reset {
		if err := m.Reset(); err != nil {
			return err
		}
	}

	if autoExec {
		if m.CPU == nil {
			return curated.Errorf(NoCPU)
		}
		entry := destination
		if destination == memorymap.OriginBLK5 {
			entry = m.Mem.ReadWord(memorymap.OriginBLK5)
		}
		m.CPU.SetPC(entry)
		logger.Logf(logger.Allow, "machine", "cartridge entry point %#04x", entry)
	}

	return nil
}

// LoadCartridgeImage inserts a cartridge image. The first two bytes of the
// image are the destination address.
func (m *Machine) LoadCartridgeImage(image []uint8, reset bool) error {
	destination, data, err := memory.SplitCartridgeImage(image)
	if err != nil {
		return err
	}
	return m.LoadCartridge(data, destination, reset, false)
}

// RemoveCartridge removes any cartridge. Safe to call if no cartridge is
// inserted.
func (m *Machine) RemoveCartridge() {
	m.Mem.RemoveCartridge()
}

// SetExpansion changes the expansion RAM fitted to the machine. The
// preferences are updated to match.
func (m *Machine) SetExpansion(opt banks.ExpansionOption) error {
	return m.Prefs.Expansion.Set(opt.String())
}

// Attach loads the image obtained by the cartridge loader. Programs are
// loaded and run. Cartridge images are inserted and the machine reset.
func (m *Machine) Attach(ld *cartridgeloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "machine", "attaching %s (%s)", ld.ShortName(), ld.Kind)

	switch ld.Kind {
	case cartridgeloader.Program:
		return m.LoadProgram(ld.Data, true, true)
	case cartridgeloader.Cartridge:
		return m.LoadCartridgeImage(ld.Data, true)
	}

	return curated.Errorf(UnsupportedImage, ld.Filename)
}
