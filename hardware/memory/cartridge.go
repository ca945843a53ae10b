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
	"github.com/jetsetilly/gophervic/hardware/memory/banks"
	"github.com/jetsetilly/gophervic/logger"
)

// Sentinel errors returned by the cartridge functions.
const (
	InvalidCartridgeDestination = "memory: cartridge destination (%#04x) is not a cartridge window"
	InvalidCartridgeImage       = "memory: cartridge image too short (%d bytes)"
)

// LoadCartridge copies the data into the cartridge window starting at the
// destination address. The destination must be the origin of one of the
// cartridge windows. Data longer than the window is truncated.
//
// A loaded cartridge takes precedence over any expansion RAM in the same
// window.
func (mem *Bus) LoadCartridge(data []uint8, destination uint16) error {
	w, ok := banks.WindowFromOrigin(destination)
	if !ok || !w.CartridgeWindow() {
		return curated.Errorf(InvalidCartridgeDestination, destination)
	}

	err := mem.Banks.LoadCartridge(w, data)
	if err != nil {
		return curated.Errorf(InvalidCartridgeDestination, destination)
	}

	logger.Logf(logger.Allow, "memory", "cartridge loaded into %s (%d bytes)", w, len(data))
	return nil
}

// RemoveCartridge unloads every cartridge window. It is safe to call when no
// cartridge is loaded.
func (mem *Bus) RemoveCartridge() {
	for w := banks.RAM123; w < banks.NumWindows; w++ {
		if mem.Banks.Cartridge(w) {
			logger.Logf(logger.Allow, "memory", "cartridge removed from %s", w)
		}
	}
	mem.Banks.RemoveCartridges()
}

// SplitCartridgeImage separates a cartridge image into the destination
// address, stored little-endian in the first two bytes, and the payload.
func SplitCartridgeImage(image []uint8) (uint16, []uint8, error) {
	if len(image) < 3 {
		return 0, nil, curated.Errorf(InvalidCartridgeImage, len(image))
	}
	return uint16(image[0]) | uint16(image[1])<<8, image[2:], nil
}
