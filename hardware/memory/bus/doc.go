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

// Package bus is used to define access patterns for different areas of the
// emulation to the VIC-20 memory. The CPU accesses memory through the CPUBus
// and every access has the side effects that the real hardware would have.
//
// The DebuggerBus is for the exclusive use of debuggers and loaders. Access
// through the DebuggerBus never has side effects on the chips.
//
// The chips in the chip areas are reached through the ChipBus interface. The
// video chip is an external collaborator and must implement VideoChip.
package bus
