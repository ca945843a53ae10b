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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Access never fails. Addresses that nothing responds to read as the open
// bus value.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}

// VideoChip is implemented by the video chip. Only register access is
// required. The reg argument is in the range 0 to 15.
type VideoChip interface {
	ReadRegister(reg int) uint8
	WriteRegister(reg int, value uint8)
}
