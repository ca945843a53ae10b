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

// Package memorymap describes the fixed address map of the VIC-20. Every
// address in the 16 bit address space belongs to exactly one Area. Whether
// the memory in an area is present or not depends on the bank configuration
// of the machine, which is outside the scope of this package.
//
// MapAddress() returns the Area of an address and the address relative to the
// origin of that area. For the chip areas the relative address is the register
// number.
//
// The Summary() function produces a human readable list of the areas, one
// line per contiguous range.
package memorymap
