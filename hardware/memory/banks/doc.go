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

// Package banks keeps track of the optional memory of the VIC-20. There are
// five windows in the address space that can be populated with expansion RAM
// and four of those can instead be populated with cartridge ROM.
//
// The windows that are populated with RAM are decided by the ExpansionOption.
// Cartridge ROM is loaded and removed independently of the expansion option
// and takes precedence over RAM in the same window.
package banks
