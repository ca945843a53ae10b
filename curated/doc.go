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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function:
//
//	e := curated.Errorf("memory: cartridge: invalid destination (%#04x)", addr)
//
// The pattern string passed to Errorf() identifies the error. Packages that
// want callers to be able to test for a specific failure export the pattern
// as a constant:
//
//	const InvalidDestination = "memory: cartridge: invalid destination (%#04x)"
//
//	if curated.Is(err, memory.InvalidDestination) {
//		...
//	}
//
// The Has() function is similar to Is() but also looks through any curated
// errors that have been wrapped as values of the outer error.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. For the purposes of this package a chain is a sequence of
// parts separated by the sub-string ": ". So wrapping an error with the same
// prefix doesn't result in messages like:
//
//	memory: memory: cartridge: invalid destination (0x1000)
package curated
