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

// Package limiter keeps the emulation running at the speed of the real
// machine. The emulation reports the number of CPU cycles executed and the
// limiter suspends the caller when the emulation is ahead of the wall clock.
//
// When the emulation is behind the wall clock no attempt is made to catch up.
// The difference is forgotten and the emulation continues from the current
// time.
package limiter
