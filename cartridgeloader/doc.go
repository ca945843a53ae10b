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

// Package cartridgeloader is used to obtain the images that are to be attached
// to the emulated VIC-20.
//
// When the image is ready to be loaded into the emulator, the Load() function
// should be used. The Load() function handles loading of data from different
// sources. Currently local files and data over HTTP are supported.
//
// The NewLoader() function sets the Kind field according to the filename
// extension:
//
//	ld := cartridgeloader.NewLoader("games/blitz.prg")
//	err := ld.Load()
//
// After a successful load, the Hash field contains the SHA-1 hash of the data.
// If the Hash field is set before Load() is called, the loaded data must match
// it.
package cartridgeloader
