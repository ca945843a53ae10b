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

package banks

import (
	"strings"

	"github.com/jetsetilly/gophervic/curated"
)

// Sentinel error returned by ParseExpansionOption().
const (
	UnknownExpansionOption = "banks: unknown expansion option (%s)"
)

// ExpansionOption is the amount of expansion RAM fitted to the machine.
type ExpansionOption int

// List of valid ExpansionOption values.
const (
	Unexpanded ExpansionOption = iota
	Expanded3K
	Expanded8K
	Expanded16K
	Expanded24K
	Expanded27K
	Expanded32K
	Expanded35K

	NumExpansionOptions
)

var expansionNames = [NumExpansionOptions]string{
	"unexpanded", "3K", "8K", "16K", "24K", "27K", "32K", "35K",
}

var expansionWindows = [NumExpansionOptions][]Window{
	{},
	{RAM123},
	{BLK1},
	{BLK1, BLK2},
	{BLK1, BLK2, BLK3},
	{RAM123, BLK1, BLK2, BLK3},
	{BLK1, BLK2, BLK3, BLK5},
	{RAM123, BLK1, BLK2, BLK3, BLK5},
}

func (opt ExpansionOption) String() string {
	if opt < 0 || opt >= NumExpansionOptions {
		return "undefined"
	}
	return expansionNames[opt]
}

// Windows returns the list of windows populated by RAM for the expansion
// option. The returned slice should not be modified.
func (opt ExpansionOption) Windows() []Window {
	if opt < 0 || opt >= NumExpansionOptions {
		return nil
	}
	return expansionWindows[opt]
}

// Includes returns true if the window is populated by RAM for the expansion
// option.
func (opt ExpansionOption) Includes(w Window) bool {
	for _, x := range opt.Windows() {
		if x == w {
			return true
		}
	}
	return false
}

// ExpansionOptions returns the names of every expansion option in order.
func ExpansionOptions() []string {
	return expansionNames[:]
}

// ParseExpansionOption converts the string to an ExpansionOption. Matching is
// case insensitive and "none" and "0K" are accepted as synonyms of
// "unexpanded".
func ParseExpansionOption(s string) (ExpansionOption, error) {
	t := strings.TrimSpace(s)
	switch strings.ToUpper(t) {
	case "", "NONE", "0K":
		return Unexpanded, nil
	}
	for i, n := range expansionNames {
		if strings.EqualFold(n, t) {
			return ExpansionOption(i), nil
		}
	}
	return Unexpanded, curated.Errorf(UnknownExpansionOption, s)
}

// BASICStart returns the address of the first byte of a BASIC program for
// the expansion option. The BASIC interpreter moves the start of program
// memory to the lowest block of contiguous RAM.
func (opt ExpansionOption) BASICStart() uint16 {
	switch {
	case opt.Includes(BLK1):
		return 0x1201
	case opt.Includes(RAM123):
		return 0x0401
	}
	return 0x1001
}
