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

package input

// CharMap translates characters to the cells that must be pressed together
// to type them. For example a shifted character needs the cell of the shift
// key as well as the cell of the character key.
type CharMap map[rune][]Cell

// Injector types a string into the keyboard matrix.
type Injector struct {
	matrix  *Matrix
	charMap CharMap

	// the number of cycles a key is held down for and then released for
	hold int

	pending []rune
	pressed []Cell
	counter int
}

// NewInjector is the preferred method of initialisation for the Injector
// type.
func NewInjector(matrix *Matrix, charMap CharMap, hold int) *Injector {
	return &Injector{
		matrix:  matrix,
		charMap: charMap,
		hold:    hold,
	}
}

// SetCharMap changes the character map used for subsequent characters.
func (inj *Injector) SetCharMap(charMap CharMap) {
	inj.charMap = charMap
}

// SetHold changes the number of cycles a key is held for.
func (inj *Injector) SetHold(hold int) {
	inj.hold = hold
}

// Type queues the string for typing. Any part of a previous string that has
// not yet been typed is forgotten.
func (inj *Injector) Type(s string) {
	inj.pending = []rune(s)
}

// Pending returns the part of the string not yet typed.
func (inj *Injector) Pending() string {
	return string(inj.pending)
}

// Active returns true if there is a key held down or a character waiting to
// be typed.
func (inj *Injector) Active() bool {
	return len(inj.pending) > 0 || len(inj.pressed) > 0
}

// Reset forgets the pending string. Any key held down by the injector is
// released.
func (inj *Injector) Reset() {
	inj.release()
	inj.pending = nil
	inj.counter = 0
}

func (inj *Injector) release() {
	for _, c := range inj.pressed {
		inj.matrix.Set(c, false)
	}
	inj.pressed = nil
}

// Step advances the injector by the number of cycles. Each character is
// pressed for hold cycles and then released for hold cycles before the next
// character is pressed. Characters not in the character map are skipped.
func (inj *Injector) Step(cycles int) {
	if !inj.Active() {
		return
	}

	inj.counter -= cycles
	if inj.counter > 0 {
		return
	}
	inj.counter = inj.hold

	if len(inj.pressed) > 0 {
		inj.release()
		return
	}

	for len(inj.pending) > 0 {
		r := inj.pending[0]
		inj.pending = inj.pending[1:]
		if cells, ok := inj.charMap[r]; ok && len(cells) > 0 {
			inj.pressed = append(inj.pressed[:0], cells...)
			for _, c := range cells {
				inj.matrix.Set(c, true)
			}
			return
		}
	}
}
