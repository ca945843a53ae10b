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

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gophervic/curated"
)

// Sentinel errors returned by the Group type. The error that caused a
// BadValue error is wrapped and can be found with curated.Has().
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	UnknownKey   = "prefs: unknown key (%s)"
	BadValue     = "prefs: %s: %v"
)

// Group collates named preference values. Values from the command line
// stack are applied with ApplyCommandLine().
type Group struct {
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the group under the specified key.
func (g *Group) Add(key string, p Pref) error {
	if _, ok := g.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	g.entries[key] = p
	return nil
}

// Set the value of the preference with the specified key.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(BadValue, key, err)
	}
	return nil
}

// ApplyCommandLine sets any preference in the group that has a value in the
// current command line stack group. Values are consumed as they are applied.
func (g *Group) ApplyCommandLine() error {
	for key, p := range g.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(BadValue, key, err)
			}
		}
	}
	return nil
}

// Reset all preferences in the group to their default values.
func (g *Group) Reset() error {
	for key, p := range g.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(BadValue, key, err)
		}
	}
	return nil
}

// String returns the group as a sorted list of key/value pairs, one per line.
func (g *Group) String() string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, g.entries[k]))
	}
	return s.String()
}
