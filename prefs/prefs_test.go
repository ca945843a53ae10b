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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/prefs"
	"github.com/jetsetilly/gophervic/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string is sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestTypes(t *testing.T) {
	b := prefs.NewBool(true)
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("FALSE"))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Reset())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectFailure(t, b.Set(10))

	i := prefs.NewInt(20000)
	test.ExpectSuccess(t, i.Set("100"))
	test.ExpectEquality(t, i.Get().(int), 100)
	test.ExpectFailure(t, i.Set("ten"))
	test.ExpectEquality(t, i.String(), "100")

	f := prefs.NewFloat(1.5)
	test.ExpectSuccess(t, f.Set(float32(2.5)))
	test.ExpectEquality(t, f.Get().(float64), 2.5)

	s := prefs.NewString("PAL")
	test.ExpectSuccess(t, s.Set(" NTSC "))
	test.ExpectEquality(t, s.Get().(string), "NTSC")
}

func TestHooks(t *testing.T) {
	i := prefs.NewInt(0)
	var post int
	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectFailure(t, i.Set(-1))
	test.ExpectEquality(t, i.Get().(int), 0)
	test.ExpectSuccess(t, i.Set(5))
	test.ExpectEquality(t, post, 5)
}

func TestGroup(t *testing.T) {
	g := prefs.NewGroup()
	spec := prefs.NewString("PAL")
	hold := prefs.NewInt(20000)
	test.ExpectSuccess(t, g.Add("machine.spec", spec))
	test.ExpectSuccess(t, g.Add("input.typehold", hold))

	err := g.Add("machine.spec", spec)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	prefs.PushCommandLineStack("machine.spec::NTSC; other::1")
	test.ExpectSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::1")
	test.ExpectEquality(t, spec.Get().(string), "NTSC")

	test.ExpectSuccess(t, g.Set("input.typehold", 100))
	err = g.Set("input.missing", 100)
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	// errors from the hooks are wrapped
	const tooSmall = "test: too small (%d)"
	hold.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 10 {
			return curated.Errorf(tooSmall, v)
		}
		return nil
	})
	err = g.Set("input.typehold", 5)
	test.ExpectSuccess(t, curated.Is(err, prefs.BadValue))
	test.ExpectSuccess(t, curated.Has(err, tooSmall))
	test.ExpectEquality(t, err.Error(), "prefs: input.typehold: test: too small (5)")
	hold.SetHookPre(nil)

	test.ExpectEquality(t, g.String(), "input.typehold :: 100\nmachine.spec :: NTSC\n")

	test.ExpectSuccess(t, g.Reset())
	test.ExpectEquality(t, spec.Get().(string), "PAL")
	test.ExpectEquality(t, hold.Get().(int), 20000)
}
