// This file is part of Ghostframe.
//
// Ghostframe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ghostframe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ghostframe.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/prefs"
	"github.com/jetsetilly/ghostframe/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get(), prefs.Value(true))

	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Set("nonsense"))
	test.ExpectEquality(t, v.String(), "false")

	err := v.Set(10)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.Get(), prefs.Value(3))

	test.ExpectSuccess(t, v.Set(" 4 "))
	test.ExpectEquality(t, v.String(), "4")

	test.ExpectFailure(t, v.Set("four"))
	test.ExpectEquality(t, v.String(), "4")

	v.SetRange(1, 5)
	err := v.Set(6)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.OutOfRange))
	test.ExpectEquality(t, v.String(), "4")
	test.ExpectSuccess(t, v.Set(5))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(2.5))
	test.ExpectEquality(t, v.Get(), prefs.Value(2.5))

	test.ExpectSuccess(t, v.Set("29.97"))
	test.ExpectEquality(t, v.String(), "29.97")

	test.ExpectSuccess(t, v.Set(60))
	test.ExpectEquality(t, v.Get(), prefs.Value(60.0))

	test.ExpectFailure(t, v.Set(true))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var pre, post []prefs.Value

	v.SetHookPre(func(nv prefs.Value) error {
		pre = append(pre, nv)
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = append(post, nv)
		return nil
	})

	test.ExpectSuccess(t, v.Set(1))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.String(), "1")

	test.ExpectEquality(t, len(pre), 2)
	test.ExpectEquality(t, len(post), 1)
	test.ExpectEquality(t, post[0], prefs.Value(1))
}

func TestGroup(t *testing.T) {
	var grp prefs.Group
	var scale prefs.Int
	var vsync prefs.Bool
	var fps prefs.Float

	test.DemandSuccess(t, grp.Add("scale", &scale, 2))
	test.DemandSuccess(t, grp.Add("vsync", &vsync, true))
	test.DemandSuccess(t, grp.Add("fpscap", &fps, 60.0))
	test.ExpectEquality(t, grp.String(), "scale::2; vsync::true; fpscap::60")

	err := grp.Add("scale", &scale, 3)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	prefs.PushCommandLineStack("scale::4; vsync::false; unused::1")
	test.ExpectSuccess(t, grp.ApplyCommandLine())
	test.ExpectEquality(t, grp.String(), "scale::4; vsync::false; fpscap::60")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	test.ExpectSuccess(t, grp.Reset())
	test.ExpectEquality(t, grp.String(), "scale::2; vsync::true; fpscap::60")

	prefs.PushCommandLineStack("scale::big")
	err = grp.ApplyCommandLine()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, prefs.BadValue))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
