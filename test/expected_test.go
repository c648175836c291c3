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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/ghostframe/test"
)

func TestExpectedValues(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	var err error
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))

	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, "abc", "abc")
	test.ExpectInequality(t, uint8(1), 2)
}

func TestPanic(t *testing.T) {
	r := test.ExpectPanic(t, func() {
		panic("expected")
	})
	test.ExpectEquality(t, r.(string), "expected")
}
