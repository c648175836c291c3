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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/ghostframe/digest"
	"github.com/jetsetilly/ghostframe/test"
)

func TestChaining(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()

	empty := a.Hash()
	test.ExpectEquality(t, empty, "0000000000000000000000000000000000000000")

	pixels := []uint8{10, 20, 30, 255}

	a.Rendered(1, pixels)
	b.Rendered(1, pixels)
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)

	// the same pixels on a second tick produce a different digest because of
	// the chaining
	first := a.Hash()
	a.Rendered(2, pixels)
	test.ExpectInequality(t, a.Hash(), first)
	test.ExpectEquality(t, a.Ticks(), 2)

	// different pixels diverge
	b.Rendered(2, []uint8{11, 20, 30, 255})
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestReset(t *testing.T) {
	dig := digest.NewVideo()
	dig.Rendered(1, []uint8{1, 2, 3, 4})
	h := dig.Hash()

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Ticks(), 0)
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	dig.Rendered(1, []uint8{1, 2, 3, 4})
	test.ExpectEquality(t, dig.Hash(), h)
}
