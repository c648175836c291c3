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

package sdlplay

import (
	"testing"

	"github.com/jetsetilly/ghostframe/test"
)

func TestClampToSurface(t *testing.T) {
	test.ExpectEquality(t, clampToSurface(0, 2, 320), 0)
	test.ExpectEquality(t, clampToSurface(101, 2, 320), 50)
	test.ExpectEquality(t, clampToSurface(639, 2, 320), 319)

	// a window larger than the scaled surface
	test.ExpectEquality(t, clampToSurface(700, 2, 320), 319)
	test.ExpectEquality(t, clampToSurface(-4, 2, 320), 0)

	// no surface yet
	test.ExpectEquality(t, clampToSurface(10, 2, 0), 0)
	test.ExpectEquality(t, clampToSurface(10, 0, 320), 0)
}
