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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/ghostframe/gui"
	"github.com/jetsetilly/ghostframe/test"
)

func TestIsClick(t *testing.T) {
	test.ExpectSuccess(t, gui.IsClick(gui.EventMouseButton{Button: gui.MouseButtonLeft, Down: true}))
	test.ExpectFailure(t, gui.IsClick(gui.EventMouseButton{Button: gui.MouseButtonLeft, Down: false}))
	test.ExpectFailure(t, gui.IsClick(gui.EventMouseButton{Button: gui.MouseButtonRight, Down: true}))
	test.ExpectFailure(t, gui.IsClick(gui.EventQuit{}))
}

func TestMouseButtonString(t *testing.T) {
	ev := gui.EventMouseButton{Button: gui.MouseButtonLeft, Down: true, X: 3, Y: 4}
	test.ExpectEquality(t, ev.String(), "left button down at 3, 4")
}
