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

package gui

import "fmt"

// Event is the type passed to a Handler.
type Event interface{}

// Handler is called for every event.
type Handler func(ev Event)

// EventQuit is sent when the window has been closed.
type EventQuit struct{}

// MouseButton identifies a button in an EventMouseButton.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	}
	return "none"
}

// EventMouseButton is sent when a mouse button is pressed or released over
// the window. The coordinates are in surface pixels.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   int
}

func (ev EventMouseButton) String() string {
	state := "up"
	if ev.Down {
		state = "down"
	}
	return fmt.Sprintf("%s button %s at %d, %d", ev.Button, state, ev.X, ev.Y)
}

// IsClick returns true if the event is the left button being pressed.
func IsClick(ev Event) bool {
	mb, ok := ev.(EventMouseButton)
	return ok && mb.Button == MouseButtonLeft && mb.Down
}
