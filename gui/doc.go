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

// Package gui defines the events that a graphical host passes to the rest of
// the program. The events are deliberately few. A host window only needs to
// report that the user wants to quit and that a mouse button has been
// pressed or released.
//
// Implementations of a graphical host are in sub-packages. Events are
// delivered to a Handler on the goroutine that calls the host's Service()
// function, which is also the goroutine of the refresh loop.
package gui
