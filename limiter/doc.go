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

// Package limiter paces a refresh loop to a frame rate and measures the
// rate actually achieved.
//
// The Limiter is used to drive refresh.Loop.Service() when there is no
// display to synchronise with. That is, in headless mode and in the SDL
// window when vsync has been disabled.
//
// CheckFrame() should be called once per refresh. It blocks until the next
// refresh is due. MeasureActual() can be called as often as convenient and
// will update the Measured value about once a second.
package limiter
