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

// Package refresh provides the "run at the next display refresh" primitive
// that drives the render loop.
//
// A Loop is serviced once per display refresh by the host, on a single
// goroutine (the loop goroutine). Each call to Service() first runs any
// functions queued with Post() and then the frame callbacks that were
// requested before the refresh began. Callbacks requested during a refresh run
// on the following refresh.
//
// RequestFrame() returns a Handle that can be passed to CancelFrame().
// Cancelling is idempotent and takes effect immediately, even for a callback
// that is due to run later in the same refresh.
//
// Post() is the only function that is safe to call from other goroutines. It
// is how deferred continuations, such as a decoder signalling that playback
// has started, are moved onto the loop goroutine.
package refresh
