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

// Package engine drives the per-tick render loop. Each tick the frame source
// is drawn onto the surface, the noise effect is applied and the result is
// written back, after which the next tick is requested from the refresh loop.
//
// Play() starts the frame source. Ticking only begins once the source
// reports that a frame is ready. The surface is sized to the native
// dimensions of the source on the first successful start and is not resized
// again. Pause() cancels the pending tick and stops the source. Toggle()
// chooses between the two based on the state of the engine.
//
// Every Engine function must be called from the goroutine that services the
// refresh loop. Completion of a start request is posted to the loop for the
// same reason.
package engine
