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

package framesource

import "image"

// Source is a playable video stream.
type Source interface {
	// native dimensions of the stream. only valid after the first frame
	Width() int
	Height() int

	// the most recently decoded frame. only valid after the first frame
	Frame() image.Image

	// whether playback is paused. a stream is paused before the first call to
	// Start() and after it has ended
	Paused() bool

	// begin playback. the returned Completion is resolved when a frame is
	// ready to be rendered
	Start() *Completion

	// halt playback. stopping a paused stream is a no-op
	Stop()
}

// list of error patterns returned by Source implementations.
const (
	// a requested start was halted by Stop() before a frame arrived
	Stopped = "framesource: stopped before playback began"

	// the stream could not be opened or decoded
	DecoderError = "framesource: %v"
)
