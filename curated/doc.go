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

// Package curated is a helper package for the plain Go language error type.
// Curated errors keep the pattern they were created with, so code can test
// for a class of error without comparing formatted strings:
//
//	const NotReady = "framesource: not ready: %v"
//
//	err := curated.Errorf(NotReady, name)
//	if curated.Is(err, NotReady) {
//		...
//	}
//
// Has() looks for the pattern anywhere in a chain of curated errors.
//
// Error() removes duplicate adjacent parts of the message chain. An error
// created with the pattern "ffmpeg: %v" that wraps another error created with
// the same pattern will print "ffmpeg: ..." once and not "ffmpeg: ffmpeg: ...".
//
// Actual panics should only be used when something has happened such that
// the state of the program can no longer be guaranteed. For example, a pixel
// buffer that is not the size of the surface it was read from.
package curated
