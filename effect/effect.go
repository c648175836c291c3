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

package effect

import "fmt"

// PixelDepth is the number of values per pixel in a buffer. Values are in the
// order red, green, blue, alpha.
const PixelDepth = 4

// Noise implementations return a real value in the range [0, 255).
type Noise interface {
	Noise() float64
}

// Apply the effect to current, in place. The previous buffer is not altered.
//
// Both buffers must be captures of the same surface and so must have the same
// length, which must be a multiple of PixelDepth. Any other length indicates a
// sizing bug elsewhere and Apply() will panic.
func Apply(previous []uint8, current []uint8, noise Noise) {
	if len(previous) != len(current) {
		panic(fmt.Sprintf("effect: buffer length mismatch (previous %d, current %d)", len(previous), len(current)))
	}
	if len(current)%PixelDepth != 0 {
		panic(fmt.Sprintf("effect: buffer length (%d) is not a multiple of the pixel depth", len(current)))
	}

	for i := 0; i < len(current); i += PixelDepth {
		if current[i] == 0 {
			n := sample(noise)
			current[i] = n
			current[i+1] = n
			current[i+2] = n
		} else {
			current[i] = previous[i]
			current[i+1] = previous[i+1]
			current[i+2] = previous[i+2]
		}
	}
}

// conversion of the real noise value to a channel value is by truncation
func sample(noise Noise) uint8 {
	v := noise.Noise()
	if v < 0.0 || v >= 255.0 {
		panic(fmt.Sprintf("effect: noise value (%f) out of range", v))
	}
	return uint8(v)
}
