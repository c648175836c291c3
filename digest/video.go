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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Video generates a SHA-1 value of the pixel buffer on every tick. The value
// of each digest is chained with the value of the previous digest.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest [sha1.Size]byte
	data   []byte
	ticks  int
}

// NewVideo initialises a new instance of the Video digest.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements digest.Digest interface
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.ticks = 0
}

// Ticks returns the number of ticks that have contributed to the digest.
func (dig *Video) Ticks() int {
	return dig.ticks
}

// Rendered is to be called with the pixels written back to the surface. The
// signature matches the Rendered hook of the engine.
func (dig *Video) Rendered(tick int, pixels []uint8) {
	l := len(dig.digest) + len(pixels)
	if cap(dig.data) < l {
		dig.data = make([]byte, l)
	}
	dig.data = dig.data[:l]

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	copy(dig.data, dig.digest[:])
	copy(dig.data[len(dig.digest):], pixels)

	dig.digest = sha1.Sum(dig.data)
	dig.ticks++
}
