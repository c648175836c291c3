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

// Package digest produces a cryptographic hash of the pixels written back to
// the surface on every tick. The hash can be used to compare the output of
// one run with another. With a zero-seeded noise source and a deterministic
// frame source, two runs produce the same hash.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
