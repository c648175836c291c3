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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// the upper bound (exclusive) of values returned by Noise()
const noiseRange = 255.0

// Random is a random number generator for the noise effect. It is not safe for
// concurrent use. The render loop is the only caller.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// Reseed restarts the sequence of random numbers. The value of ZeroSeed is
// honoured.
func (rnd *Random) Reseed() {
	seed := baseSeed
	if rnd.ZeroSeed {
		seed = 0
	}
	rnd.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Noise returns a real value in the range [0, 255).
func (rnd *Random) Noise() float64 {
	if rnd.rnd == nil {
		rnd.Reseed()
	}
	return rnd.rnd.Float64() * noiseRange
}
