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

// Package random should be used in preference to the math/rand package when a
// random number is required by the effect.
//
// Noise() returns values uniformly distributed over [0, 255), suitable for
// use as the magnitude of an 8-bit colour channel.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true before the first call to Noise(), or call Reseed() afterwards. This
// is useful for testing and for the headless digest.
package random
