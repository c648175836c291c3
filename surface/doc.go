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

// Package surface is the drawable pixel grid the engine renders to. It
// supports the small set of operations the render loop needs: resize, clear,
// draw a scaled image, and read and write the entire pixel buffer.
//
// The pixel buffer layout is the same as the effect package expects: four
// values per pixel (red, green, blue, alpha) in row-major order.
//
// A Surface is not safe for concurrent use. It is owned by the render loop and
// presented by the host on the same goroutine.
package surface
