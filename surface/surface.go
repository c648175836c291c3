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

package surface

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Surface is an addressable RGBA pixel grid.
type Surface struct {
	img *image.RGBA

	// the scaling algorithm used by DrawScaled()
	scaler draw.Scaler
}

// NewSurface is the preferred method of initialisation for the Surface type.
// The new surface has zero area until Resize() is called.
func NewSurface() *Surface {
	return &Surface{
		img:    image.NewRGBA(image.Rectangle{}),
		scaler: draw.ApproxBiLinear,
	}
}

// Resize the surface. The surface is cleared even if the size has not
// changed.
func (srf *Surface) Resize(width int, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("surface: invalid dimensions %dx%d", width, height))
	}
	srf.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Width of surface in pixels.
func (srf *Surface) Width() int {
	return srf.img.Rect.Dx()
}

// Height of surface in pixels.
func (srf *Surface) Height() int {
	return srf.img.Rect.Dy()
}

// Bounds of the surface.
func (srf *Surface) Bounds() image.Rectangle {
	return srf.img.Rect
}

// Len returns the length of a pixel buffer for the surface.
func (srf *Surface) Len() int {
	return len(srf.img.Pix)
}

// Clear the entire surface to transparent black.
func (srf *Surface) Clear() {
	clear(srf.img.Pix)
}

// ClearRect clears the region of the surface to transparent black. The
// region is clipped to the surface.
func (srf *Surface) ClearRect(r image.Rectangle) {
	draw.Draw(srf.img, r.Intersect(srf.img.Rect), image.Transparent, image.Point{}, draw.Src)
}

// DrawScaled draws the entire image over the surface, scaled to fit the
// surface exactly. The image is composited over the existing content.
func (srf *Surface) DrawScaled(src image.Image) {
	if src == nil || srf.img.Rect.Empty() {
		return
	}
	srf.scaler.Scale(srf.img, srf.img.Rect, src, src.Bounds(), draw.Over, nil)
}

// ReadPixels copies the content of the surface into buf and returns it. If
// buf is not the correct length a new buffer is allocated.
func (srf *Surface) ReadPixels(buf []uint8) []uint8 {
	if len(buf) != len(srf.img.Pix) {
		buf = make([]uint8, len(srf.img.Pix))
	}
	copy(buf, srf.img.Pix)
	return buf
}

// WritePixels replaces the content of the surface with buf. The buffer must
// be exactly the length of the surface's pixel buffer. Any other length means
// the buffer was not read from this surface and WritePixels() will panic.
func (srf *Surface) WritePixels(buf []uint8) {
	if len(buf) != len(srf.img.Pix) {
		panic(fmt.Sprintf("surface: write of %d values to a surface of %d", len(buf), len(srf.img.Pix)))
	}
	copy(srf.img.Pix, buf)
}

// Image returns the surface as an image. The pixels are shared with the
// surface and must not be retained beyond the current refresh.
func (srf *Surface) Image() *image.RGBA {
	return srf.img
}
