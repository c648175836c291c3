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

import (
	"image"
	"image/color"
	"math"
)

// NewPattern creates a Stills source showing a white disc orbiting the centre
// of a black frame. Every pixel is either pure black or pure white, which is
// the kind of video the noise effect is intended for.
func NewPattern(width int, height int, numFrames int, fps float64) (*Stills, error) {
	frames := make([]image.Image, 0, numFrames)

	cx := float64(width) / 2
	cy := float64(height) / 2
	orbit := math.Min(cx, cy) / 2
	radius := math.Min(cx, cy) / 3

	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	for f := range numFrames {
		angle := 2 * math.Pi * float64(f) / float64(numFrames)
		dx := cx + orbit*math.Cos(angle)
		dy := cy + orbit*math.Sin(angle)

		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := range height {
			for x := range width {
				px := float64(x) + 0.5 - dx
				py := float64(y) + 0.5 - dy
				if px*px+py*py <= radius*radius {
					img.SetRGBA(x, y, white)
				} else {
					img.SetRGBA(x, y, black)
				}
			}
		}
		frames = append(frames, img)
	}

	return NewStills(frames, fps)
}
