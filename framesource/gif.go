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
	"image/gif"
	"io"

	"github.com/jetsetilly/ghostframe/curated"
	"golang.org/x/image/draw"
)

// GIFError is the pattern for errors returned by LoadGIF().
const GIFError = "framesource: gif: %v"

// frame rate used for GIFs that do not specify a delay
const defaultGIFRate = 10.0

// LoadGIF decodes an animated GIF and returns it as a Stills source. Each
// frame of the GIF is composited onto the frames before it, according to the
// disposal method of the frame, so that every image in the source is a
// complete picture.
func LoadGIF(r io.Reader) (*Stills, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, curated.Errorf(GIFError, err)
	}
	if len(g.Image) == 0 {
		return nil, curated.Errorf(GIFError, "no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))

	var delay int

	for i, p := range g.Image {
		var restore *image.RGBA
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			restore = image.NewRGBA(bounds)
			draw.Draw(restore, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)

		frm := image.NewRGBA(bounds)
		draw.Draw(frm, bounds, canvas, bounds.Min, draw.Src)
		frames = append(frames, frm)

		if i < len(g.Delay) {
			delay += g.Delay[i]
		}

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				canvas = restore
			}
		}
	}

	// GIF delays are in hundredths of a second. the average delay is used
	// for the whole stream
	fps := defaultGIFRate
	if delay > 0 {
		fps = 100.0 * float64(len(frames)) / float64(delay)
	}

	return NewStills(frames, fps)
}
