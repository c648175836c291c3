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

package framesource_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"
	"time"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/framesource"
	"github.com/jetsetilly/ghostframe/test"
)

func TestCompletion(t *testing.T) {
	c := framesource.NewCompletion()
	var got error
	var ct int
	c.Then(func(err error) {
		got = err
		ct++
	})

	r, _ := c.Resolved()
	test.ExpectFailure(t, r)

	e := errors.New("failed")
	test.ExpectSuccess(t, c.Resolve(e))
	test.ExpectFailure(t, c.Resolve(nil))
	test.ExpectEquality(t, ct, 1)
	test.ExpectEquality(t, got, e)

	r, err := c.Resolved()
	test.ExpectSuccess(t, r)
	test.ExpectEquality(t, err, e)

	// single continuation only
	test.ExpectPanic(t, func() { c.Then(func(error) {}) })
}

func TestCompletionResolvedBeforeThen(t *testing.T) {
	c := framesource.NewCompletion()
	c.Resolve(nil)

	var ran bool
	c.Then(func(err error) {
		ran = true
		test.ExpectSuccess(t, err)
	})
	test.ExpectSuccess(t, ran)
}

func frame(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPlaybackPreconditions(t *testing.T) {
	var p framesource.Playback
	test.ExpectSuccess(t, p.Paused())
	test.ExpectFailure(t, p.Loaded())
	test.ExpectPanic(t, func() { p.Width() })
	test.ExpectPanic(t, func() { p.Height() })
	test.ExpectPanic(t, func() { p.Frame() })
}

func TestPlayback(t *testing.T) {
	var p framesource.Playback

	c, begin := p.Begin()
	test.ExpectSuccess(t, begin)
	test.ExpectFailure(t, p.Paused())

	// a second begin returns the same pending request
	c2, begin := p.Begin()
	test.ExpectFailure(t, begin)
	test.ExpectEquality(t, c2, c)

	p.Deliver(frame(3, 2, color.RGBA{A: 255}))
	r, err := c.Resolved()
	test.ExpectSuccess(t, r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Width(), 3)
	test.ExpectEquality(t, p.Height(), 2)

	// dimensions are fixed by the first frame
	p.Deliver(frame(5, 5, color.RGBA{A: 255}))
	test.ExpectEquality(t, p.Width(), 3)
	test.ExpectEquality(t, p.Frame().Bounds().Dx(), 5)

	// begin while playing and ready is already resolved
	c3, begin := p.Begin()
	test.ExpectFailure(t, begin)
	r, _ = c3.Resolved()
	test.ExpectSuccess(t, r)

	p.Halt()
	test.ExpectSuccess(t, p.Paused())
	p.Halt()
	test.ExpectSuccess(t, p.Paused())
}

func TestPlaybackHaltBeforeFrame(t *testing.T) {
	var p framesource.Playback
	c, _ := p.Begin()
	p.Halt()

	r, err := c.Resolved()
	test.ExpectSuccess(t, r)
	test.ExpectSuccess(t, curated.Is(err, framesource.Stopped))
}

func TestPlaybackFail(t *testing.T) {
	var p framesource.Playback
	c, _ := p.Begin()
	p.Fail(errors.New("no decoder"))

	_, err := c.Resolved()
	test.ExpectSuccess(t, curated.Is(err, framesource.DecoderError))
	test.ExpectSuccess(t, p.Paused())
}

func TestStillsManual(t *testing.T) {
	black := frame(2, 1, color.RGBA{A: 255})
	white := frame(2, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	stl, err := framesource.NewStills([]image.Image{black, white}, 0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, stl.Paused())

	// stepping while paused does nothing
	stl.Step()
	test.ExpectFailure(t, stl.Loaded())

	c := stl.Start()
	r, err := c.Resolved()
	test.ExpectSuccess(t, r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, stl.Frame(), black)
	test.ExpectEquality(t, stl.Width(), 2)
	test.ExpectEquality(t, stl.Height(), 1)

	stl.Step()
	test.ExpectEquality(t, stl.Frame(), white)
	test.ExpectEquality(t, stl.Index(), 1)

	// stepping past the end freezes on the last frame
	stl.Step()
	test.ExpectEquality(t, stl.Frame(), white)
	test.ExpectSuccess(t, stl.Ended())
	test.ExpectSuccess(t, stl.Paused())

	// starting an ended stream rewinds it
	stl.Start()
	test.ExpectEquality(t, stl.Frame(), black)
	test.ExpectFailure(t, stl.Ended())

	stl.Stop()
	stl.Stop()
	test.ExpectSuccess(t, stl.Paused())
}

func TestStillsResume(t *testing.T) {
	frames := []image.Image{
		frame(1, 1, color.RGBA{R: 1, A: 255}),
		frame(1, 1, color.RGBA{R: 2, A: 255}),
		frame(1, 1, color.RGBA{R: 3, A: 255}),
	}
	stl, err := framesource.NewStills(frames, 0)
	test.DemandSuccess(t, err)

	stl.Start()
	stl.Step()
	stl.Stop()

	// playback continues from the stopped position
	stl.Start()
	test.ExpectEquality(t, stl.Frame(), frames[1])
}

func TestStillsTimed(t *testing.T) {
	frames := []image.Image{
		frame(1, 1, color.RGBA{A: 255}),
		frame(1, 1, color.RGBA{A: 255}),
		frame(1, 1, color.RGBA{A: 255}),
	}
	stl, err := framesource.NewStills(frames, 200)
	test.DemandSuccess(t, err)

	stl.Start()

	deadline := time.Now().Add(5 * time.Second)
	for !stl.Ended() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectSuccess(t, stl.Ended())
	test.ExpectEquality(t, stl.Index(), 2)
	test.ExpectSuccess(t, stl.Paused())

	// stop after the stream has ended by itself
	stl.Stop()
}

func TestStillsErrors(t *testing.T) {
	_, err := framesource.NewStills(nil, 10)
	test.ExpectSuccess(t, curated.Is(err, framesource.NoFrames))
	_, err = framesource.NewStills([]image.Image{frame(1, 1, color.RGBA{})}, -1)
	test.ExpectSuccess(t, curated.Is(err, framesource.InvalidRate))
}

func TestStillsSetRate(t *testing.T) {
	stl, err := framesource.NewStills([]image.Image{frame(1, 1, color.RGBA{}), frame(1, 1, color.RGBA{R: 1})}, 100)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, stl.SetRate(0))
	test.ExpectSuccess(t, curated.Is(stl.SetRate(-1), framesource.InvalidRate))

	stl.Start()
	test.ExpectSuccess(t, curated.Is(stl.SetRate(10), framesource.NotPaused))

	// still manual. nothing changes without a step
	time.Sleep(50 * time.Millisecond)
	test.ExpectEquality(t, stl.Index(), 0)
	stl.Step()
	test.ExpectEquality(t, stl.Index(), 1)
	stl.Stop()
}

func TestPattern(t *testing.T) {
	stl, err := framesource.NewPattern(16, 12, 4, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, stl.Len(), 4)

	stl.Start()
	test.ExpectEquality(t, stl.Width(), 16)
	test.ExpectEquality(t, stl.Height(), 12)

	// the pattern is strictly black and white and contains both
	var black, white int
	img := stl.Frame().(*image.RGBA)
	for i := 0; i < len(img.Pix); i += 4 {
		switch img.Pix[i] {
		case 0:
			black++
		case 255:
			white++
		default:
			t.Fatalf("pixel %d is not black or white", i/4)
		}
		test.ExpectEquality(t, img.Pix[i+3], 255)
	}
	test.ExpectInequality(t, black, 0)
	test.ExpectInequality(t, white, 0)
}

func TestLoadGIF(t *testing.T) {
	palette := color.Palette{color.Black, color.White}

	a := image.NewPaletted(image.Rect(0, 0, 4, 2), palette)
	b := image.NewPaletted(image.Rect(0, 0, 4, 2), palette)
	b.SetColorIndex(3, 1, 1)

	buf := &bytes.Buffer{}
	err := gif.EncodeAll(buf, &gif.GIF{
		Image: []*image.Paletted{a, b},
		Delay: []int{5, 5},
	})
	test.DemandSuccess(t, err)

	stl, err := framesource.LoadGIF(buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, stl.Len(), 2)

	stl.Start()
	test.ExpectEquality(t, stl.Width(), 4)
	test.ExpectEquality(t, stl.Height(), 2)

	stl.Stop()
	_, err = framesource.LoadGIF(bytes.NewReader([]byte("not a gif")))
	test.ExpectFailure(t, err)
}
