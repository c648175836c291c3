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

package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/framesource"
	"github.com/jetsetilly/ghostframe/test"
)

func TestChooseDecoder(t *testing.T) {
	test.ExpectEquality(t, chooseDecoder(""), "pattern")
	test.ExpectEquality(t, chooseDecoder("anim.GIF"), "gif")
	test.ExpectEquality(t, chooseDecoder("video.mp4"), "ffmpeg")
}

func TestOpenSourceErrors(t *testing.T) {
	_, release, err := openSource("ffmpeg", "", false)
	test.ExpectSuccess(t, curated.Is(err, NoVideoFile))
	release()

	_, release, err = openSource("pattern", "video.mp4", false)
	test.ExpectSuccess(t, curated.Is(err, UnexpectedFile))
	test.ExpectEquality(t, err.Error(), "pattern decoder does not take a file")
	release()

	_, release, err = openSource("vlc", "video.mp4", false)
	test.ExpectSuccess(t, curated.Is(err, UnknownDecoder))
	release()

	_, release, err = openSource("gif", filepath.Join(t.TempDir(), "missing.gif"), false)
	test.ExpectFailure(t, err)
	release()
}

func TestOpenPattern(t *testing.T) {
	src, release, err := openSource("auto", "", true)
	test.DemandSuccess(t, err)
	defer release()

	stl, ok := src.(*framesource.Stills)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, stl.Len(), patternFrames)
	test.ExpectSuccess(t, stl.Paused())
}

func TestHeadlessReproducible(t *testing.T) {
	cfg := headlessConfig{
		decoder:  "pattern",
		frames:   5,
		zeroSeed: true,
	}

	a := &bytes.Buffer{}
	test.DemandSuccess(t, runHeadless(cfg, a))

	b := &bytes.Buffer{}
	test.DemandSuccess(t, runHeadless(cfg, b))

	test.ExpectEquality(t, a.String(), b.String())
	test.ExpectEquality(t, len(strings.TrimSpace(a.String())), 40)

	// more ticks give a different digest
	cfg.frames = 6
	c := &bytes.Buffer{}
	test.DemandSuccess(t, runHeadless(cfg, c))
	test.ExpectInequality(t, a.String(), c.String())
}

func TestHeadlessPNG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "final.png")

	cfg := headlessConfig{
		decoder:  "pattern",
		frames:   2,
		zeroSeed: true,
		png:      fn,
	}
	test.DemandSuccess(t, runHeadless(cfg, &bytes.Buffer{}))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, patternWidth, patternHeight))
}

func TestHeadlessFrames(t *testing.T) {
	err := runHeadless(headlessConfig{decoder: "pattern"}, &bytes.Buffer{})
	test.ExpectSuccess(t, curated.Is(err, NoFrames))
}
