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
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/framesource"
	"github.com/jetsetilly/ghostframe/framesource/ffmpeg"
	"github.com/jetsetilly/ghostframe/framesource/gstreamer"
	"github.com/jetsetilly/ghostframe/logger"
)

// Patterns for errors when opening a frame source.
const (
	UnknownDecoder = "unknown decoder (%s)"
	NoVideoFile    = "%s decoder requires a video file"
	UnexpectedFile = "%s decoder does not take a file"
)

// size and length of the built-in pattern
const (
	patternWidth  = 320
	patternHeight = 240
	patternFrames = 90
	patternFPS    = 30.0
)

// openSource creates the frame source chosen by the decoder argument. The
// returned function releases the source and must always be called.
//
// Stills sources (pattern and gif) are made manual if manual is true. It is
// then the responsibility of the caller to step through the frames.
func openSource(decoder string, filename string, manual bool) (framesource.Source, func(), error) {
	none := func() {}

	if decoder == "auto" {
		decoder = chooseDecoder(filename)
	}

	if filename == "" && decoder != "pattern" {
		return nil, none, curated.Errorf(NoVideoFile, decoder)
	}

	switch decoder {
	case "pattern":
		if filename != "" {
			return nil, none, curated.Errorf(UnexpectedFile, decoder)
		}
		stl, err := framesource.NewPattern(patternWidth, patternHeight, patternFrames, patternFPS)
		if err != nil {
			return nil, none, err
		}
		return manualStills(stl, manual)

	case "gif":
		f, err := os.Open(filename)
		if err != nil {
			return nil, none, err
		}
		defer f.Close()

		stl, err := framesource.LoadGIF(f)
		if err != nil {
			return nil, none, err
		}
		return manualStills(stl, manual)

	case "ffmpeg":
		dec, err := ffmpeg.NewDecoder(filename)
		if err != nil {
			return nil, none, err
		}
		return dec, dec.Stop, nil

	case "gstreamer":
		return openGStreamer(filename)
	}

	return nil, none, curated.Errorf(UnknownDecoder, decoder)
}

// the decoder used by "auto". ffmpeg is preferred to gstreamer for video
// files and is replaced by gstreamer if ffmpeg cannot be found
func chooseDecoder(filename string) string {
	if filename == "" {
		return "pattern"
	}
	if strings.EqualFold(filepath.Ext(filename), ".gif") {
		return "gif"
	}
	return "ffmpeg"
}

func manualStills(stl *framesource.Stills, manual bool) (framesource.Source, func(), error) {
	if manual {
		if err := stl.SetRate(0); err != nil {
			return nil, func() {}, err
		}
	}
	return stl, stl.Stop, nil
}

func openGStreamer(filename string) (framesource.Source, func(), error) {
	dec, err := gstreamer.NewDecoder(filename)
	if err != nil {
		return nil, func() {}, err
	}
	return dec, func() {
		dec.Stop()
		dec.Close()
	}, nil
}

// openSourceWithFallback is openSource but with a fallback to the gstreamer
// decoder if auto chose ffmpeg and ffmpeg is not installed
func openSourceWithFallback(decoder string, filename string, manual bool) (framesource.Source, func(), error) {
	src, release, err := openSource(decoder, filename, manual)
	if err != nil && decoder == "auto" && curated.Is(err, ffmpeg.NotInstalled) {
		logger.Logf(logger.Allow, "main", "%v: trying gstreamer", err)
		return openGStreamer(filename)
	}
	return src, release, err
}
