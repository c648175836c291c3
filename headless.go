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
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/digest"
	"github.com/jetsetilly/ghostframe/engine"
	"github.com/jetsetilly/ghostframe/framesource"
	"github.com/jetsetilly/ghostframe/limiter"
	"github.com/jetsetilly/ghostframe/logger"
	"github.com/jetsetilly/ghostframe/modalflag"
	"github.com/jetsetilly/ghostframe/performance"
	"github.com/jetsetilly/ghostframe/random"
	"github.com/jetsetilly/ghostframe/refresh"
	"github.com/jetsetilly/ghostframe/surface"
)

// Patterns for errors during a headless run.
const (
	NoFrames    = "number of frames must be greater than zero"
	Interrupted = "interrupted after %d ticks"
)

// options for a headless run
type headlessConfig struct {
	decoder  string
	filename string

	// number of ticks to run for
	frames int

	// refresh rate. zero means as fast as possible
	fps float64

	// reproducible noise
	zeroSeed bool

	// write the final surface to this file
	png string
}

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Prints the digest of the rendered ticks.")

	common := addCommonFlags(md)
	frames := md.AddInt("frames", 300, "number of ticks to render")
	fps := md.AddFloat64("fps", 60.0, "refresh rate (0 for unlimited)")
	zeroSeed := md.AddBool("zeroseed", false, "use zero seed for the noise generator")
	pngFile := md.AddString("png", "", "save the final surface as a PNG")
	profile := md.AddString("profile", "none", "run performance profilers (cpu, mem)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	common.apply()

	filename, err := filenameArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	cfg := headlessConfig{
		decoder:  *common.decoder,
		filename: filename,
		frames:   *frames,
		fps:      *fps,
		zeroSeed: *zeroSeed,
		png:      *pngFile,
	}

	return performance.RunProfiler(prf, "ghostframe", func() error {
		return runHeadless(cfg, output)
	})
}

func runHeadless(cfg headlessConfig, output io.Writer) error {
	if cfg.frames <= 0 {
		return curated.Errorf(NoFrames)
	}

	// stills are stepped once per tick so that the output does not depend on
	// the speed of the machine
	src, release, err := openSourceWithFallback(cfg.decoder, cfg.filename, true)
	if err != nil {
		return err
	}
	defer release()
	stills, _ := src.(*framesource.Stills)

	srf := surface.NewSurface()
	loop := refresh.NewLoop()

	rnd := random.NewRandom()
	rnd.ZeroSeed = cfg.zeroSeed
	rnd.Reseed()

	dig := digest.NewVideo()

	var startErr error
	eng := engine.NewEngine(src, srf, loop, rnd, engine.Hooks{
		StartFailed: func(err error) {
			startErr = err
		},
		Rendered: func(tick int, pixels []uint8) {
			dig.Rendered(tick, pixels)
			if stills != nil {
				stills.Step()
			}
		},
	})

	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()
	if cfg.fps > 0 {
		lmtr.SetLimit(float32(cfg.fps))
	} else {
		lmtr.Active = false
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	eng.Play()

	for eng.Ticks() < cfg.frames {
		select {
		case <-intChan:
			eng.Pause()
			return curated.Errorf(Interrupted, eng.Ticks())
		default:
		}

		loop.Service()

		if startErr != nil {
			return startErr
		}

		// a decoder may take a while to produce its first frame
		if eng.State() == engine.Starting && !lmtr.Active {
			time.Sleep(time.Millisecond)
		}

		lmtr.CheckFrame()
		lmtr.MeasureActual()
	}

	eng.Pause()
	logger.Logf(logger.Allow, "main", "%d ticks in session %s", eng.Ticks(), eng.Session())

	fmt.Fprintln(output, dig.Hash())

	if cfg.png != "" {
		return savePNG(cfg.png, srf)
	}

	return nil
}

func savePNG(filename string, srf *surface.Surface) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = png.Encode(f, srf.Image())
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
