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
	"os"
	"os/signal"

	"github.com/jetsetilly/ghostframe/engine"
	"github.com/jetsetilly/ghostframe/gui"
	"github.com/jetsetilly/ghostframe/gui/sdlplay"
	"github.com/jetsetilly/ghostframe/logger"
	"github.com/jetsetilly/ghostframe/modalflag"
	"github.com/jetsetilly/ghostframe/prefs"
	"github.com/jetsetilly/ghostframe/random"
	"github.com/jetsetilly/ghostframe/refresh"
	"github.com/jetsetilly/ghostframe/statsview"
	"github.com/jetsetilly/ghostframe/surface"
	"github.com/jetsetilly/ghostframe/version"
)

func play(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Click on the window to pause and resume playback.")

	common := addCommonFlags(md)
	prefsArgs := md.AddString("prefs", "", "window preferences (eg. \"scale::3; vsync::false\")")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	common.apply()

	if stats != nil && *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	filename, err := filenameArg(md)
	if err != nil {
		return err
	}

	src, release, err := openSourceWithFallback(*common.decoder, filename, false)
	if err != nil {
		return err
	}
	defer release()

	srf := surface.NewSurface()
	loop := refresh.NewLoop()

	var eng *engine.Engine
	quit := false

	handler := func(ev gui.Event) {
		switch ev := ev.(type) {
		case gui.EventQuit:
			quit = true
		case gui.EventMouseButton:
			if gui.IsClick(ev) {
				eng.Toggle()
			}
		}
	}

	// preferences from the command line are taken by the window
	prefs.PushCommandLineStack(*prefsArgs)
	scr, err := sdlplay.NewSdlPlay(srf, loop, handler)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "main", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}
	defer scr.Destroy()

	eng = engine.NewEngine(src, srf, loop, random.NewRandom(), engine.Hooks{
		StartFailed: func(err error) {
			fmt.Printf("* %v\n", err)
		},
	})

	// playback begins as soon as the window is open
	eng.Play()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	state := eng.State()
	scr.SetTitle(windowTitle(filename, state))

	for !quit {
		select {
		case <-intChan:
			fmt.Print("\r")
			quit = true
			continue
		default:
		}

		if err := scr.Service(); err != nil {
			eng.Pause()
			return err
		}

		if eng.State() != state {
			state = eng.State()
			scr.SetTitle(windowTitle(filename, state))
		}
	}

	eng.Pause()
	logger.Logf(logger.Allow, "main", "%d ticks (%.02f fps)", eng.Ticks(), scr.MeasuredFPS())

	return nil
}

func windowTitle(filename string, state engine.State) string {
	if filename == "" {
		filename = "pattern"
	}
	return fmt.Sprintf("%s - %s [%s]", version.ApplicationName, filename, state)
}
