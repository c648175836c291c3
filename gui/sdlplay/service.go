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

package sdlplay

import (
	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// Service handles pending window events, services the refresh loop and
// presents the surface. It returns when it is time for the next refresh.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() error {
	// every queued event is handled. truncating the queue could lose a click
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.handler(gui.EventQuit{})

		case *sdl.MouseButtonEvent:
			scr.handler(gui.EventMouseButton{
				Button: mouseButton(ev.Button),
				Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
				X:      scr.toSurface(ev.X, scr.texWidth),
				Y:      scr.toSurface(ev.Y, scr.texHeight),
			})
		}
	}

	scr.loop.Service()

	if err := scr.present(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	// when vsync is active Present() has already waited for the display
	scr.lmtr.CheckFrame()
	scr.lmtr.MeasureActual()

	return nil
}

func mouseButton(b uint8) gui.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return gui.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return gui.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return gui.MouseButtonRight
	}
	return gui.MouseButtonNone
}

// convert window coordinate to surface coordinate, clamped to the surface
func (scr *SdlPlay) toSurface(v int32, size int32) int {
	return clampToSurface(v, int32(scr.Prefs.Scale.Get().(int)), size)
}

func clampToSurface(v int32, scale int32, size int32) int {
	if size <= 0 || scale <= 0 {
		return 0
	}
	v /= scale
	if v < 0 {
		return 0
	}
	if v >= size {
		return int(size - 1)
	}
	return int(v)
}
