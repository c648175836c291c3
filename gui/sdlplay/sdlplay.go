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
	"github.com/jetsetilly/ghostframe/limiter"
	"github.com/jetsetilly/ghostframe/logger"
	"github.com/jetsetilly/ghostframe/prefs"
	"github.com/jetsetilly/ghostframe/refresh"
	"github.com/jetsetilly/ghostframe/surface"
	"github.com/jetsetilly/ghostframe/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Patterns for errors from the SDL window.
const (
	SDLError   = "sdl: %v"
	PitchError = "sdl: texture pitch (%d) smaller than row (%d)"
)

const pixelDepth = 4

// size of the window before the surface has been sized
const (
	placeholderWidth  = 320
	placeholderHeight = 240
)

// SdlPlay is a window showing the contents of a surface.
type SdlPlay struct {
	srf     *surface.Surface
	loop    *refresh.Loop
	handler gui.Handler

	// limits the refresh rate when vsync is disabled
	lmtr *limiter.Limiter

	// Prefs can be altered at any time
	Prefs *Preferences

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the dimensions of the texture. if the surface is a different size the
	// texture is recreated
	texWidth  int32
	texHeight int32

	// whether the renderer was created with PRESENTVSYNC
	vsync bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Events
// are passed to the handler during Service().
func NewSdlPlay(srf *surface.Surface, loop *refresh.Loop, handler gui.Handler) (*SdlPlay, error) {
	scr := &SdlPlay{
		srf:     srf,
		loop:    loop,
		handler: handler,
		lmtr:    limiter.NewLimiter(),
	}

	var err error

	scr.Prefs, err = newPreferences()
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// MOUSEMOTION events fill up the event queue and we have no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		placeholderWidth, placeholderHeight,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// vsync can only be chosen when the renderer is created
	scr.vsync = scr.Prefs.VSync.Get().(bool)
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if scr.vsync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, flags)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.lmtr.SetLimit(float32(scr.Prefs.FPSCap.Get().(float64)))
	scr.lmtr.Active = !scr.vsync

	scr.Prefs.FPSCap.SetHookPost(func(v prefs.Value) error {
		scr.lmtr.SetLimit(float32(v.(float64)))
		return nil
	})
	scr.Prefs.VSync.SetHookPost(func(v prefs.Value) error {
		if v.(bool) != scr.vsync {
			logger.Log(logger.Allow, "sdlplay", "vsync change will take effect on restart")
		}
		return nil
	})
	scr.Prefs.Scale.SetHookPost(func(v prefs.Value) error {
		scr.setWindowSize()
		return nil
	})

	logger.Logf(logger.Allow, "sdlplay", "window created (%s)", scr.Prefs)

	return scr, nil
}

// SetTitle of the window.
func (scr *SdlPlay) SetTitle(title string) {
	scr.window.SetTitle(title)
}

// Destroy the window and release SDL. The SdlPlay instance cannot be used
// after this call.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}
	}
	if err := scr.renderer.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	if err := scr.window.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	scr.lmtr.Stop()
	sdl.Quit()
}

// MeasuredFPS returns the refresh rate measured by the limiter.
func (scr *SdlPlay) MeasuredFPS() float32 {
	return scr.lmtr.Measured.Load().(float32)
}

// resize the texture if the surface has changed size
func (scr *SdlPlay) checkTexture() error {
	w := int32(scr.srf.Width())
	h := int32(scr.srf.Height())
	if w == scr.texWidth && h == scr.texHeight {
		return nil
	}

	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			return err
		}
		scr.texture = nil
	}

	scr.texWidth = w
	scr.texHeight = h

	if w == 0 || h == 0 {
		return nil
	}

	var err error

	// the byte order of ABGR8888 on a little-endian machine is the same as
	// the RGBA order of the surface
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), w, h)
	if err != nil {
		return err
	}

	scr.setWindowSize()
	logger.Logf(logger.Allow, "sdlplay", "texture is %dx%d", w, h)

	return nil
}

func (scr *SdlPlay) setWindowSize() {
	if scr.texWidth == 0 || scr.texHeight == 0 {
		return
	}
	scale := int32(scr.Prefs.Scale.Get().(int))
	scr.window.SetSize(scr.texWidth*scale, scr.texHeight*scale)
}

// copy surface pixels to the texture. the pitch of the texture may be wider
// than the surface
func (scr *SdlPlay) updateTexture() error {
	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}
	defer scr.texture.Unlock()

	img := scr.srf.Image()
	row := int(scr.texWidth) * pixelDepth
	if pitch < row {
		return curated.Errorf(PitchError, pitch, row)
	}

	for y := 0; y < int(scr.texHeight); y++ {
		copy(pixels[y*pitch:y*pitch+row], img.Pix[y*img.Stride:y*img.Stride+row])
	}

	return nil
}

// present the surface
func (scr *SdlPlay) present() error {
	if err := scr.checkTexture(); err != nil {
		return err
	}

	if err := scr.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := scr.renderer.Clear(); err != nil {
		return err
	}

	if scr.texture != nil {
		if err := scr.updateTexture(); err != nil {
			return err
		}
		if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
			return err
		}
	}

	scr.renderer.Present()

	return nil
}
