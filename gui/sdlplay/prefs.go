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
	"github.com/jetsetilly/ghostframe/prefs"
)

// Preferences for the SDL window.
type Preferences struct {
	grp prefs.Group

	// window size as a multiple of the surface size
	Scale prefs.Int

	// synchronise presentation with the display
	VSync prefs.Bool

	// refresh rate when vsync is disabled
	FPSCap prefs.Float
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// default preference values
const (
	defScale  = 2
	defVSync  = true
	defFPSCap = 60.0
)

func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.Scale.SetRange(1, 8)

	if err := p.grp.Add("scale", &p.Scale, defScale); err != nil {
		return nil, err
	}
	if err := p.grp.Add("vsync", &p.VSync, defVSync); err != nil {
		return nil, err
	}
	if err := p.grp.Add("fpscap", &p.FPSCap, defFPSCap); err != nil {
		return nil, err
	}

	if err := p.grp.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	return p.grp.Reset()
}
