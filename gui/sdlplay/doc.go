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

// Package sdlplay presents the rendering surface in an SDL window. It is the
// host of the refresh loop in PLAY mode: every call to Service() handles
// window events, services the refresh loop and presents the surface.
//
// Presentation is synchronised with the display when the vsync preference is
// true. Otherwise the refresh rate is limited to the fpscap preference. The
// window is the size of the surface multiplied by the scale preference.
//
// All functions must be called from the main thread.
package sdlplay
