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

// Package gstreamer implements a framesource.Source using a GStreamer
// pipeline. The pipeline is:
//
//	filesrc ! decodebin ! videoconvert ! video/x-raw,format=RGBA ! appsink
//
// Frames are taken from the appsink callback and handed over to the
// embedded framesource.Playback. The pipeline bus is monitored for the end of
// the stream and for errors.
//
// Pausing and resuming is by pipeline state. Starting a stream that has
// reached its end takes the pipeline through the NULL state, which returns
// the filesrc to the beginning of the file.
package gstreamer
