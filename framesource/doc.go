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

// Package framesource defines the Source interface, the video stream that the
// engine draws from, and the types shared by Source implementations.
//
// A Source is not ready to be queried until its first frame has been decoded
// (the "data loaded" point). The dimensions and frame of a Source that is not
// ready are undefined and asking for them is a programming error that will
// panic.
//
// Start() is asynchronous. It returns a Completion that is resolved when a
// frame is ready to render, or with an error if playback could not begin. A
// Completion may never be resolved if the decoder stalls. Callers must not
// assume playback has started until the Completion says so.
//
// Implementations in this package are Stills, which plays a list of images
// and can be created from an animated GIF with LoadGIF() or from the built in
// pattern with NewPattern(). Decoders for real video files are in the ffmpeg
// and gstreamer sub-packages.
package framesource
