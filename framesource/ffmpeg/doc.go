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

// Package ffmpeg is a framesource.Source that decodes a video file with the
// ffmpeg and ffprobe tools. Both tools must be in the executable path.
//
// The file is probed once, by NewDecoder(), for its dimensions and frame rate.
// Playback runs ffmpeg in real-time mode, writing raw RGBA frames to a pipe
// that is read by a goroutine. Stopping kills the ffmpeg process. Starting
// again runs a new process that seeks to the position at which playback was
// stopped.
package ffmpeg
