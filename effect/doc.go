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

// Package effect implements the ghosting noise post-process applied to every
// frame drawn by the engine.
//
// Apply() compares the buffer captured after the new frame was drawn
// (current) with the buffer captured before it was drawn (previous). Pixels
// are classified by the red channel of current alone. The source video is
// expected to be strictly black and white so the red channel is enough to
// tell them apart:
//
//	red == 0  dark    R, G and B are replaced by a single noise sample
//	red != 0  bright  R, G and B are copied from previous
//
// Alpha is never touched. Every pixel depends only on its own previous and
// current values so the order in which pixels are processed does not matter.
package effect
