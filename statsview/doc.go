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

// Package statsview serves live runtime statistics (goroutines, heap, GC
// pauses) over HTTP using the go-echarts statsview package. It is useful
// for watching the cost of the per-tick buffer copies over a long playback.
//
// The server is only compiled into the program when the statsview build tag
// is given:
//
//	go build -tags statsview .
//
// Without the tag, Available() returns false and Launch() does nothing.
package statsview
