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

package framesource

import (
	"image"
	"sync"

	"github.com/jetsetilly/ghostframe/curated"
)

// Playback is the state common to all Source implementations. It is intended
// to be embedded and provides the Width(), Height(), Frame() and Paused()
// functions of the Source interface.
//
// Decoders hand frames over with Deliver() from their own goroutine. Only the
// most recent frame is kept.
type Playback struct {
	crit sync.Mutex

	// the most recent frame. nil until data is loaded
	frame  image.Image
	width  int
	height int

	// playback is paused until Begin() is called
	playing bool

	// the stream has been played to the end. the last frame is retained
	ended bool

	// the completion returned by the most recent Begin(), until it is
	// resolved
	pending *Completion
}

// Width implements the Source interface.
func (p *Playback) Width() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.mustBeLoaded()
	return p.width
}

// Height implements the Source interface.
func (p *Playback) Height() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.mustBeLoaded()
	return p.height
}

// Frame implements the Source interface.
func (p *Playback) Frame() image.Image {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.mustBeLoaded()
	return p.frame
}

// Paused implements the Source interface.
func (p *Playback) Paused() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return !p.playing
}

// Loaded returns true once the first frame has been delivered.
func (p *Playback) Loaded() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.frame != nil
}

// Ended returns true if the stream has been played to the end.
func (p *Playback) Ended() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.ended
}

// querying before data is loaded is a precondition violation
func (p *Playback) mustBeLoaded() {
	if p.frame == nil {
		panic("framesource: stream queried before data loaded")
	}
}

// Begin marks the stream as playing and returns the Completion for the
// start request. The boolean is true if the stream was paused and the caller
// should begin decoding. If the stream was already playing the Completion of
// the earlier request is returned (already resolved if a frame has since been
// delivered).
//
// A stream that had ended is no longer marked as ended. The caller is
// expected to rewind it.
func (p *Playback) Begin() (*Completion, bool) {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.playing {
		if p.pending != nil {
			return p.pending, false
		}
		c := NewCompletion()
		c.Resolve(nil)
		return c, false
	}

	p.playing = true
	p.ended = false
	p.pending = NewCompletion()
	return p.pending, true
}

// Deliver a decoded frame. The first frame fixes the dimensions of the
// stream. The Completion of a pending start request is resolved.
func (p *Playback) Deliver(img image.Image) {
	p.crit.Lock()
	if p.frame == nil {
		b := img.Bounds()
		p.width = b.Dx()
		p.height = b.Dy()
	}
	p.frame = img

	var c *Completion
	if p.playing {
		c = p.pending
		p.pending = nil
	}
	p.crit.Unlock()

	// resolve outside of the critical section. the continuation may call back
	// into the Playback
	if c != nil {
		c.Resolve(nil)
	}
}

// Halt marks the stream as paused. A pending start request is resolved with
// the Stopped error.
func (p *Playback) Halt() {
	p.abandon(curated.Errorf(Stopped))
}

// Fail marks the stream as paused because of a decoding error. A pending start
// request is resolved with the error.
func (p *Playback) Fail(err error) {
	p.abandon(curated.Errorf(DecoderError, err))
}

func (p *Playback) abandon(err error) {
	p.crit.Lock()
	p.playing = false
	c := p.pending
	p.pending = nil
	p.crit.Unlock()

	if c != nil {
		c.Resolve(err)
	}
}

// End marks the stream as having been played to the end. The last frame is
// retained and the stream is paused. A pending start request is resolved with
// the Stopped error. A stream with no frames at all cannot be played.
func (p *Playback) End() {
	p.crit.Lock()
	p.ended = true
	p.crit.Unlock()
	p.abandon(curated.Errorf(Stopped))
}
