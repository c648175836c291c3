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
	"time"

	"github.com/jetsetilly/ghostframe/curated"
)

// list of error patterns returned when creating a Stills source.
const (
	NoFrames    = "framesource: stills: no frames"
	InvalidRate = "framesource: stills: invalid frame rate (%.02f)"
	NotPaused   = "framesource: stills: cannot change rate while playing"
)

// Stills is a Source that plays a list of images at a fixed rate. A rate of
// zero means the images only advance when Step() is called.
type Stills struct {
	Playback

	frames []image.Image
	rate   time.Duration

	// index of the frame most recently delivered. protected by stepCrit along
	// with the stop channel
	stepCrit sync.Mutex
	idx      int

	// closed to stop the running goroutine
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewStills is the preferred method of initialisation for the Stills type.
func NewStills(frames []image.Image, fps float64) (*Stills, error) {
	if len(frames) == 0 {
		return nil, curated.Errorf(NoFrames)
	}
	if fps < 0 {
		return nil, curated.Errorf(InvalidRate, fps)
	}

	stl := &Stills{
		frames: frames,
	}
	if fps > 0 {
		stl.rate = time.Duration(float64(time.Second) / fps)
	}

	return stl, nil
}

// SetRate changes the frame rate of a paused stream. A rate of zero means
// the stream only advances with Step().
func (stl *Stills) SetRate(fps float64) error {
	if fps < 0 {
		return curated.Errorf(InvalidRate, fps)
	}
	if !stl.Paused() {
		return curated.Errorf(NotPaused)
	}

	stl.stepCrit.Lock()
	defer stl.stepCrit.Unlock()

	stl.rate = 0
	if fps > 0 {
		stl.rate = time.Duration(float64(time.Second) / fps)
	}
	return nil
}

// Len returns the number of frames in the stream.
func (stl *Stills) Len() int {
	return len(stl.frames)
}

// Index returns the index of the frame most recently delivered.
func (stl *Stills) Index() int {
	stl.stepCrit.Lock()
	defer stl.stepCrit.Unlock()
	return stl.idx
}

// Start implements the Source interface. Playback continues from the frame
// that was showing when playback was stopped. A stream that has ended begins
// again from the first frame.
func (stl *Stills) Start() *Completion {
	ended := stl.Ended()

	c, begin := stl.Begin()
	if !begin {
		return c
	}

	stl.stepCrit.Lock()
	defer stl.stepCrit.Unlock()

	if ended {
		stl.idx = 0
	}

	// the frame at the current position is ready immediately
	stl.Deliver(stl.frames[stl.idx])

	if stl.rate > 0 {
		stl.stop = make(chan struct{})
		stl.wg.Add(1)
		go stl.run(stl.stop)
	}

	return c
}

// Stop implements the Source interface.
func (stl *Stills) Stop() {
	stl.stepCrit.Lock()
	stop := stl.stop
	stl.stop = nil
	stl.stepCrit.Unlock()

	if stop != nil {
		close(stop)
		stl.wg.Wait()
	}

	stl.Halt()
}

// Step advances the stream by one frame. It does nothing if the stream is
// paused. Stepping past the last frame ends the stream.
func (stl *Stills) Step() {
	if stl.Paused() {
		return
	}
	stl.stepCrit.Lock()
	defer stl.stepCrit.Unlock()
	stl.advance()
}

// advance to the next frame. returns false if the stream has ended. must be
// called from within the stepCrit critical section
func (stl *Stills) advance() bool {
	if stl.idx+1 >= len(stl.frames) {
		stl.End()
		return false
	}
	stl.idx++
	stl.Deliver(stl.frames[stl.idx])
	return true
}

func (stl *Stills) run(stop chan struct{}) {
	defer stl.wg.Done()

	t := time.NewTicker(stl.rate)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			stl.stepCrit.Lock()
			// a Stop() may have happened while waiting for the lock
			if stl.stop != stop {
				stl.stepCrit.Unlock()
				return
			}
			more := stl.advance()
			if !more {
				stl.stop = nil
			}
			stl.stepCrit.Unlock()
			if !more {
				return
			}
		}
	}
}
