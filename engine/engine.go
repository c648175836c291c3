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

package engine

import (
	"github.com/google/uuid"
	"github.com/jetsetilly/ghostframe/effect"
	"github.com/jetsetilly/ghostframe/framesource"
	"github.com/jetsetilly/ghostframe/logger"
	"github.com/jetsetilly/ghostframe/refresh"
	"github.com/jetsetilly/ghostframe/surface"
)

// State of the engine.
type State int

// List of valid State values.
const (
	Idle State = iota
	Starting
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Running:
		return "running"
	}
	return "unknown"
}

// Hooks are called by the engine on the loop goroutine. Either field can be
// nil.
type Hooks struct {
	// the frame source failed to start. the engine is back in the Idle state
	StartFailed func(err error)

	// pixels have been written back to the surface. the slice is reused by
	// the engine and must not be retained
	Rendered func(tick int, pixels []uint8)
}

// Engine is the render loop. It should be created with NewEngine().
type Engine struct {
	src   framesource.Source
	srf   *surface.Surface
	loop  *refresh.Loop
	noise effect.Noise
	hooks Hooks

	state State

	// incremented on every start request and on a pause during a start. a
	// start completion for an older generation is ignored
	generation int

	// handle of the pending tick. zero if no tick is pending
	handle refresh.Handle

	// the surface is sized once, on the first successful start
	sized bool

	previous []uint8
	current  []uint8

	// number of ticks since the engine was created
	ticks int

	// identifies the most recent playback in the log
	session uuid.UUID
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(src framesource.Source, srf *surface.Surface, loop *refresh.Loop, noise effect.Noise, hooks Hooks) *Engine {
	return &Engine{
		src:   src,
		srf:   srf,
		loop:  loop,
		noise: noise,
		hooks: hooks,
	}
}

// State returns the current state of the engine.
func (eng *Engine) State() State {
	return eng.state
}

// Ticks returns the number of ticks that have been run.
func (eng *Engine) Ticks() int {
	return eng.ticks
}

// Session returns the ID of the most recent playback. The empty string is
// returned if Play() has never been called.
func (eng *Engine) Session() string {
	if eng.session == uuid.Nil {
		return ""
	}
	return eng.session.String()
}

// Play requests that the frame source starts. Has no effect if the engine is
// not Idle.
func (eng *Engine) Play() {
	if eng.state != Idle {
		return
	}

	eng.state = Starting
	eng.generation++
	eng.session = uuid.New()
	logger.Logf(logger.Allow, "engine", "%s: starting", eng.session)

	gen := eng.generation
	eng.src.Start().Then(func(err error) {
		eng.loop.Post(func() {
			eng.started(gen, err)
		})
	})
}

// started is the continuation of the start request. called on the loop
// goroutine
func (eng *Engine) started(gen int, err error) {
	if gen != eng.generation || eng.state != Starting {
		logger.Logf(logger.Allow, "engine", "%s: ignoring stale start", eng.session)
		return
	}

	if err != nil {
		eng.state = Idle
		logger.Logf(logger.Allow, "engine", "%s: start failed: %v", eng.session, err)
		if eng.hooks.StartFailed != nil {
			eng.hooks.StartFailed(err)
		}
		return
	}

	if !eng.sized {
		eng.srf.Resize(eng.src.Width(), eng.src.Height())
		eng.sized = true
		logger.Logf(logger.Allow, "engine", "surface sized to %dx%d", eng.srf.Width(), eng.srf.Height())
	}

	eng.state = Running
	logger.Logf(logger.Allow, "engine", "%s: running", eng.session)

	// the first tick is not deferred to the next refresh
	eng.tick()
}

// Pause stops the frame source and cancels any pending tick. Has no effect if
// the engine is Idle.
func (eng *Engine) Pause() {
	switch eng.state {
	case Idle:
		return
	case Starting:
		eng.generation++
	case Running:
		eng.loop.CancelFrame(eng.handle)
		eng.handle = 0
	}

	eng.state = Idle
	eng.src.Stop()
	logger.Logf(logger.Allow, "engine", "%s: paused after %d ticks", eng.session, eng.ticks)
}

// Toggle between Play() and Pause() according to the current state.
func (eng *Engine) Toggle() {
	if eng.state == Idle {
		eng.Play()
	} else {
		eng.Pause()
	}
}

func (eng *Engine) tick() {
	eng.handle = 0
	eng.ticks++

	eng.previous = eng.srf.ReadPixels(eng.previous)
	eng.srf.Clear()
	eng.srf.DrawScaled(eng.src.Frame())
	eng.current = eng.srf.ReadPixels(eng.current)

	effect.Apply(eng.previous, eng.current, eng.noise)
	eng.srf.WritePixels(eng.current)

	if eng.hooks.Rendered != nil {
		eng.hooks.Rendered(eng.ticks, eng.current)
	}

	// the hook may have paused the engine
	if eng.state != Running {
		return
	}

	eng.handle = eng.loop.RequestFrame(eng.tick)
}
