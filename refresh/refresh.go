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

package refresh

import "sync"

// Handle identifies a pending frame callback. The zero value never identifies
// a callback.
type Handle uint64

// Loop queues frame callbacks and posted functions.
type Loop struct {
	// the most recent handle issued
	handle Handle

	// pending frame callbacks in the order they were requested
	pending map[Handle]func()
	order   []Handle

	// functions posted from any goroutine
	postCrit sync.Mutex
	posted   []func()

	// number of times Service() has been called
	refreshes int
}

// NewLoop is the preferred method of initialisation for the Loop type.
func NewLoop() *Loop {
	return &Loop{
		pending: make(map[Handle]func()),
	}
}

// RequestFrame registers f to be called on the next refresh. Must only be
// called from the loop goroutine.
func (l *Loop) RequestFrame(f func()) Handle {
	l.handle++
	l.pending[l.handle] = f
	l.order = append(l.order, l.handle)
	return l.handle
}

// CancelFrame prevents a requested callback from running. Cancelling a handle
// that has already run, has already been cancelled, or is the zero handle is
// a no-op. Must only be called from the loop goroutine.
func (l *Loop) CancelFrame(h Handle) {
	delete(l.pending, h)
}

// Post queues f to run on the loop goroutine at the start of the next
// refresh. Safe to call from any goroutine.
func (l *Loop) Post(f func()) {
	l.postCrit.Lock()
	defer l.postCrit.Unlock()
	l.posted = append(l.posted, f)
}

// Pending returns the number of frame callbacks waiting for a refresh.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Refreshes returns the number of times Service() has been called.
func (l *Loop) Refreshes() int {
	return l.refreshes
}

// Service should be called once per display refresh, from the loop goroutine.
func (l *Loop) Service() {
	l.refreshes++

	// callbacks requested before this point. the order slice is replaced so
	// that requests made by posted functions and by the callbacks themselves
	// are kept for the next refresh
	order := l.order
	l.order = nil

	// posted functions first. a posted function may post another, which will
	// wait until the next refresh
	l.postCrit.Lock()
	posted := l.posted
	l.posted = nil
	l.postCrit.Unlock()

	for _, f := range posted {
		f()
	}

	for _, h := range order {
		// the callback may have been cancelled by an earlier callback
		f, ok := l.pending[h]
		if !ok {
			continue
		}
		delete(l.pending, h)
		f()
	}
}
