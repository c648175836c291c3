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

import "sync"

// Completion is signalled once, when an asynchronous operation finishes. It
// accepts a single continuation, registered with Then().
//
// The continuation is called on the goroutine that resolves the Completion,
// or on the goroutine calling Then() if the Completion has already been
// resolved. Continuations that need to run on a particular goroutine should
// forward themselves (see refresh.Loop.Post()).
type Completion struct {
	crit     sync.Mutex
	resolved bool
	err      error
	then     func(error)
}

// NewCompletion is the preferred method of initialisation for the Completion
// type.
func NewCompletion() *Completion {
	return &Completion{}
}

// Then registers the continuation. A Completion only accepts one
// continuation and a second call to Then() will panic.
func (c *Completion) Then(f func(err error)) {
	c.crit.Lock()
	if c.then != nil {
		c.crit.Unlock()
		panic("framesource: completion already has a continuation")
	}
	c.then = f
	resolved := c.resolved
	err := c.err
	c.crit.Unlock()

	if resolved {
		f(err)
	}
}

// Resolve the Completion. Only the first call has any effect. Returns true if
// this call resolved the Completion.
func (c *Completion) Resolve(err error) bool {
	c.crit.Lock()
	if c.resolved {
		c.crit.Unlock()
		return false
	}
	c.resolved = true
	c.err = err
	f := c.then
	c.crit.Unlock()

	if f != nil {
		f(err)
	}
	return true
}

// Resolved returns true if the Completion has been resolved, along with the
// error it was resolved with.
func (c *Completion) Resolved() (bool, error) {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.resolved, c.err
}
