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

package prefs

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ghostframe/curated"
)

// list of error patterns returned by Group.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	BadValue     = "prefs: %s: %v"
)

type entry struct {
	key   string
	p     pref
	value Value
}

// Group is a collection of preferences, each with a key and a default value.
type Group struct {
	entries []entry
}

// Add a preference to the group. The preference is set to the default value
// immediately.
func (grp *Group) Add(key string, p pref, def Value) error {
	for _, e := range grp.entries {
		if e.key == key {
			return curated.Errorf(DuplicateKey, key)
		}
	}

	if err := p.Set(def); err != nil {
		return curated.Errorf(BadValue, key, err)
	}

	grp.entries = append(grp.entries, entry{key: key, p: p, value: def})
	return nil
}

// ApplyCommandLine sets the preferences in the group from the top of the
// command line stack. Every key is tried. The first error is returned.
func (grp *Group) ApplyCommandLine() error {
	var first error

	for _, e := range grp.entries {
		ok, v := GetCommandLinePref(e.key)
		if !ok {
			continue
		}
		if err := e.p.Set(v); err != nil && first == nil {
			first = curated.Errorf(BadValue, e.key, err)
		}
	}

	return first
}

// Reset every preference in the group to its default value.
func (grp *Group) Reset() error {
	for _, e := range grp.entries {
		if err := e.p.Set(e.value); err != nil {
			return curated.Errorf(BadValue, e.key, err)
		}
	}
	return nil
}

// String returns the current values in the group in the same form as a
// command line prefs string. Entries are in the order they were added.
func (grp *Group) String() string {
	s := make([]string, 0, len(grp.entries))
	for _, e := range grp.entries {
		s = append(s, fmt.Sprintf("%s::%s", e.key, e.p.String()))
	}
	return strings.Join(s, "; ")
}
