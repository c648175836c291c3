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

// Package prefs facilitates the handling of user preferences.
//
// The Bool, Int and Float types hold preference values. Each type can have a
// function registered with SetHookPre() and SetHookPost(), called either side
// of the value being changed. A pre-hook that returns an error prevents the
// change.
//
// Preferences are collected into a Group under a key. The Group is the unit
// that receives values from the command line.
//
// Command line preferences are given as a single string of key/value pairs:
//
//	scale::3; vsync::false
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). ApplyCommandLine() on a Group takes the values for
// its keys from the top of the stack. Values not taken by any group can be
// retrieved with PopCommandLineStack() and reported to the user.
package prefs
