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

// Package modalflag wraps the flag package in the Go standard library. It
// allows the program to be put into a "mode" by the first non-flag argument,
// with a different set of flags for each mode.
//
// Arguments are given with NewArgs() and parsed with Parse(), which takes no
// arguments. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "HEADLESS")
//	p, err := md.Parse()
//
// The first sub-mode is the default. If the next argument is not a sub-mode
// then the default is selected and the argument is left in place. Sub-mode
// comparisons are case insensitive.
//
// After a mode has been chosen, NewMode() prepares for the flags of that
// mode. Parse() is called again and flags belonging to that mode are set:
//
//	md.NewMode()
//	frames := md.AddInt("frames", 100, "number of ticks to run")
//	p, err = md.Parse()
//
// Non-flag arguments remaining after the last Parse() are retrieved with
// RemainingArgs() or GetArg(). Help requested with -help or -h is printed to
// Output by Parse(), which returns ParseHelp.
//
// AddChoice() adds a string flag that only accepts one of a fixed list of
// values.
package modalflag
