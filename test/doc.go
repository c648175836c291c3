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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test failure and allow the test to continue.
// The Demand functions are fatal to the test and should be used when later
// parts of the test depend on the value being correct. For example, testing
// that the lengths of two slices are equal before iterating over them in
// unison.
//
// ExpectSuccess and ExpectFailure interpret values according to their type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Interpreting nil as success is not always what we want but because of how
// errors usually work (nil to indicate no error) we need to interpret nil in
// this way.
//
// All functions accept optional tags, which are printed ahead of any failure
// message. Tags are useful when a test is run in a loop.
package test
