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

package test

import (
	"fmt"
	"strings"
	"testing"
)

// prefix for failure messages built from the tags argument
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := strings.Builder{}
	for _, t := range tags {
		s.WriteString(fmt.Sprintf("%v: ", t))
	}
	return s.String()
}

// returns true if v is a success value for its type. the second return value
// is false if the type is not supported
func success(v any) (bool, bool) {
	switch v := v.(type) {
	case nil:
		return true, true
	case bool:
		return v, true
	case error:
		return v == nil, true
	}
	return false, false
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, v T, notExpectedValue T, tags ...any) bool {
	t.Helper()
	if v == notExpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, notExpectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
		return false
	}
	if !ok {
		if err, isErr := v.(error); isErr {
			t.Errorf("%sa success value is expected for type %T (%v)", id(tags...), v, err)
		} else {
			t.Errorf("%sa success value is expected for type %T", id(tags...), v)
		}
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
		return false
	}
	if ok {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectPanic tests that the function panics. The recovered value is
// returned.
func ExpectPanic(t *testing.T, f func(), tags ...any) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Errorf("%sexpected a panic", id(tags...))
		}
	}()
	f()
	return nil
}
