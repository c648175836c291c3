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

package performance_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/performance"
	"github.com/jetsetilly/ghostframe/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("CPU, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	_, err = performance.ParseProfile("trace")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "run")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, prefix, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(prefix + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_cpu.profile")
	test.ExpectFailure(t, err)

	// the error from the function is returned
	err = performance.RunProfiler(performance.ProfileNone, prefix, func() error {
		return fmt.Errorf("failed")
	})
	test.ExpectFailure(t, err)
}
