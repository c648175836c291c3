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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/ghostframe/curated"
)

// list of error patterns returned by the performance package.
const (
	ProfileError   = "performance: %v"
	UnknownProfile = "performance: unknown profile type (%s)"
)

// Profile specifies which profiles to generate.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

func (p Profile) String() string {
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ",")
}

// ParseProfile converts a comma separated list of profile types ("cpu",
// "mem"), or "none", into a Profile value.
func ParseProfile(s string) (Profile, error) {
	p := ProfileNone
	for _, t := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, strings.TrimSpace(t))
		}
	}
	return p, nil
}

// RunProfiler runs the function with the requested profiles active. Profile
// files are named with the prefix followed by "_cpu.profile" or
// "_mem.profile". The heap profile is written after the function returns.
func RunProfiler(profile Profile, prefix string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", prefix))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", prefix))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	return nil
}
