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

package ffmpeg

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/jetsetilly/ghostframe/curated"
)

// Patterns for errors in the output of ffprobe.
const (
	BadDimensions = "probe: invalid dimensions (%v)"
	BadFrameRate  = "probe: invalid frame rate (%v)"
)

// Probe is the result of probing a video file.
type Probe struct {
	Width  int
	Height int
	FPS    float64
}

// probeFile runs ffprobe on the first video stream of the file
func probeFile(filename string) (Probe, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,avg_frame_rate,r_frame_rate",
		"-of", "default=noprint_wrappers=1",
		filename)

	out, err := cmd.Output()
	if err != nil {
		return Probe{}, err
	}

	return parseProbe(string(out))
}

// parseProbe parses the key=value output of ffprobe
func parseProbe(out string) (Probe, error) {
	entries := make(map[string]string)
	for _, l := range strings.Split(out, "\n") {
		kv := strings.SplitN(strings.TrimSpace(l), "=", 2)
		if len(kv) == 2 {
			entries[kv[0]] = kv[1]
		}
	}

	var prb Probe
	var err error

	prb.Width, err = strconv.Atoi(entries["width"])
	if err != nil {
		return Probe{}, curated.Errorf(BadDimensions, err)
	}
	prb.Height, err = strconv.Atoi(entries["height"])
	if err != nil {
		return Probe{}, curated.Errorf(BadDimensions, err)
	}
	if prb.Width <= 0 || prb.Height <= 0 {
		return Probe{}, curated.Errorf(BadDimensions, fmt.Sprintf("%dx%d", prb.Width, prb.Height))
	}

	// the average frame rate is preferred but is sometimes reported as 0/0
	prb.FPS, err = parseRate(entries["avg_frame_rate"])
	if err != nil || prb.FPS <= 0 {
		prb.FPS, err = parseRate(entries["r_frame_rate"])
		if err != nil {
			return Probe{}, curated.Errorf(BadFrameRate, err)
		}
		if prb.FPS <= 0 {
			return Probe{}, curated.Errorf(BadFrameRate, entries["r_frame_rate"])
		}
	}

	return prb, nil
}

// rates are reported as a fraction. for example, 30000/1001
func parseRate(s string) (float64, error) {
	num, den, found := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	if !found {
		return n, nil
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, nil
	}
	return n / d, nil
}
