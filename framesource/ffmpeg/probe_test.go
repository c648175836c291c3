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
	"testing"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/test"
)

func TestParseProbe(t *testing.T) {
	prb, err := parseProbe("width=512\nheight=384\nr_frame_rate=30/1\navg_frame_rate=30000/1001\n")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prb.Width, 512)
	test.ExpectEquality(t, prb.Height, 384)
	test.ExpectEquality(t, prb.FPS, 30000.0/1001.0)

	// fallback to r_frame_rate
	prb, err = parseProbe("width=10\nheight=20\nr_frame_rate=25/1\navg_frame_rate=0/0\n")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prb.FPS, 25.0)

	_, err = parseProbe("width=10\nr_frame_rate=25/1\n")
	test.ExpectSuccess(t, curated.Is(err, BadDimensions))

	_, err = parseProbe("width=0\nheight=10\nr_frame_rate=25/1\n")
	test.ExpectSuccess(t, curated.Is(err, BadDimensions))
	test.ExpectEquality(t, err.Error(), "probe: invalid dimensions (0x10)")

	_, err = parseProbe("width=10\nheight=10\nr_frame_rate=0/0\navg_frame_rate=0/0\n")
	test.ExpectSuccess(t, curated.Is(err, BadFrameRate))

	_, err = parseProbe("width=10\nheight=10\nr_frame_rate=x\n")
	test.ExpectSuccess(t, curated.Is(err, BadFrameRate))
}

func TestParseRate(t *testing.T) {
	r, err := parseRate("24")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 24.0)

	r, err = parseRate("50/2")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 25.0)

	_, err = parseRate("x/1")
	test.ExpectFailure(t, err)
}
