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
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jetsetilly/ghostframe/test"
)

func TestEndOfFile(t *testing.T) {
	killed := errors.New("signal: killed")

	test.ExpectSuccess(t, endOfFile(io.EOF, nil))
	test.ExpectSuccess(t, endOfFile(io.ErrUnexpectedEOF, nil))
	test.ExpectFailure(t, endOfFile(io.EOF, killed))
	test.ExpectFailure(t, endOfFile(errors.New("read failed"), nil))
}

func TestAdvance(t *testing.T) {
	dec := &Decoder{probe: Probe{Width: 2, Height: 2, FPS: 25}}

	// stopped part way through the file
	dec.delivered = 50
	dec.advance()
	test.ExpectEquality(t, dec.offset, 2*time.Second)
	test.ExpectEquality(t, dec.delivered, 0)

	dec.delivered = 25
	dec.advance()
	test.ExpectEquality(t, dec.offset, 3*time.Second)

	// stopped after the process had finished the file. the next start
	// rewinds rather than seeking past the end
	dec.delivered = 100
	dec.atEnd = true
	dec.advance()
	test.ExpectEquality(t, dec.offset, time.Duration(0))
	test.ExpectFailure(t, dec.atEnd)
}
