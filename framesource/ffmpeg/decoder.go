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
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/framesource"
	"github.com/jetsetilly/ghostframe/logger"
)

// list of error patterns returned by the ffmpeg package.
const (
	NotInstalled = "ffmpeg: %s not installed"
	ProbeError   = "ffmpeg: probe: %v"
	ProcessError = "ffmpeg: %v"
)

// size of each pixel in the raw video stream
const pixelDepth = 4

// Decoder implements the framesource.Source interface.
type Decoder struct {
	framesource.Playback

	filename string
	probe    Probe

	// crit protects the running process and the playback position
	crit sync.Mutex

	// the running ffmpeg process and the channel closed when it is being
	// stopped deliberately
	cmd      *exec.Cmd
	stopping chan struct{}
	wg       sync.WaitGroup

	// playback position at which the current process started and the number
	// of frames it has delivered since
	offset    time.Duration
	delivered int

	// the current process reached the end of the file by itself
	atEnd bool
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The file is probed immediately.
func NewDecoder(filename string) (*Decoder, error) {
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(tool); err != nil {
			return nil, curated.Errorf(NotInstalled, tool)
		}
	}

	prb, err := probeFile(filename)
	if err != nil {
		return nil, curated.Errorf(ProbeError, err)
	}

	logger.Logf(logger.Allow, "ffmpeg", "%s: %dx%d at %.02f fps", filename, prb.Width, prb.Height, prb.FPS)

	return &Decoder{
		filename: filename,
		probe:    prb,
	}, nil
}

// Probe returns the result of probing the file.
func (dec *Decoder) Probe() Probe {
	return dec.probe
}

// Start implements the framesource.Source interface.
func (dec *Decoder) Start() *framesource.Completion {
	ended := dec.Ended()

	c, begin := dec.Begin()
	if !begin {
		return c
	}

	dec.crit.Lock()
	defer dec.crit.Unlock()

	if ended {
		dec.offset = 0
	}
	dec.delivered = 0
	dec.atEnd = false

	dec.cmd = exec.Command("ffmpeg",
		"-v", "error",
		"-re", // read input at native frame rate
		"-ss", fmt.Sprintf("%.3f", dec.offset.Seconds()),
		"-i", dec.filename,
		"-an", // no audio
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-", // stdout pipe created below
	)
	dec.cmd.Stderr = os.Stderr

	pipe, err := dec.cmd.StdoutPipe()
	if err != nil {
		dec.cmd = nil
		dec.Fail(curated.Errorf(ProcessError, err))
		return c
	}

	err = dec.cmd.Start()
	if err != nil {
		dec.cmd = nil
		dec.Fail(curated.Errorf(ProcessError, err))
		return c
	}

	logger.Logf(logger.Allow, "ffmpeg", "decoding from %s", dec.offset)

	dec.stopping = make(chan struct{})
	dec.wg.Add(1)
	go dec.read(dec.cmd, pipe, dec.stopping)

	return c
}

// Stop implements the framesource.Source interface.
func (dec *Decoder) Stop() {
	dec.crit.Lock()
	cmd := dec.cmd
	stopping := dec.stopping
	dec.cmd = nil
	dec.stopping = nil
	dec.crit.Unlock()

	if cmd != nil {
		close(stopping)
		if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			logger.Log(logger.Allow, "ffmpeg", err)
		}
		dec.wg.Wait()

		dec.crit.Lock()
		dec.advance()
		dec.crit.Unlock()
	}

	dec.Halt()
}

// move the playback position on after the current process has been stopped.
// the position is reset if the process had already finished the file. must be
// called from within the critical section
func (dec *Decoder) advance() {
	if dec.atEnd {
		dec.offset = 0
		dec.atEnd = false
	} else {
		dec.offset += dec.elapsed()
	}
	dec.delivered = 0
}

// a read error is the natural end of the file if the pipe closed and the
// process exited cleanly. a killed process also closes the pipe but always
// exits with an error
func endOfFile(readErr error, waitErr error) bool {
	return waitErr == nil && (errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF))
}

// playback time covered by the frames delivered by the current process. must
// be called from within the critical section
func (dec *Decoder) elapsed() time.Duration {
	return time.Duration(float64(dec.delivered) / dec.probe.FPS * float64(time.Second))
}

// read frames from the ffmpeg pipe until the stream ends or the process is
// killed
func (dec *Decoder) read(cmd *exec.Cmd, pipe io.Reader, stopping chan struct{}) {
	defer dec.wg.Done()

	size := dec.probe.Width * dec.probe.Height * pixelDepth

	for {
		img := image.NewRGBA(image.Rect(0, 0, dec.probe.Width, dec.probe.Height))
		_, err := io.ReadFull(pipe, img.Pix[:size])
		if err != nil {
			waitErr := cmd.Wait()

			if endOfFile(err, waitErr) {
				dec.crit.Lock()
				dec.atEnd = true
				dec.crit.Unlock()
			}

			select {
			case <-stopping:
				// killed by Stop(). errors are expected
				return
			default:
			}

			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				if waitErr != nil {
					logger.Log(logger.Allow, "ffmpeg", waitErr)
					if !dec.Loaded() {
						dec.Fail(curated.Errorf(ProcessError, waitErr))
						return
					}
				}
				dec.finish(cmd)
				return
			}

			dec.Fail(curated.Errorf(ProcessError, err))
			return
		}

		dec.crit.Lock()
		dec.delivered++
		dec.crit.Unlock()

		dec.Deliver(img)
	}
}

// the stream has reached the end by itself
func (dec *Decoder) finish(cmd *exec.Cmd) {
	dec.crit.Lock()
	if dec.cmd == cmd {
		dec.cmd = nil
		dec.stopping = nil
	}
	dec.offset = 0
	dec.crit.Unlock()

	logger.Log(logger.Allow, "ffmpeg", "end of stream")
	dec.End()
}
