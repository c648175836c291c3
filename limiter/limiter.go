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

package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/ghostframe/logger"
)

// DefaultFPS is the rate used by NewLimiter().
const DefaultFPS float32 = 60.0

// a measured rate below this fraction of the ideal rate is logged as a stall
const stallFraction = 0.5

// Limiter paces calls to CheckFrame() to a requested frame rate.
type Limiter struct {
	// whether to wait for the next pulse in CheckFrame()
	Active bool

	// the frame rate requested by SetLimit()
	IdealFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// waiting on the pulse for every frame is wasteful at high frame rates so
	// the pulse is scaled and only waited on every pulseCtLimit frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// number of measurements in a row that fell below the stall threshold
	stalls int
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limit is set to DefaultFPS.
func NewLimiter() *Limiter {
	lmtr := Limiter{}
	lmtr.Active = true
	lmtr.Measured.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(DefaultFPS)

	return &lmtr
}

// SetLimit changes the frame rate. Values of zero or less are ignored.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		return
	}

	lmtr.IdealFPS.Store(fps)

	// set scale and duration to wait according to requested FPS rate
	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	// restart actual FPS rate measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
	lmtr.stalls = 0
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse ticker.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0

		lmtr.checkStall(m)
	default:
	}
}

// only the first stall in a run of stalls is logged
func (lmtr *Limiter) checkStall(measured float32) {
	if !lmtr.Active {
		return
	}

	ideal := lmtr.IdealFPS.Load().(float32)
	if measured >= ideal*stallFraction {
		lmtr.stalls = 0
		return
	}

	lmtr.stalls++
	if lmtr.stalls == 1 {
		logger.Logf(logger.Allow, "limiter", "refresh stalled: %.02f fps (ideal %.02f fps)", measured, ideal)
	}
}

// Stop releases the tickers used by the limiter.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
