// This file is part of GopherHAL.
//
// GopherHAL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherHAL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherHAL.  If not, see <https://www.gnu.org/licenses/>.

package limiter

import (
	"sync/atomic"
	"time"
)

// MatchRefreshRate indicates that the limiter should match the refresh rate
// of the display.
const MatchRefreshRate float32 = -1.0

// Limiter paces frames.
type Limiter struct {
	// whether to wait for fps limited each frame
	Active atomic.Bool

	// the refresh rate of the display
	refreshRate float32

	// the ideal number of frames per second after the requested rate has
	// been resolved
	IdealFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// we don't want to wait on the pulse every frame because the ticker is
	// not accurate enough for very short durations
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
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limiter is active and the limited rate is set to match the refresh
// rate.
func NewLimiter(refreshRate float32) *Limiter {
	lmtr := &Limiter{
		refreshRate: refreshRate,
	}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.IdealFPS.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(MatchRefreshRate)

	return lmtr
}

// SetLimit sets the frame limit. Use a value of MatchRefreshRate to indicate
// that the limiter should equal the refresh rate of the display.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		fps = lmtr.refreshRate
	}

	// if fps is still zero then don't do anything
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
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}

	lmtr.measureActual()
}

// measures frame rate on every tick of the measuringPulse ticker.
func (lmtr *Limiter) measureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop releases the resources used by the limiter.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
