// This file is part of Checkergen.
//
// Checkergen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Checkergen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Checkergen.  If not, see <https://www.gnu.org/licenses/>.

package runstate

import (
	"time"
)

// limiter paces frames for outputs that do not wait for the vertical blank.
// it also measures the frame rate actually achieved.
type limiter struct {
	// whether to wait for the ticker each frame
	limit bool

	requested float64

	// actual rate calculation
	actual         float64
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time

	sync chan bool
	quit chan bool
}

func newLimiter(fps float64, limit bool) *limiter {
	lmtr := &limiter{
		limit:          limit,
		requested:      fps,
		actualCtTarget: int(fps) / 2,
		actualRefTime:  time.Now(),
		sync:           make(chan bool),
		quit:           make(chan bool),
	}

	if lmtr.actualCtTarget < 1 {
		lmtr.actualCtTarget = 1
	}

	if !limit {
		return lmtr
	}

	go func() {
		tck := time.NewTicker(time.Duration(float64(time.Second) / fps))
		defer tck.Stop()

		for {
			select {
			case <-tck.C:
				select {
				case lmtr.sync <- true:
				case <-lmtr.quit:
					return
				}
			case <-lmtr.quit:
				return
			}
		}
	}()

	return lmtr
}

// wait for the next tick if the limiter is limiting and then measure the
// actual frame rate. called once per frame immediately before the frame is
// presented.
func (lmtr *limiter) wait() {
	if lmtr.limit {
		<-lmtr.sync
	}
	lmtr.measureActual()
}

func (lmtr *limiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCt >= lmtr.actualCtTarget {
		t := time.Now()
		lmtr.actual = float64(lmtr.actualCtTarget) / t.Sub(lmtr.actualRefTime).Seconds()

		// remeasure roughly every second. if the rate has collapsed to less
		// than one frame per second then remeasure every frame
		if lmtr.actual > 1 {
			lmtr.actualCtTarget = int(lmtr.actual)
		} else {
			lmtr.actualCtTarget = 1
		}

		lmtr.actualRefTime = t
		lmtr.actualCt = 0
	}
}

// stop the ticker goroutine. the limiter cannot be used after stop.
func (lmtr *limiter) stop() {
	if lmtr.limit {
		close(lmtr.quit)
		lmtr.limit = false
	}
}
