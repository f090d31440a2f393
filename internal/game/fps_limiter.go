package game

import (
	"runtime"
	"time"
)

// spinThreshold is how close to the deadline the limiter stops sleeping and
// yields instead; sleeping that last stretch overshoots on most schedulers.
const spinThreshold = 200 * time.Microsecond

// FPSLimiter paces the main loop to a fixed frame rate and reports how long
// each frame took, like a game clock's tick.
type FPSLimiter struct {
	target time.Duration
	next   time.Time
	last   time.Time

	now   func() time.Time
	sleep func(time.Duration)
	yield func()
}

// NewFPSLimiter creates a limiter for fps frames per second. fps <= 0 disables
// waiting; Tick still reports frame time.
func NewFPSLimiter(fps int) *FPSLimiter {
	f := &FPSLimiter{
		now:   time.Now,
		sleep: time.Sleep,
		yield: runtime.Gosched,
	}
	if fps > 0 {
		f.target = time.Second / time.Duration(fps)
	}
	f.last = f.now()
	return f
}

// Target returns the frame budget, 0 when unlimited.
func (f *FPSLimiter) Target() time.Duration {
	return f.target
}

// Tick blocks until the current frame's budget has elapsed and returns the
// time since the previous Tick (or since construction).
func (f *FPSLimiter) Tick() time.Duration {
	if f.target > 0 {
		f.wait()
	}

	now := f.now()
	dt := now.Sub(f.last)
	f.last = now
	return dt
}

// wait uses a hybrid sleep/spin approach for better precision.
func (f *FPSLimiter) wait() {
	if f.next.IsZero() {
		f.next = f.last.Add(f.target)
	} else {
		f.next = f.next.Add(f.target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinThreshold {
			f.sleep(remaining - spinThreshold)
		} else {
			f.yield()
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := f.now().Sub(f.next); late > f.target {
		f.next = f.now()
	}
}
