package game

import (
	"time"

	"sandbox/internal/config"
)

// FPSLimiter paces the frame loop with a hybrid sleep/spin wait, which
// holds the cap much tighter than a plain sleep.
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates an FPS limiter.
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due according to the configured
// cap. A cap of zero disables pacing.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin out the last stretch
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// After a hitch, resync instead of racing to catch up.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
