package subscription

import (
	mathRand "math/rand"
	"time"

	"github.com/jpillora/backoff"
	"github.com/tevino/abool"
)

const (
	minRetryDelay = 500 * time.Millisecond
	maxRetryDelay = time.Minute
)

// Sleeper hands out the delay before the next poll after a failed one.
type Sleeper interface {
	Reset()
	After() time.Duration
}

// BackoffSleeper retries the first failure right away, then backs off
// exponentially between bounds derived from the block time.
type BackoffSleeper struct {
	backoff.Backoff
	failing *abool.AtomicBool
}

var _ Sleeper = (*BackoffSleeper)(nil)

// NewBackoffSleeper backs off from a quarter block to ten blocks, clamped to
// [500ms, 1m].
func NewBackoffSleeper(blockTime time.Duration) *BackoffSleeper {
	return &BackoffSleeper{
		Backoff: backoff.Backoff{
			Min: clampDuration(blockTime/4, minRetryDelay, maxRetryDelay),
			Max: clampDuration(10*blockTime, minRetryDelay, maxRetryDelay),
		},
		failing: abool.New(),
	}
}

// After returns the delay before the next attempt and grows the backoff.
func (bs *BackoffSleeper) After() time.Duration {
	if bs.failing.SetToIf(false, true) {
		return 0
	}
	return bs.Backoff.Duration()
}

// Reset is called after a successful poll.
func (bs *BackoffSleeper) Reset() {
	bs.failing.UnSet()
	bs.Backoff.Reset()
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

// pollInterval returns the block time +/- 10%.
func pollInterval(blockTime time.Duration) time.Duration {
	spread := int64(blockTime) / 5
	if spread <= 0 {
		return blockTime
	}
	return blockTime - time.Duration(spread/2) + time.Duration(mathRand.Int63n(spread))
}
