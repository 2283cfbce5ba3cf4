package testing

import (
	"time"
)

// NeverSleeper retries a failed poll immediately.
type NeverSleeper struct{}

func (NeverSleeper) Reset() {}

func (NeverSleeper) After() time.Duration { return 0 }
