package domain

import "time"

// ValidIntervals is the recognized set of refresh intervals. The minimum is
// one second; sampling never runs faster than that regardless of what the
// caller asks for.
var ValidIntervals = []time.Duration{
	1 * time.Second,
	2 * time.Second,
	5 * time.Second,
	10 * time.Second,
}

// DefaultInterval is the refresh interval used before any preference is set
const DefaultInterval = 2 * time.Second

// ClampInterval maps a requested interval onto the nearest member of
// ValidIntervals. Ties resolve to the smaller interval.
func ClampInterval(d time.Duration) time.Duration {
	best := ValidIntervals[0]
	bestDiff := absDuration(d - best)
	for _, valid := range ValidIntervals[1:] {
		diff := absDuration(d - valid)
		if diff < bestDiff {
			best = valid
			bestDiff = diff
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
