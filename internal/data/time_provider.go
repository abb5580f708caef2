package data

import "time"

// TimeProvider abstracts the clock so position history timestamps can be
// controlled in tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock.
type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}
