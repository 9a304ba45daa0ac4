package application

import "time"

// Clock supplies timestamps to services; tests swap in a fixed one.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation used in production.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
