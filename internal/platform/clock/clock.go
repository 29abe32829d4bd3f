package clock

import "time"

// Clock abstracts time to keep report timestamps deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host's local wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
