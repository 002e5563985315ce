package backup

import "time"

// Clock supplies the timestamp embedded in backup names.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the time package.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
