package utils

import "time"

// Clock is the source of "now" for everything that depends on the calendar
// day: note dates and the edit window.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock and converts it to a fixed location.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock in the named IANA time zone. An empty name
// or "Local" selects the process-local zone.
func NewSystemClock(timeZone string) (*SystemClock, error) {
	if timeZone == "" {
		return &SystemClock{loc: time.Local}, nil
	}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, err
	}

	return &SystemClock{loc: loc}, nil
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}
