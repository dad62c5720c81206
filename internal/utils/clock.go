package utils

import (
	"log"
	"time"
)

// Clock supplies the current instant; its location defines "local midnight"
// for expiry and weekly calculations.
type Clock func() time.Time

func SystemClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown timezone %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}
