package kernel

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultTimeZone is the zone in which deliveries are timestamped when none
// is configured. Continental Chile observes daylight saving time, so the zone
// must be resolved from the tz database rather than a fixed offset.
const DefaultTimeZone = "America/Santiago"

// LoadZone resolves an IANA zone name. An empty name selects DefaultTimeZone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimeZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return loc, nil
}

// SystemClock reads wall-clock time in a fixed zone.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock creates a clock reporting times in loc. A nil loc means UTC.
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{loc: loc}
}

// Now returns the current time in the clock's zone.
func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the clock's zone.
func (c SystemClock) Location() *time.Location {
	return c.loc
}
