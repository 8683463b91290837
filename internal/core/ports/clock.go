package ports

import "time"

// Clock supplies the wall-clock instant used for photo names and timestamps.
type Clock interface {
	Now() time.Time
}
