package domain

import "time"

// Occurrence is one concrete instance produced by expanding a
// recurrence rule: a date plus the start and end clock times of the
// appointment on that date.
type Occurrence struct {
	Date      time.Time // date value, clock part ignored
	StartTime time.Time // clock value
	EndTime   time.Time // clock value
}
