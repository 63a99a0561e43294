package domain

import (
	"errors"
	"time"
)

var (
	ErrWindowInverted    = errors.New("start time must be before end time")
	ErrDateRangeInverted = errors.New("start date must not be after end date")
)

// WorkingHours is a per-staff-member, per-weekday explicit working
// window. At most one row exists per (staff member, weekday).
type WorkingHours struct {
	ID        int64
	StaffID   int64
	DayOfWeek time.Weekday // 0=Sunday .. 6=Saturday
	StartTime time.Time    // clock value, date part ignored
	EndTime   time.Time    // clock value, date part ignored
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the start < end invariant.
func (w *WorkingHours) Validate() error {
	if clockMinutes(w.StartTime) >= clockMinutes(w.EndTime) {
		return ErrWindowInverted
	}
	return nil
}

// Window is the effective {start, end} working window resolved for a
// staff member on some weekday. Both are clock values.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayOff is a date range during which a staff member has zero
// availability regardless of working hours.
type DayOff struct {
	ID          int64
	StaffID     int64
	StartDate   time.Time // date value, clock part ignored
	EndDate     time.Time // date value, clock part ignored
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the start <= end invariant.
func (d *DayOff) Validate() error {
	if d.StartDate.After(d.EndDate) {
		return ErrDateRangeInverted
	}
	return nil
}

// Covers reports whether date falls inside the day-off range,
// boundaries included.
func (d *DayOff) Covers(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(d.StartDate.Year(), d.StartDate.Month(), d.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(d.EndDate.Year(), d.EndDate.Month(), d.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
