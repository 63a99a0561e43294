package domain

import "time"

// StaffMember offers services and carries optional per-member
// scheduling overrides. An unset override falls back to the singleton
// SchedulingConfig, then to the application defaults.
type StaffMember struct {
	ID   int64
	Name string

	// Overrides; nil means "fall back"
	SlotDurationMinutes *int
	LeadTime            *time.Time // clock value, date part ignored
	FinishTime          *time.Time // clock value, date part ignored
	BufferMinutes       *float64

	// Derived flags kept in sync by WorkingHours mutations
	WorkOnSaturday bool
	WorkOnSunday   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPersonalWindow returns true when both personal window bounds are
// set. Only then do they stand in for a missing WorkingHours row.
func (s *StaffMember) HasPersonalWindow() bool {
	return s.LeadTime != nil && s.FinishTime != nil
}

// WorksOnWeekday reflects the derived weekend flags; non-weekend days
// are always considered candidates (the WorkingHours lookup decides).
func (s *StaffMember) WorksOnWeekday(day time.Weekday) bool {
	switch day {
	case time.Saturday:
		return s.WorkOnSaturday
	case time.Sunday:
		return s.WorkOnSunday
	default:
		return true
	}
}

// NonWorkingWeekendDays lists the weekend days the staff member does
// not work, in the 0=Sunday numbering.
func (s *StaffMember) NonWorkingWeekendDays() []time.Weekday {
	days := make([]time.Weekday, 0, 2)
	if !s.WorkOnSunday {
		days = append(days, time.Sunday)
	}
	if !s.WorkOnSaturday {
		days = append(days, time.Saturday)
	}
	return days
}
