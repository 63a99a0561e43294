package domain

import "time"

// Default scheduling values applied when neither the staff member nor
// the singleton configuration sets one
const (
	DefaultSlotDurationMinutes = 30
	DefaultBufferMinutes       = 0
	DefaultWebsiteName         = "Website"
)

// Default working window (lead = day start, finish = day end)
var (
	DefaultLeadTime   = time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	DefaultFinishTime = time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC)
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxBufferMinutes       = 10080
	MaxReasonLength        = 500
	MaxDescriptionLength   = 255
)

// PendingHoldWindow is how long a pending reschedule blocks its proposed
// interval from being offered to other clients. Holds self-expire; no
// explicit release is required.
const PendingHoldWindow = 5 * time.Minute

// MaxRecurrenceHorizon caps recurrence expansion when neither the rule
// nor the caller bounds it.
const MaxRecurrenceHorizon = 365 * 24 * time.Hour

// Time format constants
const (
	TimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
