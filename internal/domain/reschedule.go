package domain

import "time"

// RescheduleStatus of a reschedule history row
type RescheduleStatus string

const (
	RescheduleStatusPending   RescheduleStatus = "pending"
	RescheduleStatusConfirmed RescheduleStatus = "confirmed"
	RescheduleStatusCancelled RescheduleStatus = "cancelled"
)

// RescheduleHistory records a proposed move of an appointment request
// to a new date/time. While pending and younger than PendingHoldWindow
// it acts as a soft exclusive hold on the proposed interval: not a
// booking, but other clients are not offered overlapping slots until it
// resolves or expires.
type RescheduleHistory struct {
	ID        int64
	RequestID int64
	Date      time.Time // proposed date
	StartTime time.Time // proposed start, clock value
	EndTime   time.Time // proposed end, clock value
	StaffID   int64
	Reason    *string
	Status    RescheduleStatus
	IDRequest string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StillValid reports whether the pending hold has not yet expired.
func (h *RescheduleHistory) StillValid(now time.Time) bool {
	return now.Sub(h.CreatedAt) <= PendingHoldWindow
}

// IsPending reports whether the row still awaits confirmation.
func (h *RescheduleHistory) IsPending() bool {
	return h.Status == RescheduleStatusPending
}

// StartAt returns the absolute proposed start instant.
func (h *RescheduleHistory) StartAt() time.Time {
	return combineDateClock(h.Date, h.StartTime)
}

// EndAt returns the absolute proposed end instant.
func (h *RescheduleHistory) EndAt() time.Time {
	return combineDateClock(h.Date, h.EndTime)
}

// Hold is the slice of a pending reschedule the exclusion logic needs:
// the proposed absolute interval [Start, End).
type Hold struct {
	Start time.Time
	End   time.Time
}
