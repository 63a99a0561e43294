package domain

import "time"

// PaymentType of an appointment request
type PaymentType string

const (
	PaymentFull PaymentType = "full"
	PaymentDown PaymentType = "down"
)

// AppointmentRequest is a client's claim on a slot. Its identity is the
// opaque IDRequest string, generated once at first save and never
// changed; rescheduling overwrites the date/time fields and increments
// RescheduleAttempts.
type AppointmentRequest struct {
	ID                 int64
	Date               time.Time // date value, clock part ignored
	StartTime          time.Time // clock value, date part ignored
	EndTime            time.Time // clock value, date part ignored
	ServiceID          int64
	StaffID            int64
	PaymentType        PaymentType
	IDRequest          string
	RescheduleAttempts int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StartAt returns the absolute start instant (date + start time).
func (r *AppointmentRequest) StartAt() time.Time {
	return combineDateClock(r.Date, r.StartTime)
}

// EndAt returns the absolute end instant (date + end time).
func (r *AppointmentRequest) EndAt() time.Time {
	return combineDateClock(r.Date, r.EndTime)
}

// Appointment is the confirmed booking for an AppointmentRequest,
// one-to-one with it. Its effective start/end for exclusion purposes
// are the linked request's.
type Appointment struct {
	ID           int64
	RequestID    int64
	ClientName   string
	ClientEmail  string
	Phone        *string
	Address      *string
	WantReminder bool
	Paid         bool
	IDRequest    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AppointmentView is the slice of an appointment the exclusion logic
// needs: its absolute interval [Start, End).
type AppointmentView struct {
	Start time.Time
	End   time.Time
}

func combineDateClock(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		date.Location(),
	)
}
