package domain

import "time"

// Service is a bookable service offered by one or more staff members.
type Service struct {
	ID          int64
	Name        string
	Description *string
	Duration    time.Duration
	Price       float64
	Currency    string
	DownPayment float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPaid returns true when the service costs something. Payment
// handling itself lives outside this service.
func (s *Service) IsPaid() bool {
	return s.Price > 0
}

// AcceptsDownPayment returns true when a partial payment is configured.
func (s *Service) AcceptsDownPayment() bool {
	return s.IsPaid() && s.DownPayment > 0 && s.DownPayment < s.Price
}
