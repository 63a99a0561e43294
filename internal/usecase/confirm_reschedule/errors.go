package confirm_reschedule

import "errors"

var (
	// ErrRescheduleNotFound возвращается, когда перенос не найден
	ErrRescheduleNotFound = errors.New("confirm_reschedule: reschedule not found")

	// ErrNotPending возвращается, когда перенос уже подтвержден или отменен
	ErrNotPending = errors.New("confirm_reschedule: reschedule is not pending")

	// ErrHoldExpired возвращается, когда время на подтверждение истекло
	ErrHoldExpired = errors.New("confirm_reschedule: reschedule hold has expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_reschedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_reschedule: internal error")
)
