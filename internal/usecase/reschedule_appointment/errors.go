package reschedule_appointment

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("reschedule_appointment: appointment request not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("reschedule_appointment: staff member not found")

	// ErrInvalidDate возвращается при некорректной дате переноса
	ErrInvalidDate = errors.New("reschedule_appointment: invalid reschedule date")

	// ErrSlotNotAvailable возвращается, когда предложенный интервал недоступен
	ErrSlotNotAvailable = errors.New("reschedule_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
