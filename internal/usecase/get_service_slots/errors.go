package get_service_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_service_slots: service not found")

	// ErrDateInPast возвращается, когда запрошена дата в прошлом
	ErrDateInPast = errors.New("get_service_slots: date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_service_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_service_slots: internal error")
)
