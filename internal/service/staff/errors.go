package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrWorkingHoursNotFound возвращается, когда рабочие часы не найдены
	ErrWorkingHoursNotFound = errors.New("working hours not found")

	// ErrDayOffNotFound возвращается, когда выходной не найден
	ErrDayOffNotFound = errors.New("day off not found")

	// ErrDuplicateWorkingHours возвращается, когда на день недели уже
	// заведены рабочие часы
	ErrDuplicateWorkingHours = errors.New("working hours already exist for this day of week")

	// ErrInvalidTimeRange возвращается при некорректном интервале времени
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrDayOffOverlap возвращается, когда выходной пересекается с существующим
	ErrDayOffOverlap = errors.New("day off overlaps an existing one")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("staff service: internal error")
)
