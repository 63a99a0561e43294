package expand_recurrence

import "errors"

var (
	// ErrMissingDuration возвращается, когда не задана длительность услуги
	ErrMissingDuration = errors.New("expand_recurrence: service duration is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("expand_recurrence: invalid input data")
)
