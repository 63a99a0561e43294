package expand_recurrence

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на разворачивание правила повторения
type Request struct {
	InitialStart    time.Time     // Момент первого вхождения (дата + время начала)
	Rule            string        // Правило повторения в формате RFC 5545 ("FREQ=WEEKLY;BYDAY=MO")
	EndRecurrence   *time.Time    // Явная верхняя граница повторений (опционально)
	ServiceDuration time.Duration // Длительность услуги, задает время окончания вхождений
}

// Response модель ответа со списком вхождений
type Response struct {
	Occurrences []domain.Occurrence // Вхождения по возрастанию
}
