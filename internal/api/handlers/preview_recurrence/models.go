package preview_recurrence

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"

	expandRecurrence "github.com/m04kA/SMC-AppointmentService/internal/usecase/expand_recurrence"
)

// PreviewRequest HTTP request model
type PreviewRequest struct {
	Date            string  `json:"date"`                    // YYYY-MM-DD, дата первого вхождения
	StartTime       string  `json:"startTime"`               // "09:00", "09:00:00" или "9:00 AM"
	Rule            string  `json:"rule"`                    // Правило повторения RFC 5545
	EndRecurrence   *string `json:"endRecurrence,omitempty"` // YYYY-MM-DD, граница повторений
	DurationMinutes int     `json:"durationMinutes"`         // Длительность услуги в минутах
}

// PreviewResponse HTTP response model
type PreviewResponse struct {
	Occurrences []PreviewOccurrence `json:"occurrences"`
}

// PreviewOccurrence одно вхождение правила
type PreviewOccurrence struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *PreviewRequest) ToUseCaseRequest() (*expandRecurrence.Request, error) {
	date, err := timeutil.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	start, err := timeutil.ParseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	var endRecurrence *time.Time
	if r.EndRecurrence != nil {
		end, err := timeutil.ParseDate(*r.EndRecurrence)
		if err != nil {
			return nil, err
		}
		// граница включает весь последний день
		endOfDay := end.Add(24*time.Hour - time.Second)
		endRecurrence = &endOfDay
	}

	duration, err := timeutil.Minutes(float64(r.DurationMinutes)).Std()
	if err != nil {
		return nil, err
	}

	return &expandRecurrence.Request{
		InitialStart:    timeutil.Combine(date, start),
		Rule:            r.Rule,
		EndRecurrence:   endRecurrence,
		ServiceDuration: duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *expandRecurrence.Response) *PreviewResponse {
	occurrences := make([]PreviewOccurrence, len(resp.Occurrences))
	for i, occ := range resp.Occurrences {
		occurrences[i] = PreviewOccurrence{
			Date:      occ.Date.Format(domain.DateFormat),
			StartTime: occ.StartTime.Format(domain.TimeFormat),
			EndTime:   occ.EndTime.Format(domain.TimeFormat),
		}
	}
	return &PreviewResponse{Occurrences: occurrences}
}
