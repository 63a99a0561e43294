package reschedule_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"

	rescheduleAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/reschedule_appointment"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date      string  `json:"date"`      // YYYY-MM-DD
	StartTime string  `json:"startTime"` // "09:00", "09:00:00" или "9:00 AM"
	StaffID   *int64  `json:"staffId,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	IDRequest string `json:"idRequest"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	StaffID   int64  `json:"staffId"`
	Status    string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *RescheduleRequest) ToUseCaseRequest(idRequest string) (*rescheduleAppointment.Request, error) {
	date, err := timeutil.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	start, err := timeutil.ParseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		IDRequest: idRequest,
		Date:      date,
		StartTime: start,
		StaffID:   r.StaffID,
		Reason:    r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduleResponse {
	return &RescheduleResponse{
		IDRequest: resp.IDRequest,
		Date:      resp.Date,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		StaffID:   resp.StaffID,
		Status:    resp.Status,
	}
}
