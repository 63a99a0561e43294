package create_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"

	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID    int64   `json:"serviceId"`
	StaffID      int64   `json:"staffId"`
	Date         string  `json:"date"`      // YYYY-MM-DD
	StartTime    string  `json:"startTime"` // "09:00", "09:00:00" или "9:00 AM"
	PaymentType  string  `json:"paymentType"`
	ClientName   string  `json:"clientName"`
	ClientEmail  string  `json:"clientEmail"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	WantReminder bool    `json:"wantReminder"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	IDRequest          string `json:"idRequest"`
	ServiceID          int64  `json:"serviceId"`
	StaffID            int64  `json:"staffId"`
	Date               string `json:"date"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	PaymentType        string `json:"paymentType"`
	RescheduleAttempts int    `json:"rescheduleAttempts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := timeutil.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	start, err := timeutil.ParseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ServiceID:    r.ServiceID,
		StaffID:      r.StaffID,
		Date:         date,
		StartTime:    start,
		PaymentType:  r.PaymentType,
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		Phone:        r.Phone,
		Address:      r.Address,
		WantReminder: r.WantReminder,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		IDRequest:          resp.IDRequest,
		ServiceID:          resp.ServiceID,
		StaffID:            resp.StaffID,
		Date:               resp.Date,
		StartTime:          resp.StartTime,
		EndTime:            resp.EndTime,
		PaymentType:        resp.PaymentType,
		RescheduleAttempts: resp.RescheduleAttempts,
	}
}
