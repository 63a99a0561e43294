package get_service_slots

import (
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"

	getServiceSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_service_slots"
)

// ServiceSlotsResponse HTTP response model
type ServiceSlotsResponse struct {
	ServiceID   int64    `json:"serviceId"`
	ServiceName string   `json:"serviceName"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getServiceSlots.Response) *ServiceSlotsResponse {
	return &ServiceSlotsResponse{
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		Date:        resp.Date,
		Slots:       resp.Slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(serviceID int64, dateStr string) (*getServiceSlots.Request, error) {
	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getServiceSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
