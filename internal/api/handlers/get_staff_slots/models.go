package get_staff_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"

	getStaffSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_staff_slots"
)

// StaffSlotsResponse HTTP response model
type StaffSlotsResponse struct {
	StaffID int64    `json:"staffId"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Моменты начала отдаются в формате RFC 3339.
func FromUseCaseResponse(resp *getStaffSlots.Response) *StaffSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.Format(time.RFC3339)
	}

	return &StaffSlotsResponse{
		StaffID: resp.StaffID,
		Date:    resp.Date,
		Slots:   slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(staffID int64, dateStr string) (*getStaffSlots.Request, error) {
	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getStaffSlots.Request{
		StaffID: staffID,
		Date:    date,
	}, nil
}
