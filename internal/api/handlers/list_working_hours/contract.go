package list_working_hours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type StaffService interface {
	ListWorkingHours(ctx context.Context, staffID int64) ([]*domain.WorkingHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
