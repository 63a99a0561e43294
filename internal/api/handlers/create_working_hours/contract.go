package create_working_hours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type StaffService interface {
	CreateWorkingHours(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
