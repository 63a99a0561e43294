package list_days_off

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type StaffService interface {
	ListDaysOff(ctx context.Context, staffID int64) ([]*domain.DayOff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
