package create_day_off

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type StaffService interface {
	CreateDayOff(ctx context.Context, dayOff *domain.DayOff) (*domain.DayOff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
