package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ConfigResolver возвращает актуальный снимок конфигурации расписания
type ConfigResolver interface {
	Current(ctx context.Context) (*domain.SchedulingConfig, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, staffID int64) (*domain.StaffMember, error)
	GetWorkingHours(ctx context.Context, staffID int64, day time.Weekday) (*domain.WorkingHours, error)
	HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
