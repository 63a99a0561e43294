package staff

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, staffID int64) (*domain.StaffMember, error)
	SetWeekendFlag(ctx context.Context, staffID int64, day time.Weekday, works bool) error

	GetWorkingHours(ctx context.Context, staffID int64, day time.Weekday) (*domain.WorkingHours, error)
	ListWorkingHours(ctx context.Context, staffID int64) ([]*domain.WorkingHours, error)
	CreateWorkingHours(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
	UpdateWorkingHours(ctx context.Context, id int64, start, end time.Time) error
	DeleteWorkingHours(ctx context.Context, id int64) (*domain.WorkingHours, error)

	DayOffOverlaps(ctx context.Context, staffID int64, start, end time.Time, excludeID *int64) (bool, error)
	CreateDayOff(ctx context.Context, dayOff *domain.DayOff) (*domain.DayOff, error)
	ListDaysOff(ctx context.Context, staffID int64) ([]*domain.DayOff, error)
	DeleteDayOff(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
