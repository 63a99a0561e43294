package get_staff_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListViewsForStaffAndWindow получает интервалы записей мастера в рабочем окне даты
	ListViewsForStaffAndWindow(ctx context.Context, staffID int64, date, windowStart, windowEnd time.Time) ([]domain.AppointmentView, error)
}

// RescheduleRepository интерфейс репозитория переносов
type RescheduleRepository interface {
	// ListPendingHolds получает интервалы незавершенных переносов мастера на дату
	ListPendingHolds(ctx context.Context, staffID int64, date, since time.Time) ([]domain.Hold, error)
}

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	GetStaff(ctx context.Context, staffID int64) (*domain.StaffMember, error)
	HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error)
	WindowFor(ctx context.Context, staff *domain.StaffMember, date time.Time) (*domain.Window, error)
	StaffPacing(ctx context.Context, staff *domain.StaffMember) (slotDuration, buffer time.Duration, err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
