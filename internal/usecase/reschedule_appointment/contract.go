package reschedule_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetRequestByIDRequest(ctx context.Context, idRequest string) (*domain.AppointmentRequest, error)
	// HasOverlappingRequest проверяет пересечение интервала с заявками мастера на дату
	HasOverlappingRequest(ctx context.Context, staffID int64, date, startTime, endTime time.Time, excludeIDRequest string) (bool, error)
}

// RescheduleRepository интерфейс репозитория переносов
type RescheduleRepository interface {
	CreatePending(ctx context.Context, h *domain.RescheduleHistory) (*domain.RescheduleHistory, error)
	ListPendingHolds(ctx context.Context, staffID int64, date, since time.Time) ([]domain.Hold, error)
}

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	GetStaff(ctx context.Context, staffID int64) (*domain.StaffMember, error)
	HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error)
	WindowFor(ctx context.Context, staff *domain.StaffMember, date time.Time) (*domain.Window, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
