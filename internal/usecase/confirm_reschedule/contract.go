package confirm_reschedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetRequestByIDRequest(ctx context.Context, idRequest string) (*domain.AppointmentRequest, error)
	// UpdateRequestSchedule переносит заявку на новые дату и время, увеличивая счетчик переносов
	UpdateRequestSchedule(ctx context.Context, requestID int64, date, startTime, endTime time.Time, staffID int64) (*domain.AppointmentRequest, error)
}

// RescheduleRepository интерфейс репозитория переносов
type RescheduleRepository interface {
	GetLatestByIDRequest(ctx context.Context, idRequest string) (*domain.RescheduleHistory, error)
	// UpdateOnConfirm сохраняет прежние дату и время на строке истории и подтверждает её
	UpdateOnConfirm(ctx context.Context, historyID int64, prevDate, prevStart, prevEnd time.Time, prevStaffID int64) (*domain.RescheduleHistory, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
