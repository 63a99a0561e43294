package config

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ConfigRepository интерфейс репозитория синглтон-конфигурации
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.SchedulingConfig, error)
	Upsert(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error)
}

// ConfigCache интерфейс кэша конфигурации
type ConfigCache interface {
	Get(ctx context.Context) (*domain.SchedulingConfig, error)
	Set(ctx context.Context, cfg *domain.SchedulingConfig) error
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
