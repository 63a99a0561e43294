package update_config

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type ConfigService interface {
	Update(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
