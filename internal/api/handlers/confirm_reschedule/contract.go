package confirm_reschedule

import (
	"context"

	confirmReschedule "github.com/m04kA/SMC-AppointmentService/internal/usecase/confirm_reschedule"
)

type ConfirmRescheduleUseCase interface {
	Execute(ctx context.Context, req *confirmReschedule.Request) (*confirmReschedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
