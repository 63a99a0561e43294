package update_working_hours

import (
	"context"
	"time"
)

type StaffService interface {
	UpdateWorkingHours(ctx context.Context, id int64, start, end time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
