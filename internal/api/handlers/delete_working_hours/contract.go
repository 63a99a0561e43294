package delete_working_hours

import "context"

type StaffService interface {
	DeleteWorkingHours(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
