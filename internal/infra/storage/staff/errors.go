package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff.repository: staff member not found")

	// ErrWorkingHoursNotFound возвращается, когда рабочие часы не найдены
	ErrWorkingHoursNotFound = errors.New("staff.repository: working hours not found")

	// ErrDayOffNotFound возвращается, когда выходной не найден
	ErrDayOffNotFound = errors.New("staff.repository: day off not found")

	// ErrDuplicateWorkingHours возвращается при попытке создать вторую запись
	// рабочих часов на тот же день недели
	ErrDuplicateWorkingHours = errors.New("staff.repository: working hours already exist for this day of week")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
