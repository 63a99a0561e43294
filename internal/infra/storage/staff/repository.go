package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// Repository репозиторий для работы с сотрудниками, их рабочими часами
// и выходными
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ---------------------------------------------------------------------
// Staff members

var staffColumns = []string{
	"id",
	"name",
	"slot_duration_minutes",
	"lead_time",
	"finish_time",
	"buffer_minutes",
	"work_on_saturday",
	"work_on_sunday",
	"created_at",
	"updated_at",
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		member               domain.StaffMember
		slotDuration         sql.NullInt64
		leadTime, finishTime sql.NullString
		buffer               sql.NullFloat64
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.Name,
		&slotDuration,
		&leadTime,
		&finishTime,
		&buffer,
		&member.WorkOnSaturday,
		&member.WorkOnSunday,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff member: %v", ErrScanRow, err)
	}

	if slotDuration.Valid {
		v := int(slotDuration.Int64)
		member.SlotDurationMinutes = &v
	}
	if member.LeadTime, err = nullStringToClock(leadTime); err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan lead_time: %v", ErrScanRow, err)
	}
	if member.FinishTime, err = nullStringToClock(finishTime); err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan finish_time: %v", ErrScanRow, err)
	}
	if buffer.Valid {
		member.BufferMinutes = &buffer.Float64
	}
	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time
	return &member, nil
}

// SetWeekendFlag обновляет производный флаг работы по выходным
// (поддерживается мутациями рабочих часов на субботу/воскресенье)
func (r *Repository) SetWeekendFlag(ctx context.Context, staffID int64, day time.Weekday, works bool) error {
	var column string
	switch day {
	case time.Saturday:
		column = "work_on_saturday"
	case time.Sunday:
		column = "work_on_sunday"
	default:
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_members").
		Set(column, works).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetWeekendFlag - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetWeekendFlag - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetWeekendFlag - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// ---------------------------------------------------------------------
// Working hours

var workingHoursColumns = []string{
	"id",
	"staff_id",
	"day_of_week",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// GetWorkingHours получает рабочие часы сотрудника на день недели
func (r *Repository) GetWorkingHours(ctx context.Context, staffID int64, day time.Weekday) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHoursColumns...).
		From("working_hours").
		Where(squirrel.Eq{"staff_id": staffID, "day_of_week": int(day)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	wh, err := scanWorkingHoursRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkingHoursNotFound
	}
	return wh, err
}

// ListWorkingHours получает все записи рабочих часов сотрудника
func (r *Repository) ListWorkingHours(ctx context.Context, staffID int64) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHoursColumns...).
		From("working_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkingHours, 0)
	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, wh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}

// CreateWorkingHours создает запись рабочих часов.
// Уникальность пары (staff_id, day_of_week) обеспечивается ограничением в БД.
func (r *Repository) CreateWorkingHours(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("staff_id", "day_of_week", "start_time", "end_time").
		Values(
			wh.StaffID,
			int(wh.DayOfWeek),
			wh.StartTime.Format(domain.TimeFormat),
			wh.EndTime.Format(domain.TimeFormat),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&wh.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateWorkingHours
		}
		return nil, fmt.Errorf("%w: CreateWorkingHours - execute insert: %v", ErrExecQuery, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time
	return wh, nil
}

// UpdateWorkingHours обновляет времена существующей записи рабочих часов
func (r *Repository) UpdateWorkingHours(ctx context.Context, id int64, start, end time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("working_hours").
		Set("start_time", start.Format(domain.TimeFormat)).
		Set("end_time", end.Format(domain.TimeFormat)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrWorkingHoursNotFound
	}
	return nil
}

// DeleteWorkingHours удаляет запись рабочих часов и возвращает её
// (день недели нужен вызывающему для обновления флагов выходных)
func (r *Repository) DeleteWorkingHours(ctx context.Context, id int64) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, staff_id, day_of_week, start_time, end_time, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteWorkingHours - build delete query: %v", ErrBuildQuery, err)
	}

	wh, err := scanWorkingHoursRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkingHoursNotFound
	}
	return wh, err
}

// ---------------------------------------------------------------------
// Days off

var dayOffColumns = []string{
	"id",
	"staff_id",
	"start_date",
	"end_date",
	"description",
	"created_at",
	"updated_at",
}

// HasDayOff проверяет, есть ли у сотрудника выходной, покрывающий дату
func (r *Repository) HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("days_off").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.LtOrEq{"start_date": date.Format(domain.DateFormat)}).
		Where(squirrel.GtOrEq{"end_date": date.Format(domain.DateFormat)}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasDayOff - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasDayOff - scan row: %v", ErrScanRow, err)
	}
	return true, nil
}

// DayOffOverlaps проверяет пересечение с существующими выходными.
// excludeID исключает запись из проверки при обновлении.
func (r *Repository) DayOffOverlaps(ctx context.Context, staffID int64, start, end time.Time, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("1").
		From("days_off").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.LtOrEq{"start_date": end.Format(domain.DateFormat)}).
		Where(squirrel.GtOrEq{"end_date": start.Format(domain.DateFormat)}).
		Limit(1)
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: DayOffOverlaps - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: DayOffOverlaps - scan row: %v", ErrScanRow, err)
	}
	return true, nil
}

// CreateDayOff создает запись выходного
func (r *Repository) CreateDayOff(ctx context.Context, dayOff *domain.DayOff) (*domain.DayOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("days_off").
		Columns("staff_id", "start_date", "end_date", "description").
		Values(
			dayOff.StaffID,
			dayOff.StartDate.Format(domain.DateFormat),
			dayOff.EndDate.Format(domain.DateFormat),
			dayOff.Description,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateDayOff - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&dayOff.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateDayOff - execute insert: %v", ErrExecQuery, err)
	}

	dayOff.CreatedAt = createdAt.Time
	dayOff.UpdatedAt = updatedAt.Time
	return dayOff, nil
}

// ListDaysOff получает все выходные сотрудника
func (r *Repository) ListDaysOff(ctx context.Context, staffID int64) ([]*domain.DayOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayOffColumns...).
		From("days_off").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDaysOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDaysOff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.DayOff, 0)
	for rows.Next() {
		var (
			dayOff               domain.DayOff
			createdAt, updatedAt sql.NullTime
		)
		err := rows.Scan(
			&dayOff.ID,
			&dayOff.StaffID,
			&dayOff.StartDate,
			&dayOff.EndDate,
			&dayOff.Description,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDaysOff - scan row: %v", ErrScanRow, err)
		}
		dayOff.CreatedAt = createdAt.Time
		dayOff.UpdatedAt = updatedAt.Time
		result = append(result, &dayOff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDaysOff - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}

// DeleteDayOff удаляет запись выходного
func (r *Repository) DeleteDayOff(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("days_off").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteDayOff - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDayOff - execute delete: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDayOff - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDayOffNotFound
	}
	return nil
}

// ---------------------------------------------------------------------
// Helpers

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingHoursRow(row *sql.Row) (*domain.WorkingHours, error) {
	return scanWorkingHours(row)
}

func scanWorkingHours(row rowScanner) (*domain.WorkingHours, error) {
	var (
		wh                   domain.WorkingHours
		dayOfWeek            int
		startStr, endStr     string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&wh.ID,
		&wh.StaffID,
		&dayOfWeek,
		&startStr,
		&endStr,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan working hours: %v", ErrScanRow, err)
	}

	wh.DayOfWeek = time.Weekday(dayOfWeek)
	if wh.StartTime, err = timeutil.ParseClock(startStr); err != nil {
		return nil, fmt.Errorf("%w: scan start_time: %v", ErrScanRow, err)
	}
	if wh.EndTime, err = timeutil.ParseClock(endStr); err != nil {
		return nil, fmt.Errorf("%w: scan end_time: %v", ErrScanRow, err)
	}
	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time
	return &wh, nil
}

func nullStringToClock(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := timeutil.ParseClock(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
