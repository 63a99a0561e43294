package reschedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// Repository репозиторий для работы с историей переносов записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переносов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var historyColumns = []string{
	"id",
	"request_id",
	"date",
	"start_time",
	"end_time",
	"staff_id",
	"reason",
	"status",
	"id_request",
	"created_at",
	"updated_at",
}

// CreatePending сохраняет новый перенос в статусе pending
func (r *Repository) CreatePending(ctx context.Context, h *domain.RescheduleHistory) (*domain.RescheduleHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reschedule_history").
		Columns(
			"request_id",
			"date",
			"start_time",
			"end_time",
			"staff_id",
			"reason",
			"status",
			"id_request",
		).
		Values(
			h.RequestID,
			h.Date.Format(domain.DateFormat),
			h.StartTime.Format(domain.TimeFormat),
			h.EndTime.Format(domain.TimeFormat),
			h.StaffID,
			h.Reason,
			string(domain.RescheduleStatusPending),
			h.IDRequest,
		).
		Suffix("RETURNING " + strings.Join(historyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePending - build insert query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	created, err := scanHistory(row)
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePending - scan inserted row: %v", ErrScanRow, err)
	}
	return created, nil
}

// GetLatestByIDRequest возвращает последний перенос по id_request заявки
func (r *Repository) GetLatestByIDRequest(ctx context.Context, idRequest string) (*domain.RescheduleHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(historyColumns...).
		From("reschedule_history").
		Where(squirrel.Eq{"id_request": idRequest}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByIDRequest - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	h, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHistoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByIDRequest - scan row: %v", ErrScanRow, err)
	}
	return h, nil
}

// ListPendingHolds возвращает интервалы незавершенных переносов мастера
// на дату, созданных не раньше since. Такие переносы временно
// удерживают предложенные интервалы.
func (r *Repository) ListPendingHolds(ctx context.Context, staffID int64, date, since time.Time) ([]domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "start_time", "end_time").
		From("reschedule_history").
		Where(squirrel.Eq{
			"staff_id": staffID,
			"date":     date.Format(domain.DateFormat),
			"status":   string(domain.RescheduleStatusPending),
		}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingHolds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingHolds - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holds := make([]domain.Hold, 0)
	for rows.Next() {
		var dateRaw, startRaw, endRaw string
		if err := rows.Scan(&dateRaw, &startRaw, &endRaw); err != nil {
			return nil, fmt.Errorf("%w: ListPendingHolds - scan row: %v", ErrScanRow, err)
		}

		d, err := parseDate(dateRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPendingHolds - parse date: %v", ErrScanRow, err)
		}
		start, err := timeutil.ParseClock(startRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPendingHolds - parse start time: %v", ErrScanRow, err)
		}
		end, err := timeutil.ParseClock(endRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPendingHolds - parse end time: %v", ErrScanRow, err)
		}

		holds = append(holds, domain.Hold{
			Start: combine(d, start, date.Location()),
			End:   combine(d, end, date.Location()),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPendingHolds - iterate rows: %v", ErrExecQuery, err)
	}
	return holds, nil
}

// UpdateOnConfirm фиксирует подтверждение переноса: в строке истории
// сохраняются прежние дата и время заявки, статус становится confirmed
func (r *Repository) UpdateOnConfirm(ctx context.Context, historyID int64, prevDate, prevStart, prevEnd time.Time, prevStaffID int64) (*domain.RescheduleHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reschedule_history").
		Set("date", prevDate.Format(domain.DateFormat)).
		Set("start_time", prevStart.Format(domain.TimeFormat)).
		Set("end_time", prevEnd.Format(domain.TimeFormat)).
		Set("staff_id", prevStaffID).
		Set("status", string(domain.RescheduleStatusConfirmed)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": historyID}).
		Suffix("RETURNING " + strings.Join(historyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateOnConfirm - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	h, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHistoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateOnConfirm - scan updated row: %v", ErrScanRow, err)
	}
	return h, nil
}

// SetStatus обновляет статус переноса
func (r *Repository) SetStatus(ctx context.Context, historyID int64, status domain.RescheduleStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reschedule_history").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": historyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute query: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrHistoryNotFound
	}
	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHistory(row rowScanner) (*domain.RescheduleHistory, error) {
	var (
		h        domain.RescheduleHistory
		dateRaw  string
		startRaw string
		endRaw   string
		reason   sql.NullString
		status   string
	)

	err := row.Scan(
		&h.ID,
		&h.RequestID,
		&dateRaw,
		&startRaw,
		&endRaw,
		&h.StaffID,
		&reason,
		&status,
		&h.IDRequest,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if h.Date, err = parseDate(dateRaw); err != nil {
		return nil, err
	}
	if h.StartTime, err = timeutil.ParseClock(startRaw); err != nil {
		return nil, err
	}
	if h.EndTime, err = timeutil.ParseClock(endRaw); err != nil {
		return nil, err
	}
	if reason.Valid {
		h.Reason = &reason.String
	}
	h.Status = domain.RescheduleStatus(status)
	return &h, nil
}

func combine(date, clock time.Time, loc *time.Location) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		loc,
	)
}

func parseDate(raw string) (time.Time, error) {
	// драйвер может вернуть дату как "2006-01-02" либо как полный timestamp
	if len(raw) > len(domain.DateFormat) {
		raw = raw[:len(domain.DateFormat)]
	}
	return time.Parse(domain.DateFormat, raw)
}
