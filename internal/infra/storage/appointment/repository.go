package appointment

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

// Repository репозиторий для работы с заявками и подтвержденными записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var requestColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"service_id",
	"staff_id",
	"payment_type",
	"id_request",
	"reschedule_attempts",
	"created_at",
	"updated_at",
}

// CreateRequest сохраняет новую заявку на запись
func (r *Repository) CreateRequest(ctx context.Context, req *domain.AppointmentRequest) (*domain.AppointmentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointment_requests").
		Columns(
			"date",
			"start_time",
			"end_time",
			"service_id",
			"staff_id",
			"payment_type",
			"id_request",
			"reschedule_attempts",
		).
		Values(
			req.Date.Format(domain.DateFormat),
			req.StartTime.Format(domain.TimeFormat),
			req.EndTime.Format(domain.TimeFormat),
			req.ServiceID,
			req.StaffID,
			string(req.PaymentType),
			req.IDRequest,
			req.RescheduleAttempts,
		).
		Suffix("RETURNING " + columnList(requestColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRequest - build insert query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	created, err := scanRequest(row)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRequest - scan inserted row: %v", ErrScanRow, err)
	}
	return created, nil
}

// GetRequestByIDRequest возвращает заявку по её публичному идентификатору id_request
func (r *Repository) GetRequestByIDRequest(ctx context.Context, idRequest string) (*domain.AppointmentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("appointment_requests").
		Where(squirrel.Eq{"id_request": idRequest}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRequestByIDRequest - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRequestByIDRequest - scan row: %v", ErrScanRow, err)
	}
	return req, nil
}

// UpdateRequestSchedule переносит заявку на новые дату и время.
// Увеличивает счетчик переносов на единицу.
func (r *Repository) UpdateRequestSchedule(ctx context.Context, requestID int64, date, startTime, endTime time.Time, staffID int64) (*domain.AppointmentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointment_requests").
		Set("date", date.Format(domain.DateFormat)).
		Set("start_time", startTime.Format(domain.TimeFormat)).
		Set("end_time", endTime.Format(domain.TimeFormat)).
		Set("staff_id", staffID).
		Set("reschedule_attempts", squirrel.Expr("reschedule_attempts + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": requestID}).
		Suffix("RETURNING " + columnList(requestColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRequestSchedule - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRequestSchedule - scan updated row: %v", ErrScanRow, err)
	}
	return req, nil
}

// CreateAppointment сохраняет подтвержденную запись, связанную с заявкой
func (r *Repository) CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"request_id",
			"client_name",
			"client_email",
			"phone",
			"address",
			"want_reminder",
			"paid",
			"id_request",
		).
		Values(
			appt.RequestID,
			appt.ClientName,
			appt.ClientEmail,
			appt.Phone,
			appt.Address,
			appt.WantReminder,
			appt.Paid,
			appt.IDRequest,
		).
		Suffix("RETURNING id, request_id, client_name, client_email, phone, address, want_reminder, paid, id_request, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateAppointment - build insert query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	created, err := scanAppointment(row)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateAppointment - scan inserted row: %v", ErrScanRow, err)
	}
	return created, nil
}

// GetAppointmentByIDRequest возвращает подтвержденную запись по id_request заявки
func (r *Repository) GetAppointmentByIDRequest(ctx context.Context, idRequest string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"request_id",
		"client_name",
		"client_email",
		"phone",
		"address",
		"want_reminder",
		"paid",
		"id_request",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id_request": idRequest}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentByIDRequest - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentByIDRequest - scan row: %v", ErrScanRow, err)
	}
	return appt, nil
}

// ListViewsForServiceAndDate возвращает интервалы подтвержденных записей
// по услуге на указанную дату
func (r *Repository) ListViewsForServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]domain.AppointmentView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("ar.date", "ar.start_time", "ar.end_time").
		From("appointments a").
		Join("appointment_requests ar ON ar.id = a.request_id").
		Where(squirrel.Eq{
			"ar.service_id": serviceID,
			"ar.date":       date.Format(domain.DateFormat),
		}).
		OrderBy("ar.start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListViewsForServiceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListViewsForServiceAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return collectViews(rows, date.Location())
}

// ListViewsForStaffAndWindow возвращает интервалы подтвержденных записей
// мастера на дату, пересекающиеся с рабочим окном [windowStart, windowEnd]
func (r *Repository) ListViewsForStaffAndWindow(ctx context.Context, staffID int64, date, windowStart, windowEnd time.Time) ([]domain.AppointmentView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("ar.date", "ar.start_time", "ar.end_time").
		From("appointments a").
		Join("appointment_requests ar ON ar.id = a.request_id").
		Where(squirrel.Eq{
			"ar.staff_id": staffID,
			"ar.date":     date.Format(domain.DateFormat),
		}).
		Where(squirrel.LtOrEq{"ar.start_time": windowEnd.Format(domain.TimeFormat)}).
		Where(squirrel.GtOrEq{"ar.end_time": windowStart.Format(domain.TimeFormat)}).
		OrderBy("ar.start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListViewsForStaffAndWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListViewsForStaffAndWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return collectViews(rows, date.Location())
}

// HasOverlappingRequest проверяет, пересекается ли интервал с существующими
// заявками мастера на дату. Позволяет исключить заявку с указанным id_request
// (актуально при переносе собственной записи).
func (r *Repository) HasOverlappingRequest(ctx context.Context, staffID int64, date, startTime, endTime time.Time, excludeIDRequest string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").
		From("appointment_requests").
		Where(squirrel.Eq{
			"staff_id": staffID,
			"date":     date.Format(domain.DateFormat),
		}).
		Where(squirrel.Lt{"start_time": endTime.Format(domain.TimeFormat)}).
		Where(squirrel.Gt{"end_time": startTime.Format(domain.TimeFormat)})

	if excludeIDRequest != "" {
		builder = builder.Where(squirrel.NotEq{"id_request": excludeIDRequest})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlappingRequest - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasOverlappingRequest - scan count: %v", ErrScanRow, err)
	}
	return count > 0, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.AppointmentRequest, error) {
	var (
		req         domain.AppointmentRequest
		dateRaw     string
		startRaw    string
		endRaw      string
		paymentType string
	)

	err := row.Scan(
		&req.ID,
		&dateRaw,
		&startRaw,
		&endRaw,
		&req.ServiceID,
		&req.StaffID,
		&paymentType,
		&req.IDRequest,
		&req.RescheduleAttempts,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if req.Date, err = parseDate(dateRaw); err != nil {
		return nil, err
	}
	if req.StartTime, err = timeutil.ParseClock(startRaw); err != nil {
		return nil, err
	}
	if req.EndTime, err = timeutil.ParseClock(endRaw); err != nil {
		return nil, err
	}
	req.PaymentType = domain.PaymentType(paymentType)
	return &req, nil
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt    domain.Appointment
		phone   sql.NullString
		address sql.NullString
	)

	err := row.Scan(
		&appt.ID,
		&appt.RequestID,
		&appt.ClientName,
		&appt.ClientEmail,
		&phone,
		&address,
		&appt.WantReminder,
		&appt.Paid,
		&appt.IDRequest,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		appt.Phone = &phone.String
	}
	if address.Valid {
		appt.Address = &address.String
	}
	return &appt, nil
}

// collectViews собирает интервалы записей, комбинируя дату и время в абсолютные моменты
func collectViews(rows *sql.Rows, loc *time.Location) ([]domain.AppointmentView, error) {
	views := make([]domain.AppointmentView, 0)
	for rows.Next() {
		var dateRaw, startRaw, endRaw string
		if err := rows.Scan(&dateRaw, &startRaw, &endRaw); err != nil {
			return nil, fmt.Errorf("%w: collectViews - scan row: %v", ErrScanRow, err)
		}

		date, err := parseDate(dateRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: collectViews - parse date: %v", ErrScanRow, err)
		}
		start, err := timeutil.ParseClock(startRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: collectViews - parse start time: %v", ErrScanRow, err)
		}
		end, err := timeutil.ParseClock(endRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: collectViews - parse end time: %v", ErrScanRow, err)
		}

		views = append(views, domain.AppointmentView{
			Start: combine(date, start, loc),
			End:   combine(date, end, loc),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: collectViews - iterate rows: %v", ErrExecQuery, err)
	}
	return views, nil
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

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}
