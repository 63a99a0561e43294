package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"currency",
	"down_payment",
	"created_at",
	"updated_at",
}

// GetByID возвращает услугу по идентификатору
func (r *Repository) GetByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	svc, err := scanService(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}
	return svc, nil
}

// ListForStaff возвращает услуги, которые оказывает мастер
func (r *Repository) ListForStaff(ctx context.Context, staffID int64) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.name",
		"s.description",
		"s.duration_minutes",
		"s.price",
		"s.currency",
		"s.down_payment",
		"s.created_at",
		"s.updated_at",
	).
		From("services s").
		Join("staff_services ss ON ss.service_id = s.id").
		Where(squirrel.Eq{"ss.staff_id": staffID}).
		OrderBy("s.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForStaff - scan row: %v", ErrScanRow, err)
		}
		services = append(services, *svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForStaff - iterate rows: %v", ErrExecQuery, err)
	}
	return services, nil
}

// OfferedByStaff проверяет, оказывает ли мастер указанную услугу
func (r *Repository) OfferedByStaff(ctx context.Context, staffID, serviceID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("staff_services").
		Where(squirrel.Eq{
			"staff_id":   staffID,
			"service_id": serviceID,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: OfferedByStaff - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: OfferedByStaff - scan count: %v", ErrScanRow, err)
	}
	return count > 0, nil
}

// ListStaffIDsForService возвращает идентификаторы мастеров, оказывающих услугу
func (r *Repository) ListStaffIDsForService(ctx context.Context, serviceID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("staff_id").
		From("staff_services").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("staff_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDsForService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDsForService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListStaffIDsForService - scan row: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDsForService - iterate rows: %v", ErrExecQuery, err)
	}
	return ids, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var (
		svc             domain.Service
		description     sql.NullString
		durationMinutes int64
	)

	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&description,
		&durationMinutes,
		&svc.Price,
		&svc.Currency,
		&svc.DownPayment,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		svc.Description = &description.String
	}
	svc.Duration = time.Duration(durationMinutes) * time.Minute
	return &svc, nil
}
