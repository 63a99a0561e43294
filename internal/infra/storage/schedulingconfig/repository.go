package schedulingconfig

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
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// singletonID единственная строка конфигурации всегда имеет id = 1
const singletonID = 1

// Repository репозиторий для работы с синглтон-конфигурацией расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var configColumns = []string{
	"id",
	"slot_duration_minutes",
	"lead_time",
	"finish_time",
	"buffer_minutes",
	"website_name",
	"created_at",
	"updated_at",
}

// Get возвращает единственную строку конфигурации
func (r *Repository) Get(ctx context.Context) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("scheduling_config").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	cfg, err := scanConfig(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Upsert создает или обновляет единственную строку конфигурации
func (r *Repository) Upsert(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("scheduling_config").
		Columns(
			"id",
			"slot_duration_minutes",
			"lead_time",
			"finish_time",
			"buffer_minutes",
			"website_name",
		).
		Values(
			singletonID,
			cfg.SlotDurationMinutes,
			clockToNullString(cfg.LeadTime),
			clockToNullString(cfg.FinishTime),
			cfg.BufferMinutes,
			cfg.WebsiteName,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			lead_time = EXCLUDED.lead_time,
			finish_time = EXCLUDED.finish_time,
			buffer_minutes = EXCLUDED.buffer_minutes,
			website_name = EXCLUDED.website_name,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time
	return cfg, nil
}

func scanConfig(row *sql.Row) (*domain.SchedulingConfig, error) {
	var (
		cfg                  domain.SchedulingConfig
		slotDuration         sql.NullInt64
		leadTime, finishTime sql.NullString
		buffer               sql.NullFloat64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&cfg.ID,
		&slotDuration,
		&leadTime,
		&finishTime,
		&buffer,
		&cfg.WebsiteName,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan config: %v", ErrScanRow, err)
	}

	if slotDuration.Valid {
		v := int(slotDuration.Int64)
		cfg.SlotDurationMinutes = &v
	}
	if cfg.LeadTime, err = nullStringToClock(leadTime); err != nil {
		return nil, fmt.Errorf("%w: scan lead_time: %v", ErrScanRow, err)
	}
	if cfg.FinishTime, err = nullStringToClock(finishTime); err != nil {
		return nil, fmt.Errorf("%w: scan finish_time: %v", ErrScanRow, err)
	}
	if buffer.Valid {
		cfg.BufferMinutes = &buffer.Float64
	}
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time
	return &cfg, nil
}

func clockToNullString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(domain.TimeFormat), Valid: true}
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
