package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// Pacing параметры нарезки слотов и рабочее окно на конкретную дату
type Pacing struct {
	WindowStart  time.Time
	WindowEnd    time.Time
	SlotDuration time.Duration
	Buffer       time.Duration
}

// Service вычисляет действующие параметры расписания, сводя воедино
// глобальную конфигурацию, персональные настройки мастера и его
// рабочие часы
type Service struct {
	configs ConfigResolver
	staff   StaffRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(configs ConfigResolver, staff StaffRepository, logger Logger) *Service {
	return &Service{
		configs: configs,
		staff:   staff,
		logger:  logger,
	}
}

// WindowAndPacing возвращает глобальное рабочее окно и параметры нарезки
// слотов на указанную дату. Каждое поле берется из снимка конфигурации,
// при отсутствии - из значений по умолчанию.
func (s *Service) WindowAndPacing(ctx context.Context, date time.Time) (*Pacing, error) {
	cfg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	lead := cfg.EffectiveLeadTime()
	finish := cfg.EffectiveFinishTime()

	return &Pacing{
		WindowStart:  timeutil.Combine(date, lead),
		WindowEnd:    timeutil.Combine(date, finish),
		SlotDuration: cfg.EffectiveSlotDuration(),
		Buffer:       cfg.EffectiveBuffer(),
	}, nil
}

// StaffPacing возвращает длительность слота и буфер для мастера.
// Персональная настройка имеет приоритет, иначе берется значение из
// того же снимка глобальной конфигурации.
func (s *Service) StaffPacing(ctx context.Context, staff *domain.StaffMember) (slotDuration, buffer time.Duration, err error) {
	cfg, err := s.snapshot(ctx)
	if err != nil {
		return 0, 0, err
	}

	slotDuration = cfg.EffectiveSlotDuration()
	if staff.SlotDurationMinutes != nil {
		slotDuration = time.Duration(*staff.SlotDurationMinutes) * time.Minute
	}

	buffer = cfg.EffectiveBuffer()
	if staff.BufferMinutes != nil {
		buffer = time.Duration(*staff.BufferMinutes * float64(time.Minute))
	}

	return slotDuration, buffer, nil
}

// WindowFor возвращает рабочее окно мастера на дату. Порядок выбора:
// явная строка рабочих часов на день недели, затем персональные
// lead/finish мастера (только когда заданы оба). Если источника нет,
// день нерабочий: возвращается nil без ошибки. Глобальная конфигурация
// окно мастера никогда не определяет.
func (s *Service) WindowFor(ctx context.Context, staff *domain.StaffMember, date time.Time) (*domain.Window, error) {
	wh, err := s.staff.GetWorkingHours(ctx, staff.ID, date.Weekday())
	if err != nil && !errors.Is(err, staffRepo.ErrWorkingHoursNotFound) {
		s.logger.Error("WindowFor: working hours lookup failed for staff=%d: %v", staff.ID, err)
		return nil, fmt.Errorf("%w: WindowFor - working hours lookup: %v", ErrInternal, err)
	}
	if wh != nil {
		return &domain.Window{
			Start: timeutil.Combine(date, wh.StartTime),
			End:   timeutil.Combine(date, wh.EndTime),
		}, nil
	}

	if staff.HasPersonalWindow() {
		return &domain.Window{
			Start: timeutil.Combine(date, *staff.LeadTime),
			End:   timeutil.Combine(date, *staff.FinishTime),
		}, nil
	}

	return nil, nil
}

// GetStaff возвращает мастера по идентификатору
func (s *Service) GetStaff(ctx context.Context, staffID int64) (*domain.StaffMember, error) {
	member, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaff: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaff - repository error: %v", ErrInternal, err)
	}
	return member, nil
}

// HasDayOff сообщает, попадает ли дата в выходной мастера
func (s *Service) HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	hasDayOff, err := s.staff.HasDayOff(ctx, staffID, date)
	if err != nil {
		s.logger.Error("HasDayOff: repository error for staff=%d: %v", staffID, err)
		return false, fmt.Errorf("%w: HasDayOff - repository error: %v", ErrInternal, err)
	}
	return hasDayOff, nil
}

func (s *Service) snapshot(ctx context.Context) (*domain.SchedulingConfig, error) {
	cfg, err := s.configs.Current(ctx)
	if err != nil {
		s.logger.Error("snapshot: config resolve failed: %v", err)
		return nil, fmt.Errorf("%w: snapshot - config resolve: %v", ErrInternal, err)
	}
	return cfg, nil
}
