package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/staff"
)

// Service сервис управления рабочим графиком мастеров: рабочие часы
// по дням недели и выходные. Поддерживает производные флаги
// work_on_saturday / work_on_sunday в согласованном состоянии.
type Service struct {
	repo      StaffRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса графика мастеров
func NewService(repo StaffRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetStaff возвращает мастера по идентификатору
func (s *Service) GetStaff(ctx context.Context, staffID int64) (*domain.StaffMember, error) {
	member, err := s.repo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaff: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaff - repository error: %v", ErrInternal, err)
	}
	return member, nil
}

// ListWorkingHours возвращает все рабочие часы мастера
func (s *Service) ListWorkingHours(ctx context.Context, staffID int64) ([]*domain.WorkingHours, error) {
	if _, err := s.GetStaff(ctx, staffID); err != nil {
		return nil, err
	}

	hours, err := s.repo.ListWorkingHours(ctx, staffID)
	if err != nil {
		s.logger.Error("ListWorkingHours: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListWorkingHours - repository error: %v", ErrInternal, err)
	}
	return hours, nil
}

// CreateWorkingHours заводит рабочие часы на день недели.
// Для субботы и воскресенья одновременно взводится соответствующий
// флаг работы по выходным.
func (s *Service) CreateWorkingHours(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	if err := wh.Validate(); err != nil {
		s.logger.Warn("CreateWorkingHours: invalid interval for staff=%d: %v", wh.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if _, err := s.GetStaff(ctx, wh.StaffID); err != nil {
		return nil, err
	}

	var created *domain.WorkingHours
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.repo.CreateWorkingHours(ctx, wh)
		if txErr != nil {
			return txErr
		}
		return s.syncWeekendFlag(ctx, wh.StaffID, wh.DayOfWeek, true)
	})
	if err != nil {
		if errors.Is(err, staffRepo.ErrDuplicateWorkingHours) {
			s.logger.Warn("CreateWorkingHours: duplicate weekday=%d for staff=%d", wh.DayOfWeek, wh.StaffID)
			return nil, ErrDuplicateWorkingHours
		}
		s.logger.Error("CreateWorkingHours: failed for staff=%d: %v", wh.StaffID, err)
		return nil, fmt.Errorf("%w: CreateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWorkingHours: created working hours id=%d for staff=%d weekday=%d", created.ID, wh.StaffID, wh.DayOfWeek)
	return created, nil
}

// UpdateWorkingHours обновляет интервал существующих рабочих часов
func (s *Service) UpdateWorkingHours(ctx context.Context, id int64, start, end time.Time) error {
	probe := domain.WorkingHours{StartTime: start, EndTime: end}
	if err := probe.Validate(); err != nil {
		s.logger.Warn("UpdateWorkingHours: invalid interval for id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	if err := s.repo.UpdateWorkingHours(ctx, id, start, end); err != nil {
		if errors.Is(err, staffRepo.ErrWorkingHoursNotFound) {
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("UpdateWorkingHours: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}
	return nil
}

// DeleteWorkingHours удаляет рабочие часы. Если это был выходной день
// недели, флаг работы по выходным снимается.
func (s *Service) DeleteWorkingHours(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		deleted, txErr := s.repo.DeleteWorkingHours(ctx, id)
		if txErr != nil {
			return txErr
		}
		return s.syncWeekendFlag(ctx, deleted.StaffID, deleted.DayOfWeek, false)
	})
	if err != nil {
		if errors.Is(err, staffRepo.ErrWorkingHoursNotFound) {
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("DeleteWorkingHours: failed for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWorkingHours: deleted working hours id=%d", id)
	return nil
}

// ListDaysOff возвращает все выходные мастера
func (s *Service) ListDaysOff(ctx context.Context, staffID int64) ([]*domain.DayOff, error) {
	if _, err := s.GetStaff(ctx, staffID); err != nil {
		return nil, err
	}

	daysOff, err := s.repo.ListDaysOff(ctx, staffID)
	if err != nil {
		s.logger.Error("ListDaysOff: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListDaysOff - repository error: %v", ErrInternal, err)
	}
	return daysOff, nil
}

// CreateDayOff заводит выходной. Пересечение с существующим выходным
// того же мастера не допускается.
func (s *Service) CreateDayOff(ctx context.Context, dayOff *domain.DayOff) (*domain.DayOff, error) {
	if err := dayOff.Validate(); err != nil {
		s.logger.Warn("CreateDayOff: invalid range for staff=%d: %v", dayOff.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if _, err := s.GetStaff(ctx, dayOff.StaffID); err != nil {
		return nil, err
	}

	overlaps, err := s.repo.DayOffOverlaps(ctx, dayOff.StaffID, dayOff.StartDate, dayOff.EndDate, nil)
	if err != nil {
		s.logger.Error("CreateDayOff: overlap check failed for staff=%d: %v", dayOff.StaffID, err)
		return nil, fmt.Errorf("%w: CreateDayOff - overlap check: %v", ErrInternal, err)
	}
	if overlaps {
		s.logger.Warn("CreateDayOff: overlapping day off for staff=%d", dayOff.StaffID)
		return nil, ErrDayOffOverlap
	}

	created, err := s.repo.CreateDayOff(ctx, dayOff)
	if err != nil {
		s.logger.Error("CreateDayOff: repository error for staff=%d: %v", dayOff.StaffID, err)
		return nil, fmt.Errorf("%w: CreateDayOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDayOff: created day off id=%d for staff=%d", created.ID, dayOff.StaffID)
	return created, nil
}

// DeleteDayOff удаляет выходной
func (s *Service) DeleteDayOff(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDayOff(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrDayOffNotFound) {
			return ErrDayOffNotFound
		}
		s.logger.Error("DeleteDayOff: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteDayOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDayOff: deleted day off id=%d", id)
	return nil
}

// syncWeekendFlag обновляет производный флаг работы по выходным,
// если день недели - суббота или воскресенье
func (s *Service) syncWeekendFlag(ctx context.Context, staffID int64, day time.Weekday, works bool) error {
	if day != time.Saturday && day != time.Sunday {
		return nil
	}
	return s.repo.SetWeekendFlag(ctx, staffID, day, works)
}
