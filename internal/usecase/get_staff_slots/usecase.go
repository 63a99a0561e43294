package get_staff_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

// UseCase use case для получения доступных слотов мастера.
// Рабочее окно определяется рабочими часами мастера, буфер
// отсчитывается от начала окна.
type UseCase struct {
	apptRepo       AppointmentRepository
	rescheduleRepo RescheduleRepository
	schedules      ScheduleService
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	rescheduleRepo RescheduleRepository,
	schedules ScheduleService,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:       apptRepo,
		rescheduleRepo: rescheduleRepo,
		schedules:      schedules,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStaffSlots: staff=%d, date=%s",
		req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStaffSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мастера
	staff, err := uc.schedules.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, schedule.ErrStaffNotFound) {
			uc.logger.Warn("GetStaffSlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetStaffSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Выходной день - слотов нет
	hasDayOff, err := uc.schedules.HasDayOff(ctx, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetStaffSlots: day off check failed for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: day off check: %v", ErrInternal, err)
	}
	if hasDayOff {
		uc.logger.Info("GetStaffSlots: staff=%d has a day off on %s", req.StaffID, req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 4. Определяем рабочее окно мастера на дату
	window, err := uc.schedules.WindowFor(ctx, staff, req.Date)
	if err != nil {
		uc.logger.Error("GetStaffSlots: window lookup failed for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: window lookup: %v", ErrInternal, err)
	}
	if window == nil {
		uc.logger.Info("GetStaffSlots: staff=%d does not work on %s", req.StaffID, req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 5. Параметры нарезки с учетом персональных настроек мастера
	slotDuration, buffer, err := uc.schedules.StaffPacing(ctx, staff)
	if err != nil {
		uc.logger.Error("GetStaffSlots: pacing resolve failed for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: pacing resolve: %v", ErrInternal, err)
	}

	// 6. Буфер мастера смещает начало относительно начала окна
	warmup := window.Start.Add(buffer)
	slots := domain.GenerateSlots(window.Start, window.End, warmup, slotDuration)

	// 7. Исключаем интервалы незавершенных переносов (мягкие блокировки)
	now := uc.timeProvider.Now()
	holds, err := uc.rescheduleRepo.ListPendingHolds(ctx, req.StaffID, req.Date, now.Add(-domain.PendingHoldWindow))
	if err != nil {
		uc.logger.Error("GetStaffSlots: failed to list pending holds: %v", err)
		return nil, fmt.Errorf("%w: failed to list pending holds: %v", ErrInternal, err)
	}
	slots = domain.ExcludePendingHolds(slots, holds)

	// 8. Исключаем занятые интервалы
	appointments, err := uc.apptRepo.ListViewsForStaffAndWindow(ctx, req.StaffID, req.Date, window.Start, window.End)
	if err != nil {
		uc.logger.Error("GetStaffSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}
	slots = domain.ExcludeBooked(appointments, slots, slotDuration)

	uc.logger.Info("GetStaffSlots: staff=%d, date=%s, found %d slots",
		req.StaffID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		StaffID: req.StaffID,
		Date:    req.Date.Format(domain.DateFormat),
		Slots:   slots,
	}, nil
}

func emptyResponse(req *Request) *Response {
	return &Response{
		StaffID: req.StaffID,
		Date:    req.Date.Format(domain.DateFormat),
		Slots:   []time.Time{},
	}
}
