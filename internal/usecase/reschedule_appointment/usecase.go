package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// UseCase use case для переноса записи. Создает незавершенный перенос,
// который пять минут удерживает предложенный интервал до подтверждения.
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	rescheduleRepo  RescheduleRepository
	schedules       ScheduleService
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	rescheduleRepo RescheduleRepository,
	schedules ScheduleService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		rescheduleRepo:  rescheduleRepo,
		schedules:       schedules,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id_request=%s, date=%s",
		req.IDRequest, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заявку
	request, err := uc.appointmentRepo.GetRequestByIDRequest(ctx, req.IDRequest)
	if err != nil {
		if errors.Is(err, apptRepo.ErrRequestNotFound) {
			uc.logger.Warn("RescheduleAppointment: request id_request=%s not found", req.IDRequest)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get request: %v", err)
		return nil, fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
	}

	// 3. Новая дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("RescheduleAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	start := timeutil.Combine(req.Date, req.StartTime)
	if isSameDay(req.Date, now) && start.Before(now) {
		uc.logger.Warn("RescheduleAppointment: start time %s has already passed", start.Format(domain.TimeFormat))
		return nil, ErrInvalidDate
	}

	// 4. Мастер: новый из запроса либо прежний из заявки
	staffID := request.StaffID
	if req.StaffID != nil {
		staffID = *req.StaffID
	}

	staff, err := uc.schedules.GetStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, schedule.ErrStaffNotFound) {
			uc.logger.Warn("RescheduleAppointment: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 5. Длительность берется из услуги исходной заявки
	service, err := uc.serviceRepo.GetByID(ctx, request.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Error("RescheduleAppointment: service id=%d vanished for request id_request=%s",
				request.ServiceID, req.IDRequest)
			return nil, fmt.Errorf("%w: service lookup: %v", ErrInternal, err)
		}
		uc.logger.Error("RescheduleAppointment: failed to get service id=%d: %v", request.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	end, err := timeutil.EndTime(start, timeutil.Span(service.Duration))
	if err != nil {
		uc.logger.Error("RescheduleAppointment: end time computation failed: %v", err)
		return nil, fmt.Errorf("%w: end time computation: %v", ErrInternal, err)
	}

	var created *domain.RescheduleHistory

	// 6. Перепроверка доступности и создание удержания в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkAvailability(txCtx, staff, req.Date, start, end, now, req.IDRequest); err != nil {
			return err
		}

		created, err = uc.rescheduleRepo.CreatePending(txCtx, &domain.RescheduleHistory{
			RequestID: request.ID,
			Date:      req.Date,
			StartTime: start,
			EndTime:   end,
			StaffID:   staffID,
			Reason:    req.Reason,
			IDRequest: request.IDRequest,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create pending reschedule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("RescheduleAppointment: slot %s not available for staff=%d",
				start.Format(domain.TimeFormat), staffID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("RescheduleAppointment: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: created pending reschedule id=%d for id_request=%s",
		created.ID, req.IDRequest)

	return &Response{
		IDRequest: created.IDRequest,
		Date:      created.Date.Format(domain.DateFormat),
		StartTime: created.StartTime.Format(domain.TimeFormat),
		EndTime:   created.EndTime.Format(domain.TimeFormat),
		StaffID:   created.StaffID,
		Status:    string(created.Status),
	}, nil
}

// checkAvailability перепроверяет, что предложенный интервал попадает в
// рабочее окно мастера и не пересекается с чужими заявками и удержаниями.
// Собственная заявка из проверки пересечений исключается.
func (uc *UseCase) checkAvailability(ctx context.Context, staff *domain.StaffMember, date, start, end, now time.Time, excludeIDRequest string) error {
	hasDayOff, err := uc.schedules.HasDayOff(ctx, staff.ID, date)
	if err != nil {
		return fmt.Errorf("%w: day off check: %v", ErrInternal, err)
	}
	if hasDayOff {
		return ErrSlotNotAvailable
	}

	window, err := uc.schedules.WindowFor(ctx, staff, date)
	if err != nil {
		return fmt.Errorf("%w: window lookup: %v", ErrInternal, err)
	}
	if window == nil || start.Before(window.Start) || end.After(window.End) {
		return ErrSlotNotAvailable
	}

	overlaps, err := uc.appointmentRepo.HasOverlappingRequest(ctx, staff.ID, date, start, end, excludeIDRequest)
	if err != nil {
		return fmt.Errorf("%w: overlap check: %v", ErrInternal, err)
	}
	if overlaps {
		return ErrSlotNotAvailable
	}

	holds, err := uc.rescheduleRepo.ListPendingHolds(ctx, staff.ID, date, now.Add(-domain.PendingHoldWindow))
	if err != nil {
		return fmt.Errorf("%w: holds lookup: %v", ErrInternal, err)
	}
	for _, hold := range holds {
		if start.Before(hold.End) && hold.Start.Before(end) {
			return ErrSlotNotAvailable
		}
	}

	return nil
}
