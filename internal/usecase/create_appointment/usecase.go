package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	serviceRepo    ServiceRepository
	apptRepo       AppointmentRepository
	rescheduleRepo RescheduleRepository
	schedules      ScheduleService
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	apptRepo AppointmentRepository,
	rescheduleRepo RescheduleRepository,
	schedules ScheduleService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:    serviceRepo,
		apptRepo:       apptRepo,
		rescheduleRepo: rescheduleRepo,
		schedules:      schedules,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания записи.
// Доступность интервала перепроверяется в сериализуемой транзакции,
// чтобы параллельные запросы не заняли один слот дважды.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%d, staff=%d, date=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата и время не должны быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	start := timeutil.Combine(req.Date, req.StartTime)
	if isSameDay(req.Date, now) && start.Before(now) {
		uc.logger.Warn("CreateAppointment: start time %s has already passed", start.Format(domain.TimeFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем мастера и проверяем, что он оказывает услугу
	staff, err := uc.schedules.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, schedule.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	offered, err := uc.serviceRepo.OfferedByStaff(ctx, req.StaffID, req.ServiceID)
	if err != nil {
		uc.logger.Error("CreateAppointment: offer check failed: %v", err)
		return nil, fmt.Errorf("%w: offer check: %v", ErrInternal, err)
	}
	if !offered {
		uc.logger.Warn("CreateAppointment: staff id=%d does not offer service id=%d", req.StaffID, req.ServiceID)
		return nil, ErrServiceNotOffered
	}

	// 5. Время окончания определяется длительностью услуги
	end, err := timeutil.EndTime(start, timeutil.Span(service.Duration))
	if err != nil {
		uc.logger.Error("CreateAppointment: end time computation failed: %v", err)
		return nil, fmt.Errorf("%w: end time computation: %v", ErrInternal, err)
	}

	var createdRequest *domain.AppointmentRequest

	// 6. Перепроверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkAvailability(txCtx, staff, req.Date, start, end, now); err != nil {
			return err
		}

		createdRequest, err = uc.apptRepo.CreateRequest(txCtx, &domain.AppointmentRequest{
			Date:        req.Date,
			StartTime:   start,
			EndTime:     end,
			ServiceID:   req.ServiceID,
			StaffID:     req.StaffID,
			PaymentType: domain.PaymentType(req.PaymentType),
			IDRequest:   newIDRequest(now, req.ServiceID),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		_, err = uc.apptRepo.CreateAppointment(txCtx, &domain.Appointment{
			RequestID:    createdRequest.ID,
			ClientName:   req.ClientName,
			ClientEmail:  req.ClientEmail,
			Phone:        req.Phone,
			Address:      req.Address,
			WantReminder: req.WantReminder,
			IDRequest:    createdRequest.IDRequest,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateAppointment: slot %s not available for staff=%d",
				start.Format(domain.TimeFormat), req.StaffID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created request id_request=%s for staff=%d", createdRequest.IDRequest, req.StaffID)

	return &Response{
		IDRequest:          createdRequest.IDRequest,
		ServiceID:          createdRequest.ServiceID,
		StaffID:            createdRequest.StaffID,
		Date:               createdRequest.Date.Format(domain.DateFormat),
		StartTime:          createdRequest.StartTime.Format(domain.TimeFormat),
		EndTime:            createdRequest.EndTime.Format(domain.TimeFormat),
		PaymentType:        string(createdRequest.PaymentType),
		RescheduleAttempts: createdRequest.RescheduleAttempts,
	}, nil
}

// checkAvailability перепроверяет, что интервал попадает в рабочее окно
// мастера и не пересекается ни с заявками, ни с удержаниями переносов
func (uc *UseCase) checkAvailability(ctx context.Context, staff *domain.StaffMember, date, start, end, now time.Time) error {
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

	overlaps, err := uc.apptRepo.HasOverlappingRequest(ctx, staff.ID, date, start, end, "")
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

// newIDRequest генерирует публичный идентификатор заявки:
// отметка времени + id услуги + uuid без дефисов
func newIDRequest(now time.Time, serviceID int64) string {
	return fmt.Sprintf("%d%d%s", now.UnixMilli(), serviceID, strings.ReplaceAll(uuid.NewString(), "-", ""))
}
