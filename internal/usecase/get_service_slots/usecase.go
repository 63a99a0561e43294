package get_service_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// UseCase use case для получения доступных слотов по услуге.
// Рабочее окно и шаг нарезки берутся из глобальной конфигурации.
type UseCase struct {
	serviceRepo  ServiceRepository
	apptRepo     AppointmentRepository
	schedules    ScheduleService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	apptRepo AppointmentRepository,
	schedules ScheduleService,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:  serviceRepo,
		apptRepo:     apptRepo,
		schedules:    schedules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов по услуге
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetServiceSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetServiceSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetServiceSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetServiceSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetServiceSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем рабочее окно и параметры нарезки на дату
	pacing, err := uc.schedules.WindowAndPacing(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetServiceSlots: failed to resolve pacing: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve pacing: %v", ErrInternal, err)
	}

	// 5. Буфер отодвигает начало только для сегодняшней даты
	var notBefore time.Time
	if isSameDay(req.Date, now) {
		notBefore = now.Add(pacing.Buffer)
	}

	// 6. Получаем подтвержденные записи по услуге на дату
	appointments, err := uc.apptRepo.ListViewsForServiceAndDate(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetServiceSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 7. Нарезаем слоты и исключаем занятые
	slots := domain.GenerateSlots(pacing.WindowStart, pacing.WindowEnd, notBefore, pacing.SlotDuration)
	slots = domain.ExcludeBooked(appointments, slots, pacing.SlotDuration)

	formatted := make([]string, 0, len(slots))
	for _, slot := range slots {
		formatted = append(formatted, timeutil.Format12Hour(slot))
	}

	uc.logger.Info("GetServiceSlots: service=%d, date=%s, found %d slots",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(formatted))

	return &Response{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Date:        req.Date.Format(domain.DateFormat),
		Slots:       formatted,
	}, nil
}
