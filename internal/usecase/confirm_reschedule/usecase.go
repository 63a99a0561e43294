package confirm_reschedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	rescheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/reschedule"
)

// UseCase use case для подтверждения переноса. Предложенные дата и
// время становятся действующими, прежние сохраняются на строке истории.
type UseCase struct {
	appointmentRepo AppointmentRepository
	rescheduleRepo  RescheduleRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	rescheduleRepo RescheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		rescheduleRepo:  rescheduleRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case подтверждения переноса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmReschedule: id_request=%s", req.IDRequest)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.IDRequest) == "" {
		uc.logger.Warn("ConfirmReschedule: empty idRequest")
		return nil, fmt.Errorf("%w: idRequest is required", ErrInvalidInput)
	}

	// 2. Получаем последний перенос по заявке
	history, err := uc.rescheduleRepo.GetLatestByIDRequest(ctx, req.IDRequest)
	if err != nil {
		if errors.Is(err, rescheduleRepo.ErrHistoryNotFound) {
			uc.logger.Warn("ConfirmReschedule: no reschedule for id_request=%s", req.IDRequest)
			return nil, ErrRescheduleNotFound
		}
		uc.logger.Error("ConfirmReschedule: failed to get reschedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get reschedule: %v", ErrInternal, err)
	}

	// 3. Подтверждать можно только незавершенный и не истекший перенос
	if !history.IsPending() {
		uc.logger.Warn("ConfirmReschedule: reschedule id=%d has status %s", history.ID, history.Status)
		return nil, ErrNotPending
	}

	now := uc.timeProvider.Now()
	if !history.StillValid(now) {
		uc.logger.Warn("ConfirmReschedule: reschedule id=%d expired", history.ID)
		return nil, ErrHoldExpired
	}

	// 4. Получаем заявку
	request, err := uc.appointmentRepo.GetRequestByIDRequest(ctx, req.IDRequest)
	if err != nil {
		if errors.Is(err, apptRepo.ErrRequestNotFound) {
			uc.logger.Error("ConfirmReschedule: request vanished for id_request=%s", req.IDRequest)
			return nil, ErrRescheduleNotFound
		}
		uc.logger.Error("ConfirmReschedule: failed to get request: %v", err)
		return nil, fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
	}

	var updated *domain.AppointmentRequest

	// 5. Обмен полей в одной транзакции: заявка получает предложенные
	// дату и время, строка истории - прежние
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		prevDate := request.Date
		prevStart := request.StartTime
		prevEnd := request.EndTime
		prevStaffID := request.StaffID

		updated, err = uc.appointmentRepo.UpdateRequestSchedule(
			txCtx, request.ID, history.Date, history.StartTime, history.EndTime, history.StaffID)
		if err != nil {
			return fmt.Errorf("%w: failed to update request: %v", ErrInternal, err)
		}

		if _, err = uc.rescheduleRepo.UpdateOnConfirm(
			txCtx, history.ID, prevDate, prevStart, prevEnd, prevStaffID); err != nil {
			return fmt.Errorf("%w: failed to confirm history: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ConfirmReschedule: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ConfirmReschedule: confirmed reschedule id=%d, attempts=%d",
		history.ID, updated.RescheduleAttempts)

	return &Response{
		IDRequest:          updated.IDRequest,
		Date:               updated.Date.Format(domain.DateFormat),
		StartTime:          updated.StartTime.Format(domain.TimeFormat),
		EndTime:            updated.EndTime.Format(domain.TimeFormat),
		StaffID:            updated.StaffID,
		RescheduleAttempts: updated.RescheduleAttempts,
	}, nil
}
