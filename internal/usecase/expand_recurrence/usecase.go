package expand_recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// UseCase use case разворачивания правила повторения в список вхождений
type UseCase struct {
	evaluator RuleEvaluator
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(evaluator RuleEvaluator, logger Logger) *UseCase {
	return &UseCase{
		evaluator: evaluator,
		logger:    logger,
	}
}

// Execute выполняет разворачивание правила повторения.
// Горизонт выбирается как самая тесная из границ: явная граница запроса,
// собственный ограничитель правила (COUNT/UNTIL), либо год от первого
// вхождения, когда правило не ограничено ничем. Сбой вычислителя не
// ошибка запроса: возвращается пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExpandRecurrence: start=%s, rule=%q",
		req.InitialStart.Format(time.RFC3339), req.Rule)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExpandRecurrence: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем горизонт разворачивания
	until, err := uc.resolveHorizon(req)
	if err != nil {
		uc.logger.Warn("ExpandRecurrence: rule %q is not parseable: %v", req.Rule, err)
		return &Response{Occurrences: []domain.Occurrence{}}, nil
	}

	// 3. Вычисляем вхождения
	instants := uc.evaluate(req, until)

	// 4. Преобразуем моменты во вхождения с временем окончания
	occurrences := make([]domain.Occurrence, 0, len(instants))
	for _, instant := range instants {
		if instant.IsZero() {
			uc.logger.Warn("ExpandRecurrence: skipping degenerate instant for rule %q", req.Rule)
			continue
		}

		end, err := timeutil.EndTime(instant, timeutil.Span(req.ServiceDuration))
		if err != nil {
			uc.logger.Warn("ExpandRecurrence: skipping instant %s: %v", instant.Format(time.RFC3339), err)
			continue
		}

		occurrences = append(occurrences, domain.Occurrence{
			Date:      timeutil.DateOnly(instant),
			StartTime: instant,
			EndTime:   end,
		})
	}

	uc.logger.Info("ExpandRecurrence: rule %q produced %d occurrences", req.Rule, len(occurrences))
	return &Response{Occurrences: occurrences}, nil
}

// resolveHorizon выбирает верхнюю границу разворачивания
func (uc *UseCase) resolveHorizon(req *Request) (time.Time, error) {
	if req.EndRecurrence != nil {
		return *req.EndRecurrence, nil
	}

	bounded, err := uc.evaluator.HasTerminator(req.Rule)
	if err != nil {
		return time.Time{}, err
	}
	if bounded {
		// правило ограничивает себя само
		return time.Time{}, nil
	}
	return req.InitialStart.Add(domain.MaxRecurrenceHorizon), nil
}

// evaluate вызывает вычислитель, гася его паники и ошибки:
// при любом сбое список вхождений пуст
func (uc *UseCase) evaluate(req *Request, until time.Time) (instants []time.Time) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Warn("ExpandRecurrence: evaluator panicked for rule %q: %v", req.Rule, r)
			instants = nil
		}
	}()

	instants, err := uc.evaluator.Occurrences(req.Rule, req.InitialStart, until)
	if err != nil {
		uc.logger.Warn("ExpandRecurrence: evaluator failed for rule %q: %v", req.Rule, err)
		return nil
	}
	return instants
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InitialStart.IsZero() {
		return fmt.Errorf("%w: initial start is required", ErrInvalidInput)
	}

	if req.Rule == "" {
		return fmt.Errorf("%w: rule is required", ErrInvalidInput)
	}

	if req.ServiceDuration <= 0 {
		return ErrMissingDuration
	}

	return nil
}
