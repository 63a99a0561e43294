package preview_recurrence

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	expandRecurrence "github.com/m04kA/SMC-AppointmentService/internal/usecase/expand_recurrence"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDateOrTime = "некорректные дата или время"
	msgMissingDuration   = "длительность услуги обязательна"
)

type Handler struct {
	useCase ExpandRecurrenceUseCase
	logger  Logger
}

func NewHandler(useCase ExpandRecurrenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/recurrence/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /recurrence/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /recurrence/preview - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, expandRecurrence.ErrMissingDuration):
			h.logger.Warn("POST /recurrence/preview - Missing duration")
			handlers.RespondBadRequest(w, msgMissingDuration)

		case errors.Is(err, expandRecurrence.ErrInvalidInput):
			h.logger.Warn("POST /recurrence/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /recurrence/preview - Failed to expand rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /recurrence/preview - Rule expanded: rule=%q, occurrences=%d",
		req.Rule, len(result.Occurrences))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
