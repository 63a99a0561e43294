package confirm_reschedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	confirmReschedule "github.com/m04kA/SMC-AppointmentService/internal/usecase/confirm_reschedule"
)

const (
	msgMissingIDRequest    = "идентификатор заявки обязателен"
	msgRescheduleNotFound  = "перенос не найден"
	msgRescheduleNotActive = "перенос уже обработан"
	msgHoldExpired         = "время на подтверждение переноса истекло"
)

type Handler struct {
	useCase ConfirmRescheduleUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmRescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ConfirmRescheduleResponse HTTP response model
type ConfirmRescheduleResponse struct {
	IDRequest          string `json:"idRequest"`
	Date               string `json:"date"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	StaffID            int64  `json:"staffId"`
	RescheduleAttempts int    `json:"rescheduleAttempts"`
}

// Handle POST /api/v1/reschedules/{idRequest}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	idRequest := vars["idRequest"]
	if idRequest == "" {
		h.logger.Warn("POST /reschedules/{idRequest}/confirm - Missing idRequest")
		handlers.RespondBadRequest(w, msgMissingIDRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmReschedule.Request{IDRequest: idRequest})
	if err != nil {
		switch {
		case errors.Is(err, confirmReschedule.ErrRescheduleNotFound):
			h.logger.Warn("POST /reschedules/{idRequest}/confirm - Reschedule not found: id_request=%s", idRequest)
			handlers.RespondNotFound(w, msgRescheduleNotFound)

		case errors.Is(err, confirmReschedule.ErrNotPending):
			h.logger.Warn("POST /reschedules/{idRequest}/confirm - Not pending: id_request=%s", idRequest)
			handlers.RespondConflict(w, msgRescheduleNotActive)

		case errors.Is(err, confirmReschedule.ErrHoldExpired):
			h.logger.Warn("POST /reschedules/{idRequest}/confirm - Hold expired: id_request=%s", idRequest)
			handlers.RespondConflict(w, msgHoldExpired)

		case errors.Is(err, confirmReschedule.ErrInvalidInput):
			h.logger.Warn("POST /reschedules/{idRequest}/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reschedules/{idRequest}/confirm - Failed to confirm: id_request=%s, error=%v",
				idRequest, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reschedules/{idRequest}/confirm - Reschedule confirmed: id_request=%s", idRequest)
	handlers.RespondJSON(w, http.StatusOK, &ConfirmRescheduleResponse{
		IDRequest:          result.IDRequest,
		Date:               result.Date,
		StartTime:          result.StartTime,
		EndTime:            result.EndTime,
		StaffID:            result.StaffID,
		RescheduleAttempts: result.RescheduleAttempts,
	})
}
