package reschedule_appointment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	rescheduleAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/reschedule_appointment"
)

const (
	msgMissingIDRequest  = "идентификатор заявки обязателен"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDateOrTime = "некорректные дата или время"
	msgRequestNotFound   = "заявка не найдена"
	msgStaffNotFound     = "мастер не найден"
	msgInvalidDate       = "дата или время уже прошли"
	msgSlotNotAvailable  = "выбранное время недоступно"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{idRequest}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	idRequest := vars["idRequest"]
	if idRequest == "" {
		h.logger.Warn("POST /appointments/{idRequest}/reschedule - Missing idRequest")
		handlers.RespondBadRequest(w, msgMissingIDRequest)
		return
	}

	var req RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /appointments/{idRequest}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(idRequest)
	if err != nil {
		h.logger.Warn("POST /appointments/{idRequest}/reschedule - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrRequestNotFound):
			h.logger.Warn("POST /appointments/{idRequest}/reschedule - Request not found: id_request=%s", idRequest)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, rescheduleAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments/{idRequest}/reschedule - Staff not found")
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, rescheduleAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments/{idRequest}/reschedule - Invalid date: date=%s, time=%s",
				req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments/{idRequest}/reschedule - Slot not available: id_request=%s, date=%s, time=%s",
				idRequest, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{idRequest}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments/{idRequest}/reschedule - Failed to reschedule: id_request=%s, error=%v",
				idRequest, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{idRequest}/reschedule - Pending reschedule created: id_request=%s", idRequest)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
