package update_working_hours

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	staffService "github.com/m04kA/SMC-AppointmentService/internal/service/staff"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

const (
	msgInvalidID     = "некорректный ID рабочих часов"
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidTime   = "некорректный формат времени"
	msgInvalidRange  = "время начала должно быть раньше времени окончания"
	msgHoursNotFound = "рабочие часы не найдены"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	StartTime string `json:"startTime"` // "09:00", "09:00:00" или "9:00 AM"
	EndTime   string `json:"endTime"`   // аналогично startTime
}

// Handle PUT /api/v1/working-hours/{workingHoursId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["workingHoursId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /working-hours/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /working-hours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	start, err := timeutil.ParseClock(req.StartTime)
	if err != nil {
		h.logger.Warn("PUT /working-hours/{id} - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	end, err := timeutil.ParseClock(req.EndTime)
	if err != nil {
		h.logger.Warn("PUT /working-hours/{id} - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.service.UpdateWorkingHours(r.Context(), id, start, end); err != nil {
		switch {
		case errors.Is(err, staffService.ErrWorkingHoursNotFound):
			h.logger.Warn("PUT /working-hours/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgHoursNotFound)

		case errors.Is(err, staffService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /working-hours/{id} - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("PUT /working-hours/{id} - Failed to update: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /working-hours/{id} - Updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
