package delete_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	staffService "github.com/m04kA/SMC-AppointmentService/internal/service/staff"
)

const (
	msgInvalidID     = "некорректный ID рабочих часов"
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

// Handle DELETE /api/v1/working-hours/{workingHoursId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["workingHoursId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /working-hours/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteWorkingHours(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, staffService.ErrWorkingHoursNotFound):
			h.logger.Warn("DELETE /working-hours/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgHoursNotFound)

		default:
			h.logger.Error("DELETE /working-hours/{id} - Failed to delete: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /working-hours/{id} - Deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
