package delete_day_off

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	staffService "github.com/m04kA/SMC-AppointmentService/internal/service/staff"
)

const (
	msgInvalidID      = "некорректный ID выходного"
	msgDayOffNotFound = "выходной не найден"
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

// Handle DELETE /api/v1/days-off/{dayOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["dayOffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /days-off/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteDayOff(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, staffService.ErrDayOffNotFound):
			h.logger.Warn("DELETE /days-off/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgDayOffNotFound)

		default:
			h.logger.Error("DELETE /days-off/{id} - Failed to delete: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /days-off/{id} - Deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
