package list_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffService "github.com/m04kA/SMC-AppointmentService/internal/service/staff"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgStaffNotFound  = "мастер не найден"
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

// WorkingHoursItem одна запись рабочих часов в ответе
type WorkingHoursItem struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WorkingHoursListResponse HTTP response model
type WorkingHoursListResponse struct {
	StaffID      int64              `json:"staffId"`
	WorkingHours []WorkingHoursItem `json:"workingHours"`
}

// Handle GET /api/v1/staff/{staffId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	hours, err := h.service.ListWorkingHours(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/working-hours - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/{id}/working-hours - Failed to list: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	items := make([]WorkingHoursItem, len(hours))
	for i, wh := range hours {
		items[i] = WorkingHoursItem{
			ID:        wh.ID,
			DayOfWeek: int(wh.DayOfWeek),
			StartTime: wh.StartTime.Format(domain.TimeFormat),
			EndTime:   wh.EndTime.Format(domain.TimeFormat),
		}
	}

	h.logger.Info("GET /staff/{id}/working-hours - Retrieved %d records: staff_id=%d", len(items), staffID)
	handlers.RespondJSON(w, http.StatusOK, &WorkingHoursListResponse{
		StaffID:      staffID,
		WorkingHours: items,
	})
}
