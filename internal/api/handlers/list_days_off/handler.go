package list_days_off

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

// DayOffItem один выходной в ответе
type DayOffItem struct {
	ID          int64   `json:"id"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Description *string `json:"description,omitempty"`
}

// DaysOffListResponse HTTP response model
type DaysOffListResponse struct {
	StaffID int64        `json:"staffId"`
	DaysOff []DayOffItem `json:"daysOff"`
}

// Handle GET /api/v1/staff/{staffId}/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/days-off - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	daysOff, err := h.service.ListDaysOff(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/days-off - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/{id}/days-off - Failed to list: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	items := make([]DayOffItem, len(daysOff))
	for i, d := range daysOff {
		items[i] = DayOffItem{
			ID:          d.ID,
			StartDate:   d.StartDate.Format(domain.DateFormat),
			EndDate:     d.EndDate.Format(domain.DateFormat),
			Description: d.Description,
		}
	}

	h.logger.Info("GET /staff/{id}/days-off - Retrieved %d records: staff_id=%d", len(items), staffID)
	handlers.RespondJSON(w, http.StatusOK, &DaysOffListResponse{
		StaffID: staffID,
		DaysOff: items,
	})
}
