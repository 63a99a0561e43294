package create_day_off

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffService "github.com/m04kA/SMC-AppointmentService/internal/service/staff"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange   = "дата начала не может быть позже даты окончания"
	msgStaffNotFound  = "мастер не найден"
	msgOverlap        = "выходной пересекается с уже существующим"
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

// DayOffRequest HTTP request model
type DayOffRequest struct {
	StartDate   string  `json:"startDate"` // YYYY-MM-DD
	EndDate     string  `json:"endDate"`   // YYYY-MM-DD
	Description *string `json:"description,omitempty"`
}

// DayOffResponse HTTP response model
type DayOffResponse struct {
	ID          int64   `json:"id"`
	StaffID     int64   `json:"staffId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Description *string `json:"description,omitempty"`
}

// Handle POST /api/v1/staff/{staffId}/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/days-off - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req DayOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /staff/{id}/days-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	startDate, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/days-off - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/days-off - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	created, err := h.service.CreateDayOff(r.Context(), &domain.DayOff{
		StaffID:     staffID,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/days-off - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staffService.ErrInvalidDateRange):
			h.logger.Warn("POST /staff/{id}/days-off - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, staffService.ErrDayOffOverlap):
			h.logger.Warn("POST /staff/{id}/days-off - Overlapping day off: staff_id=%d", staffID)
			handlers.RespondConflict(w, msgOverlap)

		default:
			h.logger.Error("POST /staff/{id}/days-off - Failed to create: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{id}/days-off - Created: staff_id=%d, id=%d", staffID, created.ID)
	handlers.RespondJSON(w, http.StatusCreated, &DayOffResponse{
		ID:          created.ID,
		StaffID:     created.StaffID,
		StartDate:   created.StartDate.Format(domain.DateFormat),
		EndDate:     created.EndDate.Format(domain.DateFormat),
		Description: created.Description,
	})
}
