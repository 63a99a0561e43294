package create_working_hours

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffService "github.com/m04kA/SMC-AppointmentService/internal/service/staff"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

const (
	msgInvalidStaffID   = "некорректный ID мастера"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidDayOfWeek = "некорректный день недели, ожидается 0 (воскресенье) .. 6 (суббота)"
	msgInvalidTime      = "некорректный формат времени"
	msgInvalidRange     = "время начала должно быть раньше времени окончания"
	msgStaffNotFound    = "мастер не найден"
	msgDuplicate        = "рабочие часы на этот день недели уже заведены"
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

// WorkingHoursRequest HTTP request model
type WorkingHoursRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0=воскресенье .. 6=суббота
	StartTime string `json:"startTime"` // "09:00", "09:00:00" или "9:00 AM"
	EndTime   string `json:"endTime"`   // аналогично startTime
}

// WorkingHoursResponse HTTP response model
type WorkingHoursResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Handle POST /api/v1/staff/{staffId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req WorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /staff/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		h.logger.Warn("POST /staff/{id}/working-hours - Invalid day of week: %d", req.DayOfWeek)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	start, err := timeutil.ParseClock(req.StartTime)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/working-hours - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	end, err := timeutil.ParseClock(req.EndTime)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/working-hours - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	created, err := h.service.CreateWorkingHours(r.Context(), &domain.WorkingHours{
		StaffID:   staffID,
		DayOfWeek: time.Weekday(req.DayOfWeek),
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/working-hours - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staffService.ErrInvalidTimeRange):
			h.logger.Warn("POST /staff/{id}/working-hours - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, staffService.ErrDuplicateWorkingHours):
			h.logger.Warn("POST /staff/{id}/working-hours - Duplicate weekday=%d: staff_id=%d", req.DayOfWeek, staffID)
			handlers.RespondConflict(w, msgDuplicate)

		default:
			h.logger.Error("POST /staff/{id}/working-hours - Failed to create: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{id}/working-hours - Created: staff_id=%d, weekday=%d", staffID, req.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, &WorkingHoursResponse{
		ID:        created.ID,
		StaffID:   created.StaffID,
		DayOfWeek: int(created.DayOfWeek),
		StartTime: created.StartTime.Format(domain.TimeFormat),
		EndTime:   created.EndTime.Format(domain.TimeFormat),
	})
}
