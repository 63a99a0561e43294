package update_config

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	configService "github.com/m04kA/SMC-AppointmentService/internal/service/config"
)

const (
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidTime   = "некорректный формат времени"
	msgInvalidConfig = "конфигурация нарушает ограничения"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	cfg, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /config - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	updated, err := h.service.Update(r.Context(), cfg)
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrInvalidConfig):
			h.logger.Warn("PUT /config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /config - Failed to update config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config - Config updated successfully")
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
