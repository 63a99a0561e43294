package get_config

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
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

// ConfigResponse HTTP response model. Отдаются действующие значения:
// незаданные поля заменены значениями по умолчанию.
type ConfigResponse struct {
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	LeadTime            string  `json:"leadTime"`
	FinishTime          string  `json:"finishTime"`
	BufferMinutes       float64 `json:"bufferMinutes"`
	WebsiteName         string  `json:"websiteName"`
}

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Current(r.Context())
	if err != nil {
		h.logger.Error("GET /config - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := &ConfigResponse{
		SlotDurationMinutes: int(cfg.EffectiveSlotDuration().Minutes()),
		LeadTime:            cfg.EffectiveLeadTime().Format(domain.TimeFormat),
		FinishTime:          cfg.EffectiveFinishTime().Format(domain.TimeFormat),
		BufferMinutes:       cfg.EffectiveBuffer().Minutes(),
		WebsiteName:         cfg.EffectiveWebsiteName(),
	}

	h.logger.Info("GET /config - Config retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, response)
}
