package update_config

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

// UpdateConfigRequest HTTP request model. Незаданные поля означают
// "использовать значение по умолчанию".
type UpdateConfigRequest struct {
	SlotDurationMinutes *int     `json:"slotDurationMinutes,omitempty"`
	LeadTime            *string  `json:"leadTime,omitempty"`   // "09:00", "09:00:00" или "9:00 AM"
	FinishTime          *string  `json:"finishTime,omitempty"` // аналогично leadTime
	BufferMinutes       *float64 `json:"bufferMinutes,omitempty"`
	WebsiteName         string   `json:"websiteName"`
}

// UpdateConfigResponse HTTP response model
type UpdateConfigResponse struct {
	SlotDurationMinutes *int     `json:"slotDurationMinutes,omitempty"`
	LeadTime            *string  `json:"leadTime,omitempty"`
	FinishTime          *string  `json:"finishTime,omitempty"`
	BufferMinutes       *float64 `json:"bufferMinutes,omitempty"`
	WebsiteName         string   `json:"websiteName"`
}

// ToDomain конвертирует HTTP запрос в доменную конфигурацию
func (r *UpdateConfigRequest) ToDomain() (*domain.SchedulingConfig, error) {
	cfg := &domain.SchedulingConfig{
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferMinutes:       r.BufferMinutes,
		WebsiteName:         r.WebsiteName,
	}

	if r.LeadTime != nil {
		lead, err := timeutil.ParseClock(*r.LeadTime)
		if err != nil {
			return nil, err
		}
		cfg.LeadTime = &lead
	}

	if r.FinishTime != nil {
		finish, err := timeutil.ParseClock(*r.FinishTime)
		if err != nil {
			return nil, err
		}
		cfg.FinishTime = &finish
	}

	return cfg, nil
}

// FromDomain конвертирует доменную конфигурацию в HTTP response
func FromDomain(cfg *domain.SchedulingConfig) *UpdateConfigResponse {
	resp := &UpdateConfigResponse{
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		BufferMinutes:       cfg.BufferMinutes,
		WebsiteName:         cfg.WebsiteName,
	}

	if cfg.LeadTime != nil {
		lead := cfg.LeadTime.Format(domain.TimeFormat)
		resp.LeadTime = &lead
	}
	if cfg.FinishTime != nil {
		finish := cfg.FinishTime.Format(domain.TimeFormat)
		resp.FinishTime = &finish
	}

	return resp
}
