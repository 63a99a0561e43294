package domain

import (
	"errors"
	"time"
)

// SchedulingConfig is the singleton global scheduling configuration.
// At most one row ever exists; every field except WebsiteName may be
// unset, meaning "use the compiled-in default".
type SchedulingConfig struct {
	ID                  int64
	SlotDurationMinutes *int
	LeadTime            *time.Time // clock value, date part ignored
	FinishTime          *time.Time // clock value, date part ignored
	BufferMinutes       *float64
	WebsiteName         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

var ErrLeadAfterFinish = errors.New("lead time must be before finish time")

// Validate checks the cross-field invariant: when both ends of the
// window are set, the lead time must precede the finish time.
func (c *SchedulingConfig) Validate() error {
	if c.LeadTime != nil && c.FinishTime != nil {
		lead := clockMinutes(*c.LeadTime)
		finish := clockMinutes(*c.FinishTime)
		if lead >= finish {
			return ErrLeadAfterFinish
		}
	}
	return nil
}

// EffectiveSlotDuration returns the configured slot duration or the
// application default.
func (c *SchedulingConfig) EffectiveSlotDuration() time.Duration {
	if c != nil && c.SlotDurationMinutes != nil && *c.SlotDurationMinutes > 0 {
		return time.Duration(*c.SlotDurationMinutes) * time.Minute
	}
	return DefaultSlotDurationMinutes * time.Minute
}

// EffectiveLeadTime returns the configured day start or the default.
func (c *SchedulingConfig) EffectiveLeadTime() time.Time {
	if c != nil && c.LeadTime != nil {
		return *c.LeadTime
	}
	return DefaultLeadTime
}

// EffectiveFinishTime returns the configured day end or the default.
func (c *SchedulingConfig) EffectiveFinishTime() time.Time {
	if c != nil && c.FinishTime != nil {
		return *c.FinishTime
	}
	return DefaultFinishTime
}

// EffectiveBuffer returns the configured buffer-from-now or the default.
func (c *SchedulingConfig) EffectiveBuffer() time.Duration {
	if c != nil && c.BufferMinutes != nil && *c.BufferMinutes > 0 {
		return time.Duration(*c.BufferMinutes * float64(time.Minute))
	}
	return DefaultBufferMinutes * time.Minute
}

// EffectiveWebsiteName returns the configured website name or the
// default.
func (c *SchedulingConfig) EffectiveWebsiteName() string {
	if c != nil && c.WebsiteName != "" {
		return c.WebsiteName
	}
	return DefaultWebsiteName
}

func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
