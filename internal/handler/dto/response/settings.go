package response

import (
	"time"

	"dropdeck/internal/domain/settings"
)

type SettingsResponse struct {
	Shop                   string     `json:"shop"`
	QueuedCollectionID     *string    `json:"queued_collection_id,omitempty"`
	DropTime               string     `json:"drop_time"`
	DefaultDurationMinutes int        `json:"default_duration_minutes"`
	DefaultDropDate        *time.Time `json:"default_drop_date,omitempty"`
}

func FromSettings(s settings.Settings) SettingsResponse {
	return SettingsResponse{
		Shop:                   s.Shop,
		QueuedCollectionID:     s.QueuedCollectionID,
		DropTime:               s.DropTime,
		DefaultDurationMinutes: s.DefaultDurationMinutes,
		DefaultDropDate:        s.DefaultDropDate,
	}
}
