package request

import (
	"time"

	"dropdeck/internal/domain/settings"
)

type UpdateSettingsRequest struct {
	QueuedCollectionID     *string    `json:"queued_collection_id,omitempty"`
	DropTime               *string    `json:"drop_time,omitempty"`
	DefaultDurationMinutes *int       `json:"default_duration_minutes,omitempty"`
	DefaultDropDate        *time.Time `json:"default_drop_date,omitempty"`
	ClearQueuedCollection  bool       `json:"clear_queued_collection,omitempty"`
	ClearDefaultDropDate   bool       `json:"clear_default_drop_date,omitempty"`
}

func (r UpdateSettingsRequest) ToPatch() settings.Patch {
	return settings.Patch{
		QueuedCollectionID:     r.QueuedCollectionID,
		DropTime:               r.DropTime,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		DefaultDropDate:        r.DefaultDropDate,
		ClearQueuedCollection:  r.ClearQueuedCollection,
		ClearDefaultDropDate:   r.ClearDefaultDropDate,
	}
}
