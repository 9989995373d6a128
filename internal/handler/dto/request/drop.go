package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"dropdeck/internal/usecase/commands"
)

type CreateDropRequest struct {
	ProductID       string     `json:"product_id" binding:"required"`
	Title           string     `json:"title"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

func (r CreateDropRequest) ToInput() commands.CreateDropInput {
	return commands.CreateDropInput{
		ProductID:       strings.TrimSpace(r.ProductID),
		Title:           strings.TrimSpace(r.Title),
		ThumbnailURL:    r.ThumbnailURL,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
	}
}

type ScheduleRequest struct {
	CollectionID    *string    `json:"collection_id,omitempty"`
	Anchor          *time.Time `json:"anchor,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	// Append continues after the queue tail instead of restarting the timeline.
	Append bool `json:"append,omitempty"`
}

func (r ScheduleRequest) ToInput() commands.ScheduleInput {
	collectionID := r.CollectionID
	if collectionID != nil {
		trimmed := strings.TrimSpace(*collectionID)
		if trimmed == "" {
			collectionID = nil
		} else {
			collectionID = &trimmed
		}
	}
	return commands.ScheduleInput{
		CollectionID:    collectionID,
		Anchor:          r.Anchor,
		DurationMinutes: r.DurationMinutes,
	}
}

type DeleteDropsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

func (r DeleteDropsRequest) ParseIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.IDs))
	for _, raw := range r.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
